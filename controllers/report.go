// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"servispro-backend/services"
	"servispro-backend/utils"
)

// ReportController serves the service and financial summaries plus the
// spreadsheet export.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func dateRangeParam(c *gin.Context) string {
	if r := c.Query("dateRange"); r != "" {
		return r
	}
	return services.RangeMonth
}

func (rc *ReportController) GetServiceReport(c *gin.Context) {
	report, err := rc.reports.Generate(dateRangeParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) GetFinancialReport(c *gin.Context) {
	report, err := rc.reports.Financial(dateRangeParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportFinancialReport streams the financial summary as an xlsx workbook.
func (rc *ReportController) ExportFinancialReport(c *gin.Context) {
	report, err := rc.reports.Financial(dateRangeParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "TotalRevenue")
	f.SetCellValue(sheet, "B1", "TotalExpenses")
	f.SetCellValue(sheet, "C1", "NetProfit")
	f.SetCellValue(sheet, "D1", "ExpectedRevenue")
	f.SetCellValue(sheet, "E1", "PendingPayments")
	f.SetCellValue(sheet, "A2", report.TotalRevenue)
	f.SetCellValue(sheet, "B2", report.TotalExpenses)
	f.SetCellValue(sheet, "C2", report.NetProfit)
	f.SetCellValue(sheet, "D2", report.ExpectedRevenue)
	f.SetCellValue(sheet, "E2", report.PendingPayments)

	f.SetCellValue(sheet, "A4", "Month")
	f.SetCellValue(sheet, "B4", "Year")
	f.SetCellValue(sheet, "C4", "Revenue")
	f.SetCellValue(sheet, "D4", "Expense")
	f.SetCellValue(sheet, "E4", "Profit")
	for i, m := range report.MonthlyStats {
		row := i + 5
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), m.Month)
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), m.Year)
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), m.Amount)
		f.SetCellValue(sheet, "D"+fmt.Sprint(row), m.Expense)
		f.SetCellValue(sheet, "E"+fmt.Sprint(row), m.Profit)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=financial-report.xlsx")
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write file")
	}
}
