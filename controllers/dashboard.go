// controllers/dashboard.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servispro-backend/services"
)

type DashboardController struct {
	reports *services.ReportService
	query   *services.Query
}

func NewDashboardController(reports *services.ReportService, query *services.Query) *DashboardController {
	return &DashboardController{reports: reports, query: query}
}

// Overview composes the landing-page summary: status counts, success rate,
// the most recent intakes and this month's money flow.
func (dc *DashboardController) Overview(c *gin.Context) {
	devices, err := dc.query.Devices(services.DeviceCriteria{})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	byStatus := services.StatusHistogram(devices)

	recent := devices
	if len(recent) > 5 {
		recent = recent[:5]
	}

	financial, err := dc.reports.Financial(services.RangeMonth)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalDevices":    len(devices),
		"byStatus":        byStatus,
		"successRate":     services.SuccessRate(byStatus),
		"recentDevices":   recent,
		"monthlyRevenue":  financial.TotalRevenue,
		"monthlyExpenses": financial.TotalExpenses,
		"pendingPayments": financial.PendingPayments,
	})
}
