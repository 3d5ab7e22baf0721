package services

import (
	"math"
	"sort"
	"time"

	"servispro-backend/models"
)

// Turkish month labels, indexed by time.Month-1. The UI charts consume these
// directly.
var monthLabels = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

const trailingMonths = 12

type IssueCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthlyServiceCount struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

type MonthlyFinance struct {
	Month   string  `json:"month"`
	Year    int     `json:"year"`
	Amount  float64 `json:"amount"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// ServiceReport is the workshop activity summary for dashboards.
type ServiceReport struct {
	TotalDevices      int                   `json:"totalDevices"`
	ByStatus          map[string]int        `json:"byStatus"`
	AverageRepairTime int                   `json:"averageRepairTime"`
	TopIssues         []IssueCount          `json:"topIssues"`
	MonthlyServices   []MonthlyServiceCount `json:"monthlyServices"`
}

// FinancialReport summarizes money flow. Revenue counts only delivered
// devices; expected revenue is everything still in the pipeline.
type FinancialReport struct {
	TotalRevenue     float64          `json:"totalRevenue"`
	TotalExpenses    float64          `json:"totalExpenses"`
	NetProfit        float64          `json:"netProfit"`
	ExpectedRevenue  float64          `json:"expectedRevenue"`
	PendingPayments  float64          `json:"pendingPayments"`
	DeliveredDevices int              `json:"deliveredDevices"`
	TotalDevices     int              `json:"totalDevices"`
	MonthlyStats     []MonthlyFinance `json:"monthlyStats"`
}

// ReportService derives summary statistics from query results. It holds no
// state between calls; every report re-reads the store through the query
// engine, which is fine at this record volume.
type ReportService struct {
	query *Query
	clock Clock
}

func NewReportService(query *Query, clock Clock) *ReportService {
	return &ReportService{query: query, clock: clock}
}

// Generate builds the service report over the given date-range bucket.
func (s *ReportService) Generate(dateRange string) (*ServiceReport, error) {
	devices, err := s.query.Devices(DeviceCriteria{DateRange: dateRange})
	if err != nil {
		return nil, err
	}
	return &ServiceReport{
		TotalDevices:      len(devices),
		ByStatus:          StatusHistogram(devices),
		AverageRepairTime: s.averageRepairTime(devices),
		TopIssues:         topIssues(devices, 5),
		MonthlyServices:   s.monthlySeries(devices),
	}, nil
}

// Financial builds the money summary over the given date-range bucket.
func (s *ReportService) Financial(dateRange string) (*FinancialReport, error) {
	devices, err := s.query.Devices(DeviceCriteria{DateRange: dateRange})
	if err != nil {
		return nil, err
	}
	expenses, err := s.query.Expenses(ExpenseCriteria{DateRange: dateRange})
	if err != nil {
		return nil, err
	}

	report := &FinancialReport{TotalDevices: len(devices)}
	for _, d := range devices {
		switch d.DeviceStatus {
		case models.StatusDelivered:
			report.TotalRevenue += d.TotalCost
			report.PendingPayments += d.RemainingPayment
			report.DeliveredDevices++
		case models.StatusCancelled:
			// neither earned nor expected
		default:
			report.ExpectedRevenue += d.TotalCost
		}
	}
	for _, e := range expenses {
		report.TotalExpenses += e.Amount
	}
	report.NetProfit = report.TotalRevenue - report.TotalExpenses
	report.MonthlyStats = s.monthlyFinance(devices, expenses)
	return report, nil
}

// StatusHistogram tallies devices by status with every status key present,
// zero-filled, so charts always render the full axis.
func StatusHistogram(devices []models.Device) map[string]int {
	byStatus := make(map[string]int, len(models.StatusOptions))
	for _, opt := range models.StatusOptions {
		byStatus[opt.Value] = 0
	}
	for _, d := range devices {
		status := d.DeviceStatus
		if status == "" {
			status = models.StatusPending
		}
		byStatus[status]++
	}
	return byStatus
}

// SuccessRate is the completed+delivered share of all devices, as a rounded
// percentage. Zero devices yields zero, not a division error.
func SuccessRate(byStatus map[string]int) int {
	total := 0
	for _, count := range byStatus {
		total += count
	}
	if total == 0 {
		return 0
	}
	done := byStatus[models.StatusCompleted] + byStatus[models.StatusDelivered]
	return int(math.Round(100 * float64(done) / float64(total)))
}

// averageRepairTime is the mean of per-device repair durations in days over
// completed and delivered devices. A device still missing updatedAt is
// measured against now. Each duration is rounded up to whole days.
func (s *ReportService) averageRepairTime(devices []models.Device) int {
	totalDays := 0.0
	qualifying := 0
	for _, d := range devices {
		if d.DeviceStatus != models.StatusCompleted && d.DeviceStatus != models.StatusDelivered {
			continue
		}
		end := s.clock.Now()
		if d.UpdatedAt != nil {
			end = *d.UpdatedAt
		}
		days := math.Ceil(end.Sub(d.CreatedAt).Hours() / 24)
		totalDays += days
		qualifying++
	}
	if qualifying == 0 {
		return 0
	}
	return int(math.Round(totalDays / float64(qualifying)))
}

// topIssues ranks diagnosis codes by occurrence and maps them to display
// labels. The sort is stable, so ties keep first-seen order; beyond that the
// ordering among equal counts is unspecified.
func topIssues(devices []models.Device, limit int) []IssueCount {
	counts := make(map[string]int)
	var order []string
	for _, d := range devices {
		for _, code := range d.Diagnosis {
			if _, seen := counts[code]; !seen {
				order = append(order, code)
			}
			counts[code]++
		}
	}

	issues := make([]IssueCount, 0, len(order))
	for _, code := range order {
		issues = append(issues, IssueCount{
			Name:  models.Label(models.DiagnosisOptions, code),
			Count: counts[code],
		})
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Count > issues[j].Count
	})
	if len(issues) > limit {
		issues = issues[:limit]
	}
	return issues
}

// monthlySeries counts device intakes per calendar month over the trailing
// twelve months including the current one, oldest first.
func (s *ReportService) monthlySeries(devices []models.Device) []MonthlyServiceCount {
	series := make([]MonthlyServiceCount, 0, trailingMonths)
	for _, m := range s.trailingMonthStarts() {
		count := 0
		for _, d := range devices {
			if sameMonth(d.CreatedAt, m) {
				count++
			}
		}
		series = append(series, MonthlyServiceCount{
			Month: monthLabels[m.Month()-1],
			Year:  m.Year(),
			Count: count,
		})
	}
	return series
}

func (s *ReportService) monthlyFinance(devices []models.Device, expenses []models.Expense) []MonthlyFinance {
	stats := make([]MonthlyFinance, 0, trailingMonths)
	for _, m := range s.trailingMonthStarts() {
		entry := MonthlyFinance{Month: monthLabels[m.Month()-1], Year: m.Year()}
		for _, d := range devices {
			if d.DeviceStatus == models.StatusDelivered && sameMonth(d.CreatedAt, m) {
				entry.Amount += d.TotalCost
			}
		}
		for _, e := range expenses {
			if sameMonth(e.Date, m) {
				entry.Expense += e.Amount
			}
		}
		entry.Profit = entry.Amount - entry.Expense
		stats = append(stats, entry)
	}
	return stats
}

// trailingMonthStarts returns the first day of each of the trailing twelve
// calendar months, chronological.
func (s *ReportService) trailingMonthStarts() []time.Time {
	now := s.clock.Now()
	starts := make([]time.Time, 0, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		starts = append(starts,
			time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location()))
	}
	return starts
}

func sameMonth(ts, monthStart time.Time) bool {
	return ts.Year() == monthStart.Year() && ts.Month() == monthStart.Month()
}
