package services

import (
	"sort"
	"strings"
	"time"

	"servispro-backend/models"
	"servispro-backend/store"
)

// Date range buckets accepted by list criteria. An empty or "all" bucket
// means all time.
const (
	RangeDay   = "day"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
	RangeAll   = "all"
)

// DeviceCriteria filters the devices collection. All supplied fields are
// ANDed together.
type DeviceCriteria struct {
	Status                   []string
	CustomerID               string
	Keyword                  string
	RemainingPaymentPositive bool
	DateRange                string
	DateFrom                 *time.Time
	DateTo                   *time.Time
}

type CustomerCriteria struct {
	Keyword string
}

type ExpenseCriteria struct {
	Type      string
	Status    string
	DateRange string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Query reads collections from the record store and applies criteria with a
// deterministic ordering: descending by the record's primary timestamp, ties
// retaining store order. A missing collection yields an empty result.
type Query struct {
	store store.Store
	clock Clock
}

func NewQuery(s store.Store, clock Clock) *Query {
	return &Query{store: s, clock: clock}
}

func (q *Query) Devices(c DeviceCriteria) ([]models.Device, error) {
	var devices []models.Device
	if _, err := q.store.Get(store.Devices, &devices); err != nil {
		return nil, err
	}

	out := devices[:0:0]
	cutoff, hasCutoff := q.rangeCutoff(c.DateRange)
	for _, d := range devices {
		if len(c.Status) > 0 && !containsString(c.Status, d.DeviceStatus) {
			continue
		}
		if c.CustomerID != "" && d.CustomerID != c.CustomerID {
			continue
		}
		if c.Keyword != "" && !matchesKeyword(c.Keyword,
			d.RegistrationNumber, d.CustomerName, d.Brand, d.Model, d.SerialNumber) {
			continue
		}
		if c.RemainingPaymentPositive && d.RemainingPayment <= 0 {
			continue
		}
		if !inRange(d.CreatedAt, cutoff, hasCutoff, c.DateFrom, c.DateTo) {
			continue
		}
		out = append(out, d)
	}

	sortByTimeDesc(out, func(d models.Device) time.Time { return d.CreatedAt })
	return out, nil
}

func (q *Query) Customers(c CustomerCriteria) ([]models.Customer, error) {
	var customers []models.Customer
	if _, err := q.store.Get(store.Customers, &customers); err != nil {
		return nil, err
	}

	out := customers[:0:0]
	for _, cu := range customers {
		if c.Keyword != "" && !matchesKeyword(c.Keyword, cu.Name, cu.Phone, cu.Email, cu.TcNo) {
			continue
		}
		out = append(out, cu)
	}

	sortByTimeDesc(out, func(cu models.Customer) time.Time { return cu.CreatedAt })
	return out, nil
}

func (q *Query) Expenses(c ExpenseCriteria) ([]models.Expense, error) {
	var expenses []models.Expense
	if _, err := q.store.Get(store.Expenses, &expenses); err != nil {
		return nil, err
	}

	out := expenses[:0:0]
	cutoff, hasCutoff := q.rangeCutoff(c.DateRange)
	for _, e := range expenses {
		if c.Type != "" && e.Type != c.Type {
			continue
		}
		if c.Status != "" && e.Status != c.Status {
			continue
		}
		if !inRange(e.Date, cutoff, hasCutoff, c.DateFrom, c.DateTo) {
			continue
		}
		out = append(out, e)
	}

	sortByTimeDesc(out, func(e models.Expense) time.Time { return e.Date })
	return out, nil
}

// rangeCutoff translates a symbolic bucket into an absolute lower bound.
// "day" is the start of the current day; "week" is a fixed 7 days while
// "month"/"year" are calendar subtractions. The asymmetry is intentional,
// it is the observable behavior the reports were built on.
func (q *Query) rangeCutoff(bucket string) (time.Time, bool) {
	now := q.clock.Now()
	switch bucket {
	case RangeDay:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return now.AddDate(0, -1, 0), true
	case RangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// inRange applies the bucket cutoff and explicit inclusive bounds. Records
// with a zero timestamp are excluded by any active bound rather than
// treated as matching.
func inRange(ts time.Time, cutoff time.Time, hasCutoff bool, from, to *time.Time) bool {
	bounded := hasCutoff || from != nil || to != nil
	if ts.IsZero() {
		return !bounded
	}
	if hasCutoff && ts.Before(cutoff) {
		return false
	}
	if from != nil && ts.Before(*from) {
		return false
	}
	if to != nil && ts.After(*to) {
		return false
	}
	return true
}

func matchesKeyword(keyword string, fields ...string) bool {
	term := strings.ToLower(keyword)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// sortByTimeDesc orders newest first. The sort is stable: records with equal
// timestamps keep their store order, which is otherwise unspecified.
func sortByTimeDesc[T any](items []T, ts func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return ts(items[i]).After(ts(items[j]))
	})
}
