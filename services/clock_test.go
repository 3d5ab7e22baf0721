package services

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"servispro-backend/store"
)

// fixedClock pins "now" so range filters and report math are reproducible.
type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time { return f.t }

// testNow is a Tuesday mid-June, far from month boundaries.
var testNow = time.Date(2024, time.June, 18, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store     *store.MemoryStore
	clock     fixedClock
	notifier  *NotificationService
	query     *Query
	devices   *DeviceService
	customers *CustomerService
	expenses  *ExpenseService
	reports   *ReportService
}

func newTestEnv() *testEnv {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := store.NewMemoryStore()
	clock := fixedClock{t: testNow}
	notifier := NewNotificationService(s, clock, logger, nil)
	query := NewQuery(s, clock)

	return &testEnv{
		store:     s,
		clock:     clock,
		notifier:  notifier,
		query:     query,
		devices:   NewDeviceService(s, clock, notifier, logger),
		customers: NewCustomerService(s, clock, notifier, logger),
		expenses:  NewExpenseService(s, clock, notifier, logger),
		reports:   NewReportService(query, clock),
	}
}

func validDeviceInput() CreateDeviceInput {
	return CreateDeviceInput{
		CustomerName:   "Ahmet Yılmaz",
		CustomerPhone:  "5551234567",
		Brand:          "dell",
		Model:          "Latitude 5510",
		SerialNumber:   "SN12345",
		Diagnosis:      []string{"display"},
		TotalCost:      1500,
		AdvancePayment: 500,
	}
}

func validCustomerInput() CreateCustomerInput {
	return CreateCustomerInput{
		Name:    "Ahmet Yılmaz",
		TcNo:    "12345678950",
		Phone:   "5551234567",
		Address: "İstanbul",
	}
}
