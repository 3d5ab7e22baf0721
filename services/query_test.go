package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servispro-backend/models"
	"servispro-backend/store"
)

func seedDevices(t *testing.T, s *store.MemoryStore, devices []models.Device) {
	t.Helper()
	require.NoError(t, s.Set(store.Devices, devices))
}

func TestDevicesEmptyStore(t *testing.T) {
	env := newTestEnv()

	devices, err := env.query.Devices(DeviceCriteria{Keyword: "dell"})
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDevicesKeywordCaseInsensitive(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "1", Brand: "Dell", Model: "Latitude", CreatedAt: testNow},
		{ID: "2", Brand: "HP", Model: "EliteBook", CreatedAt: testNow},
		{ID: "3", CustomerName: "Dellal Kaya", CreatedAt: testNow},
	})

	devices, err := env.query.Devices(DeviceCriteria{Keyword: "dell"})
	require.NoError(t, err)
	require.Len(t, devices, 2)
	for _, d := range devices {
		assert.Contains(t, []string{"1", "3"}, d.ID)
	}
}

func TestDevicesStatusMembership(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "1", DeviceStatus: models.StatusPending, CreatedAt: testNow},
		{ID: "2", DeviceStatus: models.StatusCompleted, CreatedAt: testNow},
		{ID: "3", DeviceStatus: models.StatusDelivered, CreatedAt: testNow},
	})

	single, err := env.query.Devices(DeviceCriteria{Status: []string{models.StatusPending}})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "1", single[0].ID)

	set, err := env.query.Devices(DeviceCriteria{
		Status: []string{models.StatusCompleted, models.StatusDelivered},
	})
	require.NoError(t, err)
	assert.Len(t, set, 2)
}

func TestDevicesRemainingPaymentFilter(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "1", RemainingPayment: 0, CreatedAt: testNow},
		{ID: "2", RemainingPayment: 250, CreatedAt: testNow},
	})

	devices, err := env.query.Devices(DeviceCriteria{RemainingPaymentPositive: true})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "2", devices[0].ID)
}

func TestDevicesDateRangeBuckets(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "today", CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "yesterday", CreatedAt: testNow.AddDate(0, 0, -1)},
		{ID: "lastweek", CreatedAt: testNow.AddDate(0, 0, -10)},
		{ID: "lastyear", CreatedAt: testNow.AddDate(0, -6, 0)},
	})

	day, err := env.query.Devices(DeviceCriteria{DateRange: RangeDay})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "today", day[0].ID)

	week, err := env.query.Devices(DeviceCriteria{DateRange: RangeWeek})
	require.NoError(t, err)
	assert.Len(t, week, 2)

	month, err := env.query.Devices(DeviceCriteria{DateRange: RangeMonth})
	require.NoError(t, err)
	assert.Len(t, month, 3)

	year, err := env.query.Devices(DeviceCriteria{DateRange: RangeYear})
	require.NoError(t, err)
	assert.Len(t, year, 4)

	all, err := env.query.Devices(DeviceCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDevicesExplicitBoundsAndedWithBucket(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "1", CreatedAt: testNow.AddDate(0, 0, -1)},
		{ID: "2", CreatedAt: testNow.AddDate(0, 0, -3)},
		{ID: "3", CreatedAt: testNow.AddDate(0, 0, -20)},
	})

	from := testNow.AddDate(0, 0, -4)
	to := testNow.AddDate(0, 0, -2)
	devices, err := env.query.Devices(DeviceCriteria{
		DateRange: RangeWeek,
		DateFrom:  &from,
		DateTo:    &to,
	})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "2", devices[0].ID)
}

func TestDevicesZeroTimestampExcludedByRange(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "broken"},
		{ID: "good", CreatedAt: testNow},
	})

	ranged, err := env.query.Devices(DeviceCriteria{DateRange: RangeYear})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "good", ranged[0].ID)

	all, err := env.query.Devices(DeviceCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDevicesOrderedNewestFirstAndIdempotent(t *testing.T) {
	env := newTestEnv()
	seedDevices(t, env.store, []models.Device{
		{ID: "old", CreatedAt: testNow.AddDate(0, 0, -3)},
		{ID: "new", CreatedAt: testNow},
		{ID: "mid-a", CreatedAt: testNow.AddDate(0, 0, -1)},
		{ID: "mid-b", CreatedAt: testNow.AddDate(0, 0, -1)},
	})

	first, err := env.query.Devices(DeviceCriteria{})
	require.NoError(t, err)
	second, err := env.query.Devices(DeviceCriteria{})
	require.NoError(t, err)

	require.Len(t, first, 4)
	assert.Equal(t, "new", first[0].ID)
	assert.Equal(t, "old", first[3].ID)
	// equal timestamps keep store order
	assert.Equal(t, "mid-a", first[1].ID)
	assert.Equal(t, "mid-b", first[2].ID)
	assert.Equal(t, first, second)
}

func TestCustomersKeyword(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.store.Set(store.Customers, []models.Customer{
		{ID: "1", Name: "Ahmet Yılmaz", Phone: "5551234567", TcNo: "12345678950", CreatedAt: testNow},
		{ID: "2", Name: "Mehmet Demir", Phone: "5559876543", Email: "mehmet@example.com", CreatedAt: testNow},
	}))

	byName, err := env.query.Customers(CustomerCriteria{Keyword: "ahmet"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byPhone, err := env.query.Customers(CustomerCriteria{Keyword: "555987"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "2", byPhone[0].ID)

	byTc, err := env.query.Customers(CustomerCriteria{Keyword: "1234567895"})
	require.NoError(t, err)
	require.Len(t, byTc, 1)
	assert.Equal(t, "1", byTc[0].ID)
}

func TestExpensesTypeStatusAndRange(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.store.Set(store.Expenses, []models.Expense{
		{ID: "1", Type: "rent", Status: models.ExpensePaid, Amount: 1000, Date: testNow.AddDate(0, 0, -2)},
		{ID: "2", Type: "electricity", Status: models.ExpenseUnpaid, Amount: 500, Date: testNow.AddDate(0, 0, -2)},
		{ID: "3", Type: "rent", Status: models.ExpenseUnpaid, Amount: 1000, Date: testNow.AddDate(0, -2, 0)},
	}))

	rent, err := env.query.Expenses(ExpenseCriteria{Type: "rent"})
	require.NoError(t, err)
	assert.Len(t, rent, 2)

	unpaidRecent, err := env.query.Expenses(ExpenseCriteria{
		Status:    models.ExpenseUnpaid,
		DateRange: RangeMonth,
	})
	require.NoError(t, err)
	require.Len(t, unpaidRecent, 1)
	assert.Equal(t, "2", unpaidRecent[0].ID)
}
