package services

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servispro-backend/models"
)

func newStaleChecker(env *testEnv) *StaleDeviceChecker {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewStaleDeviceChecker(env.query, env.notifier, env.clock, logger)
}

func TestStaleCheckWarnsAboutUntouchedDevices(t *testing.T) {
	env := newTestEnv()
	checker := newStaleChecker(env)

	threeDaysAgo := testNow.AddDate(0, 0, -3)
	oneHourAgo := testNow.Add(-time.Hour)
	seedDevices(t, env.store, []models.Device{
		{ID: "stale", RegistrationNumber: "SRV0001", Brand: "dell", Model: "XPS",
			DeviceStatus: models.StatusRepairing, CreatedAt: threeDaysAgo},
		{ID: "fresh", DeviceStatus: models.StatusRepairing, CreatedAt: oneHourAgo},
		{ID: "done", DeviceStatus: models.StatusDelivered, CreatedAt: threeDaysAgo},
	})

	checker.CheckOnce()

	list, err := env.notifier.List(0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationWarning, list[0].Type)
	assert.Equal(t, "stale", list[0].Data["deviceId"])
}

func TestStaleCheckUsesUpdatedAtWhenPresent(t *testing.T) {
	env := newTestEnv()
	checker := newStaleChecker(env)

	threeDaysAgo := testNow.AddDate(0, 0, -3)
	yesterday := testNow.AddDate(0, 0, -1)
	seedDevices(t, env.store, []models.Device{
		{ID: "touched", DeviceStatus: models.StatusRepairing,
			CreatedAt: threeDaysAgo, UpdatedAt: &yesterday},
	})

	checker.CheckOnce()

	list, err := env.notifier.List(0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStaleCheckDoesNotRepeatWarnings(t *testing.T) {
	env := newTestEnv()
	checker := newStaleChecker(env)

	seedDevices(t, env.store, []models.Device{
		{ID: "stale", DeviceStatus: models.StatusPending,
			CreatedAt: testNow.AddDate(0, 0, -3)},
	})

	checker.CheckOnce()
	checker.CheckOnce()

	list, err := env.notifier.List(0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
