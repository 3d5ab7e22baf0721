package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"servispro-backend/models"
)

// staleAfter is how long a device may sit without an update before the shop
// gets nagged about it.
const staleAfter = 48 * time.Hour

// StaleDeviceChecker periodically flags active devices whose status has not
// moved for two days. One warning per device per window; repeats are
// suppressed by looking at recent notifications.
type StaleDeviceChecker struct {
	query    *Query
	notifier *NotificationService
	clock    Clock
	logger   *logrus.Logger
	cron     *cron.Cron
}

func NewStaleDeviceChecker(query *Query, notifier *NotificationService, clock Clock, logger *logrus.Logger) *StaleDeviceChecker {
	return &StaleDeviceChecker{
		query:    query,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start runs an immediate pass and then schedules an hourly one.
func (c *StaleDeviceChecker) Start() error {
	c.CheckOnce()
	if _, err := c.cron.AddFunc("@hourly", c.CheckOnce); err != nil {
		return err
	}
	c.cron.Start()
	c.logger.Info("stale device checker started")
	return nil
}

func (c *StaleDeviceChecker) Stop() {
	c.cron.Stop()
}

func (c *StaleDeviceChecker) CheckOnce() {
	devices, err := c.query.Devices(DeviceCriteria{})
	if err != nil {
		c.logger.WithError(err).Warn("stale check: listing devices failed")
		return
	}
	recent, err := c.notifier.List(0)
	if err != nil {
		c.logger.WithError(err).Warn("stale check: listing notifications failed")
		return
	}

	threshold := c.clock.Now().Add(-staleAfter)
	for _, d := range devices {
		switch d.DeviceStatus {
		case models.StatusCompleted, models.StatusDelivered, models.StatusCancelled:
			continue
		}
		lastTouched := d.CreatedAt
		if d.UpdatedAt != nil {
			lastTouched = *d.UpdatedAt
		}
		if !lastTouched.Before(threshold) {
			continue
		}
		if hasRecentWarning(recent, d.ID, threshold) {
			continue
		}
		c.notifier.Notify(models.NotificationWarning, "Bekleyen Cihaz Hatırlatması",
			fmt.Sprintf("%s %s (%s) cihazının durumu 2 gündür güncellenmedi.",
				d.Brand, d.Model, d.RegistrationNumber),
			map[string]string{"deviceId": d.ID})
	}
}

func hasRecentWarning(notifications []models.Notification, deviceID string, threshold time.Time) bool {
	for _, n := range notifications {
		if n.Type == models.NotificationWarning &&
			n.Data["deviceId"] == deviceID &&
			n.Timestamp.After(threshold) {
			return true
		}
	}
	return false
}
