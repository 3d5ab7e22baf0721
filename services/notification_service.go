package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"servispro-backend/models"
	"servispro-backend/store"
)

// maxNotifications caps the stored notification history.
const maxNotifications = 100

// NotificationService is the in-app notification sink. Notify is
// fire-and-forget: sink failures are logged, never propagated, so they can
// never fail the operation that produced the event.
type NotificationService struct {
	store  store.Store
	clock  Clock
	logger *logrus.Logger
	sms    *SMSSender
}

func NewNotificationService(s store.Store, clock Clock, logger *logrus.Logger, sms *SMSSender) *NotificationService {
	return &NotificationService{store: s, clock: clock, logger: logger, sms: sms}
}

// Notify records an event, newest first, trimming history to the cap.
func (n *NotificationService) Notify(typ, title, message string, data map[string]string) *models.Notification {
	notification := models.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Data:      data,
		Timestamp: n.clock.Now(),
	}

	var notifications []models.Notification
	if _, err := n.store.Get(store.Notifications, &notifications); err != nil {
		n.logger.WithError(err).Warn("notification sink: read failed")
		return &notification
	}

	notifications = append([]models.Notification{notification}, notifications...)
	if len(notifications) > maxNotifications {
		notifications = notifications[:maxNotifications]
	}

	if err := n.store.Set(store.Notifications, notifications); err != nil {
		n.logger.WithError(err).Warn("notification sink: write failed")
	}
	return &notification
}

// NotifyCustomer sends an SMS through the configured sender, if any.
// Delivery failures are logged and swallowed.
func (n *NotificationService) NotifyCustomer(phone, message string) {
	if n.sms == nil || phone == "" {
		return
	}
	if err := n.sms.Send(phone, message); err != nil {
		n.logger.WithError(err).WithField("phone", phone).Warn("customer sms failed")
	}
}

func (n *NotificationService) List(limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if _, err := n.store.Get(store.Notifications, &notifications); err != nil {
		return nil, err
	}
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (n *NotificationService) UnreadCount() (int, error) {
	notifications, err := n.List(0)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range notifications {
		if !item.Read {
			count++
		}
	}
	return count, nil
}

func (n *NotificationService) MarkAsRead(id string) error {
	var notifications []models.Notification
	if _, err := n.store.Get(store.Notifications, &notifications); err != nil {
		return err
	}
	found := false
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			found = true
		}
	}
	if !found {
		return notFound("notification %s", id)
	}
	return n.store.Set(store.Notifications, notifications)
}

func (n *NotificationService) MarkAllAsRead() error {
	var notifications []models.Notification
	if _, err := n.store.Get(store.Notifications, &notifications); err != nil {
		return err
	}
	for i := range notifications {
		notifications[i].Read = true
	}
	return n.store.Set(store.Notifications, notifications)
}
