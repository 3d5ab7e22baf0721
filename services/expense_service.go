package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"servispro-backend/models"
	"servispro-backend/store"
)

type ExpenseService struct {
	store    store.Store
	clock    Clock
	notifier *NotificationService
	logger   *logrus.Logger
}

func NewExpenseService(s store.Store, clock Clock, notifier *NotificationService, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{store: s, clock: clock, notifier: notifier, logger: logger}
}

type CreateExpenseInput struct {
	Type        string    `json:"type" binding:"required"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type UpdateExpenseInput struct {
	Type        *string    `json:"type"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
}

func (s *ExpenseService) Get(id string) (*models.Expense, error) {
	var expenses []models.Expense
	if _, err := s.store.Get(store.Expenses, &expenses); err != nil {
		return nil, err
	}
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}
	return nil, notFound("expense %s", id)
}

func (s *ExpenseService) Create(input CreateExpenseInput) (*models.Expense, error) {
	status := input.Status
	if status == "" {
		status = models.ExpenseUnpaid
	}
	if err := validateExpenseFields(input.Type, status, input.Amount, input.Date); err != nil {
		return nil, err
	}

	expense := models.Expense{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		Status:      status,
		CreatedAt:   s.clock.Now(),
	}

	var expenses []models.Expense
	if _, err := s.store.Get(store.Expenses, &expenses); err != nil {
		return nil, err
	}
	expenses = append(expenses, expense)
	if err := s.store.Set(store.Expenses, expenses); err != nil {
		return nil, err
	}

	s.logger.WithField("expenseId", expense.ID).Info("expense recorded")
	s.notifier.Notify(models.NotificationSuccess, "Yeni Gider",
		fmt.Sprintf("%s gideri eklendi.", models.Label(models.ExpenseTypeOptions, expense.Type)),
		map[string]string{"expenseId": expense.ID})
	return &expense, nil
}

func (s *ExpenseService) Update(id string, input UpdateExpenseInput) (*models.Expense, error) {
	var expenses []models.Expense
	if _, err := s.store.Get(store.Expenses, &expenses); err != nil {
		return nil, err
	}
	idx := -1
	for i := range expenses {
		if expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, notFound("expense %s", id)
	}

	expense := expenses[idx]
	if input.Type != nil {
		expense.Type = *input.Type
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Status != nil {
		expense.Status = *input.Status
	}
	if err := validateExpenseFields(expense.Type, expense.Status, expense.Amount, expense.Date); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expense.UpdatedAt = &now
	expenses[idx] = expense
	if err := s.store.Set(store.Expenses, expenses); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.NotificationInfo, "Gider Güncellendi",
		fmt.Sprintf("%s gideri güncellendi.", models.Label(models.ExpenseTypeOptions, expense.Type)),
		map[string]string{"expenseId": expense.ID})
	return &expense, nil
}

func (s *ExpenseService) Delete(id string) error {
	var expenses []models.Expense
	if _, err := s.store.Get(store.Expenses, &expenses); err != nil {
		return err
	}
	idx := -1
	for i := range expenses {
		if expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notFound("expense %s", id)
	}

	expenses = append(expenses[:idx], expenses[idx+1:]...)
	if err := s.store.Set(store.Expenses, expenses); err != nil {
		return err
	}

	s.notifier.Notify(models.NotificationInfo, "Gider Silindi", "Gider kaydı silindi.",
		map[string]string{"expenseId": id})
	return nil
}

func validateExpenseFields(typ, status string, amount float64, date time.Time) error {
	if !models.IsValidOption(models.ExpenseTypeOptions, typ) {
		return invalid("unknown expense type %q", typ)
	}
	if status != models.ExpensePaid && status != models.ExpenseUnpaid {
		return invalid("unknown expense status %q", status)
	}
	if amount < 0 {
		return invalid("amount must not be negative")
	}
	if date.IsZero() {
		return invalid("date is required")
	}
	return nil
}
