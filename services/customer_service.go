package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"servispro-backend/models"
	"servispro-backend/store"
	"servispro-backend/utils"
)

type CustomerService struct {
	store    store.Store
	clock    Clock
	notifier *NotificationService
	logger   *logrus.Logger
}

func NewCustomerService(s store.Store, clock Clock, notifier *NotificationService, logger *logrus.Logger) *CustomerService {
	return &CustomerService{store: s, clock: clock, notifier: notifier, logger: logger}
}

type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	TcNo    string `json:"tcNo" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	TcNo    *string `json:"tcNo"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (s *CustomerService) Get(id string) (*models.Customer, error) {
	var customers []models.Customer
	if _, err := s.store.Get(store.Customers, &customers); err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, notFound("customer %s", id)
}

func (s *CustomerService) Create(input CreateCustomerInput) (*models.Customer, error) {
	if err := validateCustomerFields(input.TcNo, input.Phone, input.Email); err != nil {
		return nil, err
	}

	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      input.Name,
		TcNo:      input.TcNo,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		CreatedAt: s.clock.Now(),
	}

	var customers []models.Customer
	if _, err := s.store.Get(store.Customers, &customers); err != nil {
		return nil, err
	}
	customers = append(customers, customer)
	if err := s.store.Set(store.Customers, customers); err != nil {
		return nil, err
	}

	s.logger.WithField("customerId", customer.ID).Info("customer created")
	s.notifier.Notify(models.NotificationSuccess, "Yeni Müşteri",
		fmt.Sprintf("%s kaydı oluşturuldu.", customer.Name),
		map[string]string{"customerId": customer.ID})
	return &customer, nil
}

func (s *CustomerService) Update(id string, input UpdateCustomerInput) (*models.Customer, error) {
	var customers []models.Customer
	if _, err := s.store.Get(store.Customers, &customers); err != nil {
		return nil, err
	}
	idx := -1
	for i := range customers {
		if customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, notFound("customer %s", id)
	}

	customer := customers[idx]
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.TcNo != nil {
		customer.TcNo = *input.TcNo
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if err := validateCustomerFields(customer.TcNo, customer.Phone, customer.Email); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	customer.UpdatedAt = &now
	customers[idx] = customer
	if err := s.store.Set(store.Customers, customers); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.NotificationInfo, "Müşteri Güncellendi",
		fmt.Sprintf("%s kaydı güncellendi.", customer.Name),
		map[string]string{"customerId": customer.ID})
	return &customer, nil
}

// Delete refuses to remove a customer that still has devices. The check
// counts actual device references, not the denormalized counter.
func (s *CustomerService) Delete(id string) error {
	var customers []models.Customer
	if _, err := s.store.Get(store.Customers, &customers); err != nil {
		return err
	}
	idx := -1
	for i := range customers {
		if customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notFound("customer %s", id)
	}

	var devices []models.Device
	if _, err := s.store.Get(store.Devices, &devices); err != nil {
		return err
	}
	for _, d := range devices {
		if d.CustomerID == id {
			return conflict("customer %s has registered devices", id)
		}
	}

	name := customers[idx].Name
	customers = append(customers[:idx], customers[idx+1:]...)
	if err := s.store.Set(store.Customers, customers); err != nil {
		return err
	}

	s.logger.WithField("customerId", id).Info("customer deleted")
	s.notifier.Notify(models.NotificationInfo, "Müşteri Silindi",
		fmt.Sprintf("%s kaydı silindi.", name),
		map[string]string{"customerId": id})
	return nil
}

func validateCustomerFields(tcNo, phone, email string) error {
	if !utils.ValidateTcNo(tcNo) {
		return invalid("invalid national id %q", tcNo)
	}
	if !utils.ValidatePhone(phone) {
		return invalid("invalid phone %q", phone)
	}
	if email != "" && !utils.ValidateEmail(email) {
		return invalid("invalid email %q", email)
	}
	return nil
}
