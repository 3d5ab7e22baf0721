package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"servispro-backend/models"
	"servispro-backend/store"
	"servispro-backend/utils"
)

// DeviceService owns the device lifecycle: registration number assignment,
// payment derivation and the denormalized customer counters.
type DeviceService struct {
	store    store.Store
	clock    Clock
	notifier *NotificationService
	logger   *logrus.Logger
}

func NewDeviceService(s store.Store, clock Clock, notifier *NotificationService, logger *logrus.Logger) *DeviceService {
	return &DeviceService{store: s, clock: clock, notifier: notifier, logger: logger}
}

// CreateDeviceInput carries the intake form fields.
type CreateDeviceInput struct {
	CustomerID        string   `json:"customerId"`
	CustomerName      string   `json:"customerName" binding:"required"`
	CustomerPhone     string   `json:"customerPhone" binding:"required"`
	CustomerEmail     string   `json:"customerEmail"`
	TcNo              string   `json:"tcNo"`
	Brand             string   `json:"brand" binding:"required"`
	CustomBrand       string   `json:"customBrand"`
	Model             string   `json:"model" binding:"required"`
	SerialNumber      string   `json:"serialNumber"`
	CustomerComplaint string   `json:"customerComplaint"`
	Diagnosis         []string `json:"diagnosis"`
	CustomDiagnosis   string   `json:"customDiagnosis"`
	DeviceStatus      string   `json:"deviceStatus"`
	TotalCost         float64  `json:"totalCost"`
	AdvancePayment    float64  `json:"advancePayment"`
	Notes             string   `json:"notes"`
}

// UpdateDeviceInput is a partial patch; nil fields keep their stored value.
type UpdateDeviceInput struct {
	CustomerName      *string   `json:"customerName"`
	CustomerPhone     *string   `json:"customerPhone"`
	CustomerEmail     *string   `json:"customerEmail"`
	Brand             *string   `json:"brand"`
	CustomBrand       *string   `json:"customBrand"`
	Model             *string   `json:"model"`
	SerialNumber      *string   `json:"serialNumber"`
	CustomerComplaint *string   `json:"customerComplaint"`
	Diagnosis         *[]string `json:"diagnosis"`
	CustomDiagnosis   *string   `json:"customDiagnosis"`
	DeviceStatus      *string   `json:"deviceStatus"`
	TotalCost         *float64  `json:"totalCost"`
	AdvancePayment    *float64  `json:"advancePayment"`
	Notes             *string   `json:"notes"`
}

func (s *DeviceService) Get(id string) (*models.Device, error) {
	var devices []models.Device
	if _, err := s.store.Get(store.Devices, &devices); err != nil {
		return nil, err
	}
	for i := range devices {
		if devices[i].ID == id {
			return &devices[i], nil
		}
	}
	return nil, notFound("device %s", id)
}

// Create registers a device intake. When a customer is referenced it must
// resolve; a dangling id fails rather than silently skipping the
// denormalized update.
func (s *DeviceService) Create(input CreateDeviceInput) (*models.Device, error) {
	if err := validateDeviceFields(input.DeviceStatus, input.Brand, input.Diagnosis,
		input.TotalCost, input.AdvancePayment); err != nil {
		return nil, err
	}
	if input.CustomerPhone != "" && !utils.ValidatePhone(input.CustomerPhone) {
		return nil, invalid("invalid customer phone %q", input.CustomerPhone)
	}

	var customers []models.Customer
	customerIdx := -1
	if input.CustomerID != "" {
		if _, err := s.store.Get(store.Customers, &customers); err != nil {
			return nil, err
		}
		for i := range customers {
			if customers[i].ID == input.CustomerID {
				customerIdx = i
				break
			}
		}
		if customerIdx < 0 {
			return nil, notFound("customer %s", input.CustomerID)
		}
	}

	seq, err := s.store.NextSequence(store.Devices)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	status := input.DeviceStatus
	if status == "" {
		status = models.StatusPending
	}
	device := models.Device{
		ID:                 uuid.NewString(),
		RegistrationNumber: fmt.Sprintf("SRV%04d", seq),
		CustomerID:         input.CustomerID,
		CustomerName:       input.CustomerName,
		CustomerPhone:      input.CustomerPhone,
		CustomerEmail:      input.CustomerEmail,
		TcNo:               input.TcNo,
		Brand:              input.Brand,
		CustomBrand:        input.CustomBrand,
		Model:              input.Model,
		SerialNumber:       input.SerialNumber,
		CustomerComplaint:  input.CustomerComplaint,
		Diagnosis:          input.Diagnosis,
		CustomDiagnosis:    input.CustomDiagnosis,
		DeviceStatus:       status,
		TotalCost:          input.TotalCost,
		AdvancePayment:     input.AdvancePayment,
		RemainingPayment:   remainingPayment(input.TotalCost, input.AdvancePayment),
		Notes:              input.Notes,
		CreatedAt:          now,
	}

	var devices []models.Device
	if _, err := s.store.Get(store.Devices, &devices); err != nil {
		return nil, err
	}
	devices = append(devices, device)
	if err := s.store.Set(store.Devices, devices); err != nil {
		return nil, err
	}

	if customerIdx >= 0 {
		customers[customerIdx].DeviceCount++
		customers[customerIdx].LastServiceDate = &now
		if err := s.store.Set(store.Customers, customers); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"deviceId":           device.ID,
		"registrationNumber": device.RegistrationNumber,
	}).Info("device registered")
	s.notifier.Notify(models.NotificationSuccess, "Yeni Cihaz Kaydı",
		fmt.Sprintf("%s %s (%s) kaydı oluşturuldu.", device.Brand, device.Model, device.RegistrationNumber),
		map[string]string{"deviceId": device.ID})
	return &device, nil
}

// Update merges the patch into the stored record and recomputes the
// remaining payment from the merged cost fields.
func (s *DeviceService) Update(id string, input UpdateDeviceInput) (*models.Device, error) {
	var devices []models.Device
	if _, err := s.store.Get(store.Devices, &devices); err != nil {
		return nil, err
	}
	idx := -1
	for i := range devices {
		if devices[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, notFound("device %s", id)
	}

	device := devices[idx]
	prevStatus := device.DeviceStatus

	if input.CustomerName != nil {
		device.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		if *input.CustomerPhone != "" && !utils.ValidatePhone(*input.CustomerPhone) {
			return nil, invalid("invalid customer phone %q", *input.CustomerPhone)
		}
		device.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		device.CustomerEmail = *input.CustomerEmail
	}
	if input.Brand != nil {
		device.Brand = *input.Brand
	}
	if input.CustomBrand != nil {
		device.CustomBrand = *input.CustomBrand
	}
	if input.Model != nil {
		device.Model = *input.Model
	}
	if input.SerialNumber != nil {
		device.SerialNumber = *input.SerialNumber
	}
	if input.CustomerComplaint != nil {
		device.CustomerComplaint = *input.CustomerComplaint
	}
	if input.Diagnosis != nil {
		device.Diagnosis = *input.Diagnosis
	}
	if input.CustomDiagnosis != nil {
		device.CustomDiagnosis = *input.CustomDiagnosis
	}
	if input.DeviceStatus != nil {
		device.DeviceStatus = *input.DeviceStatus
	}
	if input.TotalCost != nil {
		device.TotalCost = *input.TotalCost
	}
	if input.AdvancePayment != nil {
		device.AdvancePayment = *input.AdvancePayment
	}
	if input.Notes != nil {
		device.Notes = *input.Notes
	}

	if err := validateDeviceFields(device.DeviceStatus, device.Brand, device.Diagnosis,
		device.TotalCost, device.AdvancePayment); err != nil {
		return nil, err
	}
	device.RemainingPayment = remainingPayment(device.TotalCost, device.AdvancePayment)
	now := s.clock.Now()
	device.UpdatedAt = &now

	devices[idx] = device
	if err := s.store.Set(store.Devices, devices); err != nil {
		return nil, err
	}

	s.notifier.Notify(models.NotificationInfo, "Cihaz Güncellendi",
		fmt.Sprintf("%s kaydı güncellendi.", device.RegistrationNumber),
		map[string]string{"deviceId": device.ID})

	if prevStatus != device.DeviceStatus &&
		(device.DeviceStatus == models.StatusCompleted || device.DeviceStatus == models.StatusDelivered) {
		s.notifier.NotifyCustomer(device.CustomerPhone,
			fmt.Sprintf("Sayın %s, %s %s (%s) cihazınız hazır.",
				device.CustomerName, device.Brand, device.Model, device.RegistrationNumber))
	}
	return &device, nil
}

// Delete removes the record and releases the customer's device counter,
// floored at zero. Registration numbers are never reissued.
func (s *DeviceService) Delete(id string) error {
	var devices []models.Device
	if _, err := s.store.Get(store.Devices, &devices); err != nil {
		return err
	}
	idx := -1
	for i := range devices {
		if devices[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notFound("device %s", id)
	}
	device := devices[idx]

	devices = append(devices[:idx], devices[idx+1:]...)
	if err := s.store.Set(store.Devices, devices); err != nil {
		return err
	}

	if device.CustomerID != "" {
		var customers []models.Customer
		if _, err := s.store.Get(store.Customers, &customers); err != nil {
			return err
		}
		for i := range customers {
			if customers[i].ID == device.CustomerID {
				if customers[i].DeviceCount > 0 {
					customers[i].DeviceCount--
				}
				if err := s.store.Set(store.Customers, customers); err != nil {
					return err
				}
				break
			}
		}
	}

	s.logger.WithField("deviceId", id).Info("device deleted")
	s.notifier.Notify(models.NotificationInfo, "Cihaz Silindi",
		fmt.Sprintf("%s kaydı silindi.", device.RegistrationNumber),
		map[string]string{"deviceId": device.ID})
	return nil
}

func validateDeviceFields(status, brand string, diagnosis []string, totalCost, advancePayment float64) error {
	if status != "" && !models.IsValidOption(models.StatusOptions, status) {
		return invalid("unknown device status %q", status)
	}
	if brand != "" && !models.IsValidOption(models.BrandOptions, brand) {
		return invalid("unknown brand %q", brand)
	}
	for _, code := range diagnosis {
		if !models.IsValidOption(models.DiagnosisOptions, code) {
			return invalid("unknown diagnosis code %q", code)
		}
	}
	if totalCost < 0 {
		return invalid("total cost must not be negative")
	}
	if advancePayment < 0 {
		return invalid("advance payment must not be negative")
	}
	return nil
}

// remainingPayment derives the balance owed, clamped at zero.
func remainingPayment(totalCost, advancePayment float64) float64 {
	remaining := totalCost - advancePayment
	if remaining < 0 {
		return 0
	}
	return remaining
}
