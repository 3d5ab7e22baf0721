package models

import "time"

// Device status values. There is no enforced transition graph; any status
// may be set from any other via update.
const (
	StatusPending     = "pending"
	StatusDiagnosing  = "diagnosing"
	StatusRepairing   = "repairing"
	StatusWaitingPart = "waiting_part"
	StatusCompleted   = "completed"
	StatusDelivered   = "delivered"
	StatusCancelled   = "cancelled"
)

// Device is a laptop repair intake record, the dominant entity of the domain.
type Device struct {
	ID                 string     `json:"id"`
	RegistrationNumber string     `json:"registrationNumber"`
	CustomerID         string     `json:"customerId,omitempty"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	CustomerEmail      string     `json:"customerEmail,omitempty"`
	TcNo               string     `json:"tcNo,omitempty"`
	Brand              string     `json:"brand"`
	CustomBrand        string     `json:"customBrand,omitempty"`
	Model              string     `json:"model"`
	SerialNumber       string     `json:"serialNumber"`
	CustomerComplaint  string     `json:"customerComplaint"`
	Diagnosis          []string   `json:"diagnosis"`
	CustomDiagnosis    string     `json:"customDiagnosis,omitempty"`
	DeviceStatus       string     `json:"deviceStatus"`
	TotalCost          float64    `json:"totalCost"`
	AdvancePayment     float64    `json:"advancePayment"`
	RemainingPayment   float64    `json:"remainingPayment"`
	Notes              string     `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}
