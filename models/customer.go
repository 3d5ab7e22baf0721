package models

import "time"

// Customer is a person/account that owns one or more devices. DeviceCount and
// LastServiceDate are denormalized on device create/delete.
type Customer struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	TcNo            string     `json:"tcNo"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email,omitempty"`
	Address         string     `json:"address"`
	DeviceCount     int        `json:"deviceCount"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
