package models

import "time"

// User is the single shop account. The app is single-tenant; registration is
// only allowed while the users collection is empty.
//
// The password hash round-trips through the JSON store, so controllers must
// never serialize a User directly in responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
