package store

import "errors"

// Collection names used by the services layer.
const (
	Devices       = "devices"
	Customers     = "customers"
	Expenses      = "expenses"
	Settings      = "settings"
	EmailConfig   = "emailConfig"
	Notifications = "notifications"
	Users         = "users"
)

// ErrUnavailable wraps any underlying storage failure so callers can match
// it without knowing which backend is in use.
var ErrUnavailable = errors.New("record store unavailable")

// Store holds named collections and reads/writes them whole: Set fully
// replaces the previous value, there is no row-level access. Get into a
// missing collection leaves dest untouched and returns found=false rather
// than an error, so read paths stay resilient.
type Store interface {
	Get(name string, dest any) (found bool, err error)
	Set(name string, value any) error
	Remove(name string) error

	// NextSequence increments and returns the named monotonic counter.
	// Sequences survive record deletion, so identifiers derived from them
	// are never reused.
	NextSequence(name string) (int64, error)
}
