package services

import (
	"github.com/google/uuid"

	"servispro-backend/models"
	"servispro-backend/store"
	"servispro-backend/utils"
)

// UserService manages the single shop account.
type UserService struct {
	store store.Store
	clock Clock
}

func NewUserService(s store.Store, clock Clock) *UserService {
	return &UserService{store: s, clock: clock}
}

// Register creates the shop account. The app is single-tenant: once an
// account exists, further registrations are refused.
func (s *UserService) Register(email, phone, name, password string) (*models.User, error) {
	if !utils.ValidateEmail(email) {
		return nil, invalid("invalid email %q", email)
	}
	if len(password) < 8 {
		return nil, invalid("password must be at least 8 characters")
	}

	var users []models.User
	if _, err := s.store.Get(store.Users, &users); err != nil {
		return nil, err
	}
	if len(users) > 0 {
		return nil, conflict("an account already exists")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Phone:        phone,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.store.Set(store.Users, append(users, user)); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials against the stored account. The
// identifier may be the email or the phone number.
func (s *UserService) Authenticate(identifier, password string) (*models.User, error) {
	var users []models.User
	if _, err := s.store.Get(store.Users, &users); err != nil {
		return nil, err
	}
	for i := range users {
		u := &users[i]
		if u.Email == identifier || u.Phone == identifier {
			if utils.CheckPasswordHash(password, u.PasswordHash) {
				return u, nil
			}
			break
		}
	}
	return nil, notFound("invalid credentials")
}

func (s *UserService) Get(id string) (*models.User, error) {
	var users []models.User
	if _, err := s.store.Get(store.Users, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, notFound("user %s", id)
}
