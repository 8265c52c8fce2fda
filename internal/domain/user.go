package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmailMaxLength    = 150
	FullNameMaxLength = 150
)

// User is an account that can authenticate against the API.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	// PasswordHash is the bcrypt hash, never the raw password
	PasswordHash string `json:"-"`
	// IsStaff is true for team members with access to administrative endpoints
	IsStaff bool `json:"is_staff"`
	// IsActive is false for accounts that may no longer make requests
	IsActive  bool      `json:"is_active"`
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
