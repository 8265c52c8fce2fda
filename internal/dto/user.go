package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

type RegisterUserRequest struct {
	Email     string    `json:"email" validate:"required,email,max=150"`
	FullName  string    `json:"full_name" validate:"required,max=150"`
	Password  string    `json:"password" validate:"required,min=8,max=254"`
	CompanyID uuid.UUID `json:"company_id,omitempty"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsStaff   bool      `json:"is_staff"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(u domain.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		IsStaff:   u.IsStaff,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserList(users []domain.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = NewUser(u)
	}
	return out
}
