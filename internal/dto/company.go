package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

type CreateSubscriptionRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCompany(c domain.Company) Company {
	return Company{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func NewCompanyList(companies []domain.Company) []Company {
	out := make([]Company, len(companies))
	for i, c := range companies {
		out[i] = NewCompany(c)
	}
	return out
}

type Subscription struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func NewSubscription(s domain.Subscription) Subscription {
	return Subscription{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
	}
}
