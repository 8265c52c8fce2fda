package domain

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription grants a company access for a date range.
// Ranges are half-open [StartDate, EndDate) and must not overlap
// for the same company.
type Subscription struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Overlaps reports whether two half-open date ranges intersect
func (s Subscription) Overlaps(other Subscription) bool {
	return s.StartDate.Before(other.EndDate) && other.StartDate.Before(s.EndDate)
}
