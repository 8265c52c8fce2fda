package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	AuthorID  uuid.UUID   `json:"author_id"`
	UserIDs   []uuid.UUID `json:"user_ids,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// ProjectSummary is a project with its member count, as produced
// by the listing query
type ProjectSummary struct {
	Project
	UsersCount int `json:"users_count"`
}
