package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

type CreateProjectRequest struct {
	Name    string      `json:"name" validate:"required,max=150"`
	Author  uuid.UUID   `json:"author" validate:"required"`
	UserIDs []uuid.UUID `json:"users,omitempty"`
}

type UpdateProjectRequest struct {
	Name string `json:"name" validate:"required,max=150"`
}

// ProjectListItem is the listing shape: project plus member count
type ProjectListItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	AuthorID   uuid.UUID `json:"author"`
	UsersCount int       `json:"users_count"`
}

func NewProjectList(summaries []domain.ProjectSummary) []ProjectListItem {
	out := make([]ProjectListItem, len(summaries))
	for i, s := range summaries {
		out[i] = ProjectListItem{
			ID:         s.ID,
			Name:       s.Name,
			AuthorID:   s.AuthorID,
			UsersCount: s.UsersCount,
		}
	}
	return out
}

type Project struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	AuthorID  uuid.UUID   `json:"author"`
	UserIDs   []uuid.UUID `json:"users,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewProject(p domain.Project) Project {
	return Project{
		ID:        p.ID,
		Name:      p.Name,
		AuthorID:  p.AuthorID,
		UserIDs:   p.UserIDs,
		CreatedAt: p.CreatedAt,
	}
}
