package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

type CreateTaskRequest struct {
	ProjectID   uuid.UUID  `json:"project" validate:"required"`
	Title       string     `json:"title" validate:"required,max=150"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *uuid.UUID `json:"assignee,omitempty"`
}

// UpdateTaskRequest carries only the fields to change; nil means keep
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=150"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *uuid.UUID `json:"assignee,omitempty"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	AssigneeID  *uuid.UUID `json:"assignee,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewTask(t domain.Task) Task {
	return Task{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskList(tasks []domain.Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = NewTask(t)
	}
	return out
}

// TaskSearchResult is a task with its search relevance score
type TaskSearchResult struct {
	Task  `json:"task"`
	Score float64 `json:"score"`
}
