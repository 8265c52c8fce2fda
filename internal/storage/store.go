package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrSubscriptionOverlap = errors.New("subscription overlaps an existing one")
)

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

// List methods return the full collection ordered by created_at DESC, id DESC;
// pagination happens above this layer.

type UserStore interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type CompanyStore interface {
	Create(ctx context.Context, company domain.Company) (domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	// AddSubscription fails with ErrSubscriptionOverlap when the date range
	// intersects an existing subscription of the same company
	AddSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error)
}

type ProjectStore interface {
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListSummaries returns projects annotated with their member counts
	ListSummaries(ctx context.Context) ([]domain.ProjectSummary, error)
}

type TaskStore interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Task, error)
}

// Stores bundles every aggregate store behind one backend
type Stores struct {
	Users     UserStore
	Companies CompanyStore
	Projects  ProjectStore
	Tasks     TaskStore

	closeFn func()
	pingFn  func(ctx context.Context) error
}

func NewStores(users UserStore, companies CompanyStore, projects ProjectStore, tasks TaskStore, closeFn func()) *Stores {
	return &Stores{
		Users:     users,
		Companies: companies,
		Projects:  projects,
		Tasks:     tasks,
		closeFn:   closeFn,
	}
}

// WithPing attaches a backend liveness probe used by health checks
func (s *Stores) WithPing(fn func(ctx context.Context) error) *Stores {
	s.pingFn = fn
	return s
}

// Ping probes the backend; backends without a probe are always healthy
func (s *Stores) Ping(ctx context.Context) error {
	if s.pingFn == nil {
		return nil
	}
	return s.pingFn(ctx)
}

func (s *Stores) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}
