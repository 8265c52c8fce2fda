// Package in_mem backs every store with process-local maps.
// Used by tests and by STORAGE_TYPE=in_mem for local development.
package in_mem

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/storage"
)

// Store holds all aggregates behind a single lock; per-aggregate views
// created by Stores() implement the storage interfaces.
type Store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]domain.User
	companies     map[uuid.UUID]domain.Company
	subscriptions map[uuid.UUID][]domain.Subscription
	projects      map[uuid.UUID]domain.Project
	tasks         map[uuid.UUID]domain.Task
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]domain.User),
		companies:     make(map[uuid.UUID]domain.Company),
		subscriptions: make(map[uuid.UUID][]domain.Subscription),
		projects:      make(map[uuid.UUID]domain.Project),
		tasks:         make(map[uuid.UUID]domain.Task),
	}
}

func (s *Store) Stores() *storage.Stores {
	return storage.NewStores(
		&userStore{s},
		&companyStore{s},
		&projectStore{s},
		&taskStore{s},
		nil,
	)
}

type userStore struct{ s *Store }

func (u *userStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return domain.User{}, storage.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	u.s.users[user.ID] = user
	return user, nil
}

func (u *userStore) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.users[id]
	if !ok {
		return domain.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (u *userStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range u.s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, storage.ErrNotFound
}

func (u *userStore) List(ctx context.Context) ([]domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	users := make([]domain.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return newerFirst(users[i].CreatedAt, users[i].ID, users[j].CreatedAt, users[j].ID)
	})
	return users, nil
}

type companyStore struct{ s *Store }

func (c *companyStore) Create(ctx context.Context, company domain.Company) (domain.Company, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}

	c.s.companies[company.ID] = company
	return company, nil
}

func (c *companyStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	company, ok := c.s.companies[id]
	if !ok {
		return domain.Company{}, storage.ErrNotFound
	}
	return company, nil
}

func (c *companyStore) List(ctx context.Context) ([]domain.Company, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	companies := make([]domain.Company, 0, len(c.s.companies))
	for _, company := range c.s.companies {
		companies = append(companies, company)
	}
	sort.Slice(companies, func(i, j int) bool {
		return newerFirst(companies[i].CreatedAt, companies[i].ID, companies[j].CreatedAt, companies[j].ID)
	})
	return companies, nil
}

func (c *companyStore) AddSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.companies[sub.CompanyID]; !ok {
		return domain.Subscription{}, storage.ErrNotFound
	}
	for _, existing := range c.s.subscriptions[sub.CompanyID] {
		if sub.Overlaps(existing) {
			return domain.Subscription{}, storage.ErrSubscriptionOverlap
		}
	}

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	c.s.subscriptions[sub.CompanyID] = append(c.s.subscriptions[sub.CompanyID], sub)
	return sub, nil
}

type projectStore struct{ s *Store }

func (p *projectStore) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	// the relational backend enforces these references with foreign keys
	if _, ok := p.s.users[project.AuthorID]; !ok {
		return domain.Project{}, storage.ErrNotFound
	}
	for _, userID := range project.UserIDs {
		if _, ok := p.s.users[userID]; !ok {
			return domain.Project{}, storage.ErrNotFound
		}
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}

	p.s.projects[project.ID] = project
	return project, nil
}

func (p *projectStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	project, ok := p.s.projects[id]
	if !ok {
		return domain.Project{}, storage.ErrNotFound
	}
	return project, nil
}

func (p *projectStore) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Project, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	project, ok := p.s.projects[id]
	if !ok {
		return domain.Project{}, storage.ErrNotFound
	}
	project.Name = name
	p.s.projects[id] = project
	return project, nil
}

func (p *projectStore) Delete(ctx context.Context, id uuid.UUID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.projects[id]; !ok {
		return storage.ErrNotFound
	}
	delete(p.s.projects, id)
	return nil
}

func (p *projectStore) ListSummaries(ctx context.Context) ([]domain.ProjectSummary, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	summaries := make([]domain.ProjectSummary, 0, len(p.s.projects))
	for _, project := range p.s.projects {
		summaries = append(summaries, domain.ProjectSummary{
			Project:    project,
			UsersCount: len(project.UserIDs),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return newerFirst(summaries[i].CreatedAt, summaries[i].ID, summaries[j].CreatedAt, summaries[j].ID)
	})
	return summaries, nil
}

type taskStore struct{ s *Store }

func (t *taskStore) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.projects[task.ProjectID]; !ok {
		return domain.Task{}, storage.ErrNotFound
	}
	if task.AssigneeID != nil {
		if _, ok := t.s.users[*task.AssigneeID]; !ok {
			return domain.Task{}, storage.ErrNotFound
		}
	}

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	t.s.tasks[task.ID] = task
	return task, nil
}

func (t *taskStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	task, ok := t.s.tasks[id]
	if !ok {
		return domain.Task{}, storage.ErrNotFound
	}
	return task, nil
}

func (t *taskStore) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	existing, ok := t.s.tasks[task.ID]
	if !ok {
		return domain.Task{}, storage.ErrNotFound
	}
	if task.AssigneeID != nil {
		if _, ok := t.s.users[*task.AssigneeID]; !ok {
			return domain.Task{}, storage.ErrNotFound
		}
	}
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now()
	t.s.tasks[task.ID] = task
	return task, nil
}

func (t *taskStore) Delete(ctx context.Context, id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(t.s.tasks, id)
	return nil
}

func (t *taskStore) List(ctx context.Context) ([]domain.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(t.s.tasks))
	for _, task := range t.s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return newerFirst(tasks[i].CreatedAt, tasks[i].ID, tasks[j].CreatedAt, tasks[j].ID)
	})
	return tasks, nil
}

// newerFirst orders by created_at DESC with the ID as a deterministic tiebreak
func newerFirst(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID.String() > bID.String()
}
