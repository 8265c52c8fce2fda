package in_mem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/storage"
)

func TestUserStore_CreateAndLookup(t *testing.T) {
	stores := NewStore().Stores()
	ctx := context.Background()

	created, err := stores.Users.Create(ctx, domain.User{
		Email:    "Dev@Corporoom.Io",
		FullName: "Dev One",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "dev@corporoom.io", created.Email, "emails are stored lowercased")
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := stores.Users.GetByEmail(ctx, "DEV@corporoom.io")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = stores.Users.Create(ctx, domain.User{Email: "dev@corporoom.io", FullName: "Dup"})
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestUserStore_ListOrdering(t *testing.T) {
	stores := NewStore().Stores()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@corporoom.io", "b@corporoom.io", "c@corporoom.io"} {
		_, err := stores.Users.Create(ctx, domain.User{
			Email:     email,
			FullName:  email,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	users, err := stores.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c@corporoom.io", users[0].Email, "newest first")
	assert.Equal(t, "a@corporoom.io", users[2].Email)
}

func TestCompanyStore_SubscriptionOverlap(t *testing.T) {
	stores := NewStore().Stores()
	ctx := context.Background()

	company, err := stores.Companies.Create(ctx, domain.Company{Name: "corporoom"})
	require.NoError(t, err)

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	apr := jan.AddDate(0, 3, 0)
	mar := jan.AddDate(0, 2, 0)
	jul := jan.AddDate(0, 6, 0)

	_, err = stores.Companies.AddSubscription(ctx, domain.Subscription{
		CompanyID: company.ID,
		StartDate: jan,
		EndDate:   apr,
	})
	require.NoError(t, err)

	t.Run("overlapping range is rejected", func(t *testing.T) {
		_, err := stores.Companies.AddSubscription(ctx, domain.Subscription{
			CompanyID: company.ID,
			StartDate: mar,
			EndDate:   jul,
		})
		assert.ErrorIs(t, err, storage.ErrSubscriptionOverlap)
	})

	t.Run("adjacent range is accepted", func(t *testing.T) {
		_, err := stores.Companies.AddSubscription(ctx, domain.Subscription{
			CompanyID: company.ID,
			StartDate: apr,
			EndDate:   jul,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := stores.Companies.AddSubscription(ctx, domain.Subscription{
			CompanyID: uuid.New(),
			StartDate: jan,
			EndDate:   apr,
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestProjectStore_Lifecycle(t *testing.T) {
	stores := NewStore().Stores()
	ctx := context.Background()

	author, err := stores.Users.Create(ctx, domain.User{Email: "lead@corporoom.io", FullName: "Lead"})
	require.NoError(t, err)
	member, err := stores.Users.Create(ctx, domain.User{Email: "member@corporoom.io", FullName: "Member"})
	require.NoError(t, err)

	project, err := stores.Projects.Create(ctx, domain.Project{
		Name:     "backend",
		AuthorID: author.ID,
		UserIDs:  []uuid.UUID{author.ID, member.ID},
	})
	require.NoError(t, err)

	summaries, err := stores.Projects.ListSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].UsersCount)

	renamed, err := stores.Projects.Rename(ctx, project.ID, "platform")
	require.NoError(t, err)
	assert.Equal(t, "platform", renamed.Name)

	require.NoError(t, stores.Projects.Delete(ctx, project.ID))
	err = stores.Projects.Delete(ctx, project.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTaskStore_RejectsUnknownReferences(t *testing.T) {
	stores := NewStore().Stores()
	ctx := context.Background()

	author, err := stores.Users.Create(ctx, domain.User{Email: "lead@corporoom.io", FullName: "Lead"})
	require.NoError(t, err)

	t.Run("unknown project", func(t *testing.T) {
		_, err := stores.Tasks.Create(ctx, domain.Task{ProjectID: uuid.New(), Title: "orphan"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	project, err := stores.Projects.Create(ctx, domain.Project{Name: "backend", AuthorID: author.ID})
	require.NoError(t, err)

	t.Run("unknown assignee", func(t *testing.T) {
		ghost := uuid.New()
		_, err := stores.Tasks.Create(ctx, domain.Task{
			ProjectID:  project.ID,
			Title:      "unassignable",
			AssigneeID: &ghost,
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("unknown project author", func(t *testing.T) {
		_, err := stores.Projects.Create(ctx, domain.Project{Name: "stray", AuthorID: uuid.New()})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("unknown project member", func(t *testing.T) {
		_, err := stores.Projects.Create(ctx, domain.Project{
			Name:     "stray",
			AuthorID: author.ID,
			UserIDs:  []uuid.UUID{uuid.New()},
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestTaskStore_UpdatePreservesCreatedAt(t *testing.T) {
	stores := NewStore().Stores()
	ctx := context.Background()

	author, err := stores.Users.Create(ctx, domain.User{Email: "dev@corporoom.io", FullName: "Dev"})
	require.NoError(t, err)
	project, err := stores.Projects.Create(ctx, domain.Project{Name: "docs", AuthorID: author.ID})
	require.NoError(t, err)

	task, err := stores.Tasks.Create(ctx, domain.Task{ProjectID: project.ID, Title: "write docs"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusTodo, task.Status, "status defaults to todo")

	task.Status = domain.TaskStatusDone
	updated, err := stores.Tasks.Update(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)

	var missing domain.Task
	missing.ID = task.ID
	require.NoError(t, stores.Tasks.Delete(ctx, task.ID))
	_, err = stores.Tasks.Update(ctx, missing)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}
