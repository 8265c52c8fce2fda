package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corporoom/taskhub/internal/domain"
)

type TaskStore struct {
	db *pgxpool.Pool
}

func NewTaskStore(pool *ConnectionPool) *TaskStore {
	return &TaskStore{db: pool.conn}
}

const taskColumns = `id, project_id, title, description, status, assignee_id, created_at, updated_at`

func (s *TaskStore) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
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

	cmd := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		task.ID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.Status,
		task.AssigneeID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to insert task: %w", mapError(err))
	}

	return task, nil
}

func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Task{}, mapError(err)
	}
	return task, nil
}

func (s *TaskStore) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.UpdatedAt = time.Now()

	cmd := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, assignee_id = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + taskColumns

	updated, err := scanTask(s.db.QueryRow(
		ctx,
		cmd,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.AssigneeID,
		task.UpdatedAt,
	))
	if err != nil {
		return domain.Task{}, mapError(err)
	}
	return updated, nil
}

func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.AssigneeID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	return task, err
}
