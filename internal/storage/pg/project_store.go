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

type ProjectStore struct {
	db *pgxpool.Pool
}

func NewProjectStore(pool *ConnectionPool) *ProjectStore {
	return &ProjectStore{db: pool.conn}
}

func (s *ProjectStore) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.Project{}, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd := `
		INSERT INTO projects (id, name, author_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	var id uuid.UUID
	if err := tx.QueryRow(ctx, cmd, project.ID, project.Name, project.AuthorID, project.CreatedAt).Scan(&id); err != nil {
		return domain.Project{}, fmt.Errorf("failed to insert project: %w", mapError(err))
	}

	if len(project.UserIDs) > 0 {
		rows := make([][]any, len(project.UserIDs))
		for i, userID := range project.UserIDs {
			rows[i] = []any{project.ID, userID}
		}
		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"project_users"},
			[]string{"project_id", "user_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return domain.Project{}, fmt.Errorf("failed to attach project users: %w", mapError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, fmt.Errorf("failed to commit project: %w", err)
	}

	return project, nil
}

func (s *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	query := `
		SELECT p.id, p.name, p.author_id, p.created_at,
		       COALESCE(array_agg(pu.user_id) FILTER (WHERE pu.user_id IS NOT NULL), '{}')
		FROM projects p
		LEFT JOIN project_users pu ON pu.project_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`
	var project domain.Project
	err := s.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.AuthorID,
		&project.CreatedAt,
		&project.UserIDs,
	)
	if err != nil {
		return domain.Project{}, mapError(err)
	}
	return project, nil
}

func (s *ProjectStore) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Project, error) {
	cmd := `UPDATE projects SET name = $2 WHERE id = $1 RETURNING id`

	var updated uuid.UUID
	if err := s.db.QueryRow(ctx, cmd, id, name).Scan(&updated); err != nil {
		return domain.Project{}, mapError(err)
	}

	return s.GetByID(ctx, id)
}

func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows)
	}
	return nil
}

func (s *ProjectStore) ListSummaries(ctx context.Context) ([]domain.ProjectSummary, error) {
	query := `
		SELECT p.id, p.name, p.author_id, p.created_at,
		       COUNT(DISTINCT pu.user_id) AS users_count
		FROM projects p
		LEFT JOIN project_users pu ON pu.project_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []domain.ProjectSummary
	for rows.Next() {
		var summary domain.ProjectSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.AuthorID,
			&summary.CreatedAt,
			&summary.UsersCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
