package pg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corporoom/taskhub/internal/domain"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(pool *ConnectionPool) *UserStore {
	return &UserStore{db: pool.conn}
}

func (s *UserStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.Email = strings.ToLower(user.Email)

	cmd := `
		INSERT INTO users (id, email, full_name, password_hash, is_staff, is_active, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '00000000-0000-0000-0000-000000000000'::uuid), $8)
		RETURNING id;
	`
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		user.ID,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.IsStaff,
		user.IsActive,
		user.CompanyID,
		user.CreatedAt,
	).Scan(&id)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to insert user: %w", mapError(err))
	}

	return user, nil
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.get(ctx, "id = $1", id)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.get(ctx, "email = $1", strings.ToLower(email))
}

func (s *UserStore) get(ctx context.Context, where string, arg any) (domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, is_staff, is_active,
		       COALESCE(company_id, '00000000-0000-0000-0000-000000000000'::uuid), created_at
		FROM users
		WHERE ` + where

	var user domain.User
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.IsStaff,
		&user.IsActive,
		&user.CompanyID,
		&user.CreatedAt,
	)
	if err != nil {
		return domain.User{}, mapError(err)
	}
	return user, nil
}

func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, is_staff, is_active,
		       COALESCE(company_id, '00000000-0000-0000-0000-000000000000'::uuid), created_at
		FROM users
		ORDER BY created_at DESC, id DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.FullName,
			&user.PasswordHash,
			&user.IsStaff,
			&user.IsActive,
			&user.CompanyID,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
