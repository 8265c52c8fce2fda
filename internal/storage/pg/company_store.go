package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corporoom/taskhub/internal/domain"
)

type CompanyStore struct {
	db *pgxpool.Pool
}

func NewCompanyStore(pool *ConnectionPool) *CompanyStore {
	return &CompanyStore{db: pool.conn}
}

func (s *CompanyStore) Create(ctx context.Context, company domain.Company) (domain.Company, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}

	cmd := `
		INSERT INTO companies (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var id uuid.UUID
	if err := s.db.QueryRow(ctx, cmd, company.ID, company.Name, company.CreatedAt).Scan(&id); err != nil {
		return domain.Company{}, fmt.Errorf("failed to insert company: %w", mapError(err))
	}

	return company, nil
}

func (s *CompanyStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	query := `SELECT id, name, created_at FROM companies WHERE id = $1`

	var company domain.Company
	err := s.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.CreatedAt)
	if err != nil {
		return domain.Company{}, mapError(err)
	}
	return company, nil
}

func (s *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, created_at FROM companies ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

// AddSubscription relies on the exclusion constraint in the schema to
// reject overlapping date ranges for the same company.
func (s *CompanyStore) AddSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	cmd := `
		INSERT INTO subscriptions (id, company_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id uuid.UUID
	err := s.db.QueryRow(ctx, cmd, sub.ID, sub.CompanyID, sub.StartDate, sub.EndDate, sub.CreatedAt).Scan(&id)
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to insert subscription: %w", mapError(err))
	}

	return sub, nil
}
