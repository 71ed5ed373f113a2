package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type clientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) repository.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, name, code_sportmaniacs, email, phone, notes, active, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*domain.Client, error) {
	c := &domain.Client{}
	err := row.Scan(&c.ID, &c.Name, &c.CodeSportmaniacs, &c.Email, &c.Phone, &c.Notes, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, code_sportmaniacs, email, phone, notes, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, c.Name, c.CodeSportmaniacs, c.Email, c.Phone, c.Notes, true, now, now).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err, "clients_code_sportmaniacs_key") {
		return domain.ErrCodeSportmaniacsExists
	}
	if err == nil {
		c.Active = true
	}
	return err
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	return c, err
}

func (r *clientRepository) GetByCodeSportmaniacs(ctx context.Context, code int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE code_sportmaniacs = $1`
	c, err := scanClient(r.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	return c, err
}

func (r *clientRepository) List(ctx context.Context, active *bool) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	var args []any
	if active != nil {
		query += ` WHERE active = $1`
		args = append(args, *active)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, code_sportmaniacs=$2, email=$3, phone=$4, notes=$5, active=$6, updated_at=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.CodeSportmaniacs, c.Email, c.Phone, c.Notes, c.Active, time.Now(), c.ID)
	if isUniqueViolation(err, "clients_code_sportmaniacs_key") {
		return domain.ErrCodeSportmaniacsExists
	}
	return err
}
