package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type productUnitRepository struct {
	db DBTX
}

func NewProductUnitRepository(db DBTX) repository.ProductUnitRepository {
	return &productUnitRepository{db: db}
}

const productUnitColumns = `id, type, serial_number, status, notes, active, created_at, updated_at`

func scanProductUnit(row interface{ Scan(...any) error }) (*domain.ProductUnit, error) {
	u := &domain.ProductUnit{}
	err := row.Scan(&u.ID, &u.Type, &u.SerialNumber, &u.Status, &u.Notes, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *productUnitRepository) Create(ctx context.Context, u *domain.ProductUnit) error {
	query := `INSERT INTO product_units (type, serial_number, status, notes, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, u.Type, u.SerialNumber, u.Status, u.Notes, true, now, now).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err, "product_units_serial_number_key") {
		return domain.ErrSerialNumberExists
	}
	if err == nil {
		u.Active = true
	}
	return err
}

func (r *productUnitRepository) GetByID(ctx context.Context, id int64) (*domain.ProductUnit, error) {
	query := `SELECT ` + productUnitColumns + ` FROM product_units WHERE id = $1`
	u, err := scanProductUnit(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductUnitNotFound
	}
	return u, err
}

func (r *productUnitRepository) GetBySerial(ctx context.Context, serialNumber string) (*domain.ProductUnit, error) {
	query := `SELECT ` + productUnitColumns + ` FROM product_units WHERE serial_number = $1`
	u, err := scanProductUnit(r.db.QueryRowContext(ctx, query, serialNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductUnitNotFound
	}
	return u, err
}

func (r *productUnitRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.ProductUnit, error) {
	query := `SELECT ` + productUnitColumns + ` FROM product_units WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, int64Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.ProductUnit
	for rows.Next() {
		u, err := scanProductUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, *u)
	}
	return units, rows.Err()
}

func (r *productUnitRepository) List(ctx context.Context, f domain.ProductUnitFilter, page, pageSize int) ([]domain.ProductUnit, int, error) {
	where := ` WHERE 1=1`
	var args []any
	if f.Type != nil {
		args = append(args, *f.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		where += fmt.Sprintf(" AND active = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM product_units`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productUnitColumns + ` FROM product_units` + where +
		fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var units []domain.ProductUnit
	for rows.Next() {
		u, err := scanProductUnit(rows)
		if err != nil {
			return nil, 0, err
		}
		units = append(units, *u)
	}
	return units, total, rows.Err()
}

func (r *productUnitRepository) Update(ctx context.Context, u *domain.ProductUnit) error {
	query := `UPDATE product_units SET type=$1, serial_number=$2, status=$3, notes=$4, active=$5, updated_at=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, u.Type, u.SerialNumber, u.Status, u.Notes, u.Active, time.Now(), u.ID)
	if isUniqueViolation(err, "product_units_serial_number_key") {
		return domain.ErrSerialNumberExists
	}
	return err
}

func (r *productUnitRepository) SetStatus(ctx context.Context, ids []int64, status domain.ProductUnitStatus) error {
	query := `UPDATE product_units SET status=$1, updated_at=$2 WHERE id = ANY($3)`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), int64Array(ids))
	return err
}
