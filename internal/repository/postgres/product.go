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

type productRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, type, description, notes, total_quantity, available_quantity,
	rented_quantity, in_repair_quantity, active, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Description, &p.Notes, &p.TotalQuantity,
		&p.AvailableQuantity, &p.RentedQuantity, &p.InRepairQuantity, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (name, type, description, notes, total_quantity, available_quantity,
	            rented_quantity, in_repair_quantity, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $7, $8, $9) RETURNING id, created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Type, p.Description, p.Notes,
		p.TotalQuantity, p.AvailableQuantity, true, now, now).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err == nil {
		p.Active = true
	}
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	return p, err
}

func (r *productRepository) List(ctx context.Context, f domain.ProductFilter, page, pageSize int) ([]domain.Product, int, error) {
	where := ` WHERE 1=1`
	var args []any
	if f.Type != nil {
		args = append(args, *f.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		where += fmt.Sprintf(" AND active = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + where +
		fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, type=$2, description=$3, notes=$4, total_quantity=$5,
	            available_quantity=$6, rented_quantity=$7, in_repair_quantity=$8, active=$9, updated_at=$10
	          WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Type, p.Description, p.Notes, p.TotalQuantity,
		p.AvailableQuantity, p.RentedQuantity, p.InRepairQuantity, p.Active, time.Now(), p.ID)
	return err
}

// transfer executes one conditional bucket movement. The guard lives in the
// WHERE clause so the check and the write are a single statement; zero rows
// affected means the guard failed or the row does not exist.
func (r *productRepository) transfer(ctx context.Context, set, guard string, id int64, qty int) (bool, error) {
	query := `UPDATE products SET ` + set + `, updated_at=$3 WHERE id = $1` + guard
	res, err := r.db.ExecContext(ctx, query, id, qty, time.Now())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *productRepository) AddStock(ctx context.Context, id int64, qty int) (bool, error) {
	return r.transfer(ctx,
		`total_quantity = total_quantity + $2, available_quantity = available_quantity + $2`,
		``, id, qty)
}

func (r *productRepository) Retire(ctx context.Context, id int64, qty int) (bool, error) {
	return r.transfer(ctx,
		`total_quantity = total_quantity - $2, available_quantity = available_quantity - $2`,
		` AND available_quantity >= $2`, id, qty)
}

func (r *productRepository) SendToRepair(ctx context.Context, id int64, qty int) (bool, error) {
	return r.transfer(ctx,
		`available_quantity = available_quantity - $2, in_repair_quantity = in_repair_quantity + $2`,
		` AND available_quantity >= $2`, id, qty)
}

func (r *productRepository) MarkRepaired(ctx context.Context, id int64, qty int) (bool, error) {
	return r.transfer(ctx,
		`in_repair_quantity = in_repair_quantity - $2, available_quantity = available_quantity + $2`,
		` AND in_repair_quantity >= $2`, id, qty)
}

func (r *productRepository) RentQuantity(ctx context.Context, id int64, qty int) (bool, error) {
	return r.transfer(ctx,
		`available_quantity = available_quantity - $2, rented_quantity = rented_quantity + $2`,
		` AND available_quantity >= $2`, id, qty)
}

func (r *productRepository) ReturnQuantity(ctx context.Context, id int64, qty int) (bool, error) {
	return r.transfer(ctx,
		`rented_quantity = rented_quantity - $2, available_quantity = available_quantity + $2`,
		` AND rented_quantity >= $2`, id, qty)
}
