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

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, client_id, start_date, expected_end_date, actual_end_date, status, notes, created_at, updated_at`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.ClientID, &rt.StartDate, &rt.ExpectedEndDate, &rt.ActualEndDate,
		&rt.Status, &rt.Notes, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Create persists the rental row and its four child collections. The caller
// is expected to run this inside a unit of work; the inserts themselves do
// not open one.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (client_id, start_date, expected_end_date, status, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, rt.ClientID, rt.StartDate, rt.ExpectedEndDate, rt.Status, rt.Notes, now, now).
		Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return err
	}

	for _, d := range rt.Devices {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO rental_devices (rental_id, device_id) VALUES ($1, $2)`,
			rt.ID, d.DeviceID); err != nil {
			return err
		}
	}
	for _, p := range rt.Products {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO rental_products (rental_id, product_id, quantity) VALUES ($1, $2, $3)`,
			rt.ID, p.ProductID, p.Quantity); err != nil {
			return err
		}
	}
	for _, u := range rt.ProductUnits {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO rental_product_units (rental_id, product_unit_id) VALUES ($1, $2)`,
			rt.ID, u.ProductUnitID); err != nil {
			return err
		}
	}
	for _, cr := range rt.ChipRanges {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO rental_chip_ranges (rental_id, chip_type_id, range_start, range_end) VALUES ($1, $2, $3, $4)`,
			rt.ID, cr.ChipTypeID, cr.RangeStart, cr.RangeEnd); err != nil {
			return err
		}
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetDetail(ctx context.Context, id int64) (*domain.Rental, error) {
	rt, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.expand(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context, f domain.RentalFilter, page, pageSize int) ([]domain.Rental, int, error) {
	where := ` WHERE 1=1`
	var args []any
	if f.Status != nil {
		args = append(args, *f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.ClientID != nil {
		args = append(args, *f.ClientID)
		where += fmt.Sprintf(" AND client_id = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + rentalColumns + ` FROM rentals` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range rentals {
		if err := r.loadChildren(ctx, &rentals[i]); err != nil {
			return nil, 0, err
		}
		if err := r.expand(ctx, &rentals[i]); err != nil {
			return nil, 0, err
		}
	}
	return rentals, total, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET start_date=$1, expected_end_date=$2, actual_end_date=$3, status=$4, notes=$5, updated_at=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, rt.StartDate, rt.ExpectedEndDate, rt.ActualEndDate, rt.Status, rt.Notes, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND expected_end_date < $2 ORDER BY expected_end_date`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusActive, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rentals {
		c, err := scanClient(r.db.QueryRowContext(ctx,
			`SELECT `+clientColumns+` FROM clients WHERE id = $1`, rentals[i].ClientID))
		if err != nil {
			return nil, err
		}
		rentals[i].Client = c
	}
	return rentals, nil
}

// loadChildren fills the four child collections with references only.
func (r *rentalRepository) loadChildren(ctx context.Context, rt *domain.Rental) error {
	rt.Devices = []domain.RentalDevice{}
	rt.Products = []domain.RentalProduct{}
	rt.ProductUnits = []domain.RentalProductUnit{}
	rt.ChipRanges = []domain.RentalChipRange{}

	rows, err := r.db.QueryContext(ctx,
		`SELECT device_id FROM rental_devices WHERE rental_id = $1 ORDER BY device_id`, rt.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var d domain.RentalDevice
		if err := rows.Scan(&d.DeviceID); err != nil {
			return err
		}
		rt.Devices = append(rt.Devices, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT product_id, quantity FROM rental_products WHERE rental_id = $1 ORDER BY product_id`, rt.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.RentalProduct
		if err := rows.Scan(&p.ProductID, &p.Quantity); err != nil {
			return err
		}
		rt.Products = append(rt.Products, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT product_unit_id FROM rental_product_units WHERE rental_id = $1 ORDER BY product_unit_id`, rt.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var u domain.RentalProductUnit
		if err := rows.Scan(&u.ProductUnitID); err != nil {
			return err
		}
		rt.ProductUnits = append(rt.ProductUnits, u)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT chip_type_id, range_start, range_end FROM rental_chip_ranges WHERE rental_id = $1 ORDER BY chip_type_id, range_start`, rt.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cr domain.RentalChipRange
		if err := rows.Scan(&cr.ChipTypeID, &cr.RangeStart, &cr.RangeEnd); err != nil {
			return err
		}
		rt.ChipRanges = append(rt.ChipRanges, cr)
	}
	return rows.Err()
}

// expand attaches the client and the referenced entities to the child
// references previously loaded by loadChildren.
func (r *rentalRepository) expand(ctx context.Context, rt *domain.Rental) error {
	c, err := scanClient(r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, rt.ClientID))
	if err != nil {
		return err
	}
	rt.Client = c

	if len(rt.Devices) > 0 {
		ids := make([]int64, len(rt.Devices))
		for i, d := range rt.Devices {
			ids[i] = d.DeviceID
		}
		devices, err := NewDeviceRepository(r.db).GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[int64]*domain.Device, len(devices))
		for i := range devices {
			byID[devices[i].ID] = &devices[i]
		}
		for i := range rt.Devices {
			rt.Devices[i].Device = byID[rt.Devices[i].DeviceID]
		}
	}

	if len(rt.Products) > 0 {
		for i := range rt.Products {
			p, err := scanProduct(r.db.QueryRowContext(ctx,
				`SELECT `+productColumns+` FROM products WHERE id = $1`, rt.Products[i].ProductID))
			if err != nil {
				return err
			}
			rt.Products[i].Product = p
		}
	}

	if len(rt.ProductUnits) > 0 {
		ids := make([]int64, len(rt.ProductUnits))
		for i, u := range rt.ProductUnits {
			ids[i] = u.ProductUnitID
		}
		units, err := NewProductUnitRepository(r.db).GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[int64]*domain.ProductUnit, len(units))
		for i := range units {
			byID[units[i].ID] = &units[i]
		}
		for i := range rt.ProductUnits {
			rt.ProductUnits[i].ProductUnit = byID[rt.ProductUnits[i].ProductUnitID]
		}
	}

	if len(rt.ChipRanges) > 0 {
		ids := make([]int64, 0, len(rt.ChipRanges))
		seen := make(map[int64]bool)
		for _, cr := range rt.ChipRanges {
			if !seen[cr.ChipTypeID] {
				seen[cr.ChipTypeID] = true
				ids = append(ids, cr.ChipTypeID)
			}
		}
		chipTypes, err := NewChipTypeRepository(r.db).GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[int64]*domain.ChipType, len(chipTypes))
		for i := range chipTypes {
			byID[chipTypes[i].ID] = &chipTypes[i]
		}
		for i := range rt.ChipRanges {
			rt.ChipRanges[i].ChipType = byID[rt.ChipRanges[i].ChipTypeID]
		}
	}
	return nil
}
