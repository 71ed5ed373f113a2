package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type chipTypeRepository struct {
	db DBTX
}

func NewChipTypeRepository(db DBTX) repository.ChipTypeRepository {
	return &chipTypeRepository{db: db}
}

// sequence_data is a jsonb column; NULL means no sequence has been uploaded.
func scanChipType(row interface{ Scan(...any) error }) (*domain.ChipType, error) {
	ct := &domain.ChipType{}
	var raw []byte
	err := row.Scan(&ct.ID, &ct.Name, &ct.DisplayName, &ct.TotalStock, &raw, &ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ct.SequenceData); err != nil {
			return nil, err
		}
	}
	return ct, nil
}

func (r *chipTypeRepository) Create(ctx context.Context, ct *domain.ChipType) error {
	query := `INSERT INTO chip_types (name, display_name, total_stock, sequence_data, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	seq, err := marshalSequence(ct.SequenceData)
	if err != nil {
		return err
	}
	now := time.Now()
	err = r.db.QueryRowContext(ctx, query, ct.Name, ct.DisplayName, ct.TotalStock, seq, now, now).
		Scan(&ct.ID, &ct.CreatedAt, &ct.UpdatedAt)
	if isUniqueViolation(err, "chip_types_name_key") {
		return domain.ErrChipTypeNameExists
	}
	return err
}

func (r *chipTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ChipType, error) {
	query := `SELECT id, name, display_name, total_stock, sequence_data, created_at, updated_at
	          FROM chip_types WHERE id = $1`
	ct, err := scanChipType(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrChipTypeNotFound
	}
	return ct, err
}

func (r *chipTypeRepository) GetByName(ctx context.Context, name string) (*domain.ChipType, error) {
	query := `SELECT id, name, display_name, total_stock, sequence_data, created_at, updated_at
	          FROM chip_types WHERE name = $1`
	ct, err := scanChipType(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrChipTypeNotFound
	}
	return ct, err
}

func (r *chipTypeRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.ChipType, error) {
	query := `SELECT id, name, display_name, total_stock, sequence_data, created_at, updated_at
	          FROM chip_types WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, int64Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chipTypes []domain.ChipType
	for rows.Next() {
		ct, err := scanChipType(rows)
		if err != nil {
			return nil, err
		}
		chipTypes = append(chipTypes, *ct)
	}
	return chipTypes, rows.Err()
}

func (r *chipTypeRepository) List(ctx context.Context) ([]domain.ChipType, error) {
	query := `SELECT id, name, display_name, total_stock, created_at, updated_at FROM chip_types ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chipTypes []domain.ChipType
	for rows.Next() {
		var ct domain.ChipType
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.DisplayName, &ct.TotalStock, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
			return nil, err
		}
		chipTypes = append(chipTypes, ct)
	}
	return chipTypes, rows.Err()
}

func (r *chipTypeRepository) Update(ctx context.Context, ct *domain.ChipType) error {
	query := `UPDATE chip_types SET name=$1, display_name=$2, total_stock=$3, updated_at=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, ct.Name, ct.DisplayName, ct.TotalStock, time.Now(), ct.ID)
	if isUniqueViolation(err, "chip_types_name_key") {
		return domain.ErrChipTypeNameExists
	}
	return err
}

func (r *chipTypeRepository) UpdateSequence(ctx context.Context, id int64, sequence []domain.SequenceItem) error {
	seq, err := marshalSequence(sequence)
	if err != nil {
		return err
	}
	query := `UPDATE chip_types SET sequence_data=$1, updated_at=$2 WHERE id=$3`
	_, err = r.db.ExecContext(ctx, query, seq, time.Now(), id)
	return err
}

func (r *chipTypeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM chip_types WHERE id=$1`, id)
	return err
}

func marshalSequence(sequence []domain.SequenceItem) (any, error) {
	if sequence == nil {
		return nil, nil
	}
	return json.Marshal(sequence)
}
