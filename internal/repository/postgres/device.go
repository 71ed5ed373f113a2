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

type deviceRepository struct {
	db DBTX
}

func NewDeviceRepository(db DBTX) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

const deviceColumns = `id, model, manufactoring_code, manufactoring_status, operational_status,
	available_for_rental, serial_number, port_count, frequency_region, manufacturing_date, notes,
	owner_id, reader1_serial_number, reader2_serial_number, cpu_serial_number, battery_serial_number,
	ts_power_model, cpu_firmware, gx1_readers_region, has_gsm, has_gun,
	bluetooth_adapter, core_version, heatsinks, pic_version, created_at, updated_at`

func scanDevice(row interface{ Scan(...any) error }) (*domain.Device, error) {
	d := &domain.Device{}
	err := row.Scan(
		&d.ID, &d.Model, &d.ManufactoringCode, &d.ManufactoringStatus, &d.OperationalStatus,
		&d.AvailableForRental, &d.SerialNumber, &d.PortCount, &d.FrequencyRegion, &d.ManufacturingDate, &d.Notes,
		&d.OwnerID, &d.Reader1SerialNumber, &d.Reader2SerialNumber, &d.CPUSerialNumber, &d.BatterySerialNumber,
		&d.TSPowerModel, &d.CPUFirmware, &d.GX1ReadersRegion, &d.HasGSM, &d.HasGUN,
		&d.BluetoothAdapter, &d.CoreVersion, &d.Heatsinks, &d.PICVersion, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *deviceRepository) Create(ctx context.Context, d *domain.Device) error {
	query := `INSERT INTO devices (model, manufactoring_code, manufactoring_status, operational_status,
	            available_for_rental, serial_number, port_count, frequency_region, manufacturing_date, notes,
	            owner_id, reader1_serial_number, reader2_serial_number, cpu_serial_number, battery_serial_number,
	            ts_power_model, cpu_firmware, gx1_readers_region, has_gsm, has_gun,
	            bluetooth_adapter, core_version, heatsinks, pic_version, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	          RETURNING id, created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		d.Model, d.ManufactoringCode, d.ManufactoringStatus, d.OperationalStatus,
		d.AvailableForRental, d.SerialNumber, d.PortCount, d.FrequencyRegion, d.ManufacturingDate, d.Notes,
		d.OwnerID, d.Reader1SerialNumber, d.Reader2SerialNumber, d.CPUSerialNumber, d.BatterySerialNumber,
		d.TSPowerModel, d.CPUFirmware, d.GX1ReadersRegion, d.HasGSM, d.HasGUN,
		d.BluetoothAdapter, d.CoreVersion, d.Heatsinks, d.PICVersion, now, now,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if isUniqueViolation(err, "devices_manufactoring_code_key") {
		return domain.ErrManufactoringCodeExists
	}
	return err
}

func (r *deviceRepository) getOne(ctx context.Context, where string, args ...any) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE ` + where
	d, err := scanDevice(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDeviceNotFound
	}
	return d, err
}

func (r *deviceRepository) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	return r.getOne(ctx, `id = $1`, id)
}

func (r *deviceRepository) GetByManufactoringCode(ctx context.Context, code string) (*domain.Device, error) {
	return r.getOne(ctx, `manufactoring_code = $1`, code)
}

func (r *deviceRepository) GetByReaderSerial(ctx context.Context, serial string) (*domain.Device, error) {
	return r.getOne(ctx, `(reader1_serial_number = $1 OR reader2_serial_number = $1)`, serial)
}

func (r *deviceRepository) GetByCPUSerial(ctx context.Context, serial string) (*domain.Device, error) {
	return r.getOne(ctx, `cpu_serial_number = $1`, serial)
}

func (r *deviceRepository) GetByBatterySerial(ctx context.Context, serial string) (*domain.Device, error) {
	return r.getOne(ctx, `battery_serial_number = $1`, serial)
}

func (r *deviceRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, int64Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, *d)
	}
	return devices, rows.Err()
}

func (r *deviceRepository) List(ctx context.Context, f domain.DeviceFilter, page, pageSize int) ([]domain.Device, int, error) {
	where := ` WHERE 1=1`
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		where += fmt.Sprintf(" AND %s = $%d", cond, len(args))
	}
	if f.Model != nil {
		add("model", *f.Model)
	}
	if f.ManufactoringStatus != nil {
		add("manufactoring_status", *f.ManufactoringStatus)
	}
	if f.OperationalStatus != nil {
		add("operational_status", *f.OperationalStatus)
	}
	if f.AvailableForRental != nil {
		add("available_for_rental", *f.AvailableForRental)
	}
	if f.OwnerID != nil {
		add("owner_id", *f.OwnerID)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM devices`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + deviceColumns + ` FROM devices` + where +
		fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, 0, err
		}
		devices = append(devices, *d)
	}
	return devices, total, rows.Err()
}

func (r *deviceRepository) Update(ctx context.Context, d *domain.Device) error {
	query := `UPDATE devices SET model=$1, manufactoring_code=$2, manufactoring_status=$3, operational_status=$4,
	            available_for_rental=$5, serial_number=$6, port_count=$7, frequency_region=$8, manufacturing_date=$9,
	            notes=$10, owner_id=$11, reader1_serial_number=$12, reader2_serial_number=$13, cpu_serial_number=$14,
	            battery_serial_number=$15, ts_power_model=$16, cpu_firmware=$17, gx1_readers_region=$18,
	            has_gsm=$19, has_gun=$20, bluetooth_adapter=$21, core_version=$22, heatsinks=$23, pic_version=$24,
	            updated_at=$25
	          WHERE id=$26`
	_, err := r.db.ExecContext(ctx, query,
		d.Model, d.ManufactoringCode, d.ManufactoringStatus, d.OperationalStatus,
		d.AvailableForRental, d.SerialNumber, d.PortCount, d.FrequencyRegion, d.ManufacturingDate,
		d.Notes, d.OwnerID, d.Reader1SerialNumber, d.Reader2SerialNumber, d.CPUSerialNumber,
		d.BatterySerialNumber, d.TSPowerModel, d.CPUFirmware, d.GX1ReadersRegion,
		d.HasGSM, d.HasGUN, d.BluetoothAdapter, d.CoreVersion, d.Heatsinks, d.PICVersion,
		time.Now(), d.ID,
	)
	if isUniqueViolation(err, "devices_manufactoring_code_key") {
		return domain.ErrManufactoringCodeExists
	}
	return err
}

func (r *deviceRepository) SetOperationalStatus(ctx context.Context, ids []int64, status domain.OperationalStatus) error {
	query := `UPDATE devices SET operational_status=$1, updated_at=$2 WHERE id = ANY($3)`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), int64Array(ids))
	return err
}
