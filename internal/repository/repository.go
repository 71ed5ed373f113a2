package repository

import (
	"context"
	"time"

	"timing-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByCodeSportmaniacs(ctx context.Context, code int64) (*domain.Client, error)
	// List returns all clients, or only those matching the active flag when
	// it is non-nil.
	List(ctx context.Context, active *bool) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Device, error)
	GetByManufactoringCode(ctx context.Context, code string) (*domain.Device, error)
	GetByReaderSerial(ctx context.Context, serial string) (*domain.Device, error)
	GetByCPUSerial(ctx context.Context, serial string) (*domain.Device, error)
	GetByBatterySerial(ctx context.Context, serial string) (*domain.Device, error)
	List(ctx context.Context, filter domain.DeviceFilter, page, pageSize int) ([]domain.Device, int, error)
	Update(ctx context.Context, device *domain.Device) error
	SetOperationalStatus(ctx context.Context, ids []int64, status domain.OperationalStatus) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, page, pageSize int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error

	// Conditional single-statement bucket transfers. Each returns false when
	// the guard (source bucket >= qty) did not hold or the product does not
	// exist; the caller distinguishes the two.
	AddStock(ctx context.Context, id int64, qty int) (bool, error)
	Retire(ctx context.Context, id int64, qty int) (bool, error)
	SendToRepair(ctx context.Context, id int64, qty int) (bool, error)
	MarkRepaired(ctx context.Context, id int64, qty int) (bool, error)
	RentQuantity(ctx context.Context, id int64, qty int) (bool, error)
	ReturnQuantity(ctx context.Context, id int64, qty int) (bool, error)
}

type ProductUnitRepository interface {
	Create(ctx context.Context, unit *domain.ProductUnit) error
	GetByID(ctx context.Context, id int64) (*domain.ProductUnit, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.ProductUnit, error)
	GetBySerial(ctx context.Context, serialNumber string) (*domain.ProductUnit, error)
	List(ctx context.Context, filter domain.ProductUnitFilter, page, pageSize int) ([]domain.ProductUnit, int, error)
	Update(ctx context.Context, unit *domain.ProductUnit) error
	SetStatus(ctx context.Context, ids []int64, status domain.ProductUnitStatus) error
}

type ChipTypeRepository interface {
	Create(ctx context.Context, chipType *domain.ChipType) error
	GetByID(ctx context.Context, id int64) (*domain.ChipType, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.ChipType, error)
	GetByName(ctx context.Context, name string) (*domain.ChipType, error)
	// List omits sequence data; the tables can hold tens of thousands of rows.
	List(ctx context.Context) ([]domain.ChipType, error)
	Update(ctx context.Context, chipType *domain.ChipType) error
	UpdateSequence(ctx context.Context, id int64, sequence []domain.SequenceItem) error
	Delete(ctx context.Context, id int64) error
}

type RentalRepository interface {
	// Create persists the rental and all four child collections.
	Create(ctx context.Context, rental *domain.Rental) error
	// GetByID loads the rental with child references (no relation expansion).
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	// GetDetail additionally expands the client and every child entity.
	GetDetail(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, filter domain.RentalFilter, page, pageSize int) ([]domain.Rental, int, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// ListOverdue returns ACTIVE rentals whose expected end date is before asOf,
	// with the client expanded.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
}

// Registry bundles every repository bound to one data source. WithinTx is
// the unit-of-work primitive of the rental engine: fn receives a Registry
// whose repositories all share one serializable transaction; the transaction
// commits when fn returns nil and rolls back otherwise, so a failed
// validation leaves every table untouched.
type Registry interface {
	Users() UserRepository
	Clients() ClientRepository
	Devices() DeviceRepository
	Products() ProductRepository
	ProductUnits() ProductUnitRepository
	ChipTypes() ChipTypeRepository
	Rentals() RentalRepository
	WithinTx(ctx context.Context, fn func(Registry) error) error
}
