package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/repository"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) GetByCodeSportmaniacs(ctx context.Context, code int64) (*domain.Client, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) List(ctx context.Context, active *bool) ([]domain.Client, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

type MockDeviceRepo struct{ mock.Mock }

func (m *MockDeviceRepo) Create(ctx context.Context, device *domain.Device) error {
	return m.Called(ctx, device).Error(0)
}
func (m *MockDeviceRepo) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Device, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) GetByManufactoringCode(ctx context.Context, code string) (*domain.Device, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) GetByReaderSerial(ctx context.Context, serial string) (*domain.Device, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) GetByCPUSerial(ctx context.Context, serial string) (*domain.Device, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) GetByBatterySerial(ctx context.Context, serial string) (*domain.Device, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) List(ctx context.Context, filter domain.DeviceFilter, page, pageSize int) ([]domain.Device, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Device), args.Int(1), args.Error(2)
}
func (m *MockDeviceRepo) Update(ctx context.Context, device *domain.Device) error {
	return m.Called(ctx, device).Error(0)
}
func (m *MockDeviceRepo) SetOperationalStatus(ctx context.Context, ids []int64, status domain.OperationalStatus) error {
	return m.Called(ctx, ids, status).Error(0)
}

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) List(ctx context.Context, filter domain.ProductFilter, page, pageSize int) ([]domain.Product, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}
func (m *MockProductRepo) AddStock(ctx context.Context, id int64, qty int) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepo) Retire(ctx context.Context, id int64, qty int) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepo) SendToRepair(ctx context.Context, id int64, qty int) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepo) MarkRepaired(ctx context.Context, id int64, qty int) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepo) RentQuantity(ctx context.Context, id int64, qty int) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepo) ReturnQuantity(ctx context.Context, id int64, qty int) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}

type MockProductUnitRepo struct{ mock.Mock }

func (m *MockProductUnitRepo) Create(ctx context.Context, unit *domain.ProductUnit) error {
	return m.Called(ctx, unit).Error(0)
}
func (m *MockProductUnitRepo) GetByID(ctx context.Context, id int64) (*domain.ProductUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductUnit), args.Error(1)
}
func (m *MockProductUnitRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.ProductUnit, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductUnit), args.Error(1)
}
func (m *MockProductUnitRepo) GetBySerial(ctx context.Context, serialNumber string) (*domain.ProductUnit, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductUnit), args.Error(1)
}
func (m *MockProductUnitRepo) List(ctx context.Context, filter domain.ProductUnitFilter, page, pageSize int) ([]domain.ProductUnit, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ProductUnit), args.Int(1), args.Error(2)
}
func (m *MockProductUnitRepo) Update(ctx context.Context, unit *domain.ProductUnit) error {
	return m.Called(ctx, unit).Error(0)
}
func (m *MockProductUnitRepo) SetStatus(ctx context.Context, ids []int64, status domain.ProductUnitStatus) error {
	return m.Called(ctx, ids, status).Error(0)
}

type MockChipTypeRepo struct{ mock.Mock }

func (m *MockChipTypeRepo) Create(ctx context.Context, chipType *domain.ChipType) error {
	return m.Called(ctx, chipType).Error(0)
}
func (m *MockChipTypeRepo) GetByID(ctx context.Context, id int64) (*domain.ChipType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChipType), args.Error(1)
}
func (m *MockChipTypeRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.ChipType, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChipType), args.Error(1)
}
func (m *MockChipTypeRepo) GetByName(ctx context.Context, name string) (*domain.ChipType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChipType), args.Error(1)
}
func (m *MockChipTypeRepo) List(ctx context.Context) ([]domain.ChipType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChipType), args.Error(1)
}
func (m *MockChipTypeRepo) Update(ctx context.Context, chipType *domain.ChipType) error {
	return m.Called(ctx, chipType).Error(0)
}
func (m *MockChipTypeRepo) UpdateSequence(ctx context.Context, id int64, sequence []domain.SequenceItem) error {
	return m.Called(ctx, id, sequence).Error(0)
}
func (m *MockChipTypeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetDetail(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, filter domain.RentalFilter, page, pageSize int) ([]domain.Rental, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Rental), args.Int(1), args.Error(2)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockRegistry bundles the repo mocks. WithinTx just runs fn against the
// same registry, which is exactly the join-ambient-transaction behavior of
// the real store.
type MockRegistry struct {
	users        *MockUserRepo
	clients      *MockClientRepo
	devices      *MockDeviceRepo
	products     *MockProductRepo
	productUnits *MockProductUnitRepo
	chipTypes    *MockChipTypeRepo
	rentals      *MockRentalRepo
}

func newMockRegistry() *MockRegistry {
	return &MockRegistry{
		users:        new(MockUserRepo),
		clients:      new(MockClientRepo),
		devices:      new(MockDeviceRepo),
		products:     new(MockProductRepo),
		productUnits: new(MockProductUnitRepo),
		chipTypes:    new(MockChipTypeRepo),
		rentals:      new(MockRentalRepo),
	}
}

func (m *MockRegistry) Users() repository.UserRepository               { return m.users }
func (m *MockRegistry) Clients() repository.ClientRepository           { return m.clients }
func (m *MockRegistry) Devices() repository.DeviceRepository           { return m.devices }
func (m *MockRegistry) Products() repository.ProductRepository         { return m.products }
func (m *MockRegistry) ProductUnits() repository.ProductUnitRepository { return m.productUnits }
func (m *MockRegistry) ChipTypes() repository.ChipTypeRepository       { return m.chipTypes }
func (m *MockRegistry) Rentals() repository.RentalRepository           { return m.rentals }

func (m *MockRegistry) WithinTx(ctx context.Context, fn func(repository.Registry) error) error {
	return fn(m)
}

func (m *MockRegistry) assertExpectations(t mock.TestingT) {
	m.users.AssertExpectations(t)
	m.clients.AssertExpectations(t)
	m.devices.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.productUnits.AssertExpectations(t)
	m.chipTypes.AssertExpectations(t)
	m.rentals.AssertExpectations(t)
}
