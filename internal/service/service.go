package service

import (
	"context"
	"io"
	"time"

	"timing-rental-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, access token
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	SetPassword(ctx context.Context, id int64, newPassword string) error
	// Deactivate soft-deletes the account; the row and its audit trail stay.
	Deactivate(ctx context.Context, id int64) (*domain.User, error)
}

type ClientService interface {
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	GetBySportmaniacsCode(ctx context.Context, code int64) (*domain.Client, error)
	// List filters by "true", "false" or "all".
	List(ctx context.Context, active string) ([]domain.Client, error)
	Update(ctx context.Context, id int64, input ClientInput) (*domain.Client, error)
	Deactivate(ctx context.Context, id int64) (*domain.Client, error)
	Reactivate(ctx context.Context, id int64) (*domain.Client, error)
}

type DeviceService interface {
	Create(ctx context.Context, input DeviceInput) (*domain.Device, error)
	Get(ctx context.Context, id int64) (*domain.Device, error)
	GetByReaderSerial(ctx context.Context, serial string) (*domain.Device, error)
	GetByCPUSerial(ctx context.Context, serial string) (*domain.Device, error)
	GetByBatterySerial(ctx context.Context, serial string) (*domain.Device, error)
	List(ctx context.Context, filter domain.DeviceFilter, page, pageSize int) ([]domain.Device, int, error)
	Update(ctx context.Context, id int64, input DeviceInput) (*domain.Device, error)
	SetManufactoringStatus(ctx context.Context, id int64, status domain.ManufactoringStatus) (*domain.Device, error)
	SetOperationalStatus(ctx context.Context, id int64, status domain.OperationalStatus) (*domain.Device, error)
	AssignOwner(ctx context.Context, id int64, ownerID *int64) (*domain.Device, error)
	// Retire marks the device RETIRED; devices are never physically removed.
	Retire(ctx context.Context, id int64) (*domain.Device, error)
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, page, pageSize int) ([]domain.Product, int, error)
	Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
	Deactivate(ctx context.Context, id int64) (*domain.Product, error)
	Reactivate(ctx context.Context, id int64) (*domain.Product, error)

	// Quantity ledger: each call is one conditional transfer between two of
	// the four buckets.
	AddStock(ctx context.Context, id int64, qty int) (*domain.Product, error)
	Retire(ctx context.Context, id int64, qty int) (*domain.Product, error)
	SendToRepair(ctx context.Context, id int64, qty int) (*domain.Product, error)
	MarkRepaired(ctx context.Context, id int64, qty int) (*domain.Product, error)
}

type ProductUnitService interface {
	Create(ctx context.Context, input ProductUnitInput) (*domain.ProductUnit, error)
	Get(ctx context.Context, id int64) (*domain.ProductUnit, error)
	GetBySerial(ctx context.Context, serialNumber string) (*domain.ProductUnit, error)
	List(ctx context.Context, filter domain.ProductUnitFilter, page, pageSize int) ([]domain.ProductUnit, int, error)
	Update(ctx context.Context, id int64, input ProductUnitInput) (*domain.ProductUnit, error)
	SetStatus(ctx context.Context, id int64, status domain.ProductUnitStatus) (*domain.ProductUnit, error)
	Deactivate(ctx context.Context, id int64) (*domain.ProductUnit, error)
	Reactivate(ctx context.Context, id int64) (*domain.ProductUnit, error)
}

type ChipTypeService interface {
	Create(ctx context.Context, input ChipTypeInput) (*domain.ChipType, error)
	Get(ctx context.Context, id int64) (*domain.ChipType, error)
	List(ctx context.Context) ([]domain.ChipType, error)
	Update(ctx context.Context, id int64, input ChipTypeInput) (*domain.ChipType, error)
	Delete(ctx context.Context, id int64) error
	// UploadSequence replaces the chip type's sequence table with the parsed
	// contents of a Chip,Code CSV file.
	UploadSequence(ctx context.Context, id int64, file io.Reader) (*domain.ChipType, int, error)
	GetSequence(ctx context.Context, id int64) ([]domain.SequenceItem, error)
	GetSequenceRange(ctx context.Context, id int64, start, end int) ([]domain.SequenceItem, error)
}

type RentalService interface {
	Create(ctx context.Context, input CreateRentalInput) (*domain.Rental, error)
	Get(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, filter domain.RentalFilter, page, pageSize int) ([]domain.Rental, int, error)
	Update(ctx context.Context, id int64, input UpdateRentalInput) (*domain.Rental, error)
	Return(ctx context.Context, id int64) (*domain.Rental, error)
	Cancel(ctx context.Context, id int64) (*domain.Rental, error)
	ChipSequence(ctx context.Context, id int64) ([]domain.ChipSequenceRange, error)
	// ChipFile renders the chip sequence of one chip type on the rental as a
	// Chip,Code CSV and returns the computed filename alongside the bytes.
	ChipFile(ctx context.Context, rentalID, chipTypeID int64) (string, []byte, error)
}

type EmailService interface {
	SendOverdueRentalReminder(ctx context.Context, toEmail, clientName string, rental *domain.Rental) error
}

type CreateUserInput struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Role     domain.UserRole `json:"role"`
}

type UpdateUserInput struct {
	Email  *string          `json:"email"`
	Name   *string          `json:"name"`
	Role   *domain.UserRole `json:"role"`
	Active *bool            `json:"active"`
}

type ClientInput struct {
	Name             string  `json:"name"`
	CodeSportmaniacs *int64  `json:"codeSportmaniacs"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Notes            string  `json:"notes"`
}

type DeviceInput struct {
	Model               domain.DeviceModel         `json:"model"`
	ManufactoringCode   string                     `json:"manufactoringCode"`
	ManufactoringStatus domain.ManufactoringStatus `json:"manufactoringStatus"`
	OperationalStatus   domain.OperationalStatus   `json:"operationalStatus"`
	AvailableForRental  bool                       `json:"availableForRental"`
	SerialNumber        *string                    `json:"serialNumber"`
	PortCount           *int                       `json:"portCount"`
	FrequencyRegion     *domain.FrequencyRegion    `json:"frequencyRegion"`
	ManufacturingDate   *time.Time                 `json:"manufacturingDate"`
	Notes               string                     `json:"notes"`
	OwnerID             *int64                     `json:"ownerId"`

	Reader1SerialNumber *string `json:"reader1SerialNumber"`
	Reader2SerialNumber *string `json:"reader2SerialNumber"`
	CPUSerialNumber     *string `json:"cpuSerialNumber"`
	BatterySerialNumber *string `json:"batterySerialNumber"`
	TSPowerModel        *string `json:"tsPowerModel"`
	CPUFirmware         *string `json:"cpuFirmware"`
	GX1ReadersRegion    *string `json:"gx1ReadersRegion"`
	HasGSM              *bool   `json:"hasGSM"`
	HasGUN              *bool   `json:"hasGUN"`

	BluetoothAdapter *string `json:"bluetoothAdapter"`
	CoreVersion      *string `json:"coreVersion"`
	Heatsinks        *string `json:"heatsinks"`
	PICVersion       *string `json:"picVersion"`
}

type CreateProductInput struct {
	Name            string             `json:"name"`
	Type            domain.ProductType `json:"type"`
	Description     string             `json:"description"`
	Notes           string             `json:"notes"`
	InitialQuantity int                `json:"initialQuantity"`
}

type UpdateProductInput struct {
	Name          *string             `json:"name"`
	Type          *domain.ProductType `json:"type"`
	Description   *string             `json:"description"`
	Notes         *string             `json:"notes"`
	TotalQuantity *int                `json:"totalQuantity"`
}

type ProductUnitInput struct {
	Type         domain.ProductType       `json:"type"`
	SerialNumber string                   `json:"serialNumber"`
	Status       domain.ProductUnitStatus `json:"status"`
	Notes        string                   `json:"notes"`
}

type ChipTypeInput struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	TotalStock  int    `json:"totalStock"`
}

type RentalProductInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type ChipRangeInput struct {
	ChipTypeID int64 `json:"chipTypeId"`
	RangeStart int   `json:"rangeStart"`
	RangeEnd   int   `json:"rangeEnd"`
}

type CreateRentalInput struct {
	ClientID        int64                `json:"clientId"`
	StartDate       time.Time            `json:"startDate"`
	ExpectedEndDate time.Time            `json:"expectedEndDate"`
	Notes           string               `json:"notes"`
	DeviceIDs       []int64              `json:"deviceIds"`
	Products        []RentalProductInput `json:"products"`
	ProductUnitIDs  []int64              `json:"productUnitIds"`
	ChipRanges      []ChipRangeInput     `json:"chipRanges"`
}

type UpdateRentalInput struct {
	StartDate       *time.Time `json:"startDate"`
	ExpectedEndDate *time.Time `json:"expectedEndDate"`
	Notes           *string    `json:"notes"`
}
