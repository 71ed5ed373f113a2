package domain

import "time"

type DeviceModel string

const (
	DeviceModelTSONE   DeviceModel = "TSONE"
	DeviceModelTS2     DeviceModel = "TS2"
	DeviceModelTS2Plus DeviceModel = "TS2_PLUS"
	DeviceModelCLB     DeviceModel = "CLB"
	DeviceModelGX1     DeviceModel = "GX1"
)

type ManufactoringStatus string

const (
	ManufactoringStatusPending         ManufactoringStatus = "PENDING"
	ManufactoringStatusInManufacturing ManufactoringStatus = "IN_MANUFACTURING"
	ManufactoringStatusCompleted       ManufactoringStatus = "COMPLETED"
)

type OperationalStatus string

const (
	OperationalStatusAvailable       OperationalStatus = "AVAILABLE"
	OperationalStatusRented          OperationalStatus = "RENTED"
	OperationalStatusRetired         OperationalStatus = "RETIRED"
	OperationalStatusInManufacturing OperationalStatus = "IN_MANUFACTURING"
)

type FrequencyRegion string

const (
	FrequencyRegionEU  FrequencyRegion = "EU"
	FrequencyRegionUS  FrequencyRegion = "US"
	FrequencyRegionAUS FrequencyRegion = "AUS"
	FrequencyRegionJPN FrequencyRegion = "JPN"
)

// Device is a serialized timing unit (reader box, checkpoint, etc.). Only
// devices with OperationalStatus AVAILABLE and AvailableForRental=true can
// enter a rental.
type Device struct {
	ID                  int64               `json:"id"`
	Model               DeviceModel         `json:"model"`
	ManufactoringCode   string              `json:"manufactoringCode"`
	ManufactoringStatus ManufactoringStatus `json:"manufactoringStatus"`
	OperationalStatus   OperationalStatus   `json:"operationalStatus"`
	AvailableForRental  bool                `json:"availableForRental"`
	SerialNumber        *string             `json:"serialNumber,omitempty"`
	PortCount           *int                `json:"portCount,omitempty"`
	FrequencyRegion     *FrequencyRegion    `json:"frequencyRegion,omitempty"`
	ManufacturingDate   *time.Time          `json:"manufacturingDate,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	OwnerID             *int64              `json:"ownerId,omitempty"`

	// TSONE/TS2/TS2_PLUS specific
	Reader1SerialNumber *string `json:"reader1SerialNumber,omitempty"`
	Reader2SerialNumber *string `json:"reader2SerialNumber,omitempty"`
	CPUSerialNumber     *string `json:"cpuSerialNumber,omitempty"`
	BatterySerialNumber *string `json:"batterySerialNumber,omitempty"`
	TSPowerModel        *string `json:"tsPowerModel,omitempty"`
	CPUFirmware         *string `json:"cpuFirmware,omitempty"`
	GX1ReadersRegion    *string `json:"gx1ReadersRegion,omitempty"`
	HasGSM              *bool   `json:"hasGSM,omitempty"`
	HasGUN              *bool   `json:"hasGUN,omitempty"`

	// CLB specific
	BluetoothAdapter *string `json:"bluetoothAdapter,omitempty"`
	CoreVersion      *string `json:"coreVersion,omitempty"`
	Heatsinks        *string `json:"heatsinks,omitempty"`
	PICVersion       *string `json:"picVersion,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeviceFilter narrows device listings.
type DeviceFilter struct {
	Model               *DeviceModel
	ManufactoringStatus *ManufactoringStatus
	OperationalStatus   *OperationalStatus
	AvailableForRental  *bool
	OwnerID             *int64
}
