package domain

import "time"

type ProductUnitStatus string

const (
	ProductUnitStatusAvailable ProductUnitStatus = "AVAILABLE"
	ProductUnitStatusRented    ProductUnitStatus = "RENTED"
	ProductUnitStatusInRepair  ProductUnitStatus = "IN_REPAIR"
	ProductUnitStatusRetired   ProductUnitStatus = "RETIRED"
)

// ProductUnit is an individually serialized accessory (e.g. a specific
// stopwatch). Status gates rental eligibility the same way
// Device.OperationalStatus does.
type ProductUnit struct {
	ID           int64             `json:"id"`
	Type         ProductType       `json:"type"`
	SerialNumber string            `json:"serialNumber"`
	Status       ProductUnitStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	Active       bool              `json:"active"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type ProductUnitFilter struct {
	Type   *ProductType
	Status *ProductUnitStatus
	Active *bool
}
