package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusReturned  RentalStatus = "RETURNED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// Rental is the aggregate root of the reservation engine. It holds four
// child collections reserved atomically at creation and released together
// on return or cancel. RETURNED and CANCELLED are terminal.
type Rental struct {
	ID              int64        `json:"id"`
	ClientID        int64        `json:"clientId"`
	StartDate       time.Time    `json:"startDate"`
	ExpectedEndDate time.Time    `json:"expectedEndDate"`
	ActualEndDate   *time.Time   `json:"actualEndDate,omitempty"`
	Status          RentalStatus `json:"status"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`

	Devices      []RentalDevice      `json:"devices"`
	Products     []RentalProduct     `json:"products"`
	ProductUnits []RentalProductUnit `json:"productUnits"`
	ChipRanges   []RentalChipRange   `json:"chipRanges"`

	// Expanded relations, populated on detail reads.
	Client *Client `json:"client,omitempty"`
}

type RentalDevice struct {
	DeviceID int64   `json:"deviceId"`
	Device   *Device `json:"device,omitempty"`
}

// RentalProduct snapshots the quantity taken at creation time; it is never
// re-derived from the product's live counters.
type RentalProduct struct {
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

type RentalProductUnit struct {
	ProductUnitID int64        `json:"productUnitId"`
	ProductUnit   *ProductUnit `json:"productUnit,omitempty"`
}

// RentalChipRange books the inclusive chip interval [RangeStart, RangeEnd]
// against a chip type. Booking records the interval only; it carries no
// reservation state on the chip type and is never released.
type RentalChipRange struct {
	ChipTypeID int64     `json:"chipTypeId"`
	RangeStart int       `json:"rangeStart"`
	RangeEnd   int       `json:"rangeEnd"`
	ChipType   *ChipType `json:"chipType,omitempty"`
}

type RentalFilter struct {
	Status   *RentalStatus
	ClientID *int64
}

// ChipSequenceRange is one entry of the per-rental chip sequence report.
type ChipSequenceRange struct {
	ChipType            string         `json:"chipType"`
	ChipTypeDisplayName string         `json:"chipTypeDisplayName"`
	RangeStart          int            `json:"rangeStart"`
	RangeEnd            int            `json:"rangeEnd"`
	Sequence            []SequenceItem `json:"sequence"`
}
