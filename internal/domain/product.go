package domain

import "time"

type ProductType string

const (
	ProductTypeAntenna   ProductType = "ANTENNA"
	ProductTypeCable     ProductType = "CABLE"
	ProductTypePhone     ProductType = "PHONE"
	ProductTypeStopwatch ProductType = "STOPWATCH"
	ProductTypeOther     ProductType = "OTHER"
)

// Product is bulk (fungible) inventory tracked with four quantity buckets.
// Invariant: AvailableQuantity + RentedQuantity + InRepairQuantity ==
// TotalQuantity, and every bucket is >= 0. Every quantity operation is a
// single conditional transfer between exactly two buckets (or grows/shrinks
// total and available together).
type Product struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Type              ProductType `json:"type"`
	Description       string      `json:"description,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	TotalQuantity     int         `json:"totalQuantity"`
	AvailableQuantity int         `json:"availableQuantity"`
	RentedQuantity    int         `json:"rentedQuantity"`
	InRepairQuantity  int         `json:"inRepairQuantity"`
	Active            bool        `json:"active"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type ProductFilter struct {
	Type   *ProductType
	Active *bool
}
