package domain

import "time"

// SequenceItem maps a chip number to its program code. The stored order is
// the upload order; chip numbers are not guaranteed contiguous or sorted.
type SequenceItem struct {
	Chip int    `json:"chip"`
	Code string `json:"code"`
}

// ChipType describes a family of timing chips and optionally carries the
// uploaded sequence table used to derive per-rental chip files.
type ChipType struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	DisplayName  string         `json:"displayName"`
	TotalStock   int            `json:"totalStock"`
	SequenceData []SequenceItem `json:"sequenceData,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// SequenceInRange returns the stored entries whose chip number falls inside
// [start, end], both bounds inclusive, preserving stored order. A nil
// sequence yields an empty result. Lookup volume does not justify an index;
// this stays a linear scan.
func (ct *ChipType) SequenceInRange(start, end int) []SequenceItem {
	out := make([]SequenceItem, 0)
	for _, item := range ct.SequenceData {
		if item.Chip >= start && item.Chip <= end {
			out = append(out, item)
		}
	}
	return out
}
