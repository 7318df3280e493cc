package entities

import (
	"math"
	"time"
)

// QuoteVersion is an immutable priced snapshot of the specification.
//
// Identity for "is this a new version" purposes is the dedup tuple
// (total, customization cost, base cost), not the id.
type QuoteVersion struct {
	ID             string               `json:"id"`
	SequenceNumber int                  `json:"sequence_number"`
	CreatedAt      time.Time            `json:"created_at"`
	Label          string               `json:"label"`
	Specification  ProductSpecification `json:"specification"`
}

// DedupTuple holds the three pricing figures, in cents, that decide whether a
// priced specification is materially different from an existing version.
type DedupTuple struct {
	Total             int64
	CustomizationCost int64
	BaseCost          int64
}

func NewDedupTuple(p Pricing) DedupTuple {
	return DedupTuple{
		Total:             toCents(p.Total),
		CustomizationCost: toCents(p.CustomizationCost),
		BaseCost:          toCents(p.BaseCost),
	}
}

// Tuple returns the dedup tuple of the version. A version always carries pricing.
func (v QuoteVersion) Tuple() DedupTuple {
	if v.Specification.Pricing == nil {
		return DedupTuple{}
	}
	return NewDedupTuple(*v.Specification.Pricing)
}

// OrderBuilderState owns the append-only version history of a configuration
// thread. SelectedVersionID, when set, references an element of Versions.
type OrderBuilderState struct {
	Versions          []QuoteVersion `json:"versions"`
	SelectedVersionID string         `json:"selected_version_id,omitempty"`
}

// Selected returns the currently selected version, if any.
func (s OrderBuilderState) Selected() (QuoteVersion, bool) {
	if s.SelectedVersionID == "" {
		return QuoteVersion{}, false
	}
	return s.Find(s.SelectedVersionID)
}

func (s OrderBuilderState) Find(id string) (QuoteVersion, bool) {
	for _, v := range s.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return QuoteVersion{}, false
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
