package entities

type StatusColor string

const (
	StatusRed    StatusColor = "red"
	StatusYellow StatusColor = "yellow"
	StatusGreen  StatusColor = "green"
	StatusEmpty  StatusColor = "empty"
)

// SectionStatus is derived from a ProductSpecification and the version
// history. It is never stored as a source of truth, only as a snapshot next to
// the specification it was computed from.
type SectionStatus struct {
	Style         StatusColor         `json:"style"`
	Customization StatusColor         `json:"customization"`
	Delivery      StatusColor         `json:"delivery"`
	CostBreakdown CostBreakdownStatus `json:"cost_breakdown"`
}

type CostBreakdownStatus struct {
	Available bool `json:"available"`
}
