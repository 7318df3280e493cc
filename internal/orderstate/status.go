package orderstate

import (
	"capquote/internal/domain/entities"
	"capquote/internal/normalizer"
)

// DeriveStatus computes the section statuses of spec. Once the specification
// carries pricing it is judged in progress and unset style and delivery fields
// are read from the default table; spec itself is never changed.
func DeriveStatus(spec entities.ProductSpecification, versionCount int, n *normalizer.Normalizer) entities.SectionStatus {
	view := spec
	if spec.Pricing != nil && n != nil {
		view = n.WithDefaults(spec)
	}
	return entities.SectionStatus{
		Style:         styleStatus(view.Style),
		Customization: customizationStatus(view.Customization),
		Delivery:      deliveryStatus(view.Delivery),
		CostBreakdown: entities.CostBreakdownStatus{Available: versionCount > 0},
	}
}

func styleStatus(s entities.Style) entities.StatusColor {
	if s.Size == "" || len(s.Color) == 0 || s.BillShape == "" {
		return entities.StatusRed
	}
	if s.Profile == "" || s.Structure == "" || s.Fabric == "" || s.Closure == "" || s.Stitching == "" {
		return entities.StatusYellow
	}
	return entities.StatusGreen
}

// customizationStatus has no green state: customization is optional.
func customizationStatus(c entities.Customization) entities.StatusColor {
	if c.IsEmpty() {
		return entities.StatusEmpty
	}
	return entities.StatusYellow
}

func deliveryStatus(d entities.Delivery) entities.StatusColor {
	if d.Method != "" && d.Cost != nil {
		return entities.StatusGreen
	}
	return entities.StatusRed
}
