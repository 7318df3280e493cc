package normalizer

import "capquote/internal/domain/entities"

// Defaults holds the value assumed for each style and delivery field the
// customer has not chosen yet. They are only ever applied to a view of the
// specification, never persisted.
type Defaults struct {
	Size             string   `yaml:"size"`
	Color            []string `yaml:"color"`
	Profile          string   `yaml:"profile"`
	BillShape        string   `yaml:"bill_shape"`
	Structure        string   `yaml:"structure"`
	Fabric           string   `yaml:"fabric"`
	Closure          string   `yaml:"closure"`
	Stitching        string   `yaml:"stitching"`
	DeliveryMethod   string   `yaml:"delivery_method"`
	DeliveryLeadTime string   `yaml:"delivery_lead_time"`
	DeliveryCost     float64  `yaml:"delivery_cost"`
}

// DefaultTable is the house configuration of a cap nobody has customised.
func DefaultTable() Defaults {
	return Defaults{
		Size:             "Medium",
		Color:            []string{"Black"},
		Profile:          "High",
		BillShape:        "Curved",
		Structure:        "Structured",
		Fabric:           "Chino Twill",
		Closure:          "Snapback",
		Stitching:        "Matching",
		DeliveryMethod:   "Regular Delivery",
		DeliveryLeadTime: "4-6 days",
		DeliveryCost:     0,
	}
}

// Merge returns d with every non-empty field of override applied on top.
// DeliveryCost is overridden only when non-zero.
func (d Defaults) Merge(override Defaults) Defaults {
	pick := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	out := Defaults{
		Size:             pick(d.Size, override.Size),
		Color:            d.Color,
		Profile:          pick(d.Profile, override.Profile),
		BillShape:        pick(d.BillShape, override.BillShape),
		Structure:        pick(d.Structure, override.Structure),
		Fabric:           pick(d.Fabric, override.Fabric),
		Closure:          pick(d.Closure, override.Closure),
		Stitching:        pick(d.Stitching, override.Stitching),
		DeliveryMethod:   pick(d.DeliveryMethod, override.DeliveryMethod),
		DeliveryLeadTime: pick(d.DeliveryLeadTime, override.DeliveryLeadTime),
		DeliveryCost:     d.DeliveryCost,
	}
	if len(override.Color) > 0 {
		out.Color = override.Color
	}
	if override.DeliveryCost != 0 {
		out.DeliveryCost = override.DeliveryCost
	}
	return out
}

// WithDefaults fills every absent style and delivery field of spec from the
// table. Customization and pricing are left untouched. spec is not modified.
func (n *Normalizer) WithDefaults(spec entities.ProductSpecification) entities.ProductSpecification {
	out := spec.Clone()
	d := n.defaults
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&out.Style.Size, d.Size)
	if len(out.Style.Color) == 0 && len(d.Color) > 0 {
		out.Style.Color = append([]string(nil), d.Color...)
	}
	fill(&out.Style.Profile, d.Profile)
	fill(&out.Style.BillShape, d.BillShape)
	fill(&out.Style.Structure, d.Structure)
	fill(&out.Style.Fabric, d.Fabric)
	fill(&out.Style.Closure, d.Closure)
	fill(&out.Style.Stitching, d.Stitching)
	fill(&out.Delivery.Method, d.DeliveryMethod)
	fill(&out.Delivery.LeadTime, d.DeliveryLeadTime)
	if out.Delivery.Cost == nil {
		out.Delivery.Cost = entities.Float(d.DeliveryCost)
	}
	return out
}
