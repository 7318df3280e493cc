package entities

// ProductSpecification is the canonical configuration of one customizable cap.
//
// Absence model:
//   - string fields: empty string means absent
//   - Color: nil/empty slice means absent
//   - Delivery.Cost, Customization.MoldCharge: nil means absent (0 is a real value)
//   - Pricing: nil means absent; when present Quantity > 0
//
// Pricing.Total is the upstream agent's figure and is not required to equal the
// sum of the line items.
type ProductSpecification struct {
	Style         Style         `json:"style"`
	Customization Customization `json:"customization"`
	Delivery      Delivery      `json:"delivery"`
	Pricing       *Pricing      `json:"pricing,omitempty"`
}

type Style struct {
	Size      string   `json:"size,omitempty"`
	Color     []string `json:"color,omitempty"`
	Profile   string   `json:"profile,omitempty"`
	BillShape string   `json:"bill_shape,omitempty"`
	Structure string   `json:"structure,omitempty"`
	Fabric    string   `json:"fabric,omitempty"`
	Closure   string   `json:"closure,omitempty"`
	Stitching string   `json:"stitching,omitempty"`
}

type Customization struct {
	Logos       []LogoEntry      `json:"logos,omitempty"`
	Accessories []AccessoryEntry `json:"accessories,omitempty"`
	MoldCharge  *float64         `json:"mold_charge,omitempty"`
}

type Delivery struct {
	Method   string   `json:"method,omitempty"`
	LeadTime string   `json:"lead_time,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
}

type Pricing struct {
	BaseCost          float64 `json:"base_cost"`
	CustomizationCost float64 `json:"customization_cost"`
	DeliveryCost      float64 `json:"delivery_cost"`
	Total             float64 `json:"total"`
	Quantity          int     `json:"quantity"`
}

// AccessoryEntry is identified by its canonical Name; Quantity is informative.
type AccessoryEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity,omitempty"`
}

// IsEmpty reports whether no field at all is present.
func (s ProductSpecification) IsEmpty() bool {
	return s.Style.IsEmpty() &&
		s.Customization.IsEmpty() &&
		s.Delivery.Method == "" && s.Delivery.LeadTime == "" && s.Delivery.Cost == nil &&
		s.Pricing == nil
}

func (s Style) IsEmpty() bool {
	return s.Size == "" && len(s.Color) == 0 && s.Profile == "" && s.BillShape == "" &&
		s.Structure == "" && s.Fabric == "" && s.Closure == "" && s.Stitching == ""
}

func (c Customization) IsEmpty() bool {
	return len(c.Logos) == 0 && len(c.Accessories) == 0 && c.MoldCharge == nil
}

// Clone returns a deep copy so callers can build a new snapshot without
// aliasing the slices or pointers of the original.
func (s ProductSpecification) Clone() ProductSpecification {
	out := s
	if s.Style.Color != nil {
		out.Style.Color = append([]string(nil), s.Style.Color...)
	}
	if s.Customization.Logos != nil {
		out.Customization.Logos = append([]LogoEntry(nil), s.Customization.Logos...)
	}
	if s.Customization.Accessories != nil {
		out.Customization.Accessories = append([]AccessoryEntry(nil), s.Customization.Accessories...)
	}
	out.Customization.MoldCharge = cloneFloat(s.Customization.MoldCharge)
	out.Delivery.Cost = cloneFloat(s.Delivery.Cost)
	if s.Pricing != nil {
		p := *s.Pricing
		out.Pricing = &p
	}
	return out
}

// Float returns a pointer to v; handy for the optional money fields.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
