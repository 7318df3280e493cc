// Package reconcile merges the candidate specifications of one turn with the
// specification already on file. Merge is a pure function: no I/O, no clock.
package reconcile

import (
	"strings"

	"capquote/internal/domain/entities"
)

// Sources holds up to three candidates; nil means the source is absent.
type Sources struct {
	AgentStructured *entities.ProductSpecification
	TextExtracted   *entities.ProductSpecification
	Persisted       *entities.ProductSpecification
}

// Merge combines the sources group by group:
//   - style: persisted, then agent, then text, field by field
//   - accessories: union by name in persisted, agent, text order
//   - logos: persisted kept whole, new (location, method) pairs appended
//   - delivery and mold charge: latest source first, field by field
//   - pricing: the first of agent, text, persisted with a total, as a unit
//
// The inputs are never modified.
func Merge(src Sources) entities.ProductSpecification {
	confirmed := present(src.Persisted, src.AgentStructured, src.TextExtracted)
	latest := present(src.AgentStructured, src.TextExtracted, src.Persisted)

	var out entities.ProductSpecification
	out.Style = mergeStyle(confirmed)
	out.Customization.Logos = mergeLogos(confirmed)
	out.Customization.Accessories = mergeAccessories(confirmed)

	for _, s := range latest {
		if out.Customization.MoldCharge == nil && s.Customization.MoldCharge != nil {
			v := *s.Customization.MoldCharge
			out.Customization.MoldCharge = &v
		}
		if out.Delivery.Method == "" {
			out.Delivery.Method = s.Delivery.Method
		}
		if out.Delivery.LeadTime == "" {
			out.Delivery.LeadTime = s.Delivery.LeadTime
		}
		if out.Delivery.Cost == nil && s.Delivery.Cost != nil {
			v := *s.Delivery.Cost
			out.Delivery.Cost = &v
		}
		if out.Pricing == nil && s.Pricing != nil && s.Pricing.Total > 0 {
			p := *s.Pricing
			out.Pricing = &p
		}
	}
	return out
}

func present(in ...*entities.ProductSpecification) []*entities.ProductSpecification {
	out := make([]*entities.ProductSpecification, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func mergeStyle(ordered []*entities.ProductSpecification) entities.Style {
	var st entities.Style
	firstString := func(get func(entities.Style) string) string {
		for _, s := range ordered {
			if v := get(s.Style); v != "" {
				return v
			}
		}
		return ""
	}
	st.Size = firstString(func(s entities.Style) string { return s.Size })
	st.Profile = firstString(func(s entities.Style) string { return s.Profile })
	st.BillShape = firstString(func(s entities.Style) string { return s.BillShape })
	st.Structure = firstString(func(s entities.Style) string { return s.Structure })
	st.Fabric = firstString(func(s entities.Style) string { return s.Fabric })
	st.Closure = firstString(func(s entities.Style) string { return s.Closure })
	st.Stitching = firstString(func(s entities.Style) string { return s.Stitching })
	for _, s := range ordered {
		if len(s.Style.Color) > 0 {
			st.Color = append([]string(nil), s.Style.Color...)
			break
		}
	}
	return st
}

// mergeLogos keeps the first source's list whole; it is the persisted one
// whenever a persisted specification exists.
func mergeLogos(ordered []*entities.ProductSpecification) []entities.LogoEntry {
	var out []entities.LogoEntry
	seen := map[entities.LogoKey]bool{}
	for _, s := range ordered {
		for _, le := range s.Customization.Logos {
			if seen[le.Key()] {
				continue
			}
			seen[le.Key()] = true
			out = append(out, le)
		}
	}
	return out
}

// mergeAccessories unions by case-insensitive name. A later source may only
// supply a quantity the earlier entry lacked.
func mergeAccessories(ordered []*entities.ProductSpecification) []entities.AccessoryEntry {
	var out []entities.AccessoryEntry
	index := map[string]int{}
	for _, s := range ordered {
		for _, a := range s.Customization.Accessories {
			key := strings.ToLower(strings.TrimSpace(a.Name))
			if key == "" {
				continue
			}
			if i, ok := index[key]; ok {
				if out[i].Quantity == 0 {
					out[i].Quantity = a.Quantity
				}
				continue
			}
			index[key] = len(out)
			out = append(out, a)
		}
	}
	return out
}
