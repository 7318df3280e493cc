// Package extractor pulls configuration fields out of an agent's free-form
// response. Every field is resolved by an ordered cascade of patterns; the
// first capture that survives the sanity filter wins. Nothing here returns an
// error: a field that cannot be found is simply absent from the result.
package extractor

import (
	"log"

	"capquote/internal/domain/entities"
)

// Result is the partial specification found in one text block, along with
// the trace of which rule produced which value.
type Result struct {
	Specification entities.ProductSpecification `json:"specification"`
	Matches       []Match                       `json:"matches"`
	Rejections    []Rejection                   `json:"rejections,omitempty"`
	LogoFallback  bool                          `json:"logo_fallback"`
}

func (r *Result) note(field, rule, value string) {
	r.Matches = append(r.Matches, Match{Field: field, Rule: rule, Value: value})
	log.Printf("[extract][cascade] field=%s rule=%s value=%q", field, rule, value)
}

func (r *Result) reject(field, rule, value, reason string) {
	r.Rejections = append(r.Rejections, Rejection{Field: field, Rule: rule, Value: value, Reason: reason})
	log.Printf("[extract][cascade] corrupted capture field=%s rule=%s reason=%s value=%q", field, rule, reason, value)
}

type Extractor struct {
	filter CaptureFilter
}

// New returns an Extractor whose capture filter rejects values longer than
// maxCaptureLength runes (DefaultMaxCaptureLength when <= 0).
func New(maxCaptureLength int) *Extractor {
	if maxCaptureLength <= 0 {
		maxCaptureLength = DefaultMaxCaptureLength
	}
	return &Extractor{filter: CaptureFilter{MaxLength: maxCaptureLength}}
}

// Extract never fails; the worst case is an empty specification.
func (e *Extractor) Extract(text string) Result {
	var res Result
	if text == "" {
		return res
	}
	spec := &res.Specification

	spec.Style.Size = e.first(sizeCascade, text, &res)
	if c := e.first(colorCascade, text, &res); c != "" {
		spec.Style.Color = splitColors(c)
	}
	spec.Style.Profile = e.first(profileCascade, text, &res)
	spec.Style.BillShape = e.first(billShapeCascade, text, &res)
	spec.Style.Structure = e.first(structureCascade, text, &res)
	spec.Style.Fabric = e.first(fabricCascade, text, &res)
	spec.Style.Closure = e.first(closureCascade, text, &res)
	spec.Style.Stitching = e.first(stitchingCascade, text, &res)

	spec.Customization.Logos = e.extractLogos(text, &res)
	spec.Customization.Accessories = e.extractAccessories(text, &res)
	if v, ok := parseAmount(e.first(moldChargeCascade, text, &res)); ok {
		spec.Customization.MoldCharge = entities.Float(v)
	}

	spec.Delivery.Method = e.first(deliveryMethodCascade, text, &res)
	spec.Delivery.LeadTime = e.first(leadTimeCascade, text, &res)
	deliveryCost, hasDeliveryCost := parseAmount(e.first(deliveryCostCascade, text, &res))
	if hasDeliveryCost {
		spec.Delivery.Cost = entities.Float(deliveryCost)
	}

	spec.Pricing = e.extractPricing(text, deliveryCost, &res)

	log.Printf("[extract][extractor] done matches=%d rejections=%d logos=%d accessories=%d priced=%t",
		len(res.Matches), len(res.Rejections), len(spec.Customization.Logos), len(spec.Customization.Accessories), spec.Pricing != nil)
	return res
}

// extractPricing reports pricing only as a unit: without both a total and a
// quantity the whole block is absent.
func (e *Extractor) extractPricing(text string, deliveryCost float64, res *Result) *entities.Pricing {
	total, hasTotal := parseAmount(e.first(totalCascade, text, res))
	qty, hasQty := parseQuantity(e.first(quantityCascade, text, res))
	if !hasTotal || !hasQty {
		if hasTotal || hasQty {
			log.Printf("[extract][extractor] partial pricing discarded has_total=%t has_quantity=%t", hasTotal, hasQty)
		}
		return nil
	}
	p := &entities.Pricing{Total: total, Quantity: qty, DeliveryCost: deliveryCost}
	if v, ok := parseAmount(e.first(baseCostCascade, text, res)); ok {
		p.BaseCost = v
	}
	if v, ok := parseAmount(e.first(customizationCostCascade, text, res)); ok {
		p.CustomizationCost = v
	}
	return p
}

func (e *Extractor) first(c Cascade, text string, res *Result) string {
	m, rejected, ok := c.First(text, e.filter)
	for _, r := range rejected {
		res.reject(r.Field, r.Rule, r.Value, r.Reason)
	}
	if !ok {
		return ""
	}
	res.note(m.Field, m.Rule, m.Value)
	return m.Value
}
