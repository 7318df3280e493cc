// Package normalizer maps raw field values onto the canonical vocabulary and
// supplies the default table used for display and completeness checks.
package normalizer

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"capquote/internal/domain/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Normalizer struct {
	defaults Defaults
}

// New returns a Normalizer using DefaultTable with overrides applied.
func New(overrides Defaults) *Normalizer {
	return &Normalizer{defaults: DefaultTable().Merge(overrides)}
}

func (n *Normalizer) Defaults() Defaults {
	return n.defaults
}

var (
	title         = cases.Title(language.English)
	fabricJoiners = regexp.MustCompile(`(?i)\s*(?:/|\+|&|,|\band\b|\bwith\b)\s*`)
	colorJoiners  = regexp.MustCompile(`(?i)\s*(?:/|,|&|\band\b|\+)\s*`)
	leadTimeRange = regexp.MustCompile(`(?i)^(\d+)\s*(?:-|–|to)\s*(\d+)\s*(business\s+days|working\s+days|days|weeks)$`)
	leadTimeOne   = regexp.MustCompile(`(?i)^(\d+)\s*(business\s+days|working\s+days|days?|weeks?)$`)
)

var logoLocations = vocabulary{
	e(string(entities.LogoLocationUpperBill), "upper bill"),
	e(string(entities.LogoLocationUpperBill), "upperbill"),
	e(string(entities.LogoLocationUnderBill), "under bill"),
	e(string(entities.LogoLocationUnderBill), "underbill"),
	e(string(entities.LogoLocationFront), "front"),
	e(string(entities.LogoLocationBack), "back"),
	e(string(entities.LogoLocationBack), "rear"),
	e(string(entities.LogoLocationLeft), "left"),
	e(string(entities.LogoLocationRight), "right"),
}

var logoMethods = vocabulary{
	e(string(entities.LogoMethod3DEmbroidery), "3dembroidery"),
	e(string(entities.LogoMethod3DEmbroidery), "3d"),
	e(string(entities.LogoMethod3DEmbroidery), "puff"),
	e(string(entities.LogoMethodFlatEmbroidery), "flatembroidery"),
	e(string(entities.LogoMethodFlatEmbroidery), "embroidery"),
	e(string(entities.LogoMethodFlatEmbroidery), "embroidered"),
	e(string(entities.LogoMethodScreenPrint), "screenprint"),
	e(string(entities.LogoMethodScreenPrint), "screen print"),
	e(string(entities.LogoMethodScreenPrint), "screen printed"),
	e(string(entities.LogoMethodSublimation), "sublimation"),
	e(string(entities.LogoMethodSublimation), "dye sub"),
	e(string(entities.LogoMethodLeatherPatch), "leatherpatch"),
	e(string(entities.LogoMethodLeatherPatch), "leather"),
	e(string(entities.LogoMethodRubberPatch), "rubberpatch"),
	e(string(entities.LogoMethodRubberPatch), "rubber"),
	e(string(entities.LogoMethodRubberPatch), "pvc"),
	e(string(entities.LogoMethodRubberPatch), "silicone"),
}

var logoSizes = vocabulary{
	e(string(entities.LogoSizeSmall), "small"),
	e(string(entities.LogoSizeMedium), "medium"),
	e(string(entities.LogoSizeLarge), "large"),
}

// Normalize returns a copy of spec with every present value mapped onto its
// canonical label. Unknown values are kept, cleaned and title-cased. Pricing
// without a positive total and quantity is dropped.
func (n *Normalizer) Normalize(spec entities.ProductSpecification) entities.ProductSpecification {
	out := spec.Clone()

	out.Style.Size = canonical(sizes, out.Style.Size)
	out.Style.Color = normalizeColors(out.Style.Color)
	out.Style.Profile = canonical(profiles, out.Style.Profile)
	out.Style.BillShape = canonical(billShapes, out.Style.BillShape)
	out.Style.Structure = canonical(structures, out.Style.Structure)
	out.Style.Fabric = normalizeFabric(out.Style.Fabric)
	out.Style.Closure = canonical(closures, out.Style.Closure)
	out.Style.Stitching = canonical(stitchings, out.Style.Stitching)

	out.Customization.Logos = normalizeLogos(out.Customization.Logos)
	out.Customization.Accessories = normalizeAccessories(out.Customization.Accessories)

	out.Delivery.Method = canonical(deliveryMethods, out.Delivery.Method)
	out.Delivery.LeadTime = normalizeLeadTime(out.Delivery.LeadTime)

	if p := out.Pricing; p != nil && (p.Total <= 0 || p.Quantity <= 0) {
		log.Printf("[normalize][pricing] dropping pricing total=%.2f quantity=%d", p.Total, p.Quantity)
		out.Pricing = nil
	}
	return out
}

func canonical(v vocabulary, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if c, ok := v.lookup(raw); ok {
		return c
	}
	return titleCase(raw)
}

// titleCase is the fallback for values outside the vocabulary.
func titleCase(raw string) string {
	return title.String(strings.Join(strings.Fields(raw), " "))
}

func normalizeColors(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, raw := range in {
		// structured payloads may carry "Black/White" as one entry
		for _, c := range colorJoiners.Split(raw, -1) {
			c = canonical(colors, c)
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeFabric resolves known combinations as a whole and otherwise
// canonicalizes each part of an "a/b" build on its own.
func normalizeFabric(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parts := fabricJoiners.Split(raw, -1)
	if len(parts) < 2 {
		return canonical(fabrics, raw)
	}
	if c, ok := fabrics.lookup(raw); ok && strings.Contains(c, "/") {
		return c
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = canonical(fabrics, p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

func normalizeLogos(in []entities.LogoEntry) []entities.LogoEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.LogoEntry, 0, len(in))
	seen := map[entities.LogoKey]bool{}
	for _, le := range in {
		loc, okLoc := logoLocations.lookup(string(le.Location))
		method, okMethod := logoMethods.lookup(string(le.Method))
		if !okLoc || !okMethod {
			log.Printf("[normalize][logo] dropping unrecognised entry location=%q method=%q", le.Location, le.Method)
			continue
		}
		size := entities.LogoSizeMedium
		if s, ok := logoSizes.lookup(string(le.Size)); ok {
			size = entities.LogoSize(s)
		}
		entry := entities.LogoEntry{Location: entities.LogoLocation(loc), Method: entities.LogoMethod(method), Size: size}
		if seen[entry.Key()] {
			continue
		}
		seen[entry.Key()] = true
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeAccessories(in []entities.AccessoryEntry) []entities.AccessoryEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.AccessoryEntry, 0, len(in))
	index := map[string]int{}
	for _, a := range in {
		name := canonical(accessories, a.Name)
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			if out[i].Quantity == 0 {
				out[i].Quantity = a.Quantity
			}
			continue
		}
		index[name] = len(out)
		out = append(out, entities.AccessoryEntry{Name: name, Quantity: a.Quantity})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeLeadTime rewrites "7 to 10 Days" as "7-10 days".
func normalizeLeadTime(raw string) string {
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return ""
	}
	if m := leadTimeRange.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s-%s %s", m[1], m[2], strings.ToLower(m[3]))
	}
	if m := leadTimeOne.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s %s", m[1], strings.ToLower(m[2]))
	}
	return raw
}
