package orderstate

import (
	"math"
	"sort"
	"time"

	"capquote/internal/domain/entities"
)

// DefaultBreakpoints are the quantity tiers the logo analyzer prices against.
var DefaultBreakpoints = []int{48, 144, 576, 1152, 2880, 10000, 20000}

const (
	DefaultTolerance             = 0.05
	DefaultDiscrepancyConfidence = 0.8
)

// PricingRules holds the consistency-check tunables.
type PricingRules struct {
	Breakpoints           []int
	Tolerance             float64
	DiscrepancyConfidence float64
}

func DefaultPricing() PricingRules {
	return PricingRules{
		Breakpoints:           append([]int(nil), DefaultBreakpoints...),
		Tolerance:             DefaultTolerance,
		DiscrepancyConfidence: DefaultDiscrepancyConfidence,
	}
}

// Breakpoint returns the smallest breakpoint >= quantity, or the largest one
// when quantity exceeds them all.
func (p PricingRules) Breakpoint(quantity int) int {
	bps := append([]int(nil), p.Breakpoints...)
	sort.Ints(bps)
	if len(bps) == 0 {
		return quantity
	}
	for _, bp := range bps {
		if bp >= quantity {
			return bp
		}
	}
	return bps[len(bps)-1]
}

// UnitCost sums, over every recommendation, the unit price of the tier that
// applies at breakpoint: the tier with the largest quantity not above it,
// else the smallest tier.
func UnitCost(analysis entities.LogoAnalysisResult, breakpoint int) float64 {
	var total float64
	for _, rec := range analysis.Recommendations {
		total += tierPrice(rec.PriceTiers, breakpoint)
	}
	return total
}

func tierPrice(tiers []entities.PriceTier, breakpoint int) float64 {
	if len(tiers) == 0 {
		return 0
	}
	best, smallest := -1, 0
	for i, t := range tiers {
		if t.Quantity < tiers[smallest].Quantity {
			smallest = i
		}
		if t.Quantity <= breakpoint && (best < 0 || t.Quantity > tiers[best].Quantity) {
			best = i
		}
	}
	if best < 0 {
		best = smallest
	}
	return tiers[best].UnitPrice
}

// CheckConsistency compares the logo analyzer's estimate for quantity with the
// quote agent's figure. Within tolerance the quote stands; otherwise the
// higher of the two is kept.
func CheckConsistency(analysis entities.LogoAnalysisResult, quantity int, quoteCost float64, p PricingRules, now time.Time) entities.ConsistencyCheckResult {
	bp := p.Breakpoint(quantity)
	logoCost := roundCents(UnitCost(analysis, bp) * float64(quantity))

	res := entities.ConsistencyCheckResult{
		Quantity:         quantity,
		Breakpoint:       bp,
		LogoAnalysisCost: logoCost,
		QuoteCost:        quoteCost,
		CheckedAt:        now,
	}
	if withinTolerance(logoCost, quoteCost, p.Tolerance) {
		res.ResolvedCost = quoteCost
		res.ResolutionMethod = entities.ResolutionWithinTolerance
		res.Confidence = 1.0
		return res
	}
	res.DiscrepancyFound = true
	res.ResolvedCost = math.Max(logoCost, quoteCost)
	res.ResolutionMethod = entities.ResolutionConservativeMax
	res.Confidence = p.DiscrepancyConfidence
	return res
}

// withinTolerance is inclusive. A zero logo estimate carries no information,
// so the quote is accepted.
func withinTolerance(logoCost, quoteCost, tolerance float64) bool {
	if logoCost == 0 {
		return true
	}
	return math.Abs(quoteCost-logoCost)/logoCost <= tolerance+1e-9
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
