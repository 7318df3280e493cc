package entities

import "time"

type HandoffType string

const (
	HandoffTypeLogoAnalysis HandoffType = "logo_analysis"
	HandoffTypeQuoteRequest HandoffType = "quote_request"
	HandoffTypeEscalation   HandoffType = "escalation"
)

// HandoffRecord logs the transfer of conversation control between agents.
// LogoAnalysis is carried when a logo-analysis agent hands off to a quote agent.
type HandoffRecord struct {
	ID           string              `json:"id"`
	FromAgent    string              `json:"from_agent"`
	ToAgent      string              `json:"to_agent"`
	HandoffType  HandoffType         `json:"handoff_type"`
	LogoAnalysis *LogoAnalysisResult `json:"logo_analysis_result,omitempty"`
	Timestamp    time.Time           `json:"timestamp"`
}

// LogoAnalysisResult holds the artwork analyzer's method recommendations, each
// with per-quantity unit pricing.
type LogoAnalysisResult struct {
	Recommendations []LogoRecommendation `json:"recommendations"`
	Notes           string               `json:"notes,omitempty"`
}

type LogoRecommendation struct {
	Location   LogoLocation `json:"location"`
	Method     LogoMethod   `json:"method"`
	Size       LogoSize     `json:"size,omitempty"`
	PriceTiers []PriceTier  `json:"price_tiers"`
}

// PriceTier is the unit price applying from Quantity pieces upwards.
type PriceTier struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type ResolutionMethod string

const (
	ResolutionWithinTolerance ResolutionMethod = "within_tolerance"
	ResolutionConservativeMax ResolutionMethod = "conservative_max"
)

// ConsistencyCheckResult compares the logo analyzer's cost with the quote
// agent's cost. It is an audit artifact, never authoritative pricing.
type ConsistencyCheckResult struct {
	ID               string           `json:"id"`
	Quantity         int              `json:"quantity"`
	Breakpoint       int              `json:"breakpoint"`
	LogoAnalysisCost float64          `json:"logo_analysis_cost"`
	QuoteCost        float64          `json:"quote_cost"`
	DiscrepancyFound bool             `json:"discrepancy_found"`
	ResolvedCost     float64          `json:"resolved_cost"`
	ResolutionMethod ResolutionMethod `json:"resolution_method"`
	Confidence       float64          `json:"confidence"`
	CheckedAt        time.Time        `json:"checked_at"`
}
