package entities

import "time"

// ConfigurationThread is everything persisted for one quote conversation.
//
// Storage model:
//   - PK: id (opaque, supplied by the caller)
//   - revision: optimistic concurrency token, incremented on each save
//
// ConsistencyChecks is an audit trail only; it never feeds pricing.
type ConfigurationThread struct {
	ID                string                   `json:"id"`
	Specification     ProductSpecification     `json:"specification"`
	State             OrderBuilderState        `json:"state"`
	SectionStatus     SectionStatus            `json:"section_status"`
	Handoffs          []HandoffRecord          `json:"handoffs,omitempty"`
	QuoteReady        bool                     `json:"quote_ready"`
	ConsistencyChecks []ConsistencyCheckResult `json:"consistency_checks,omitempty"`
	Revision          int64                    `json:"revision"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

// NewConfigurationThread starts an empty thread.
func NewConfigurationThread(id string, now time.Time) ConfigurationThread {
	status := SectionStatus{
		Style:         StatusRed,
		Customization: StatusEmpty,
		Delivery:      StatusRed,
	}
	return ConfigurationThread{
		ID:            id,
		State:         OrderBuilderState{Versions: []QuoteVersion{}},
		SectionStatus: status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// LatestLogoAnalysis returns the logo analysis of the most recent handoff carrying one.
func (t ConfigurationThread) LatestLogoAnalysis() (LogoAnalysisResult, bool) {
	for i := len(t.Handoffs) - 1; i >= 0; i-- {
		if t.Handoffs[i].LogoAnalysis != nil {
			return *t.Handoffs[i].LogoAnalysis, true
		}
	}
	return LogoAnalysisResult{}, false
}
