package request

import (
	"errors"
	"strings"

	"capquote/internal/domain/entities"
)

var ErrEmptyAgentResponse = errors.New("text or structured_specification is required")

// IngestResponseRequest is one agent turn: the text shown to the customer and,
// when the agent produced one, its structured payload.
type IngestResponseRequest struct {
	Text                    string                         `json:"text"`
	StructuredSpecification *entities.ProductSpecification `json:"structured_specification"`
}

func (r IngestResponseRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" && r.StructuredSpecification == nil {
		return ErrEmptyAgentResponse
	}
	return nil
}

type HandoffRequest struct {
	FromAgent          string                       `json:"from_agent" binding:"required"`
	ToAgent            string                       `json:"to_agent" binding:"required"`
	HandoffType        entities.HandoffType         `json:"handoff_type" binding:"required"`
	LogoAnalysisResult *entities.LogoAnalysisResult `json:"logo_analysis_result"`
}

func (r HandoffRequest) ToEntity() entities.HandoffRecord {
	return entities.HandoffRecord{
		FromAgent:    strings.TrimSpace(r.FromAgent),
		ToAgent:      strings.TrimSpace(r.ToAgent),
		HandoffType:  entities.HandoffType(strings.TrimSpace(string(r.HandoffType))),
		LogoAnalysis: r.LogoAnalysisResult,
	}
}

type ValidatePricingRequest struct {
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	QuoteCost float64 `json:"quote_cost" binding:"required,gt=0"`
}
