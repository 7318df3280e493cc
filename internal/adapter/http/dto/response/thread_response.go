package response

import (
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/extractor"
	"capquote/internal/usecase"
)

type ThreadResponse struct {
	ThreadID          string                            `json:"thread_id"`
	Specification     entities.ProductSpecification     `json:"specification"`
	SectionStatus     entities.SectionStatus            `json:"section_status"`
	Versions          []entities.QuoteVersion           `json:"versions"`
	SelectedVersion   *entities.QuoteVersion            `json:"selected_version,omitempty"`
	QuoteReady        bool                              `json:"quote_ready"`
	Handoffs          []entities.HandoffRecord          `json:"handoffs"`
	ConsistencyChecks []entities.ConsistencyCheckResult `json:"consistency_checks"`
	Revision          int64                             `json:"revision"`
	CreatedAt         time.Time                         `json:"created_at"`
	UpdatedAt         time.Time                         `json:"updated_at"`
}

func FromThread(t entities.ConfigurationThread) ThreadResponse {
	res := ThreadResponse{
		ThreadID:          t.ID,
		Specification:     t.Specification,
		SectionStatus:     t.SectionStatus,
		Versions:          t.State.Versions,
		QuoteReady:        t.QuoteReady,
		Handoffs:          t.Handoffs,
		ConsistencyChecks: t.ConsistencyChecks,
		Revision:          t.Revision,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if res.Versions == nil {
		res.Versions = []entities.QuoteVersion{}
	}
	if res.Handoffs == nil {
		res.Handoffs = []entities.HandoffRecord{}
	}
	if res.ConsistencyChecks == nil {
		res.ConsistencyChecks = []entities.ConsistencyCheckResult{}
	}
	if v, ok := t.State.Selected(); ok {
		res.SelectedVersion = &v
	}
	return res
}

// IngestResponse is what one agent turn changed, plus the extraction trace
// when text was supplied.
type IngestResponse struct {
	ThreadID          string                        `json:"thread_id"`
	Specification     entities.ProductSpecification `json:"specification"`
	SectionStatus     entities.SectionStatus        `json:"section_status"`
	NewVersionCreated bool                          `json:"new_version_created"`
	SelectedVersion   *entities.QuoteVersion        `json:"selected_version,omitempty"`
	VersionCount      int                           `json:"version_count"`
	Revision          int64                         `json:"revision"`
	Extraction        *extractor.Result             `json:"extraction,omitempty"`
}

func FromIngestOutcome(o usecase.IngestOutcome) IngestResponse {
	return IngestResponse{
		ThreadID:          o.Thread.ID,
		Specification:     o.Result.Specification,
		SectionStatus:     o.Result.Statuses,
		NewVersionCreated: o.Result.NewVersionCreated,
		SelectedVersion:   o.Result.SelectedVersion,
		VersionCount:      len(o.Thread.State.Versions),
		Revision:          o.Thread.Revision,
		Extraction:        o.Extraction,
	}
}
