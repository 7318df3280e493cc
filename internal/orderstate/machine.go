// Package orderstate owns the versioned configuration record of a thread:
// merging each turn into it, deriving section statuses, appending priced quote
// versions and validating cross-agent pricing.
//
// A Machine is stateless; every operation works on the ConfigurationThread it
// is handed. Callers must serialize operations on the same thread.
package orderstate

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/normalizer"
	"capquote/internal/reconcile"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrVersionNotFound         = errors.New("quote version not found")
	ErrLogoAnalysisUnavailable = errors.New("no logo analysis recorded for this thread")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrInvalidQuoteCost        = errors.New("quote cost must be positive")
)

// MaxConsistencyChecks bounds the audit trail kept on a thread.
const MaxConsistencyChecks = 20

type Machine struct {
	normalizer *normalizer.Normalizer
	pricing    PricingRules
	now        func() time.Time
	newID      func() string
}

func NewMachine(n *normalizer.Normalizer, pricing PricingRules) *Machine {
	if len(pricing.Breakpoints) == 0 {
		pricing.Breakpoints = DefaultPricing().Breakpoints
	}
	return &Machine{
		normalizer: n,
		pricing:    pricing,
		now:        func() time.Time { return time.Now().UTC() },
		newID: func() string {
			entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
			return ulid.MustNew(ulid.Now(), entropy).String()
		},
	}
}

// Candidates are the specifications produced by one agent turn, already
// normalized. Either may be nil.
type Candidates struct {
	AgentStructured *entities.ProductSpecification
	TextExtracted   *entities.ProductSpecification
}

type IngestResult struct {
	Specification     entities.ProductSpecification `json:"specification"`
	Statuses          entities.SectionStatus        `json:"section_status"`
	NewVersionCreated bool                          `json:"new_version_created"`
	SelectedVersion   *entities.QuoteVersion        `json:"selected_version,omitempty"`
}

// Ingest merges the candidates into the thread's specification, appends a
// quote version when the merged pricing is new and refreshes the statuses.
func (m *Machine) Ingest(t *entities.ConfigurationThread, c Candidates) IngestResult {
	persisted := t.Specification
	merged := reconcile.Merge(reconcile.Sources{
		AgentStructured: c.AgentStructured,
		TextExtracted:   c.TextExtracted,
		Persisted:       &persisted,
	})

	created := false
	if merged.Pricing != nil {
		created = m.appendVersion(t, merged)
	}

	t.Specification = merged
	t.SectionStatus = DeriveStatus(merged, len(t.State.Versions), m.normalizer)
	t.UpdatedAt = m.now()

	res := IngestResult{
		Specification:     merged.Clone(),
		Statuses:          t.SectionStatus,
		NewVersionCreated: created,
	}
	if v, ok := t.State.Selected(); ok {
		res.SelectedVersion = &v
	}
	log.Printf("[orderstate][ingest] thread=%s versions=%d new_version=%t style=%s customization=%s delivery=%s",
		t.ID, len(t.State.Versions), created, t.SectionStatus.Style, t.SectionStatus.Customization, t.SectionStatus.Delivery)
	return res
}

// appendVersion adds a version unless one with the same dedup tuple exists.
// A new version becomes the selection; a duplicate leaves it untouched.
func (m *Machine) appendVersion(t *entities.ConfigurationThread, spec entities.ProductSpecification) bool {
	tuple := entities.NewDedupTuple(*spec.Pricing)
	for _, v := range t.State.Versions {
		if v.Tuple() == tuple {
			log.Printf("[orderstate][version] thread=%s duplicate of version=%s skipped", t.ID, v.ID)
			return false
		}
	}
	seq := len(t.State.Versions) + 1
	v := entities.QuoteVersion{
		ID:             m.newID(),
		SequenceNumber: seq,
		CreatedAt:      m.now(),
		Label:          versionLabel(t.State.Versions, spec, seq),
		Specification:  spec.Clone(),
	}
	t.State.Versions = append(t.State.Versions, v)
	t.State.SelectedVersionID = v.ID
	log.Printf("[orderstate][version] thread=%s version=%s seq=%d label=%q total=%.2f", t.ID, v.ID, seq, v.Label, spec.Pricing.Total)
	return true
}

// versionLabel names a version after its first front logo method.
func versionLabel(existing []entities.QuoteVersion, spec entities.ProductSpecification, seq int) string {
	label := fmt.Sprintf("Version %d", seq)
	for _, le := range spec.Customization.Logos {
		if le.Location == entities.LogoLocationFront {
			label = le.Method.Label()
			break
		}
	}
	for _, v := range existing {
		if v.Label == label {
			return fmt.Sprintf("%s (v%d)", label, seq)
		}
	}
	return label
}

// SelectVersion moves the selection pointer. Versions are never modified.
func (m *Machine) SelectVersion(t *entities.ConfigurationThread, versionID string) (entities.QuoteVersion, error) {
	v, ok := t.State.Find(versionID)
	if !ok {
		return entities.QuoteVersion{}, ErrVersionNotFound
	}
	t.State.SelectedVersionID = v.ID
	t.UpdatedAt = m.now()
	return v, nil
}

// Reset returns a fresh thread under the same id. Revision is carried over so
// the store can still detect a stale writer.
func (m *Machine) Reset(t entities.ConfigurationThread) entities.ConfigurationThread {
	fresh := entities.NewConfigurationThread(t.ID, m.now())
	fresh.Revision = t.Revision
	return fresh
}

// RecordHandoff appends rec to the handoff log. A record carrying a logo
// analysis marks the thread ready for quote generation.
func (m *Machine) RecordHandoff(t *entities.ConfigurationThread, rec entities.HandoffRecord) entities.HandoffRecord {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = m.now()
	}
	t.Handoffs = append(t.Handoffs, rec)
	if rec.LogoAnalysis != nil {
		t.QuoteReady = true
	}
	t.UpdatedAt = m.now()
	return rec
}

// ValidatePricing checks quoteCost against the latest logo analysis and
// records the result in the thread's audit trail.
func (m *Machine) ValidatePricing(t *entities.ConfigurationThread, quantity int, quoteCost float64) (entities.ConsistencyCheckResult, error) {
	if quantity <= 0 {
		return entities.ConsistencyCheckResult{}, ErrInvalidQuantity
	}
	if quoteCost <= 0 {
		return entities.ConsistencyCheckResult{}, ErrInvalidQuoteCost
	}
	analysis, ok := t.LatestLogoAnalysis()
	if !ok {
		return entities.ConsistencyCheckResult{}, ErrLogoAnalysisUnavailable
	}
	res := CheckConsistency(analysis, quantity, quoteCost, m.pricing, m.now())
	res.ID = uuid.NewString()

	t.ConsistencyChecks = append(t.ConsistencyChecks, res)
	if n := len(t.ConsistencyChecks); n > MaxConsistencyChecks {
		t.ConsistencyChecks = append([]entities.ConsistencyCheckResult(nil), t.ConsistencyChecks[n-MaxConsistencyChecks:]...)
	}
	t.UpdatedAt = m.now()

	log.Printf("[orderstate][consistency] thread=%s quantity=%d breakpoint=%d logo_cost=%.2f quote_cost=%.2f discrepancy=%t resolved=%.2f",
		t.ID, quantity, res.Breakpoint, res.LogoAnalysisCost, quoteCost, res.DiscrepancyFound, res.ResolvedCost)
	return res, nil
}

// Status recomputes the section statuses of t.
func (m *Machine) Status(t entities.ConfigurationThread) entities.SectionStatus {
	return DeriveStatus(t.Specification, len(t.State.Versions), m.normalizer)
}
