package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/extractor"
	"capquote/internal/normalizer"
	"capquote/internal/orderstate"
	"capquote/internal/usecase/interfaces"
)

var (
	ErrInvalidThreadID  = errors.New("invalid thread_id")
	ErrThreadNotFound   = errors.New("configuration thread not found")
	ErrEmptyResponse    = errors.New("agent response has no text and no structured specification")
	ErrThreadConflict   = interfaces.ErrRevisionConflict
	ErrInvalidVersionID = errors.New("invalid version_id")
)

// IQuoteThreadUseCase exposes the configuration thread operations:
//   - Ingest: one agent response (text + optional structured payload) merged into the thread
//   - SelectVersion / Reset: version pointer and "start over"
//   - RecordHandoff / ValidatePricing: cross-agent handoff log and price check
type IQuoteThreadUseCase interface {
	Ingest(ctx context.Context, threadID, text string, structured *entities.ProductSpecification) (IngestOutcome, error)
	Get(ctx context.Context, threadID string) (entities.ConfigurationThread, error)
	SelectVersion(ctx context.Context, threadID, versionID string) (entities.ConfigurationThread, error)
	Reset(ctx context.Context, threadID string) (entities.ConfigurationThread, error)
	RecordHandoff(ctx context.Context, threadID string, rec entities.HandoffRecord) (entities.HandoffRecord, error)
	ValidatePricing(ctx context.Context, threadID string, quantity int, quoteCost float64) (entities.ConsistencyCheckResult, error)
}

// IngestOutcome is the saved thread plus what this turn changed.
type IngestOutcome struct {
	Thread     entities.ConfigurationThread
	Result     orderstate.IngestResult
	Extraction *extractor.Result
}

type QuoteThreadUseCase struct {
	repo       interfaces.IThreadRepository
	extractor  *extractor.Extractor
	normalizer *normalizer.Normalizer
	machine    *orderstate.Machine
	locks      *threadLocks
}

var _ IQuoteThreadUseCase = (*QuoteThreadUseCase)(nil)

func NewQuoteThreadUseCase(repo interfaces.IThreadRepository, ex *extractor.Extractor, n *normalizer.Normalizer, m *orderstate.Machine) *QuoteThreadUseCase {
	return &QuoteThreadUseCase{
		repo:       repo,
		extractor:  ex,
		normalizer: n,
		machine:    m,
		locks:      newThreadLocks(),
	}
}

func (u *QuoteThreadUseCase) Ingest(ctx context.Context, threadID, text string, structured *entities.ProductSpecification) (IngestOutcome, error) {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return IngestOutcome{}, ErrInvalidThreadID
	}
	if strings.TrimSpace(text) == "" && structured == nil {
		log.Printf("[thread][usecase] ingest rejected (empty response) thread_id=%s", threadID)
		return IngestOutcome{}, ErrEmptyResponse
	}
	log.Printf("[thread][usecase] ingest start thread_id=%s text_len=%d structured=%t", threadID, len(text), structured != nil)

	unlock := u.locks.lock(threadID)
	defer unlock()

	t, err := u.load(ctx, threadID, true)
	if err != nil {
		return IngestOutcome{}, err
	}

	var out IngestOutcome
	var candidates orderstate.Candidates
	if strings.TrimSpace(text) != "" {
		res := u.extractor.Extract(text)
		spec := u.normalizer.Normalize(res.Specification)
		candidates.TextExtracted = &spec
		out.Extraction = &res
	}
	if structured != nil {
		spec := u.normalizer.Normalize(*structured)
		candidates.AgentStructured = &spec
	}

	out.Result = u.machine.Ingest(&t, candidates)
	saved, err := u.save(ctx, t)
	if err != nil {
		return IngestOutcome{}, err
	}
	out.Thread = saved
	log.Printf("[thread][usecase] ingest success thread_id=%s revision=%d new_version=%t", threadID, saved.Revision, out.Result.NewVersionCreated)
	return out, nil
}

func (u *QuoteThreadUseCase) Get(ctx context.Context, threadID string) (entities.ConfigurationThread, error) {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return entities.ConfigurationThread{}, ErrInvalidThreadID
	}
	return u.load(ctx, threadID, false)
}

func (u *QuoteThreadUseCase) SelectVersion(ctx context.Context, threadID, versionID string) (entities.ConfigurationThread, error) {
	threadID = strings.TrimSpace(threadID)
	versionID = strings.TrimSpace(versionID)
	if threadID == "" {
		return entities.ConfigurationThread{}, ErrInvalidThreadID
	}
	if versionID == "" {
		return entities.ConfigurationThread{}, ErrInvalidVersionID
	}

	unlock := u.locks.lock(threadID)
	defer unlock()

	t, err := u.load(ctx, threadID, false)
	if err != nil {
		return entities.ConfigurationThread{}, err
	}
	if _, err := u.machine.SelectVersion(&t, versionID); err != nil {
		log.Printf("[thread][usecase] select version failed thread_id=%s version_id=%s err=%v", threadID, versionID, err)
		return entities.ConfigurationThread{}, err
	}
	log.Printf("[thread][usecase] version selected thread_id=%s version_id=%s", threadID, versionID)
	return u.save(ctx, t)
}

// Reset discards the thread's configuration and versions. Resetting an
// unknown thread stores a fresh one.
func (u *QuoteThreadUseCase) Reset(ctx context.Context, threadID string) (entities.ConfigurationThread, error) {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return entities.ConfigurationThread{}, ErrInvalidThreadID
	}

	unlock := u.locks.lock(threadID)
	defer unlock()

	t, err := u.load(ctx, threadID, true)
	if err != nil {
		return entities.ConfigurationThread{}, err
	}
	log.Printf("[thread][usecase] reset thread_id=%s discarded_versions=%d", threadID, len(t.State.Versions))
	return u.save(ctx, u.machine.Reset(t))
}

// RecordHandoff may arrive before the first ingested response, so an unknown
// thread is started.
func (u *QuoteThreadUseCase) RecordHandoff(ctx context.Context, threadID string, rec entities.HandoffRecord) (entities.HandoffRecord, error) {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return entities.HandoffRecord{}, ErrInvalidThreadID
	}

	unlock := u.locks.lock(threadID)
	defer unlock()

	t, err := u.load(ctx, threadID, true)
	if err != nil {
		return entities.HandoffRecord{}, err
	}
	rec = u.machine.RecordHandoff(&t, rec)
	if _, err := u.save(ctx, t); err != nil {
		return entities.HandoffRecord{}, err
	}
	log.Printf("[thread][usecase] handoff recorded thread_id=%s type=%s from=%s to=%s logo_analysis=%t",
		threadID, rec.HandoffType, rec.FromAgent, rec.ToAgent, rec.LogoAnalysis != nil)
	return rec, nil
}

// ValidatePricing stores the check in the thread's audit trail. It never
// touches the specification or the versions.
func (u *QuoteThreadUseCase) ValidatePricing(ctx context.Context, threadID string, quantity int, quoteCost float64) (entities.ConsistencyCheckResult, error) {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return entities.ConsistencyCheckResult{}, ErrInvalidThreadID
	}
	if quantity <= 0 {
		return entities.ConsistencyCheckResult{}, orderstate.ErrInvalidQuantity
	}
	if quoteCost <= 0 {
		return entities.ConsistencyCheckResult{}, orderstate.ErrInvalidQuoteCost
	}

	unlock := u.locks.lock(threadID)
	defer unlock()

	t, err := u.load(ctx, threadID, false)
	if err != nil {
		return entities.ConsistencyCheckResult{}, err
	}
	res, err := u.machine.ValidatePricing(&t, quantity, quoteCost)
	if err != nil {
		return entities.ConsistencyCheckResult{}, err
	}
	if _, err := u.save(ctx, t); err != nil {
		return entities.ConsistencyCheckResult{}, err
	}
	return res, nil
}

// load fetches the thread; with create it starts a new one instead of
// reporting ErrThreadNotFound.
func (u *QuoteThreadUseCase) load(ctx context.Context, threadID string, create bool) (entities.ConfigurationThread, error) {
	t, err := u.repo.Get(ctx, threadID)
	if err != nil {
		log.Printf("[thread][usecase] failed loading thread thread_id=%s err=%v", threadID, err)
		return entities.ConfigurationThread{}, err
	}
	if t.ID != "" {
		return t, nil
	}
	if !create {
		return entities.ConfigurationThread{}, ErrThreadNotFound
	}
	log.Printf("[thread][usecase] starting new thread thread_id=%s", threadID)
	return entities.NewConfigurationThread(threadID, time.Now().UTC()), nil
}

func (u *QuoteThreadUseCase) save(ctx context.Context, t entities.ConfigurationThread) (entities.ConfigurationThread, error) {
	saved, err := u.repo.Save(ctx, t)
	if err != nil {
		log.Printf("[thread][usecase] failed saving thread thread_id=%s revision=%d err=%v", t.ID, t.Revision, err)
		return entities.ConfigurationThread{}, err
	}
	return saved, nil
}
