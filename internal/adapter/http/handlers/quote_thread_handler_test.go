package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"capquote/internal/adapter/http/handlers/mocks"
	"capquote/internal/domain/entities"
	"capquote/internal/orderstate"
	"capquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newThreadRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteThreadUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteThreadUseCase(ctrl)
	h := NewQuoteThreadHandler(uc)

	r := gin.New()
	r.GET("/v1/threads/:thread_id", h.GetThread)
	r.DELETE("/v1/threads/:thread_id", h.ResetThread)
	r.POST("/v1/threads/:thread_id/responses", h.IngestResponse)
	r.PATCH("/v1/threads/:thread_id/versions/:version_id/select", h.SelectVersion)
	r.POST("/v1/threads/:thread_id/handoffs", h.RecordHandoff)
	r.POST("/v1/threads/:thread_id/pricing/validate", h.ValidatePricing)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteThreadHandler_GetThread(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().Get(gomock.Any(), "t-1").Return(entities.ConfigurationThread{}, usecase.ErrThreadNotFound)

		w := serve(r, http.MethodGet, "/v1/threads/t-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		th := entities.NewConfigurationThread("t-1", time.Now().UTC())
		th.State.Versions = []entities.QuoteVersion{{ID: "v-1", Label: "Version 1"}}
		th.State.SelectedVersionID = "v-1"
		uc.EXPECT().Get(gomock.Any(), "t-1").Return(th, nil)

		w := serve(r, http.MethodGet, "/v1/threads/t-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		selected, _ := body["selected_version"].(map[string]any)
		if body["thread_id"] != "t-1" || selected["id"] != "v-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteThreadHandler_IngestResponse(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newThreadRouter(t)
		w := serve(r, http.MethodPost, "/v1/threads/t-1/responses", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty response", func(t *testing.T) {
		r, _ := newThreadRouter(t)
		w := serve(r, http.MethodPost, "/v1/threads/t-1/responses", `{"text":"  "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().Ingest(gomock.Any(), "t-1", "Fabric: Cotton Twill", gomock.Nil()).Return(usecase.IngestOutcome{}, usecase.ErrThreadConflict)

		w := serve(r, http.MethodPost, "/v1/threads/t-1/responses", `{"text":"Fabric: Cotton Twill"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with structured specification", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().Ingest(gomock.Any(), "t-1", "", gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ string, structured *entities.ProductSpecification) (usecase.IngestOutcome, error) {
				if structured == nil || structured.Style.Fabric != "Cotton Twill" {
					t.Fatalf("structured specification not forwarded: %+v", structured)
				}
				th := entities.NewConfigurationThread("t-1", time.Now().UTC())
				th.Revision = 1
				return usecase.IngestOutcome{
					Thread: th,
					Result: orderstate.IngestResult{
						Specification: *structured,
						Statuses:      entities.SectionStatus{Style: entities.StatusRed, Customization: entities.StatusEmpty, Delivery: entities.StatusRed},
					},
				}, nil
			},
		)

		w := serve(r, http.MethodPost, "/v1/threads/t-1/responses", `{"structured_specification":{"style":{"fabric":"Cotton Twill"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		status := body["section_status"].(map[string]any)
		if body["revision"] != float64(1) || status["customization"] != "empty" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteThreadHandler_SelectVersion(t *testing.T) {
	t.Run("unknown version", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().SelectVersion(gomock.Any(), "t-1", "v-9").Return(entities.ConfigurationThread{}, orderstate.ErrVersionNotFound)

		w := serve(r, http.MethodPatch, "/v1/threads/t-1/versions/v-9/select", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		th := entities.NewConfigurationThread("t-1", time.Now().UTC())
		th.State.Versions = []entities.QuoteVersion{{ID: "v-1"}, {ID: "v-2"}}
		th.State.SelectedVersionID = "v-1"
		uc.EXPECT().SelectVersion(gomock.Any(), "t-1", "v-1").Return(th, nil)

		w := serve(r, http.MethodPatch, "/v1/threads/t-1/versions/v-1/select", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteThreadHandler_ResetThread(t *testing.T) {
	r, uc := newThreadRouter(t)
	uc.EXPECT().Reset(gomock.Any(), "t-1").Return(entities.NewConfigurationThread("t-1", time.Now().UTC()), nil)

	w := serve(r, http.MethodDelete, "/v1/threads/t-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if versions, ok := body["versions"].([]any); !ok || len(versions) != 0 {
		t.Fatalf("expected empty versions, got %s", w.Body.String())
	}
}

func TestQuoteThreadHandler_RecordHandoff(t *testing.T) {
	t.Run("missing agents", func(t *testing.T) {
		r, _ := newThreadRouter(t)
		w := serve(r, http.MethodPost, "/v1/threads/t-1/handoffs", `{"handoff_type":"logo_analysis"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().RecordHandoff(gomock.Any(), "t-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, rec entities.HandoffRecord) (entities.HandoffRecord, error) {
				if rec.LogoAnalysis == nil || len(rec.LogoAnalysis.Recommendations) != 1 {
					t.Fatalf("logo analysis not forwarded: %+v", rec)
				}
				rec.ID = "h-1"
				return rec, nil
			},
		)

		body := `{"from_agent":"logo-analyzer","to_agent":"quote","handoff_type":"logo_analysis",
			"logo_analysis_result":{"recommendations":[{"location":"Front","method":"3DEmbroidery","price_tiers":[{"quantity":48,"unit_price":1.5}]}]}}`
		w := serve(r, http.MethodPost, "/v1/threads/t-1/handoffs", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteThreadHandler_ValidatePricing(t *testing.T) {
	t.Run("missing quantity", func(t *testing.T) {
		r, _ := newThreadRouter(t)
		w := serve(r, http.MethodPost, "/v1/threads/t-1/pricing/validate", `{"quote_cost":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive quote cost", func(t *testing.T) {
		r, _ := newThreadRouter(t)
		for _, body := range []string{`{"quantity":144}`, `{"quantity":144,"quote_cost":0}`, `{"quantity":144,"quote_cost":-20}`} {
			w := serve(r, http.MethodPost, "/v1/threads/t-1/pricing/validate", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("no logo analysis", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().ValidatePricing(gomock.Any(), "t-1", 144, 100.0).Return(entities.ConsistencyCheckResult{}, orderstate.ErrLogoAnalysisUnavailable)

		w := serve(r, http.MethodPost, "/v1/threads/t-1/pricing/validate", `{"quantity":144,"quote_cost":100}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newThreadRouter(t)
		uc.EXPECT().ValidatePricing(gomock.Any(), "t-1", 144, 100.0).Return(entities.ConsistencyCheckResult{
			ID: "c-1", Quantity: 144, Breakpoint: 144, LogoAnalysisCost: 100, QuoteCost: 100, ResolvedCost: 100,
			ResolutionMethod: entities.ResolutionWithinTolerance, Confidence: 1,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/threads/t-1/pricing/validate", `{"quantity":144,"quote_cost":100}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["resolution_method"] != "within_tolerance" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapThreadError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidThreadID, http.StatusBadRequest},
		{usecase.ErrInvalidVersionID, http.StatusBadRequest},
		{orderstate.ErrInvalidQuantity, http.StatusBadRequest},
		{orderstate.ErrInvalidQuoteCost, http.StatusBadRequest},
		{usecase.ErrEmptyResponse, http.StatusBadRequest},
		{usecase.ErrThreadNotFound, http.StatusNotFound},
		{orderstate.ErrVersionNotFound, http.StatusNotFound},
		{usecase.ErrThreadConflict, http.StatusConflict},
		{orderstate.ErrLogoAnalysisUnavailable, http.StatusUnprocessableEntity},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapThreadError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
