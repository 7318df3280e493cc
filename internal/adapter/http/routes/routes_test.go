package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"capquote/internal/adapter/http/handlers"
	"capquote/internal/adapter/http/handlers/mocks"
	"capquote/internal/config"
	"capquote/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	threads := mocks.NewMockIQuoteThreadUseCase(ctrl)
	checkout := mocks.NewMockIQuoteCheckoutUseCase(ctrl)
	r := NewRouter(handlers.NewQuoteThreadHandler(threads), handlers.NewQuoteCheckoutHandler(checkout))

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("thread routes are mounted under v1", func(t *testing.T) {
		threads.EXPECT().Get(gomock.Any(), "t-1").Return(entities.ConfigurationThread{ID: "t-1"}, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/threads/t-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("payment routes are mounted under v1", func(t *testing.T) {
		checkout.EXPECT().ListPayments(gomock.Any(), "t-1").Return(nil, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/threads/t-1/payments", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOpenStores(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		cfg := config.Config{PersistenceDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "q.db")}
		threads, payments, closeStore, err := openStores(context.Background(), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closeStore()
		if threads == nil || payments == nil {
			t.Fatalf("expected both repositories")
		}
		th, err := threads.Get(context.Background(), "t-1")
		if err != nil || th.ID != "" {
			t.Fatalf("expected empty thread, got %+v err=%v", th, err)
		}
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, _, _, err := openStores(context.Background(), config.Config{PersistenceDriver: "postgres"})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
