package repository

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"capquote/internal/config"
	"capquote/internal/domain/entities"
	"capquote/internal/infrastructure/database"
	"capquote/internal/usecase/interfaces"
)

func newSQLiteDB(t *testing.T) *ThreadSQLRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := MigrateSQL(context.Background(), db, config.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewThreadSQLRepository(db, config.DriverSQLite)
}

func TestThreadSQLRepository_GetMissing(t *testing.T) {
	repo := newSQLiteDB(t)
	th, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.ID != "" {
		t.Fatalf("expected empty thread, got %+v", th)
	}
}

func TestThreadSQLRepository_SaveAndRevisions(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteDB(t)

	th := entities.NewConfigurationThread("t-1", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	th.Specification.Style.Fabric = "Chino Twill"
	th.State.Versions = append(th.State.Versions, entities.QuoteVersion{
		ID:             "v-1",
		SequenceNumber: 1,
		Label:          "Version 1",
		Specification:  entities.ProductSpecification{Pricing: &entities.Pricing{Total: 450, Quantity: 144}},
	})
	th.State.SelectedVersionID = "v-1"

	saved, err := repo.Save(ctx, th)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if saved.Revision != 1 {
		t.Fatalf("expected revision 1, got %d", saved.Revision)
	}

	t.Run("second insert of a new thread conflicts", func(t *testing.T) {
		_, err := repo.Save(ctx, th)
		if !errors.Is(err, interfaces.ErrRevisionConflict) {
			t.Fatalf("expected ErrRevisionConflict, got %v", err)
		}
	})

	loaded, err := repo.Get(ctx, "t-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Revision != 1 || loaded.Specification.Style.Fabric != "Chino Twill" {
		t.Fatalf("unexpected loaded thread: %+v", loaded)
	}
	if v, ok := loaded.State.Selected(); !ok || v.Specification.Pricing.Total != 450 {
		t.Fatalf("selected version lost: %+v", loaded.State)
	}

	loaded.QuoteReady = true
	updated, err := repo.Save(ctx, loaded)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", updated.Revision)
	}

	t.Run("stale revision conflicts", func(t *testing.T) {
		_, err := repo.Save(ctx, loaded)
		if !errors.Is(err, interfaces.ErrRevisionConflict) {
			t.Fatalf("expected ErrRevisionConflict, got %v", err)
		}
	})

	final, err := repo.Get(ctx, "t-1")
	if err != nil || !final.QuoteReady || final.Revision != 2 {
		t.Fatalf("unexpected final thread err=%v thread=%+v", err, final)
	}
}

func TestQuotePaymentSQLRepository(t *testing.T) {
	ctx := context.Background()
	threads := newSQLiteDB(t)
	repo := NewQuotePaymentSQLRepository(threads.db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := entities.QuotePayment{ID: "p-1", ThreadID: "t-1", VersionID: "v-1", Amount: 450, Status: entities.PaymentStatusPending, Date: base}
	newer := entities.QuotePayment{
		ID: "p-2", ThreadID: "t-1", VersionID: "v-2", Amount: 460, Status: entities.PaymentStatusApproved,
		Date: base.Add(90 * time.Millisecond), ProviderPayloadRaw: json.RawMessage(`{"id":2}`),
	}
	other := entities.QuotePayment{ID: "p-3", ThreadID: "t-2", VersionID: "v-1", Amount: 10, Status: entities.PaymentStatusApproved, Date: base}

	for _, p := range []entities.QuotePayment{older, newer, other} {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.ID, err)
		}
	}

	t.Run("duplicate id fails", func(t *testing.T) {
		if _, err := repo.Create(ctx, older); err == nil {
			t.Fatalf("expected duplicate insert to fail")
		}
	})

	list, err := repo.ListByThreadID(ctx, "t-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "p-2" || list[1].ID != "p-1" {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if !list[0].Date.Equal(newer.Date) || string(list[0].ProviderPayloadRaw) != `{"id":2}` {
		t.Fatalf("payment not round-tripped: %+v", list[0])
	}
	if list[1].ProviderPayloadRaw != nil {
		t.Fatalf("expected no provider payload, got %s", list[1].ProviderPayloadRaw)
	}

	empty, err := repo.ListByThreadID(ctx, "t-9")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list err=%v list=%+v", err, empty)
	}
}

func TestMigrateSQL_UnsupportedDriver(t *testing.T) {
	repo := newSQLiteDB(t)
	if err := MigrateSQL(context.Background(), repo.db, "postgres"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Now().UTC()
	items := []entities.QuotePayment{{ID: "a", Date: base}, {ID: "b", Date: base.Add(time.Second)}}
	sortNewestFirst(items)
	if items[0].ID != "b" {
		t.Fatalf("expected b first, got %+v", items)
	}
}
