package repository

import (
	"context"
	"database/sql"
	"fmt"

	"capquote/internal/domain/entities"
	"capquote/internal/usecase/interfaces"
)

type QuotePaymentSQLRepository struct {
	db *sql.DB
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentSQLRepository)(nil)

func NewQuotePaymentSQLRepository(db *sql.DB) *QuotePaymentSQLRepository {
	return &QuotePaymentSQLRepository{db: db}
}

func (r *QuotePaymentSQLRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	it := toQuotePaymentItem(p)
	var raw sql.NullString
	if it.ProviderPayloadRaw != "" {
		raw = sql.NullString{String: it.ProviderPayloadRaw, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quote_payments (id, thread_id, version_id, amount, status, date, provider_payload_raw) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.ThreadID, it.VersionID, it.Amount, it.Status, it.Date, raw)
	if err != nil {
		return entities.QuotePayment{}, fmt.Errorf("failed to insert payment: %w", err)
	}
	return p, nil
}

func (r *QuotePaymentSQLRepository) ListByThreadID(ctx context.Context, threadID string) ([]entities.QuotePayment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, thread_id, version_id, amount, status, date, provider_payload_raw FROM quote_payments WHERE thread_id = ? ORDER BY date DESC`,
		threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	items := []entities.QuotePayment{}
	for rows.Next() {
		var it quotePaymentItem
		var raw sql.NullString
		if err := rows.Scan(&it.ID, &it.ThreadID, &it.VersionID, &it.Amount, &it.Status, &it.Date, &raw); err != nil {
			return nil, err
		}
		it.ProviderPayloadRaw = raw.String
		items = append(items, fromQuotePaymentItem(it))
	}
	return items, rows.Err()
}
