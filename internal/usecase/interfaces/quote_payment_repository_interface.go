package interfaces

import (
	"context"

	"capquote/internal/domain/entities"
)

// IQuotePaymentRepository persists deposits paid against quote versions.
type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	ListByThreadID(ctx context.Context, threadID string) ([]entities.QuotePayment, error)
}
