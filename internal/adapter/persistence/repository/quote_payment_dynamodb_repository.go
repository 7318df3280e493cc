package repository

import (
	"context"
	"sort"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/infrastructure/database"
	"capquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "quote_payments"

type quotePaymentItem struct {
	ID                 string  `dynamodbav:"id"`
	ThreadID           string  `dynamodbav:"thread_id"`
	VersionID          string  `dynamodbav:"version_id"`
	Amount             float64 `dynamodbav:"amount"`
	Date               string  `dynamodbav:"date"`
	Status             string  `dynamodbav:"status"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotePaymentDynamoRepository persists QuotePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: thread_id-index (PK: thread_id)
type QuotePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentDynamoRepository)(nil)

func NewQuotePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotePaymentDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName)
	}
	return &QuotePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotePaymentDynamoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	av, err := attributevalue.MarshalMap(toQuotePaymentItem(p))
	if err != nil {
		return entities.QuotePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

// ListByThreadID returns the thread's payments, newest first.
func (r *QuotePaymentDynamoRepository) ListByThreadID(ctx context.Context, threadID string) ([]entities.QuotePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.PaymentsThreadIDIndex),
		KeyConditionExpression: aws.String("thread_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: threadID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuotePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotePaymentItem(it))
	}
	sortNewestFirst(items)
	return items, nil
}

func toQuotePaymentItem(p entities.QuotePayment) quotePaymentItem {
	return quotePaymentItem{
		ID:                 p.ID,
		ThreadID:           p.ThreadID,
		VersionID:          p.VersionID,
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotePaymentItem(it quotePaymentItem) entities.QuotePayment {
	p := entities.QuotePayment{
		ID:        it.ID,
		ThreadID:  it.ThreadID,
		VersionID: it.VersionID,
		Amount:    it.Amount,
		Date:      parseTime(it.Date),
		Status:    entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}

func sortNewestFirst(items []entities.QuotePayment) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

// timeLayout has fixed-width fractions so stored dates sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
