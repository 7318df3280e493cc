package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultThreadsTableName = "quote_threads"

// threadItem keeps the thread document as JSON next to the attributes the
// conditional writes need.
type threadItem struct {
	ID        string `dynamodbav:"id"`
	Revision  int64  `dynamodbav:"revision"`
	Payload   string `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ThreadDynamoRepository persists ConfigurationThread documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ThreadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IThreadRepository = (*ThreadDynamoRepository)(nil)

func NewThreadDynamoRepository(ddb *dynamodb.Client, tableName string) *ThreadDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("THREADS_TABLE", defaultThreadsTableName)
	}
	return &ThreadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ThreadDynamoRepository) Get(ctx context.Context, id string) (entities.ConfigurationThread, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConfigurationThread{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConfigurationThread{}, nil
	}

	var it threadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConfigurationThread{}, err
	}
	return decodeThread(it.Payload, it.Revision)
}

// Save writes the thread only if the stored revision still matches t.Revision.
func (r *ThreadDynamoRepository) Save(ctx context.Context, t entities.ConfigurationThread) (entities.ConfigurationThread, error) {
	expected := t.Revision
	next, payload, err := encodeThread(t, time.Now().UTC())
	if err != nil {
		return entities.ConfigurationThread{}, err
	}

	av, err := attributevalue.MarshalMap(threadItem{
		ID:        next.ID,
		Revision:  next.Revision,
		Payload:   payload,
		CreatedAt: next.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: next.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.ConfigurationThread{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expected == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		in.ConditionExpression = aws.String("#revision = :expected")
		in.ExpressionAttributeNames = map[string]string{"#revision": "revision"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ConfigurationThread{}, interfaces.ErrRevisionConflict
		}
		return entities.ConfigurationThread{}, err
	}
	return next, nil
}

// encodeThread bumps the revision and timestamps and renders the stored document.
func encodeThread(t entities.ConfigurationThread, now time.Time) (entities.ConfigurationThread, string, error) {
	t.Revision++
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = now
	b, err := json.Marshal(t)
	if err != nil {
		return entities.ConfigurationThread{}, "", err
	}
	return t, string(b), nil
}

func decodeThread(payload string, revision int64) (entities.ConfigurationThread, error) {
	var t entities.ConfigurationThread
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return entities.ConfigurationThread{}, err
	}
	t.Revision = revision
	return t, nil
}
