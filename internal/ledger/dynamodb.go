package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/pribehari/forms-api/internal/aws"
)

// rowItem is one ledger row as stored in DynamoDB. Columns keep the
// spreadsheet order so exports line up with the sheet layout.
type rowItem struct {
	Sheet     string        `dynamodbav:"sheet"`  // PK
	RowID     string        `dynamodbav:"row_id"` // SK, "<timestamp>#<uuid>"
	Columns   []interface{} `dynamodbav:"columns"`
	CreatedAt time.Time     `dynamodbav:"created_at"`
}

// DynamoWriter stores ledger rows in a DynamoDB table, for deployments
// that do not use a spreadsheet.
type DynamoWriter struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewDynamoWriter returns a DynamoWriter bound to tableName.
func NewDynamoWriter(client aws.DynamoDBAPI, tableName string) *DynamoWriter {
	return &DynamoWriter{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Append puts the row as a new item; rows never overwrite each other.
func (w *DynamoWriter) Append(ctx context.Context, sheet string, row Row) error {
	now := w.nowFunc()
	item, err := attributevalue.MarshalMap(rowItem{
		Sheet:     sheet,
		RowID:     Timestamp(now) + "#" + uuid.NewString(),
		Columns:   row,
		CreatedAt: now,
	})
	if err != nil {
		return &WriteError{Sheet: sheet, Err: fmt.Errorf("marshal row: %w", err)}
	}

	_, err = w.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &w.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(row_id)"),
	})
	if err != nil {
		return &WriteError{Sheet: sheet, Err: fmt.Errorf("put item: %w", err)}
	}
	return nil
}

func awsString(s string) *string { return &s }
