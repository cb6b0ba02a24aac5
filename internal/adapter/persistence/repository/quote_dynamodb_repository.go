package repository

import (
	"context"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesJobIDIndex       = "job_id-index"
)

type quoteItem struct {
	ID         string `dynamodbav:"id"`
	JobID      string `dynamodbav:"job_id"`
	CustomerID string `dynamodbav:"customer_id"`
	Status     string `dynamodbav:"status"`

	HourlyRate     *float64 `dynamodbav:"hourly_rate,omitempty"`
	EstimatedHours *float64 `dynamodbav:"estimated_hours,omitempty"`
	FlatAmount     *float64 `dynamodbav:"flat_amount,omitempty"`
	MaterialsCost  *float64 `dynamodbav:"materials_cost,omitempty"`
	InputTaxRate   *float64 `dynamodbav:"input_tax_rate,omitempty"`
	InputTaxAmount *float64 `dynamodbav:"input_tax_amount,omitempty"`

	Subtotal  float64 `dynamodbav:"subtotal"`
	TaxRate   float64 `dynamodbav:"tax_rate"`
	TaxAmount float64 `dynamodbav:"tax_amount"`
	Total     float64 `dynamodbav:"total"`

	ValidUntil      string `dynamodbav:"valid_until,omitempty"`
	SentAt          string `dynamodbav:"sent_at,omitempty"`
	RespondedAt     string `dynamodbav:"responded_at,omitempty"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`

	CreatedBy string `dynamodbav:"created_by,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesJobIDIndex),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	quotes := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:         q.ID,
		JobID:      q.JobID,
		CustomerID: q.CustomerID,
		Status:     string(q.Status),

		HourlyRate:     q.Input.HourlyRate,
		EstimatedHours: q.Input.EstimatedHours,
		FlatAmount:     q.Input.FlatAmount,
		MaterialsCost:  q.Input.MaterialsCost,
		InputTaxRate:   q.Input.TaxRate,
		InputTaxAmount: q.Input.TaxAmount,

		Subtotal:  q.Totals.Subtotal,
		TaxRate:   q.Totals.TaxRate,
		TaxAmount: q.Totals.TaxAmount,
		Total:     q.Totals.Total,

		ValidUntil:      timePtrToItem(q.ValidUntil),
		SentAt:          timePtrToItem(q.SentAt),
		RespondedAt:     timePtrToItem(q.RespondedAt),
		RejectionReason: q.RejectionReason,

		CreatedBy: q.CreatedBy,
		CreatedAt: timeToItem(q.CreatedAt),
		UpdatedAt: timeToItem(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:         it.ID,
		JobID:      it.JobID,
		CustomerID: it.CustomerID,
		Status:     entities.QuoteStatus(it.Status),

		Input: entities.PricingInput{
			HourlyRate:     it.HourlyRate,
			EstimatedHours: it.EstimatedHours,
			FlatAmount:     it.FlatAmount,
			MaterialsCost:  it.MaterialsCost,
			TaxRate:        it.InputTaxRate,
			TaxAmount:      it.InputTaxAmount,
		},
		Totals: entities.Totals{
			Subtotal:  it.Subtotal,
			TaxRate:   it.TaxRate,
			TaxAmount: it.TaxAmount,
			Total:     it.Total,
		},

		ValidUntil:      timePtrFromItem(it.ValidUntil),
		SentAt:          timePtrFromItem(it.SentAt),
		RespondedAt:     timePtrFromItem(it.RespondedAt),
		RejectionReason: it.RejectionReason,

		CreatedBy: it.CreatedBy,
		CreatedAt: timeFromItem(it.CreatedAt),
		UpdatedAt: timeFromItem(it.UpdatedAt),
	}
}
