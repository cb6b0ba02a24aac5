package repository

import (
	"context"
	"encoding/json"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type paymentItem struct {
	ID                 string  `dynamodbav:"id"`
	InvoiceID          string  `dynamodbav:"invoice_id"`
	CustomerID         string  `dynamodbav:"customer_id,omitempty"`
	Amount             float64 `dynamodbav:"amount"`
	Status             string  `dynamodbav:"status"`
	CardLastFour       string  `dynamodbav:"card_last_four,omitempty"`
	ProviderPaymentID  string  `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("#invoice_id = :invoice_id"),
		ExpressionAttributeNames: map[string]string{
			"#invoice_id": "invoice_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		CustomerID:         p.CustomerID,
		Amount:             p.Amount,
		Status:             string(p.Status),
		CardLastFour:       p.CardLastFour,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		CreatedAt:          timeToItem(p.CreatedAt),
		UpdatedAt:          timeToItem(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		CustomerID:        it.CustomerID,
		Amount:            it.Amount,
		Status:            entities.PaymentStatus(it.Status),
		CardLastFour:      it.CardLastFour,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         timeFromItem(it.CreatedAt),
		UpdatedAt:         timeFromItem(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
