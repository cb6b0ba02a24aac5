package repository

import (
	"context"
	"errors"
	"strconv"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesJobIDIndex       = "job_id-index"
	invoicesKindIndex        = "kind-index"
)

type invoiceItem struct {
	ID            string  `dynamodbav:"id"`
	Kind          string  `dynamodbav:"kind"`
	InvoiceNumber string  `dynamodbav:"invoice_number"`
	JobID         string  `dynamodbav:"job_id"`
	CustomerID    string  `dynamodbav:"customer_id,omitempty"`
	ContractorID  string  `dynamodbav:"contractor_id,omitempty"`
	QuoteID       string  `dynamodbav:"quote_id,omitempty"`
	Status        string  `dynamodbav:"status"`
	Total         float64 `dynamodbav:"total"`
	DueDate       string  `dynamodbav:"due_date,omitempty"`
	CreatedBy     string  `dynamodbav:"created_by,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities (both kinds) in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: kind-index (PK: kind)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	return r.query(ctx, invoicesJobIDIndex, "job_id", jobID)
}

func (r *InvoiceDynamoRepository) ListByKind(ctx context.Context, kind entities.InvoiceKind) ([]entities.Invoice, error) {
	return r.query(ctx, invoicesKindIndex, "kind", string(kind))
}

func (r *InvoiceDynamoRepository) query(ctx context.Context, index, key, value string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []invoiceItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	invoices := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:            inv.ID,
		Kind:          string(inv.Kind),
		InvoiceNumber: inv.InvoiceNumber,
		JobID:         inv.JobID,
		CustomerID:    inv.CustomerID,
		ContractorID:  inv.ContractorID,
		QuoteID:       inv.QuoteID,
		Status:        string(inv.Status),
		Total:         inv.Total,
		DueDate:       timePtrToItem(inv.DueDate),
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     timeToItem(inv.CreatedAt),
		UpdatedAt:     timeToItem(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:            it.ID,
		Kind:          entities.InvoiceKind(it.Kind),
		InvoiceNumber: it.InvoiceNumber,
		JobID:         it.JobID,
		CustomerID:    it.CustomerID,
		ContractorID:  it.ContractorID,
		QuoteID:       it.QuoteID,
		Status:        entities.InvoiceStatus(it.Status),
		Total:         it.Total,
		DueDate:       timePtrFromItem(it.DueDate),
		CreatedBy:     it.CreatedBy,
		CreatedAt:     timeFromItem(it.CreatedAt),
		UpdatedAt:     timeFromItem(it.UpdatedAt),
	}
}

// InvoiceSequenceDynamoRepository allocates sequential invoice numbers with
// an atomic ADD on a per-kind counter item. The counter survives restarts and
// never hands out the same value twice.
//
// Table requirements:
//   - PK: id (string), items "invoice_seq#customer" / "invoice_seq#contractor"

type InvoiceSequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceSequence = (*InvoiceSequenceDynamoRepository)(nil)

func NewInvoiceSequenceDynamoRepository(ddb *dynamodb.Client) *InvoiceSequenceDynamoRepository {
	return &InvoiceSequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", "counters"),
	}
}

func (r *InvoiceSequenceDynamoRepository) Next(ctx context.Context, kind entities.InvoiceKind) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "invoice_seq#" + string(kind)},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	return strconv.ParseInt(v.Value, 10, 64)
}

var errMissingCounterValue = errors.New("counter item returned no value attribute")
