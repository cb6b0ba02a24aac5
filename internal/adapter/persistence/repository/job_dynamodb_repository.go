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
	defaultJobsTableName = "jobs"
	jobsCustomerIDIndex  = "customer_id-index"
)

type addressItem struct {
	Street string `dynamodbav:"street,omitempty"`
	City   string `dynamodbav:"city,omitempty"`
	State  string `dynamodbav:"state,omitempty"`
	Zip    string `dynamodbav:"zip,omitempty"`
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{Street: it.Street, City: it.City, State: it.State, Zip: it.Zip}
}

type jobItem struct {
	ID                    string      `dynamodbav:"id"`
	Title                 string      `dynamodbav:"title"`
	Description           string      `dynamodbav:"description,omitempty"`
	CustomerID            string      `dynamodbav:"customer_id"`
	ContractorID          string      `dynamodbav:"contractor_id,omitempty"`
	Address               addressItem `dynamodbav:"address"`
	SameAsCustomerAddress bool        `dynamodbav:"same_as_customer_address"`
	Status                string      `dynamodbav:"status"`
	Priority              string      `dynamodbav:"priority"`
	PayType               string      `dynamodbav:"pay_type"`
	ScheduledDate         string      `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime         string      `dynamodbav:"scheduled_time,omitempty"`
	StartedAt             string      `dynamodbav:"started_at,omitempty"`
	CompletedAt           string      `dynamodbav:"completed_at,omitempty"`
	CancelledAt           string      `dynamodbav:"cancelled_at,omitempty"`
	CancelledBy           string      `dynamodbav:"cancelled_by,omitempty"`
	CancellationReason    string      `dynamodbav:"cancellation_reason,omitempty"`
	CreatedBy             string      `dynamodbav:"created_by,omitempty"`
	CreatedAt             string      `dynamodbav:"created_at"`
	UpdatedAt             string      `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsCustomerIDIndex),
		KeyConditionExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []jobItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []jobItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                    j.ID,
		Title:                 j.Title,
		Description:           j.Description,
		CustomerID:            j.CustomerID,
		ContractorID:          j.ContractorID,
		Address:               toAddressItem(j.Address),
		SameAsCustomerAddress: j.SameAsCustomerAddress,
		Status:                string(j.Status),
		Priority:              string(j.Priority),
		PayType:               string(j.PayType),
		ScheduledDate:         j.ScheduledDate,
		ScheduledTime:         j.ScheduledTime,
		StartedAt:             timePtrToItem(j.StartedAt),
		CompletedAt:           timePtrToItem(j.CompletedAt),
		CancelledAt:           timePtrToItem(j.CancelledAt),
		CancelledBy:           j.CancelledBy,
		CancellationReason:    j.CancellationReason,
		CreatedBy:             j.CreatedBy,
		CreatedAt:             timeToItem(j.CreatedAt),
		UpdatedAt:             timeToItem(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                    it.ID,
		Title:                 it.Title,
		Description:           it.Description,
		CustomerID:            it.CustomerID,
		ContractorID:          it.ContractorID,
		Address:               fromAddressItem(it.Address),
		SameAsCustomerAddress: it.SameAsCustomerAddress,
		Status:                entities.JobStatus(it.Status),
		Priority:              entities.JobPriority(it.Priority),
		PayType:               entities.PayType(it.PayType),
		ScheduledDate:         it.ScheduledDate,
		ScheduledTime:         it.ScheduledTime,
		StartedAt:             timePtrFromItem(it.StartedAt),
		CompletedAt:           timePtrFromItem(it.CompletedAt),
		CancelledAt:           timePtrFromItem(it.CancelledAt),
		CancelledBy:           it.CancelledBy,
		CancellationReason:    it.CancellationReason,
		CreatedBy:             it.CreatedBy,
		CreatedAt:             timeFromItem(it.CreatedAt),
		UpdatedAt:             timeFromItem(it.UpdatedAt),
	}
}
