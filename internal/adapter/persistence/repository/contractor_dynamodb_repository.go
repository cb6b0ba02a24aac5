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

const defaultContractorsTableName = "contractors"

type contractorItem struct {
	ID            string      `dynamodbav:"id"`
	FirstName     string      `dynamodbav:"first_name"`
	LastName      string      `dynamodbav:"last_name"`
	Email         string      `dynamodbav:"email,omitempty"`
	Phone         string      `dynamodbav:"phone,omitempty"`
	Address       addressItem `dynamodbav:"address"`
	HourlyRate    float64     `dynamodbav:"hourly_rate"`
	FlatRate      float64     `dynamodbav:"flat_rate"`
	TaxID         string      `dynamodbav:"tax_id,omitempty"`
	InsuranceInfo string      `dynamodbav:"insurance_info,omitempty"`
	Active        bool        `dynamodbav:"active"`
	Verified      bool        `dynamodbav:"verified"`
	CreatedBy     string      `dynamodbav:"created_by,omitempty"`
	CreatedAt     string      `dynamodbav:"created_at"`
	UpdatedAt     string      `dynamodbav:"updated_at"`
}

// ContractorDynamoRepository persists Contractor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ContractorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractorRepository = (*ContractorDynamoRepository)(nil)

func NewContractorDynamoRepository(ddb *dynamodb.Client) *ContractorDynamoRepository {
	return &ContractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTORS_TABLE", defaultContractorsTableName),
	}
}

func (r *ContractorDynamoRepository) Create(ctx context.Context, c entities.Contractor) (entities.Contractor, error) {
	av, err := attributevalue.MarshalMap(toContractorItem(c))
	if err != nil {
		return entities.Contractor{}, err
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
		return entities.Contractor{}, err
	}
	return c, nil
}

func (r *ContractorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contractor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contractor{}, nil
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) Update(ctx context.Context, c entities.Contractor) (entities.Contractor, error) {
	av, err := attributevalue.MarshalMap(toContractorItem(c))
	if err != nil {
		return entities.Contractor{}, err
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
		return entities.Contractor{}, err
	}
	return c, nil
}

func (r *ContractorDynamoRepository) List(ctx context.Context) ([]entities.Contractor, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []contractorItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	contractors := make([]entities.Contractor, 0, len(items))
	for _, it := range items {
		contractors = append(contractors, fromContractorItem(it))
	}
	return contractors, nil
}

func toContractorItem(c entities.Contractor) contractorItem {
	return contractorItem{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       toAddressItem(c.Address),
		HourlyRate:    c.HourlyRate,
		FlatRate:      c.FlatRate,
		TaxID:         c.TaxID,
		InsuranceInfo: c.InsuranceInfo,
		Active:        c.Active,
		Verified:      c.Verified,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     timeToItem(c.CreatedAt),
		UpdatedAt:     timeToItem(c.UpdatedAt),
	}
}

func fromContractorItem(it contractorItem) entities.Contractor {
	return entities.Contractor{
		ID:            it.ID,
		FirstName:     it.FirstName,
		LastName:      it.LastName,
		Email:         it.Email,
		Phone:         it.Phone,
		Address:       fromAddressItem(it.Address),
		HourlyRate:    it.HourlyRate,
		FlatRate:      it.FlatRate,
		TaxID:         it.TaxID,
		InsuranceInfo: it.InsuranceInfo,
		Active:        it.Active,
		Verified:      it.Verified,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     timeFromItem(it.CreatedAt),
		UpdatedAt:     timeFromItem(it.UpdatedAt),
	}
}
