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

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID             string       `dynamodbav:"id"`
	FirstName      string       `dynamodbav:"first_name"`
	LastName       string       `dynamodbav:"last_name"`
	Email          string       `dynamodbav:"email,omitempty"`
	Phone          string       `dynamodbav:"phone,omitempty"`
	Address        addressItem  `dynamodbav:"address"`
	BillingAddress *addressItem `dynamodbav:"billing_address,omitempty"`
	CreatedBy      string       `dynamodbav:"created_by,omitempty"`
	CreatedAt      string       `dynamodbav:"created_at"`
	UpdatedAt      string       `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []customerItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	customers := make([]entities.Customer, 0, len(items))
	for _, it := range items {
		customers = append(customers, fromCustomerItem(it))
	}
	return customers, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	it := customerItem{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   toAddressItem(c.Address),
		CreatedBy: c.CreatedBy,
		CreatedAt: timeToItem(c.CreatedAt),
		UpdatedAt: timeToItem(c.UpdatedAt),
	}
	if c.BillingAddress != nil {
		ba := toAddressItem(*c.BillingAddress)
		it.BillingAddress = &ba
	}
	return it
}

func fromCustomerItem(it customerItem) entities.Customer {
	c := entities.Customer{
		ID:        it.ID,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   fromAddressItem(it.Address),
		CreatedBy: it.CreatedBy,
		CreatedAt: timeFromItem(it.CreatedAt),
		UpdatedAt: timeFromItem(it.UpdatedAt),
	}
	if it.BillingAddress != nil {
		ba := fromAddressItem(*it.BillingAddress)
		c.BillingAddress = &ba
	}
	return c
}
