package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	UserID    string `dynamodbav:"userId,omitempty"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context, f interfaces.ClientFilter) ([]entities.Client, error) {
	var filters []scanFilter
	if f.UserID != "" {
		filters = append(filters, scanFilter{attr: "userId", value: f.UserID})
	}

	raw, err := scanAll(ctx, r.ddb, r.tableName, filters)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(raw))
	for _, item := range raw {
		var it clientItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientItem(it))
	}

	sortClientsNewestFirst(clients)
	return window(clients, f.Skip, f.Limit), nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, id string, fields map[string]any) (entities.Client, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, values, names, err := buildUpdateExpression(fields, now)
	if err != nil {
		return entities.Client{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func sortClientsNewestFirst(clients []entities.Client) {
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].CreatedAt.Equal(clients[j].CreatedAt) {
			return clients[i].ID < clients[j].ID
		}
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		UserID:    it.UserID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
