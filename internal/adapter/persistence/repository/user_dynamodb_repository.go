package repository

import (
	"context"
	"errors"
	"strconv"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID                string  `dynamodbav:"id"`
	BusinessName      string  `dynamodbav:"businessName,omitempty"`
	BusinessEmail     string  `dynamodbav:"businessEmail,omitempty"`
	BusinessPhone     string  `dynamodbav:"businessPhone,omitempty"`
	BusinessAddress   string  `dynamodbav:"businessAddress,omitempty"`
	BusinessCategory  string  `dynamodbav:"businessCategory,omitempty"`
	HourlyRate        float64 `dynamodbav:"hourlyRate,omitempty"`
	LastInvoiceNumber int64   `dynamodbav:"lastInvoiceNumber,omitempty"`
}

// UserDynamoRepository reads business profiles from DynamoDB. Profiles are
// written by the onboarding stack; this service only reads them and advances
// the per-user invoice counter.
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// NextInvoiceNumber atomically advances the user's invoice counter and
// returns the new value. The counter seeds at 1000 so the first assigned
// number is 1001. A missing profile yields 0 with no error; concurrent
// callers each receive a distinct value.
func (r *UserDynamoRepository) NextInvoiceNumber(ctx context.Context, id string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #n = if_not_exists(#n, :base) + :one"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#n":  "lastInvoiceNumber",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":base": &types.AttributeValueMemberN{Value: "1000"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, nil
		}
		return 0, err
	}

	attr, ok := out.Attributes["lastInvoiceNumber"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:                it.ID,
		BusinessName:      it.BusinessName,
		BusinessEmail:     it.BusinessEmail,
		BusinessPhone:     it.BusinessPhone,
		BusinessAddress:   it.BusinessAddress,
		BusinessCategory:  it.BusinessCategory,
		HourlyRate:        entities.Number(it.HourlyRate),
		LastInvoiceNumber: it.LastInvoiceNumber,
	}
}
