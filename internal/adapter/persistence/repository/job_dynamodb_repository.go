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

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Status      string `dynamodbav:"status,omitempty"`
	Location    string `dynamodbav:"location,omitempty"`
	StartTime   string `dynamodbav:"startTime,omitempty"`
	EndTime     string `dynamodbav:"endTime,omitempty"`
	ClientID    string `dynamodbav:"clientId,omitempty"`
	UserID      string `dynamodbav:"userId,omitempty"`
	InvoiceID   string `dynamodbav:"invoiceId,omitempty"`
	CreatedAt   string `dynamodbav:"createdAt"`
	UpdatedAt   string `dynamodbav:"updatedAt"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

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
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
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

func (r *JobDynamoRepository) List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
	var filters []scanFilter
	if f.UserID != "" {
		filters = append(filters, scanFilter{attr: "userId", value: f.UserID})
	}
	if f.ClientID != "" {
		filters = append(filters, scanFilter{attr: "clientId", value: f.ClientID})
	}
	if f.Status != "" {
		filters = append(filters, scanFilter{attr: "status", value: f.Status})
	}

	raw, err := scanAll(ctx, r.ddb, r.tableName, filters)
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(raw))
	for _, item := range raw {
		var it jobItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return window(jobs, f.Skip, f.Limit), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, id string, fields map[string]any) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, values, names, err := buildUpdateExpression(fields, now)
	if err != nil {
		return entities.Job{}, err
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
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Status:      string(j.Status),
		Location:    j.Location,
		StartTime:   j.StartTime,
		EndTime:     j.EndTime,
		ClientID:    j.ClientID,
		UserID:      j.UserID,
		InvoiceID:   j.InvoiceID,
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Job{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Status:      entities.JobStatus(it.Status),
		Location:    it.Location,
		StartTime:   it.StartTime,
		EndTime:     it.EndTime,
		ClientID:    it.ClientID,
		UserID:      it.UserID,
		InvoiceID:   it.InvoiceID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
