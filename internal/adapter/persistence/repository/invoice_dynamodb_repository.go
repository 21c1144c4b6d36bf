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

const defaultInvoicesTableName = "invoices"

type invoiceLineItem struct {
	Description string  `dynamodbav:"description,omitempty"`
	Quantity    float64 `dynamodbav:"quantity"`
	Rate        float64 `dynamodbav:"rate"`
}

type invoiceItem struct {
	ID                 string            `dynamodbav:"id"`
	InvoiceNumber      string            `dynamodbav:"invoiceNumber,omitempty"`
	UserID             string            `dynamodbav:"userId,omitempty"`
	ClientID           string            `dynamodbav:"clientId,omitempty"`
	JobID              string            `dynamodbav:"jobId,omitempty"`
	InvoiceTitle       string            `dynamodbav:"invoiceTitle,omitempty"`
	InvoiceDescription string            `dynamodbav:"invoiceDescription,omitempty"`
	IssueDate          string            `dynamodbav:"issueDate,omitempty"`
	DueDate            string            `dynamodbav:"dueDate,omitempty"`
	Status             string            `dynamodbav:"status,omitempty"`
	LineItems          []invoiceLineItem `dynamodbav:"lineItems,omitempty"`
	Total              float64           `dynamodbav:"total,omitempty"`
	CreatedAt          string            `dynamodbav:"createdAt"`
	UpdatedAt          string            `dynamodbav:"updatedAt"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are stored normalized (quantity/rate as numbers); the tolerant
// coercion happens at the JSON boundary before documents reach this layer.

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
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
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

func (r *InvoiceDynamoRepository) List(ctx context.Context, f interfaces.InvoiceFilter) ([]entities.Invoice, error) {
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

	invoices := make([]entities.Invoice, 0, len(raw))
	for _, item := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}

	sort.Slice(invoices, func(i, j int) bool {
		if invoices[i].CreatedAt.Equal(invoices[j].CreatedAt) {
			return invoices[i].ID < invoices[j].ID
		}
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return window(invoices, f.Skip, f.Limit), nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, id string, fields map[string]any) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, values, names, err := buildUpdateExpression(normalizeInvoiceFields(fields), now)
	if err != nil {
		return entities.Invoice{}, err
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
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

// normalizeInvoiceFields maps entity-typed update values onto their storage
// representation so attribute names and number encoding match what Create
// writes. The caller's map is left untouched.
func normalizeInvoiceFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch t := v.(type) {
		case []entities.LineItem:
			out[k] = toInvoiceLineItems(t)
		case entities.Number:
			out[k] = t.Float()
		case entities.InvoiceStatus:
			out[k] = string(t)
		default:
			out[k] = v
		}
	}
	return out
}

func toInvoiceLineItems(items []entities.LineItem) []invoiceLineItem {
	if items == nil {
		return nil
	}
	out := make([]invoiceLineItem, 0, len(items))
	for _, li := range items {
		out = append(out, invoiceLineItem{
			Description: li.Description,
			Quantity:    li.Quantity.Float(),
			Rate:        li.Rate.Float(),
		})
	}
	return out
}

func fromInvoiceLineItems(items []invoiceLineItem) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, li := range items {
		out = append(out, entities.LineItem{
			Description: li.Description,
			Quantity:    entities.Number(li.Quantity),
			Rate:        entities.Number(li.Rate),
		})
	}
	return out
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:                 inv.ID,
		InvoiceNumber:      inv.InvoiceNumber,
		UserID:             inv.UserID,
		ClientID:           inv.ClientID,
		JobID:              inv.JobID,
		InvoiceTitle:       inv.InvoiceTitle,
		InvoiceDescription: inv.InvoiceDescription,
		IssueDate:          inv.IssueDate,
		DueDate:            inv.DueDate,
		Status:             string(inv.Status),
		LineItems:          toInvoiceLineItems(inv.LineItems),
		Total:              inv.Total.Float(),
		CreatedAt:          inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Invoice{
		ID:                 it.ID,
		InvoiceNumber:      it.InvoiceNumber,
		UserID:             it.UserID,
		ClientID:           it.ClientID,
		JobID:              it.JobID,
		InvoiceTitle:       it.InvoiceTitle,
		InvoiceDescription: it.InvoiceDescription,
		IssueDate:          it.IssueDate,
		DueDate:            it.DueDate,
		Status:             entities.InvoiceStatus(it.Status),
		LineItems:          fromInvoiceLineItems(it.LineItems),
		Total:              entities.Number(it.Total),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
