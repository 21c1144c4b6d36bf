package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// buildUpdateExpression turns a sparse field map into a deterministic SET
// expression. Attribute names are aliased (#f0, #f1, ...) so reserved words
// like "status" and "name" stay safe; keys are sorted so the same map always
// produces the same expression. updatedAt is always set alongside.
func buildUpdateExpression(fields map[string]any, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	values := make(map[string]types.AttributeValue, len(keys)+1)
	names := make(map[string]string, len(keys)+1)
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal update field %q: %w", k, err)
		}
		alias := fmt.Sprintf("f%d", i)
		parts = append(parts, fmt.Sprintf("#%s = :%s", alias, alias))
		names["#"+alias] = k
		values[":"+alias] = av
	}
	parts = append(parts, "#updatedAt = :updatedAt")
	names["#updatedAt"] = "updatedAt"
	values[":updatedAt"] = &types.AttributeValueMemberS{Value: now}

	return "SET " + strings.Join(parts, ", "), values, names, nil
}

// scanFilter is one equality predicate pushed into a Scan FilterExpression.
type scanFilter struct {
	attr  string
	value string
}

// scanAll drains a filtered Scan to exhaustion, following LastEvaluatedKey.
// Listing endpoints need offset pagination, which DynamoDB does not offer
// natively; tables hold a single business's documents, so draining stays
// cheap and the callers window the collected slice instead.
func scanAll(ctx context.Context, ddb *dynamodb.Client, table string, filters []scanFilter) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	if len(filters) > 0 {
		parts := make([]string, 0, len(filters))
		names := make(map[string]string, len(filters))
		values := make(map[string]types.AttributeValue, len(filters))
		for i, f := range filters {
			alias := fmt.Sprintf("f%d", i)
			parts = append(parts, fmt.Sprintf("#%s = :%s", alias, alias))
			names["#"+alias] = f.attr
			values[":"+alias] = &types.AttributeValueMemberS{Value: f.value}
		}
		input.FilterExpression = aws.String(strings.Join(parts, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// window applies skip/limit to an already-sorted result set.
func window[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
