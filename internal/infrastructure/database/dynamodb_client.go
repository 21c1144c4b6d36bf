package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the shared DynamoDB client for the invoicing
// tables (clients, jobs, invoices, users).
//
// Environment variables (all optional, local-friendly defaults):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (e.g. http://dynamodb:8000 for DynamoDB Local)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := loadAWSConfig(context.Background())
	if err != nil {
		log.Fatalf("[database][dynamodb] failed to load aws config: %v", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	// DynamoDB Local accepts any credentials but the SDK insists on having
	// some, so fall back to placeholders when none are configured.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
