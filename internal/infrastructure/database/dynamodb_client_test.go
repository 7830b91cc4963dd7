package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig_UsesStaticCredentials(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBSettings{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %s", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestConnectDynamoDB_WithEndpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), DynamoDBSettings{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil || client == nil {
		t.Fatalf("expected client, got %v", err)
	}
}
