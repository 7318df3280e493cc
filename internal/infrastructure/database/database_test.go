package database

import (
	"context"
	"path/filepath"
	"testing"

	"capquote/internal/config"
)

func TestMySQLDSN(t *testing.T) {
	got := MySQLDSN(config.MySQLConfig{User: "root", Password: "pwd", Host: "tcp(localhost:3306)", Database: "capquote"})
	if got != "root:pwd@tcp(localhost:3306)/capquote?parseTime=true" {
		t.Fatalf("unexpected dsn: %s", got)
	}
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quotes.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	var mode string
	if err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("expected wal journal mode, got %q", mode)
	}
}

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID == "" {
		t.Fatalf("expected static credentials, got %+v err=%v", creds, err)
	}
}
