package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wearloop/wearloop-backend/internal/logger"
)

// newTestDB opens an in-memory sqlite database with the same column layout
// the gorm models expect. Postgres-only bits (uuid defaults, jsonb) are
// replaced with plain columns; tests always assign ids explicitly.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE "user" (
			id text PRIMARY KEY,
			email text NOT NULL UNIQUE,
			password text NOT NULL,
			role text NOT NULL DEFAULT 'user',
			name text,
			age integer,
			bio text,
			suspended numeric NOT NULL DEFAULT false,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE "category" (
			id text PRIMARY KEY,
			name text NOT NULL UNIQUE,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE "product" (
			id text PRIMARY KEY,
			name text NOT NULL,
			description text,
			price real NOT NULL,
			category_id text,
			created_by_id text NOT NULL,
			listed numeric NOT NULL DEFAULT true,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE "user_interaction" (
			id text PRIMARY KEY,
			user_id text NOT NULL,
			product_id text NOT NULL,
			type text NOT NULL,
			data text,
			created_at datetime
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log
}
