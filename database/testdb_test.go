package database

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a per-test in-memory sqlite database and migrates the full
// schema. The shared-cache DSN keeps the database alive across the pooled
// connections GORM opens.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func countRows[T any](t *testing.T, db *gorm.DB, cond string, args ...any) int64 {
	t.Helper()
	var zero T
	var n int64
	q := db.Model(&zero)
	if cond != "" {
		q = q.Where(cond, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
