package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sinascience/portfolio-backend/database"
	"github.com/sinascience/portfolio-backend/services"
)

const (
	testSecret = "test-secret"
	testBucket = "test-bucket"
)

// stubStorage records bucket calls instead of talking to GCS. Delete mirrors
// the real implementation's URL-to-key translation so malformed URLs surface
// the same error.
type stubStorage struct {
	uploads []string
	deletes []string
}

func (s *stubStorage) Upload(_ context.Context, key string, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.uploads = append(s.uploads, key)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", testBucket, key), nil
}

func (s *stubStorage) Delete(_ context.Context, publicURL string) error {
	key, err := services.ObjectKeyFromURL(publicURL, testBucket)
	if err != nil {
		return err
	}
	s.deletes = append(s.deletes, key)
	return nil
}

// newTestServer builds the full router over an in-memory sqlite database and
// a stub bucket, configured the same way main wires the real thing.
func newTestServer(t *testing.T) (http.Handler, database.Database, *stubStorage) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	currentDB := database.New(db)
	storage := &stubStorage{}
	router := newRouter(currentDB, storage, map[string]string{
		"ADMIN_SECRET":     testSecret,
		"ACCEPTED_ORIGINS": "*",
	})
	return router, currentDB, storage
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
