package api

import (
	"net/http"
	"testing"

	"github.com/sinascience/portfolio-backend/database"
)

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/projects", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAdminRoutesRejectWrongToken(t *testing.T) {
	router, db, _ := newTestServer(t)

	title := "should never exist"
	rec := doJSON(t, router, http.MethodPost, "/api/admin/projects", "wrong-secret", ProjectRequest{Title: &title})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	// The rejected request must not have reached persistence.
	projects, err := db.ProjectRepo().FindAll(database.ProjectFilter{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("unauthorized request created %d projects", len(projects))
	}
}

func TestEmptySecretLocksAdminRoutes(t *testing.T) {
	// An unset secret locks every guarded route; even a blank bearer fails.
	am := newAuthMiddleware("")
	handler := am.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := doJSON(t, handler, http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodGet, "/", "anything", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("guessed token status = %d, want 401", rec.Code)
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	router, _, _ := newTestServer(t)

	for _, path := range []string{
		"/api/cms/projects",
		"/api/cms/experiences",
		"/api/cms/blogs",
		"/api/cms/skills",
		"/api/cms/tech-stacks",
		"/api/cms/contact-methods",
		"/api/cms/personal",
	} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestPublicPersonalUpdateIsGuarded(t *testing.T) {
	router, _, _ := newTestServer(t)

	body := map[string]SettingValueRequest{"name": {Value: "Mallory", Type: "string"}}
	rec := doJSON(t, router, http.MethodPut, "/api/cms/personal", "", body)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
