package api

import (
	"net/http"
	"testing"

	"github.com/sinascience/portfolio-backend/models"
)

func TestCreateBlogDefaults(t *testing.T) {
	router, _, _ := newTestServer(t)

	req := BlogRequest{
		Title:   strPtr("Shipping a Portfolio CMS"),
		Content: strPtr("some article body with a handful of words in it"),
		Status:  strPtr("published"),
		Tags:    &[]TagRequest{{Name: "Go"}},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/admin/blogs", testSecret, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	created := decodeBody[models.Blog](t, rec)
	if created.Slug != "shipping-a-portfolio-cms" {
		t.Errorf("slug = %q", created.Slug)
	}
	if created.ReadTime != 1 {
		t.Errorf("readTime = %d, want 1", created.ReadTime)
	}
	if created.PublishedAt == nil {
		t.Error("publishedAt not set on publish")
	}
	if len(created.Tags) != 1 || created.Tags[0].Slug != "go" {
		t.Errorf("tags = %+v", created.Tags)
	}
}

func TestCreateBlogRequiresContent(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/blogs", testSecret, BlogRequest{Title: strPtr("no body")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetBlogBySlugBumpsViews(t *testing.T) {
	router, _, _ := newTestServer(t)

	req := BlogRequest{
		Title:   strPtr("Counted"),
		Slug:    strPtr("counted"),
		Content: strPtr("body"),
	}
	if rec := doJSON(t, router, http.MethodPost, "/api/admin/blogs", testSecret, req); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/cms/blogs/counted", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	first := decodeBody[models.Blog](t, rec)
	if first.Views != 1 {
		t.Errorf("views after first read = %d, want 1", first.Views)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cms/blogs/counted", "", nil)
	second := decodeBody[models.Blog](t, rec)
	if second.Views != 2 {
		t.Errorf("views after second read = %d, want 2", second.Views)
	}

	// Admin reads by id must not bump the counter.
	rec = doJSON(t, router, http.MethodGet, "/api/admin/blogs/"+first.ID.String(), testSecret, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin get status = %d", rec.Code)
	}
	adminRead := decodeBody[models.Blog](t, rec)
	if adminRead.Views != 2 {
		t.Errorf("admin read changed views: %d", adminRead.Views)
	}
}

func TestGetBlogBySlugMiss(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/cms/blogs/no-such-post", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateBlogDuplicateSlugConflicts(t *testing.T) {
	router, _, _ := newTestServer(t)

	req := BlogRequest{Title: strPtr("Same"), Slug: strPtr("same"), Content: strPtr("body")}
	if rec := doJSON(t, router, http.MethodPost, "/api/admin/blogs", testSecret, req); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/admin/blogs", testSecret, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate slug status = %d, want 409", rec.Code)
	}
}

func TestUpdateBlogReplacesTags(t *testing.T) {
	router, _, _ := newTestServer(t)

	create := BlogRequest{
		Title:   strPtr("Tagged"),
		Slug:    strPtr("tagged"),
		Content: strPtr("body"),
		Tags:    &[]TagRequest{{Name: "Go"}, {Name: "Redis"}},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/admin/blogs", testSecret, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	created := decodeBody[models.Blog](t, rec)

	update := BlogRequest{Tags: &[]TagRequest{{Name: "Rust"}}}
	rec = doJSON(t, router, http.MethodPatch, "/api/admin/blogs/"+created.ID.String(), testSecret, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}

	updated := decodeBody[models.Blog](t, rec)
	if len(updated.Tags) != 1 || updated.Tags[0].Name != "Rust" {
		t.Errorf("tags = %+v", updated.Tags)
	}
	// Scalars not present in the patch stay put.
	if updated.Title != "Tagged" || updated.Slug != "tagged" {
		t.Errorf("scalars changed: %+v", updated)
	}
}
