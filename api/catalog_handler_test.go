package api

import (
	"net/http"
	"testing"

	"github.com/sinascience/portfolio-backend/models"
)

func TestSkillCRUD(t *testing.T) {
	router, _, _ := newTestServer(t)

	create := SkillRequest{
		Title:       strPtr("Backend Development"),
		Category:    strPtr("engineering"),
		Proficiency: strPtr("expert"),
	}
	rec := doJSON(t, router, http.MethodPost, "/api/admin/skills", testSecret, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[models.Skill](t, rec)

	update := SkillRequest{Proficiency: strPtr("intermediate")}
	rec = doJSON(t, router, http.MethodPatch, "/api/admin/skills/"+created.ID.String(), testSecret, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}
	updated := decodeBody[models.Skill](t, rec)
	if updated.Proficiency != "intermediate" || updated.Title != "Backend Development" {
		t.Errorf("updated = %+v", updated)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/admin/skills/"+created.ID.String(), testSecret, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cms/skills", "", nil)
	skills := decodeBody[[]models.Skill](t, rec)
	if len(skills) != 0 {
		t.Errorf("skills after delete = %+v", skills)
	}
}

func TestCreateTechStackRequiresName(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/tech-stacks", testSecret, TechStackRequest{Color: strPtr("#00ADD8")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateContactMethodRequiresLabelAndValue(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/contact-methods", testSecret, ContactMethodRequest{Label: strPtr("Email")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/admin/contact-methods", testSecret, ContactMethodRequest{
		Label: strPtr("Email"),
		Value: strPtr("hi@example.com"),
		Href:  strPtr("mailto:hi@example.com"),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[models.ContactMethod](t, rec)
	if created.Href != "mailto:hi@example.com" {
		t.Errorf("created = %+v", created)
	}
}
