package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/sinascience/portfolio-backend/models"
)

func TestCreateExperienceFoldsStructuredDates(t *testing.T) {
	router, _, _ := newTestServer(t)

	start := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	req := ExperienceRequest{
		Title:     strPtr("Backend Engineer"),
		Company:   strPtr("Acme"),
		StartDate: &start,
		Current:   boolPtr(true),
		Achievements: &[]AchievementItemRequest{
			{Text: "Cut API latency in half"},
			{Text: "Introduced structured logging"},
		},
		Skills: &[]ExperienceSkillItemRequest{{Name: "Go"}},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/admin/experiences", testSecret, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	created := decodeBody[models.Experience](t, rec)
	if created.Period != "Jun 2021 - Present" {
		t.Errorf("period = %q", created.Period)
	}
	if len(created.Achievements) != 2 || created.Achievements[0].SortOrder != 0 || created.Achievements[1].SortOrder != 1 {
		t.Errorf("achievements = %+v", created.Achievements)
	}
	if len(created.Skills) != 1 || created.Skills[0].Name != "Go" {
		t.Errorf("skills = %+v", created.Skills)
	}
}

func TestUpdateExperienceExplicitPeriodWins(t *testing.T) {
	router, _, _ := newTestServer(t)

	create := ExperienceRequest{
		Title:   strPtr("Engineer"),
		Company: strPtr("Acme"),
		Period:  strPtr("Jan 2020 - Mar 2023"),
	}
	rec := doJSON(t, router, http.MethodPost, "/api/admin/experiences", testSecret, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	created := decodeBody[models.Experience](t, rec)

	// When both period and structured dates appear, the period string wins.
	start := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	update := ExperienceRequest{
		Period:    strPtr("Feb 2020 - Apr 2023"),
		StartDate: &start,
	}
	rec = doJSON(t, router, http.MethodPatch, "/api/admin/experiences/"+created.ID.String(), testSecret, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody[models.Experience](t, rec)
	if updated.Period != "Feb 2020 - Apr 2023" {
		t.Errorf("period = %q", updated.Period)
	}
	if updated.Title != "Engineer" {
		t.Errorf("title changed: %q", updated.Title)
	}
}

func TestUpdateExperienceReplacesAchievements(t *testing.T) {
	router, _, _ := newTestServer(t)

	create := ExperienceRequest{
		Title:        strPtr("Engineer"),
		Company:      strPtr("Acme"),
		Achievements: &[]AchievementItemRequest{{Text: "old one"}, {Text: "old two"}},
		Skills:       &[]ExperienceSkillItemRequest{{Name: "Go"}},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/admin/experiences", testSecret, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	created := decodeBody[models.Experience](t, rec)

	update := ExperienceRequest{
		Achievements: &[]AchievementItemRequest{{Text: "only new"}},
	}
	rec = doJSON(t, router, http.MethodPut, "/api/admin/experiences/"+created.ID.String(), testSecret, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody[models.Experience](t, rec)
	if len(updated.Achievements) != 1 || updated.Achievements[0].Text != "only new" {
		t.Errorf("achievements = %+v", updated.Achievements)
	}
	// Skills were omitted and stay intact.
	if len(updated.Skills) != 1 || updated.Skills[0].Name != "Go" {
		t.Errorf("skills = %+v", updated.Skills)
	}
}
