package database

import (
	"testing"

	"github.com/sinascience/portfolio-backend/models"
)

func TestSettingRepoUpsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingRepo(db)

	if err := repo.Upsert("site_title", "My Portfolio", models.SettingTypeString); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	// Second write for the same key updates in place.
	if err := repo.Upsert("site_title", "New Title", models.SettingTypeString); err != nil {
		t.Fatalf("Upsert again: %v", err)
	}

	setting, err := repo.FindByKey("site_title")
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if setting == nil || setting.Value != "New Title" {
		t.Fatalf("setting = %+v, want value New Title", setting)
	}
	if n := countRows[models.Setting](t, db, "key = ?", "site_title"); n != 1 {
		t.Errorf("setting rows = %d, want 1", n)
	}
}

func TestSettingRepoFindByKeys(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingRepo(db)

	for _, kv := range [][3]string{
		{"name", "Ada", models.SettingTypeString},
		{"years_experience", "12", models.SettingTypeNumber},
		{"unrelated", "x", models.SettingTypeString},
	} {
		if err := repo.Upsert(kv[0], kv[1], kv[2]); err != nil {
			t.Fatalf("Upsert %s: %v", kv[0], err)
		}
	}

	settings, err := repo.FindByKeys([]string{"name", "years_experience", "missing"})
	if err != nil {
		t.Fatalf("FindByKeys: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("settings = %+v, want 2 rows", settings)
	}
}

func TestSettingRepoDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingRepo(db)

	if err := repo.Upsert("temp", "v", models.SettingTypeString); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Delete("temp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	setting, err := repo.FindByKey("temp")
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if setting != nil {
		t.Errorf("setting survived delete: %+v", setting)
	}
}
