package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting value types. Value is always persisted as text; Type dictates how
// it is decoded on read and encoded on write.
const (
	SettingTypeString  = "string"
	SettingTypeNumber  = "number"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// Setting is one row of the generic key-value configuration store.
type Setting struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Key       string    `json:"key" db:"key" gorm:"type:text;not null;uniqueIndex:idx_setting_key"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
	Type      string    `json:"type" db:"type" gorm:"type:text;not null;default:string"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

func (s *Setting) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DecodedValue interprets the stored string per the row's type tag. A value
// that fails to parse falls back to the raw string so a bad row can never
// make a read endpoint error out.
func (s Setting) DecodedValue() any {
	switch s.Type {
	case SettingTypeNumber:
		if n, err := strconv.ParseFloat(s.Value, 64); err == nil {
			return n
		}
		return s.Value
	case SettingTypeBoolean:
		return s.Value == "true"
	case SettingTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(s.Value), &v); err != nil {
			return s.Value
		}
		return v
	default:
		return s.Value
	}
}

// EncodeSettingValue serializes a decoded value into the stored string form
// for the given type tag, symmetric with DecodedValue.
func EncodeSettingValue(value any, settingType string) (string, error) {
	switch settingType {
	case SettingTypeNumber:
		switch n := value.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(n), nil
		case string:
			return n, nil
		default:
			return "", fmt.Errorf("cannot encode %T as number", value)
		}
	case SettingTypeBoolean:
		switch b := value.(type) {
		case bool:
			return strconv.FormatBool(b), nil
		case string:
			return b, nil
		default:
			return "", fmt.Errorf("cannot encode %T as boolean", value)
		}
	case SettingTypeJSON:
		// A string is assumed to already carry serialized JSON (or the raw
		// fallback from a previous failed parse) and is stored verbatim.
		if s, ok := value.(string); ok {
			return s, nil
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	default:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", value), nil
	}
}

// PersonalInfoDefaults are the fallback values for the reserved personal-info
// key subset. The public endpoint merges stored settings over these so it
// never returns a missing field.
func PersonalInfoDefaults() map[string]any {
	return map[string]any{
		"name":              "Sina Anderson",
		"greeting":          "Hi, I'm",
		"profession":        "Full-Stack Developer",
		"short_description": "I build web applications from database to deploy.",
		"bio":               "Software engineer focused on backend systems and developer tooling.",
		"location":          "Jakarta, Indonesia",
		"timezone":          "Asia/Jakarta",
		"profile_photo":     "",
		"resume_url":        "",
		"years_experience":  float64(5),
	}
}

// MergePersonalInfo overlays stored settings onto the defaults. Only keys
// present in the defaults are considered personal info; other settings are
// ignored here.
func MergePersonalInfo(settings []Setting) map[string]any {
	info := PersonalInfoDefaults()
	for _, s := range settings {
		if _, reserved := info[s.Key]; reserved {
			info[s.Key] = s.DecodedValue()
		}
	}
	return info
}

// PersonalInfoKeys returns the reserved key subset in no particular order.
func PersonalInfoKeys() []string {
	defaults := PersonalInfoDefaults()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}
