package models

import (
	"reflect"
	"testing"
)

func TestSettingDecodedValue(t *testing.T) {
	cases := []struct {
		name    string
		setting Setting
		want    any
	}{
		{"string", Setting{Value: "hello", Type: SettingTypeString}, "hello"},
		{"number", Setting{Value: "42.5", Type: SettingTypeNumber}, 42.5},
		{"number fallback", Setting{Value: "not-a-number", Type: SettingTypeNumber}, "not-a-number"},
		{"boolean true", Setting{Value: "true", Type: SettingTypeBoolean}, true},
		{"boolean anything else", Setting{Value: "yes", Type: SettingTypeBoolean}, false},
		{"json object", Setting{Value: `{"a":1}`, Type: SettingTypeJSON}, map[string]any{"a": float64(1)}},
		{"json fallback", Setting{Value: `{broken`, Type: SettingTypeJSON}, `{broken`},
		{"unknown type treated as string", Setting{Value: "raw", Type: "mystery"}, "raw"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.setting.DecodedValue()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DecodedValue() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestEncodeSettingValueRoundTrip(t *testing.T) {
	cases := []struct {
		name        string
		value       any
		settingType string
		want        any
	}{
		{"string", "dark", SettingTypeString, "dark"},
		{"number", 12.25, SettingTypeNumber, 12.25},
		{"integer number", 7, SettingTypeNumber, float64(7)},
		{"boolean", true, SettingTypeBoolean, true},
		{"json array", []any{"go", "postgres"}, SettingTypeJSON, []any{"go", "postgres"}},
		{"json object", map[string]any{"a": float64(1)}, SettingTypeJSON, map[string]any{"a": float64(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := EncodeSettingValue(tc.value, tc.settingType)
			if err != nil {
				t.Fatalf("EncodeSettingValue: %v", err)
			}
			decoded := Setting{Value: encoded, Type: tc.settingType}.DecodedValue()
			if !reflect.DeepEqual(decoded, tc.want) {
				t.Fatalf("round trip = %#v, want %#v", decoded, tc.want)
			}
		})
	}
}

func TestEncodeSettingValueRejectsMismatchedTypes(t *testing.T) {
	if _, err := EncodeSettingValue([]any{"x"}, SettingTypeNumber); err == nil {
		t.Fatal("expected error encoding slice as number")
	}
	if _, err := EncodeSettingValue(3.14, SettingTypeBoolean); err == nil {
		t.Fatal("expected error encoding float as boolean")
	}
}

func TestMergePersonalInfo(t *testing.T) {
	merged := MergePersonalInfo([]Setting{
		{Key: "name", Value: "Ada", Type: SettingTypeString},
		{Key: "years_experience", Value: "12", Type: SettingTypeNumber},
		{Key: "unrelated_setting", Value: "ignored", Type: SettingTypeString},
	})

	if merged["name"] != "Ada" {
		t.Errorf("name = %v, want Ada", merged["name"])
	}
	if merged["years_experience"] != float64(12) {
		t.Errorf("years_experience = %v, want 12", merged["years_experience"])
	}
	if _, ok := merged["unrelated_setting"]; ok {
		t.Error("non-reserved key leaked into personal info")
	}

	// Untouched keys keep their defaults.
	defaults := PersonalInfoDefaults()
	if merged["profession"] != defaults["profession"] {
		t.Errorf("profession = %v, want default %v", merged["profession"], defaults["profession"])
	}

	// Every reserved key is present even with no stored settings at all.
	empty := MergePersonalInfo(nil)
	for k := range defaults {
		if _, ok := empty[k]; !ok {
			t.Errorf("missing default key %q", k)
		}
	}
}
