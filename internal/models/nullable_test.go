package models

import (
	"encoding/json"
	"testing"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{
			name:      "field present with string value",
			json:      `{"notes": "slept badly"}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "slept badly",
		},
		{
			name:      "field present with null value",
			json:      `{"notes": null}`,
			wantSet:   true,
			wantValid: false,
		},
		{
			name: "field absent",
			json: `{}`,
		},
		{
			name:      "field present with empty string",
			json:      `{"notes": ""}`,
			wantSet:   true,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Notes Nullable[string] `json:"notes"`
			}
			if err := json.Unmarshal([]byte(tt.json), &result); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Notes.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Notes.Set, tt.wantSet)
			}
			if result.Notes.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Notes.Valid, tt.wantValid)
			}
			if result.Notes.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", result.Notes.Value, tt.wantValue)
			}
		})
	}
}

func TestNullable_Apply(t *testing.T) {
	original := "keep me"

	t.Run("absent leaves destination untouched", func(t *testing.T) {
		dst := &original
		var n Nullable[string]
		n.Apply(&dst)
		if dst == nil || *dst != "keep me" {
			t.Errorf("expected destination to be untouched, got %v", dst)
		}
	})

	t.Run("null clears destination", func(t *testing.T) {
		dst := &original
		n := Nullable[string]{Set: true}
		n.Apply(&dst)
		if dst != nil {
			t.Errorf("expected nil, got %q", *dst)
		}
	})

	t.Run("value replaces destination", func(t *testing.T) {
		dst := &original
		n := Nullable[string]{Set: true, Valid: true, Value: "new"}
		n.Apply(&dst)
		if dst == nil || *dst != "new" {
			t.Errorf("expected new, got %v", dst)
		}
		if original != "keep me" {
			t.Errorf("Apply must not write through the old pointer")
		}
	})
}

func TestNullable_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Nullable[int]{})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected null, got %s", data)
	}

	data, err = json.Marshal(Nullable[int]{Value: 7, Valid: true, Set: true})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "7" {
		t.Errorf("expected 7, got %s", data)
	}
}
