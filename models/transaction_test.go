package models

import (
	"encoding/json"
	"testing"
)

func TestTransactionPatchCategoryTriState(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantValue uint
	}{
		{"absent", `{"amount": 10}`, false, false, 0},
		{"explicit null", `{"category_id": null}`, true, false, 0},
		{"value", `{"category_id": 7}`, true, true, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch TransactionPatch
			if err := json.Unmarshal([]byte(tt.body), &patch); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.body, err)
			}
			if patch.CategoryID.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", patch.CategoryID.Set, tt.wantSet)
			}
			if patch.CategoryID.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", patch.CategoryID.Valid, tt.wantValid)
			}
			if patch.CategoryID.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", patch.CategoryID.Value, tt.wantValue)
			}
		})
	}
}

func TestTransactionPatchRejectsBadCategory(t *testing.T) {
	var patch TransactionPatch
	if err := json.Unmarshal([]byte(`{"category_id": "seven"}`), &patch); err == nil {
		t.Error("expected error for non-numeric category_id")
	}
}

func TestDefaultCategoriesCount(t *testing.T) {
	if len(DefaultCategories) != 9 {
		t.Fatalf("got %d default categories, want 9", len(DefaultCategories))
	}
	seen := map[string]bool{}
	for _, c := range DefaultCategories {
		if seen[c.Name] {
			t.Errorf("duplicate default category %q", c.Name)
		}
		seen[c.Name] = true
	}
}
