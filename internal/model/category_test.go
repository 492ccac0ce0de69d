package model

import (
	"testing"
)

func TestCategories_FixedOrder(t *testing.T) {
	want := []string{"food", "transport", "entertainment", "health", "education", "utilities"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.String() != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, c.String(), want[i])
		}
		if !c.Valid() {
			t.Errorf("Categories()[%d] reported invalid", i)
		}
	}
}

func TestCategoryAt(t *testing.T) {
	tests := []struct {
		name     string
		position int
		want     Category
		wantOK   bool
	}{
		{name: "first", position: 1, want: CategoryFood, wantOK: true},
		{name: "last", position: 6, want: CategoryUtilities, wantOK: true},
		{name: "zero", position: 0},
		{name: "past end", position: 7},
		{name: "negative", position: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CategoryAt(tt.position)
			if ok != tt.wantOK {
				t.Fatalf("CategoryAt(%d) ok = %v, want %v", tt.position, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("CategoryAt(%d) = %v, want %v", tt.position, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("  Health ")
	if err != nil {
		t.Fatalf("ParseCategory returned error: %v", err)
	}
	if got != CategoryHealth {
		t.Errorf("ParseCategory = %v, want %v", got, CategoryHealth)
	}

	if _, err := ParseCategory("travel"); err == nil {
		t.Error("ParseCategory(travel) expected error")
	}
}

func TestCategory_Title(t *testing.T) {
	if got := CategoryEntertainment.Title(); got != "Entertainment" {
		t.Errorf("Title() = %q, want Entertainment", got)
	}

	var zero Category
	if zero.Valid() {
		t.Error("zero Category must not be valid")
	}
	if got := zero.Title(); got != "Category(0)" {
		t.Errorf("zero Title() = %q", got)
	}
}
