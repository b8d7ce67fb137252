package search

import (
	"testing"

	"bakery_frontdesk/pkg/models"
)

func TestFilterMatchesSubstringAnyCase(t *testing.T) {
	breads := []models.Bread{
		{Name: "Whole Wheat"},
		{Name: "Rye"},
	}
	got := Filter(breads, "wheat", func(b models.Bread) []string {
		return []string{b.Name}
	})
	if len(got) != 1 || got[0].Name != "Whole Wheat" {
		t.Fatalf("Filter(wheat) = %v, want exactly Whole Wheat", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	breads := []models.Bread{{Name: "Whole Wheat"}, {Name: "Rye"}}
	got := Filter(breads, "  ", func(b models.Bread) []string {
		return []string{b.Name}
	})
	if len(got) != 2 {
		t.Fatalf("empty query filtered to %d items, want 2", len(got))
	}
}

func TestFilterChecksEveryField(t *testing.T) {
	branches := []models.Branch{
		{BranchName: "Central", Location: "Addis Ababa"},
		{BranchName: "North", Location: "Bahir Dar"},
	}
	got := Filter(branches, "ADDIS", func(b models.Branch) []string {
		return []string{b.BranchName, b.Location}
	})
	if len(got) != 1 || got[0].BranchName != "Central" {
		t.Fatalf("Filter(ADDIS) = %v, want Central", got)
	}
}

func TestFilterNoMatch(t *testing.T) {
	breads := []models.Bread{{Name: "Rye"}}
	got := Filter(breads, "baguette", func(b models.Bread) []string {
		return []string{b.Name}
	})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
