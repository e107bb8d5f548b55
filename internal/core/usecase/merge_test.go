package usecase

import (
	"testing"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

func TestMergeCandidatesFuzzyWinsOnCollision(t *testing.T) {
	strict := []domain.Candidate{
		{ID: "a", DisplayName: "Strict A"},
		{ID: "x", DisplayName: "Strict X"},
	}
	fuzzy := []domain.Candidate{
		{ID: "x", DisplayName: "Fuzzy X"},
		{ID: "b", DisplayName: "Fuzzy B"},
	}

	merged := mergeCandidates(strict, fuzzy)
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged candidates, got %d", len(merged))
	}
	if merged[1].ID != "x" || merged[1].DisplayName != "Fuzzy X" {
		t.Fatalf("expected fuzzy record to replace strict in place, got %+v", merged[1])
	}
	if merged[0].ID != "a" || merged[2].ID != "b" {
		t.Fatalf("unexpected order: %v, %v", merged[0].ID, merged[2].ID)
	}
}

func TestMergeCandidatesDropsMissingIDs(t *testing.T) {
	strict := []domain.Candidate{{DisplayName: "no id"}, {ID: "a"}}
	fuzzy := []domain.Candidate{{DisplayName: "also no id"}}

	merged := mergeCandidates(strict, fuzzy)
	if len(merged) != 1 || merged[0].ID != "a" {
		t.Fatalf("expected only the identified candidate, got %+v", merged)
	}
}

func TestMergeCandidatesEmptyInputs(t *testing.T) {
	if got := mergeCandidates(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %d entries", len(got))
	}
}
