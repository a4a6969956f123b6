package service

import (
	"testing"

	"assessment-service/internal/models"
)

func intPtr(v int) *int { return &v }

func TestBuildOutcomes(t *testing.T) {
	questions := []models.TestQuestion{
		{ID: "q1", MaxScore: 30},
		{ID: "q2", MaxScore: 25},
	}
	answers := []models.TestAnswer{
		{QuestionID: "q1", Score: intPtr(22)},
		{QuestionID: "q2"},        // submitted but not yet scored
		{QuestionID: "q-retired"}, // question no longer in the catalog
	}

	outcomes := buildOutcomes(answers, questions)

	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Score != 22 || outcomes[0].MaxScore != 30 {
		t.Errorf("Expected outcome 22/30, got %d/%d", outcomes[0].Score, outcomes[0].MaxScore)
	}
	if outcomes[1].Score != 0 || outcomes[1].MaxScore != 25 {
		t.Errorf("Expected unscored answer to count as 0/25, got %d/%d", outcomes[1].Score, outcomes[1].MaxScore)
	}
}

func TestBuildOutcomesEmpty(t *testing.T) {
	if got := buildOutcomes(nil, nil); len(got) != 0 {
		t.Errorf("Expected no outcomes, got %d", len(got))
	}
}
