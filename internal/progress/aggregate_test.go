package progress

import (
	"strings"
	"testing"

	"assessment-service/internal/models"
)

func checkedResults(checked, unchecked int) []models.ChecklistResult {
	results := make([]models.ChecklistResult, 0, checked+unchecked)
	for i := 0; i < checked; i++ {
		results = append(results, models.ChecklistResult{IsChecked: true})
	}
	for i := 0; i < unchecked; i++ {
		results = append(results, models.ChecklistResult{IsChecked: false})
	}
	return results
}

func TestAggregateBlendsChecklistAndTests(t *testing.T) {
	// checklist 6/10 -> 60, tests 45/60 -> 75, total floor(135/2) = 67
	outcomes := []TestOutcome{
		{Score: 20, MaxScore: 30},
		{Score: 25, MaxScore: 30},
	}

	record := Aggregate(10, checkedResults(6, 2), outcomes, nil)

	if record.TotalScore != 67 {
		t.Errorf("Expected total score 67, got %d", record.TotalScore)
	}
	if record.TechLevel != models.TechLevelC || record.BizLevel != models.BizLevelC {
		t.Errorf("Expected levels C/c, got %s/%s", record.TechLevel, record.BizLevel)
	}
	if !strings.Contains(record.Improvement, "first evaluation") {
		t.Errorf("Expected first-evaluation message, got %q", record.Improvement)
	}
	if record.RecordedAt.IsZero() {
		t.Error("Expected RecordedAt to be stamped")
	}
}

func TestAggregateImprovementMessages(t *testing.T) {
	testCases := []struct {
		name          string
		previousScore int
		wantFragment  string
	}{
		{"improved", 50, "improved by 17 points"},
		{"dropped", 80, "dropped by 13 points"},
		{"unchanged", 67, "unchanged"},
	}

	outcomes := []TestOutcome{{Score: 45, MaxScore: 60}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			previous := &models.ProgressRecord{TotalScore: tc.previousScore}
			record := Aggregate(10, checkedResults(6, 0), outcomes, previous)

			if record.TotalScore != 67 {
				t.Fatalf("Expected total score 67, got %d", record.TotalScore)
			}
			if !strings.Contains(record.Improvement, tc.wantFragment) {
				t.Errorf("Expected message containing %q, got %q", tc.wantFragment, record.Improvement)
			}
		})
	}
}

func TestAggregateEmptyInputs(t *testing.T) {
	record := Aggregate(0, nil, nil, nil)

	if record.TotalScore != 0 {
		t.Errorf("Expected total score 0, got %d", record.TotalScore)
	}
	if record.TechLevel != models.TechLevelA || record.BizLevel != models.BizLevelA {
		t.Errorf("Expected lowest levels A/a, got %s/%s", record.TechLevel, record.BizLevel)
	}
	if record.Improvement == "" {
		t.Error("Expected non-empty improvement message")
	}
}

func TestAggregateSkipsOutcomesWithoutMaxScore(t *testing.T) {
	// The zero-max outcome contributes to neither side of the ratio.
	outcomes := []TestOutcome{
		{Score: 10, MaxScore: 0},
		{Score: 30, MaxScore: 40},
	}

	record := Aggregate(0, nil, outcomes, nil)

	// test score 30/40 -> 75, checklist 0, total 37
	if record.TotalScore != 37 {
		t.Errorf("Expected total score 37, got %d", record.TotalScore)
	}
}

func TestAggregateOnlyInvalidOutcomes(t *testing.T) {
	outcomes := []TestOutcome{{Score: 10, MaxScore: 0}, {Score: 5, MaxScore: -3}}

	record := Aggregate(0, nil, outcomes, nil)

	if record.TotalScore != 0 {
		t.Errorf("Expected total score 0, got %d", record.TotalScore)
	}
}

func TestLevelsForScore(t *testing.T) {
	testCases := []struct {
		score    int
		expected string
	}{
		{0, "A/a"},
		{39, "A/a"},
		{40, "B/b"},
		{59, "B/b"},
		{60, "C/c"},
		{79, "C/c"},
		{80, "E/d"},
		{100, "E/d"},
	}

	for _, tc := range testCases {
		tech, biz := LevelsForScore(tc.score)
		if got := tech + "/" + biz; got != tc.expected {
			t.Errorf("Score %d: expected %s, got %s", tc.score, tc.expected, got)
		}
	}
}

func TestLevelsForScoreIsMonotonic(t *testing.T) {
	rank := map[string]int{"A/a": 0, "B/b": 1, "C/c": 2, "E/d": 3}

	previousRank := -1
	for score := 0; score <= 100; score++ {
		tech, biz := LevelsForScore(score)
		r, ok := rank[tech+"/"+biz]
		if !ok {
			t.Fatalf("Score %d maps to unknown level pair %s/%s", score, tech, biz)
		}
		if r < previousRank {
			t.Fatalf("Level pair rank decreased at score %d", score)
		}
		previousRank = r
	}
}
