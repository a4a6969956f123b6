package progress

import (
	"fmt"
	"time"

	"assessment-service/internal/models"
)

// TestOutcome is the scored half of one answered question: the points awarded
// and the points available. Outcomes with a non-positive MaxScore are excluded
// from the ratio entirely so a bad question row can never sink the report.
type TestOutcome struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`
}

// Aggregate blends checklist completion and test performance into a new
// progress record. totalItems is the count of active checklist items in the
// catalog, results and outcomes are the user's full history, and previous is
// the most recent prior record, nil on first evaluation. The returned record
// is a fresh snapshot; callers append it and never rewrite older ones.
func Aggregate(totalItems int, results []models.ChecklistResult, outcomes []TestOutcome, previous *models.ProgressRecord) models.ProgressRecord {
	checklist := checklistScore(totalItems, results)
	tests := testScore(outcomes)
	totalScore := (checklist + tests) / 2

	techLevel, bizLevel := LevelsForScore(totalScore)

	return models.ProgressRecord{
		TechLevel:   techLevel,
		BizLevel:    bizLevel,
		TotalScore:  totalScore,
		Improvement: improvementMessage(totalScore, previous),
		RecordedAt:  time.Now(),
	}
}

// LevelsForScore maps a 0-100 composite score onto the tech/biz level scales.
// The mapping is total and non-decreasing in the score.
func LevelsForScore(totalScore int) (techLevel, bizLevel string) {
	switch {
	case totalScore >= 80:
		return models.TechLevelE, models.BizLevelD
	case totalScore >= 60:
		return models.TechLevelC, models.BizLevelC
	case totalScore >= 40:
		return models.TechLevelB, models.BizLevelB
	default:
		return models.TechLevelA, models.BizLevelA
	}
}

func checklistScore(totalItems int, results []models.ChecklistResult) int {
	if totalItems <= 0 {
		return 0
	}
	completed := 0
	for _, result := range results {
		if result.IsChecked {
			completed++
		}
	}
	return completed * 100 / totalItems
}

func testScore(outcomes []TestOutcome) int {
	earned, possible := 0, 0
	for _, outcome := range outcomes {
		if outcome.MaxScore <= 0 {
			continue
		}
		earned += outcome.Score
		possible += outcome.MaxScore
	}
	if possible == 0 {
		return 0
	}
	return earned * 100 / possible
}

func improvementMessage(totalScore int, previous *models.ProgressRecord) string {
	if previous == nil {
		return "Your first evaluation is complete. Keep measuring regularly to track your growth."
	}
	diff := totalScore - previous.TotalScore
	switch {
	case diff > 0:
		return fmt.Sprintf("Your score improved by %d points since the last evaluation.", diff)
	case diff < 0:
		return fmt.Sprintf("Your score dropped by %d points since the last evaluation. Keep up the regular practice.", -diff)
	default:
		return "Your score is unchanged since the last evaluation. Try taking on a new challenge."
	}
}
