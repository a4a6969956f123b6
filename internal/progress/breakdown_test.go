package progress

import (
	"testing"

	"assessment-service/internal/models"
)

func TestBreakdown(t *testing.T) {
	items := []models.ChecklistItem{
		{ID: "i1", Level: models.LevelBandAtoB},
		{ID: "i2", Level: models.LevelBandAtoB},
		{ID: "i3", Level: models.LevelBandAtoB},
		{ID: "i4", Level: models.LevelBandBtoC},
		{ID: "i5", Level: models.LevelBandBtoC},
	}
	results := []models.ChecklistResult{
		{ItemID: "i1", IsChecked: true},
		{ItemID: "i2", IsChecked: true},
		{ItemID: "i3", IsChecked: false},
		{ItemID: "i4", IsChecked: true},
		{ItemID: "unknown", IsChecked: true}, // orphaned result rows are ignored
	}

	breakdown := Breakdown(models.LevelBands, items, results)

	if len(breakdown) != len(models.LevelBands) {
		t.Fatalf("Expected %d entries, got %d", len(models.LevelBands), len(breakdown))
	}

	expected := map[string]CategoryProgress{
		models.LevelBandAtoB:     {Level: models.LevelBandAtoB, Completed: 2, Total: 3, Percentage: 66},
		models.LevelBandBtoC:     {Level: models.LevelBandBtoC, Completed: 1, Total: 2, Percentage: 50},
		models.LevelBandCtoD:     {Level: models.LevelBandCtoD},
		models.LevelBandTechAtoB: {Level: models.LevelBandTechAtoB},
		models.LevelBandTechBtoC: {Level: models.LevelBandTechBtoC},
	}

	for i, level := range models.LevelBands {
		if breakdown[i] != expected[level] {
			t.Errorf("Band %s: expected %+v, got %+v", level, expected[level], breakdown[i])
		}
	}
}

func TestBreakdownEmptyCatalog(t *testing.T) {
	breakdown := Breakdown(models.LevelBands, nil, nil)

	for _, entry := range breakdown {
		if entry.Completed != 0 || entry.Total != 0 || entry.Percentage != 0 {
			t.Errorf("Band %s: expected all zeroes, got %+v", entry.Level, entry)
		}
	}
}

// The breakdown's completed counts must agree with the checklist half of the
// aggregator when both read the same result set.
func TestBreakdownMatchesAggregateChecklistCount(t *testing.T) {
	items := []models.ChecklistItem{
		{ID: "i1", Level: models.LevelBandAtoB},
		{ID: "i2", Level: models.LevelBandBtoC},
		{ID: "i3", Level: models.LevelBandCtoD},
		{ID: "i4", Level: models.LevelBandTechAtoB},
	}
	results := []models.ChecklistResult{
		{ItemID: "i1", IsChecked: true},
		{ItemID: "i2", IsChecked: true},
		{ItemID: "i3", IsChecked: false},
	}

	breakdown := Breakdown(models.LevelBands, items, results)
	totalCompleted := 0
	for _, entry := range breakdown {
		totalCompleted += entry.Completed
	}

	record := Aggregate(len(items), results, nil, nil)

	// 2 of 4 items checked -> checklist 50, tests 0, total 25
	if totalCompleted != 2 {
		t.Errorf("Expected 2 completed across bands, got %d", totalCompleted)
	}
	if record.TotalScore != 25 {
		t.Errorf("Expected total score 25, got %d", record.TotalScore)
	}
}
