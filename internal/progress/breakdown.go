package progress

import "assessment-service/internal/models"

// CategoryProgress is per-level-band checklist completion, for display.
type CategoryProgress struct {
	Level      string `json:"level"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// Breakdown counts checklist completion per level band. Totals come from the
// item catalog, not from the user's result rows, so untouched items still
// count toward the denominator. A band with no items reports 0 percent.
func Breakdown(categories []string, items []models.ChecklistItem, results []models.ChecklistResult) []CategoryProgress {
	itemLevels := make(map[string]string, len(items))
	totals := make(map[string]int, len(categories))
	for _, item := range items {
		itemLevels[item.ID] = item.Level
		totals[item.Level]++
	}

	completed := make(map[string]int, len(categories))
	for _, result := range results {
		if !result.IsChecked {
			continue
		}
		if level, ok := itemLevels[result.ItemID]; ok {
			completed[level]++
		}
	}

	breakdown := make([]CategoryProgress, 0, len(categories))
	for _, level := range categories {
		entry := CategoryProgress{
			Level:     level,
			Completed: completed[level],
			Total:     totals[level],
		}
		if entry.Total > 0 {
			entry.Percentage = entry.Completed * 100 / entry.Total
		}
		breakdown = append(breakdown, entry)
	}
	return breakdown
}
