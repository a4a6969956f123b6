package evaluation

// Judgment is the outcome of scoring one submission.
type Judgment struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ChoiceAnswer is a parsed choice submission: the option label the user picked
// plus the free-text justification. Raw submissions arrive as a single
// delimiter-joined string; ParseChoiceAnswer is the only place that splits it.
type ChoiceAnswer struct {
	Label         string `json:"label"`
	Justification string `json:"justification"`
}

// ScoringConfig holds the lexicons and thresholds the scorer matches against.
// The word lists are domain content, not logic: swapping locales or client
// names means swapping the config, not the scorer.
type ScoringConfig struct {
	// GreetingMarkers earn the short-answer courtesy bonus when present.
	GreetingMarkers []string `json:"greeting_markers"`
	// StakeholderKeywords are scanned in case-study answers; each distinct
	// hit is worth StakeholderPoints.
	StakeholderKeywords []string `json:"stakeholder_keywords"`
	// StructureMarkers signal bullet or numbered-list formatting.
	StructureMarkers []string `json:"structure_markers"`
	// ChoiceDelimiter joins the option label and justification in a raw
	// choice submission.
	ChoiceDelimiter string `json:"choice_delimiter"`

	GreetingBonus     int `json:"greeting_bonus"`
	StakeholderPoints int `json:"stakeholder_points"`
	StructureBonus    int `json:"structure_bonus"`
}

// DefaultScoringConfig returns the lexicons for the standard English-language
// assessment set. "Miraize" is the client company used by the case-study
// scenarios.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		GreetingMarkers: []string{
			"sorry",
			"apologies",
			"thank you for your patience",
		},
		StakeholderKeywords: []string{
			"customer",
			"miraize",
			"marketing",
			"engineering",
			"management",
			"team",
		},
		StructureMarkers: []string{
			"- ",
			"1.",
			"•",
			"・",
		},
		ChoiceDelimiter:   "|",
		GreetingBonus:     5,
		StakeholderPoints: 3,
		StructureBonus:    5,
	}
}
