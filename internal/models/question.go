package models

// Question types. SCENARIO_HEAVY exists in seed data terms but has no dedicated
// scoring policy yet; the scorer handles it through the generic fallback.
const (
	TypeShortAnswer   = "SHORT_ANSWER"
	TypeChoice        = "CHOICE"
	TypeCaseStudy     = "CASE_STUDY"
	TypeScenarioHeavy = "SCENARIO_HEAVY"
)

type TestQuestion struct {
	ID               string   `bson:"_id,omitempty" json:"id"`
	Level            string   `bson:"level" json:"level"`
	Type             string   `bson:"type" json:"type"`
	Title            string   `bson:"title" json:"title"`
	Content          string   `bson:"content" json:"content"`
	Options          []string `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer    string   `bson:"correct_answer,omitempty" json:"correct_answer,omitempty"`
	MaxScore         int      `bson:"max_score" json:"max_score"`
	TimeLimitMinutes int      `bson:"time_limit_minutes" json:"time_limit_minutes"`
	IsActive         bool     `bson:"is_active" json:"is_active"`
}
