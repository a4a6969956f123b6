package evaluation

import (
	"strings"
	"testing"

	"assessment-service/internal/models"
)

func TestScoreShortAnswer(t *testing.T) {
	scorer := NewScorer(nil)

	testCases := []struct {
		name          string
		answer        string
		maxScore      int
		expectedScore int
	}{
		{"fit length", strings.Repeat("a", 30), 30, 20},
		{"too short", "too short", 30, 10},
		{"too long", strings.Repeat("a", 60), 30, 15},
		{"empty answer", "", 30, 10},
		{"whitespace only", "   \n\t  ", 30, 10},
		{"fit length with greeting", "sorry " + strings.Repeat("a", 24), 30, 25},
		{"short with greeting", "sorry about this", 30, 15},
		{"greeting bonus capped at max", "sorry " + strings.Repeat("a", 24), 22, 22},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			question := &models.TestQuestion{Type: models.TypeShortAnswer, MaxScore: tc.maxScore}
			judgment := scorer.Score(question, tc.answer)

			if judgment.Score != tc.expectedScore {
				t.Errorf("Expected score %d, got %d", tc.expectedScore, judgment.Score)
			}
			if judgment.Feedback == "" {
				t.Error("Expected non-empty feedback")
			}
		})
	}
}

func TestScoreChoice(t *testing.T) {
	scorer := NewScorer(nil)

	testCases := []struct {
		name          string
		answer        string
		maxScore      int
		expectedScore int
	}{
		// 25*6/10=15 for the correct label, 25*3/10=7 for a long justification
		{"correct with long justification", "B|" + strings.Repeat("x", 35), 25, 22},
		// 25*2/10=5 for a medium justification
		{"correct with medium justification", "B|" + strings.Repeat("x", 15), 25, 20},
		{"correct with short justification", "B|ok", 25, 15},
		{"correct without delimiter", "B", 25, 15},
		{"wrong label", "A|" + strings.Repeat("x", 35), 25, 12},
		{"wrong label no justification", "A", 25, 5},
		{"fractions floor at small max", "B|" + strings.Repeat("x", 35), 10, 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			question := &models.TestQuestion{
				Type:          models.TypeChoice,
				CorrectAnswer: "B",
				MaxScore:      tc.maxScore,
			}
			judgment := scorer.Score(question, tc.answer)

			if judgment.Score != tc.expectedScore {
				t.Errorf("Expected score %d, got %d", tc.expectedScore, judgment.Score)
			}
			if judgment.Feedback == "" {
				t.Error("Expected non-empty feedback")
			}
		})
	}
}

func TestScoreCaseStudy(t *testing.T) {
	scorer := NewScorer(nil)

	// 111 runes, three distinct stakeholder keywords, no structure markers.
	longThreeKeywords := strings.Repeat("z", 80) + " customer marketing management"
	// Short answer with one keyword and a numbered-list marker.
	shortStructured := "customer impact:\n1. the demo is at risk"

	testCases := []struct {
		name          string
		answer        string
		maxScore      int
		expectedScore int
	}{
		// 40*5/10=20 base + 3 keywords * 3
		{"long with three keywords", longThreeKeywords, 40, 29},
		// 40*3/10=12 base + 3 + 5 structure
		{"short structured with one keyword", shortStructured, 40, 20},
		{"empty answer", "", 40, 12},
		// keyword repeats count once
		{"repeated keyword counts once", strings.Repeat("customer ", 20), 40, 23},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			question := &models.TestQuestion{Type: models.TypeCaseStudy, MaxScore: tc.maxScore}
			judgment := scorer.Score(question, tc.answer)

			if judgment.Score != tc.expectedScore {
				t.Errorf("Expected score %d, got %d", tc.expectedScore, judgment.Score)
			}
			if judgment.Feedback == "" {
				t.Error("Expected non-empty feedback")
			}
		})
	}
}

func TestScoreFallback(t *testing.T) {
	scorer := NewScorer(nil)

	for _, questionType := range []string{models.TypeScenarioHeavy, "SOMETHING_NEW", ""} {
		t.Run("type "+questionType, func(t *testing.T) {
			question := &models.TestQuestion{Type: questionType, MaxScore: 40}
			judgment := scorer.Score(question, "any answer at all")

			if judgment.Score != 24 { // 40*6/10
				t.Errorf("Expected fallback score 24, got %d", judgment.Score)
			}
			if judgment.Feedback == "" {
				t.Error("Expected non-empty feedback")
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(nil)

	questions := []*models.TestQuestion{
		{Type: models.TypeShortAnswer, MaxScore: 1},
		{Type: models.TypeChoice, CorrectAnswer: "B", MaxScore: 3},
		{Type: models.TypeCaseStudy, MaxScore: 5},
		{Type: models.TypeScenarioHeavy, MaxScore: 7},
	}
	answers := []string{
		"",
		"B|" + strings.Repeat("x", 40),
		"sorry, the customer team and marketing management at miraize\n1. point",
		strings.Repeat("a", 200),
	}

	for _, question := range questions {
		for _, answer := range answers {
			judgment := scorer.Score(question, answer)
			if judgment.Score < 0 || judgment.Score > question.MaxScore {
				t.Errorf("Score %d out of [0,%d] for type %s", judgment.Score, question.MaxScore, question.Type)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewScorer(nil)
	question := &models.TestQuestion{Type: models.TypeCaseStudy, MaxScore: 40}
	answer := strings.Repeat("z", 80) + " customer marketing management"

	first := scorer.Score(question, answer)
	second := scorer.Score(question, answer)

	if first != second {
		t.Errorf("Expected identical judgments, got %+v and %+v", first, second)
	}
}

func TestParseChoiceAnswer(t *testing.T) {
	testCases := []struct {
		name                  string
		raw                   string
		expectedLabel         string
		expectedJustification string
	}{
		{"label and justification", "B|because the risk is known", "B", "because the risk is known"},
		{"label only", "B", "B", ""},
		{"padded label", " B |  reason  ", "B", "reason"},
		{"justification keeps later delimiters", "B|first|second", "B", "first|second"},
		{"empty input", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			answer := ParseChoiceAnswer(tc.raw, "|")
			if answer.Label != tc.expectedLabel {
				t.Errorf("Expected label %q, got %q", tc.expectedLabel, answer.Label)
			}
			if answer.Justification != tc.expectedJustification {
				t.Errorf("Expected justification %q, got %q", tc.expectedJustification, answer.Justification)
			}
		})
	}
}
