package evaluation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"assessment-service/internal/models"
)

// Short-answer submissions are judged against fixed bands rather than a
// fraction of MaxScore; the bands assume the standard 30-point question and
// are capped at MaxScore for anything smaller.
const (
	shortAnswerMinLength = 20
	shortAnswerMaxLength = 50
	shortAnswerFitScore  = 20
	shortAnswerLowScore  = 10
	shortAnswerLongScore = 15

	caseStudyMinLength = 100

	choiceJustificationLong  = 30
	choiceJustificationShort = 10
)

// Scorer judges submitted answers. It is pure: every call recomputes from its
// arguments and the config, so identical inputs always produce identical
// judgments.
type Scorer struct {
	config *ScoringConfig
}

// NewScorer creates a scorer, falling back to the default config when nil.
func NewScorer(config *ScoringConfig) *Scorer {
	if config == nil {
		config = DefaultScoringConfig()
	}
	return &Scorer{config: config}
}

// Score judges a raw submission against its question. Unknown question types
// fall through to the generic policy, so scoring never fails.
func (s *Scorer) Score(question *models.TestQuestion, rawAnswer string) Judgment {
	switch question.Type {
	case models.TypeShortAnswer:
		return s.scoreShortAnswer(rawAnswer, question.MaxScore)
	case models.TypeChoice:
		parsed := ParseChoiceAnswer(rawAnswer, s.config.ChoiceDelimiter)
		return s.scoreChoice(parsed, question.CorrectAnswer, question.MaxScore)
	case models.TypeCaseStudy:
		return s.scoreCaseStudy(rawAnswer, question.MaxScore)
	default:
		// SCENARIO_HEAVY and anything unrecognized land here.
		return Judgment{
			Score:    clampScore(question.MaxScore*6/10, question.MaxScore),
			Feedback: "Thank you for your submission.",
		}
	}
}

// ParseChoiceAnswer splits a raw choice submission into label and
// justification. A submission without the delimiter is a bare label with an
// empty justification.
func ParseChoiceAnswer(raw, delimiter string) ChoiceAnswer {
	if delimiter == "" {
		delimiter = "|"
	}
	parts := strings.SplitN(raw, delimiter, 2)
	answer := ChoiceAnswer{Label: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		answer.Justification = strings.TrimSpace(parts[1])
	}
	return answer
}

func (s *Scorer) scoreShortAnswer(rawAnswer string, maxScore int) Judgment {
	length := utf8.RuneCountInString(strings.TrimSpace(rawAnswer))

	var score int
	var feedback string
	switch {
	case length >= shortAnswerMinLength && length <= shortAnswerMaxLength:
		score = shortAnswerFitScore
		feedback = "The length of your report is appropriate."
	case length < shortAnswerMinLength:
		score = shortAnswerLowScore
		feedback = "Add a little more detail to your report."
	default:
		score = shortAnswerLongScore
		feedback = "Keep the first report short, within 50 characters."
	}

	if containsAny(rawAnswer, s.config.GreetingMarkers) {
		score += s.config.GreetingBonus
		feedback += " Including a courteous opening is a nice touch."
	}

	return Judgment{Score: clampScore(score, maxScore), Feedback: feedback}
}

func (s *Scorer) scoreChoice(answer ChoiceAnswer, correctAnswer string, maxScore int) Judgment {
	var score int
	var feedback string
	if answer.Label == correctAnswer {
		score = maxScore * 6 / 10
		feedback = "You picked the correct option."
	} else {
		score = maxScore * 2 / 10
		feedback = "That is not the most appropriate option."
	}

	justificationLength := utf8.RuneCountInString(answer.Justification)
	switch {
	case justificationLength > choiceJustificationLong:
		score += maxScore * 3 / 10
		feedback += " Your reasoning is described in detail."
	case justificationLength > choiceJustificationShort:
		score += maxScore * 2 / 10
		feedback += " Your reasoning is noted."
	}

	return Judgment{Score: clampScore(score, maxScore), Feedback: feedback}
}

func (s *Scorer) scoreCaseStudy(rawAnswer string, maxScore int) Judgment {
	length := utf8.RuneCountInString(strings.TrimSpace(rawAnswer))

	var score int
	if length >= caseStudyMinLength {
		score = maxScore * 5 / 10
	} else {
		score = maxScore * 3 / 10
	}

	found := 0
	for _, keyword := range s.config.StakeholderKeywords {
		if containsFold(rawAnswer, keyword) {
			found++
		}
	}
	score += found * s.config.StakeholderPoints
	feedback := fmt.Sprintf("Your answer covers %d stakeholder group(s).", found)

	if containsAny(rawAnswer, s.config.StructureMarkers) {
		score += s.config.StructureBonus
		feedback += " The structured layout makes it easy to follow."
	}

	return Judgment{Score: clampScore(score, maxScore), Feedback: feedback}
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if containsFold(text, marker) {
			return true
		}
	}
	return false
}

func containsFold(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

func clampScore(score, maxScore int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
