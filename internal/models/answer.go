package models

import "time"

// TestAnswer is one user's submission for one question. There is at most one
// answer per (user_id, question_id) pair; resubmitting replaces score and
// feedback. Score is nil until the scorer has judged the submission.
type TestAnswer struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	QuestionID  string    `bson:"question_id" json:"question_id"`
	Answer      string    `bson:"answer" json:"answer"`
	Score       *int      `bson:"score,omitempty" json:"score,omitempty"`
	Feedback    string    `bson:"feedback" json:"feedback"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}

// ScoreValue returns the judged score, treating an unscored answer as 0.
func (a *TestAnswer) ScoreValue() int {
	if a.Score == nil {
		return 0
	}
	return *a.Score
}
