package models

import "time"

// Tech levels run A through E, business levels a through d. Both scales are
// ordered; the aggregator only ever moves a user along them via the step
// function on the total score.
const (
	TechLevelA = "A"
	TechLevelB = "B"
	TechLevelC = "C"
	TechLevelE = "E"

	BizLevelA = "a"
	BizLevelB = "b"
	BizLevelC = "c"
	BizLevelD = "d"
)

// ProgressRecord is one immutable evaluation snapshot. Records are append-only:
// every report generation inserts a new one and never touches prior rows.
type ProgressRecord struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	TechLevel   string    `bson:"tech_level" json:"tech_level"`
	BizLevel    string    `bson:"biz_level" json:"biz_level"`
	TotalScore  int       `bson:"total_score" json:"total_score"`
	Improvement string    `bson:"improvement" json:"improvement"`
	RecordedAt  time.Time `bson:"recorded_at" json:"recorded_at"`
}
