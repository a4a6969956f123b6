package models

import "time"

// Level bands for checklist items. Lowercase pairs cover business/communication
// skills, uppercase pairs cover technical skills. The order here is the display
// order used by the progress breakdown.
const (
	LevelBandAtoB     = "a-b"
	LevelBandBtoC     = "b-c"
	LevelBandCtoD     = "c-d"
	LevelBandTechAtoB = "A-B"
	LevelBandTechBtoC = "B-C"
)

// LevelBands lists every checklist category in display order.
var LevelBands = []string{
	LevelBandAtoB,
	LevelBandBtoC,
	LevelBandCtoD,
	LevelBandTechAtoB,
	LevelBandTechBtoC,
}

type ChecklistItem struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Level       string `bson:"level" json:"level"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Reference   string `bson:"reference" json:"reference"`
	Order       int    `bson:"order" json:"order"`
	IsActive    bool   `bson:"is_active" json:"is_active"`
}

// ChecklistResult records one user's state for one checklist item.
// There is at most one result per (user_id, item_id) pair; saves are upserts.
type ChecklistResult struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ItemID    string    `bson:"item_id" json:"item_id"`
	IsChecked bool      `bson:"is_checked" json:"is_checked"`
	Notes     string    `bson:"notes" json:"notes"`
	CheckedAt time.Time `bson:"checked_at" json:"checked_at"`
}
