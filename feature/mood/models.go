package mood

import "time"

// Entry is one recorded mood.
type Entry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	Mood      string    `gorm:"size:64;not null" json:"mood"`
	Emotions  []string  `gorm:"serializer:json" json:"emotions"`
	Intensity int       `json:"intensity"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

// TableName pins the table name used by the schema check.
func (Entry) TableName() string {
	return TableName
}

// TableName is the table mood entries are stored in.
const TableName = "mood_entries"

// Columns lists the columns the entries table must have.
var Columns = []string{"id", "user_id", "mood", "emotions", "intensity", "notes", "timestamp"}

// Input is the body of a new entry request.
type Input struct {
	Mood      string   `json:"mood"`
	Emotions  []string `json:"emotions"`
	Intensity *int     `json:"intensity"`
	Notes     string   `json:"notes"`
}

// Pattern summarizes a visitor's most recent entries.
type Pattern struct {
	DominantMood     string         `json:"dominant_mood"`
	DominantEmotions []string       `json:"dominant_emotions"`
	TotalEntries     int            `json:"total_entries"`
	MoodDistribution map[string]int `json:"mood_distribution"`
}
