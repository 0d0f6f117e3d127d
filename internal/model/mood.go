package model

import (
	"time"
)

// MoodEntry 每日情绪打卡，mood/energy/motivation 均为 1-5
// swagger:model MoodEntry
type MoodEntry struct {
	BaseModel
	UserID     uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	Date       time.Time `gorm:"type:date;index" json:"date"`
	Mood       int       `gorm:"not null" json:"mood"`
	Energy     int       `gorm:"not null" json:"energy"`
	Motivation int       `gorm:"not null" json:"motivation"`
	Notes      string    `gorm:"type:text" json:"notes"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
