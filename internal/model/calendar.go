package model

import (
	"time"
)

// CalendarEntry 学习日历打点，同一用户同一天至多一条
type CalendarEntry struct {
	BaseModel
	UserID  uint      `gorm:"type:bigint unsigned;index:idx_user_calendar_date,unique" json:"userId"`
	Date    time.Time `gorm:"type:date;index:idx_user_calendar_date,unique" json:"date"`
	Studied bool      `gorm:"default:false" json:"studied"`
}

func (CalendarEntry) TableName() string {
	return "calendar_entries"
}
