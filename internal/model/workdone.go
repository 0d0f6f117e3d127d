package model

import (
	"time"
)

// WorkDoneEntry 每日工作日志，TotalPoints 在每次保存时按条目重算
// swagger:model WorkDoneEntry
type WorkDoneEntry struct {
	BaseModel
	UserID            uint           `gorm:"index;type:bigint unsigned" json:"userId"`
	Date              time.Time      `gorm:"type:date;index" json:"date"`
	DayOfWeek         string         `gorm:"size:20" json:"dayOfWeek"`
	Items             []WorkDoneItem `gorm:"foreignKey:EntryID" json:"items"`
	SatisfactionLevel int            `gorm:"default:3" json:"satisfactionLevel"`
	TotalPoints       int            `gorm:"default:0" json:"totalPoints"`
	Notes             string         `gorm:"type:text" json:"notes"`
}

func (WorkDoneEntry) TableName() string {
	return "work_done_entries"
}

// CalculateTotalPoints 按条目积分求和
func (e *WorkDoneEntry) CalculateTotalPoints() {
	total := 0
	for _, item := range e.Items {
		total += item.Points
	}
	e.TotalPoints = total
}

// WorkDoneItem 工作日志里的单条记录，Category 可选（Study/Project/Reading 等）
type WorkDoneItem struct {
	BaseModel
	EntryID     uint   `gorm:"index;type:bigint unsigned" json:"entryId"`
	Description string `gorm:"size:500;not null" json:"description"`
	Points      int    `gorm:"default:0" json:"points"`
	Category    string `gorm:"size:50" json:"category"`
	Completed   bool   `gorm:"default:false" json:"completed"`
}

func (WorkDoneItem) TableName() string {
	return "work_done_items"
}
