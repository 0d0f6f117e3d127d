package model

import (
	"time"
)

// Motivation 仪表盘展示的激励短句，每 12 小时轮换一条
type Motivation struct {
	BaseModel
	Content         string    `gorm:"type:text;not null" json:"content"`
	IsEnabled       bool      `gorm:"default:true" json:"isEnabled"`
	IsCurrentlyUsed bool      `gorm:"default:false" json:"isCurrentlyUsed"`
	LastUsedAt      time.Time `gorm:"autoCreateTime" json:"lastUsedAt"`
}

func (Motivation) TableName() string {
	return "motivations"
}
