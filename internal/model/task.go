package model

import (
	"time"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskCompleted TaskStatus = "COMPLETED"
	TaskSkipped   TaskStatus = "SKIPPED"
)

// TaskType 表示任务的周期类型
type TaskType string

const (
	TaskDaily   TaskType = "DAILY"
	TaskWeekly  TaskType = "WEEKLY"
	TaskMonthly TaskType = "MONTHLY"
)

// LearningTask 计划中的学习任务
// Duration 为计划时长（分钟），DurationSeconds 为秒表累计的实际秒数，
// 由客户端在暂停计时后整体刷新
// swagger:model LearningTask
type LearningTask struct {
	BaseModel
	Title           string     `gorm:"size:255;not null" json:"title"`
	Type            TaskType   `gorm:"size:20;not null;default:'DAILY'" json:"type"`
	Status          TaskStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	UserID          uint       `gorm:"index;type:bigint unsigned" json:"userId"`
	StreamID        *uint      `gorm:"index;type:bigint unsigned" json:"streamId"`
	Stream          *Stream    `gorm:"foreignKey:StreamID" json:"stream,omitempty"`
	AssignedDate    time.Time  `gorm:"type:date;index" json:"assignedDate"`
	CompletedDate   *time.Time `gorm:"type:date" json:"completedDate"`
	Duration        int        `gorm:"default:0" json:"duration"`
	DurationSeconds int        `gorm:"default:0" json:"durationSeconds"`
	Points          int        `gorm:"default:10" json:"points"`
	RevisionDate    *time.Time `gorm:"type:date" json:"revisionDate"`
	RevisionCount   int        `gorm:"default:0" json:"revisionCount"`
}

func (LearningTask) TableName() string {
	return "learning_tasks"
}
