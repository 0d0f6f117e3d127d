package model

// Stream 用户自定义的学习方向，用于归类任务
// swagger:model Stream
type Stream struct {
	BaseModel
	Name   string         `gorm:"size:255;not null" json:"name"`
	UserID uint           `gorm:"index;type:bigint unsigned" json:"userId"`
	Tasks  []LearningTask `gorm:"foreignKey:StreamID" json:"tasks,omitempty"`
	Notes  []StreamNote   `gorm:"foreignKey:StreamID" json:"-"`
}

func (Stream) TableName() string {
	return "streams"
}

// StreamNote 挂在 Stream 详情画布上的便签，x/y 为画布坐标
type StreamNote struct {
	BaseModel
	StreamID uint    `gorm:"index;type:bigint unsigned;not null" json:"streamId"`
	Title    string  `gorm:"size:255" json:"title"`
	Content  string  `gorm:"type:text" json:"content"`
	X        float64 `gorm:"default:0" json:"x"`
	Y        float64 `gorm:"default:0" json:"y"`
}

func (StreamNote) TableName() string {
	return "stream_notes"
}
