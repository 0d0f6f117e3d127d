package model

import (
	"time"
)

// AnswerQuestion 答题练习的题目
// swagger:model AnswerQuestion
type AnswerQuestion struct {
	BaseModel
	Text    string `gorm:"type:text;not null" json:"text"`
	Subject string `gorm:"size:100" json:"subject"`
	Topic   string `gorm:"size:100" json:"topic"`
	Source  string `gorm:"size:255" json:"source"`
}

func (AnswerQuestion) TableName() string {
	return "answer_questions"
}

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "SUBMITTED"
	SubmissionReviewed  SubmissionStatus = "REVIEWED"
)

// AnswerSubmission 某道题目的一次作答（PDF 上传），重写时通过
// ParentSubmissionID 关联上一次提交
// swagger:model AnswerSubmission
type AnswerSubmission struct {
	BaseModel
	QuestionID         uint             `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	Question           *AnswerQuestion  `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	UserID             uint             `gorm:"index;type:bigint unsigned" json:"userId"`
	PdfPath            string           `gorm:"size:255" json:"pdfPath"`
	TimeTakenMinutes   int              `gorm:"default:0" json:"timeTaken"`
	Status             SubmissionStatus `gorm:"size:20;not null;default:'SUBMITTED';index" json:"status"`
	SubmittedAt        time.Time        `gorm:"autoCreateTime" json:"submittedAt"`
	ParentSubmissionID *uint            `gorm:"type:bigint unsigned" json:"parentSubmissionId"`
}

func (AnswerSubmission) TableName() string {
	return "answer_submissions"
}

type ReviewVerdict string

const (
	VerdictRewrite   ReviewVerdict = "REWRITE"
	VerdictAverage   ReviewVerdict = "AVERAGE"
	VerdictGood      ReviewVerdict = "GOOD"
	VerdictExcellent ReviewVerdict = "EXCELLENT"
)

// AnswerReview 提交的批改结果，每个提交至多一条
// swagger:model AnswerReview
type AnswerReview struct {
	BaseModel
	SubmissionID uint          `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"submissionId"`
	Score        float64       `gorm:"default:0" json:"score"`
	Feedback     string        `gorm:"type:text" json:"feedback"`
	Strengths    string        `gorm:"type:text" json:"strengths"`
	Weaknesses   string        `gorm:"type:text" json:"weaknesses"`
	Suggestions  string        `gorm:"type:text" json:"suggestions"`
	Verdict      ReviewVerdict `gorm:"size:20" json:"verdict"`
	ReviewedAt   time.Time     `gorm:"autoCreateTime" json:"reviewedAt"`
}

func (AnswerReview) TableName() string {
	return "answer_reviews"
}
