package repository

import (
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
)

// AnswerRepository 覆盖答题练习的题目、提交与批改三张表
type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) CreateQuestion(q *model.AnswerQuestion) error {
	return r.DB.Create(q).Error
}

func (r *AnswerRepository) FindAllQuestions() ([]model.AnswerQuestion, error) {
	var questions []model.AnswerQuestion
	err := r.DB.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *AnswerRepository) FindQuestionByID(id uint) (*model.AnswerQuestion, error) {
	var q model.AnswerQuestion
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *AnswerRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.AnswerQuestion{}, id).Error
}

func (r *AnswerRepository) CreateSubmission(s *model.AnswerSubmission) error {
	return r.DB.Create(s).Error
}

// FindSubmissionsByUser 按提交时间降序返回用户的全部提交
func (r *AnswerRepository) FindSubmissionsByUser(userID uint) ([]model.AnswerSubmission, error) {
	var submissions []model.AnswerSubmission
	err := r.DB.Preload("Question").Where("user_id = ?", userID).
		Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *AnswerRepository) FindSubmissionByID(id uint) (*model.AnswerSubmission, error) {
	var s model.AnswerSubmission
	err := r.DB.Preload("Question").First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateReviewAndMarkReviewed 批改入库并把提交置为已批改，同一事务保证不会出现
// 有批改记录但提交仍是 SUBMITTED 的中间状态
func (r *AnswerRepository) CreateReviewAndMarkReviewed(review *model.AnswerReview) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&model.AnswerSubmission{}).Where("id = ?", review.SubmissionID).
			Update("status", model.SubmissionReviewed).Error
	})
}

func (r *AnswerRepository) FindReviewBySubmission(submissionID uint) (*model.AnswerReview, error) {
	var review model.AnswerReview
	err := r.DB.Where("submission_id = ?", submissionID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// CountSubmissionsByStatus 统计用户某状态的提交数量
func (r *AnswerRepository) CountSubmissionsByStatus(userID uint, status model.SubmissionStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AnswerSubmission{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&count).Error
	return count, err
}
