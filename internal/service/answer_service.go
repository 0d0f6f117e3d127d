package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerService 答题练习：题目、PDF 提交与批改
type AnswerService struct {
	AnswerRepo *repository.AnswerRepository
	Storage    *StorageService
}

func NewAnswerService(answerRepo *repository.AnswerRepository, storage *StorageService) *AnswerService {
	return &AnswerService{AnswerRepo: answerRepo, Storage: storage}
}

// SubmitReviewInput 批改内容，0 分是合法评分（对应 REWRITE）
type SubmitReviewInput struct {
	Score       float64             `json:"score" binding:"gte=0,lte=10"`
	Feedback    string              `json:"feedback"`
	Strengths   string              `json:"strengths"`
	Weaknesses  string              `json:"weaknesses"`
	Suggestions string              `json:"suggestions"`
	Verdict     model.ReviewVerdict `json:"verdict"`
}

func (s *AnswerService) CreateQuestion(q *model.AnswerQuestion) error {
	return s.AnswerRepo.CreateQuestion(q)
}

func (s *AnswerService) GetAllQuestions() ([]model.AnswerQuestion, error) {
	return s.AnswerRepo.FindAllQuestions()
}

func (s *AnswerService) GetQuestion(id uint) (*model.AnswerQuestion, error) {
	q, err := s.AnswerRepo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return q, err
}

func (s *AnswerService) DeleteQuestion(id uint) error {
	_, err := s.AnswerRepo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuestionNotFound
	}
	if err != nil {
		return err
	}
	return s.AnswerRepo.DeleteQuestion(id)
}

// SubmitAnswer 上传作答 PDF 并创建提交记录，文件以 uuid 重命名避免冲突
func (s *AnswerService) SubmitAnswer(ctx context.Context, userID, questionID uint, reader io.Reader, size int64, timeTaken int, parentID *uint) (*model.AnswerSubmission, error) {
	if _, err := s.AnswerRepo.FindQuestionByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if parentID != nil {
		if _, err := s.AnswerRepo.FindSubmissionByID(*parentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrSubmissionNotFound
			}
			return nil, err
		}
	}

	filename := fmt.Sprintf("answers/%s.pdf", uuid.New().String())
	if _, err := s.Storage.Upload(ctx, filename, reader, size, util.MimePDF); err != nil {
		return nil, err
	}

	submission := &model.AnswerSubmission{
		QuestionID:         questionID,
		UserID:             userID,
		PdfPath:            filename,
		TimeTakenMinutes:   timeTaken,
		Status:             model.SubmissionSubmitted,
		ParentSubmissionID: parentID,
	}
	if err := s.AnswerRepo.CreateSubmission(submission); err != nil {
		s.Storage.Delete(ctx, filename)
		return nil, err
	}

	return s.AnswerRepo.FindSubmissionByID(submission.ID)
}

func (s *AnswerService) GetSubmissions(userID uint) ([]model.AnswerSubmission, error) {
	return s.AnswerRepo.FindSubmissionsByUser(userID)
}

func (s *AnswerService) GetSubmission(id uint) (*model.AnswerSubmission, error) {
	submission, err := s.AnswerRepo.FindSubmissionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubmissionNotFound
	}
	return submission, err
}

// OpenPdf 打开提交的作答文件供下载
func (s *AnswerService) OpenPdf(ctx context.Context, submissionID uint) (io.ReadCloser, error) {
	submission, err := s.GetSubmission(submissionID)
	if err != nil {
		return nil, err
	}
	return s.Storage.Open(ctx, submission.PdfPath)
}

// SubmitReview 首次批改生效，已批改的提交再次批改返回 ErrAlreadyReviewed
func (s *AnswerService) SubmitReview(submissionID uint, input *SubmitReviewInput) (*model.AnswerReview, error) {
	submission, err := s.GetSubmission(submissionID)
	if err != nil {
		return nil, err
	}

	if submission.Status == model.SubmissionReviewed {
		return nil, util.ErrAlreadyReviewed
	}
	if _, err := s.AnswerRepo.FindReviewBySubmission(submissionID); err == nil {
		return nil, util.ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.Score < 0 || input.Score > 10 {
		return nil, util.ErrInvalidScore
	}

	review := &model.AnswerReview{
		SubmissionID: submissionID,
		Score:        input.Score,
		Feedback:     input.Feedback,
		Strengths:    input.Strengths,
		Weaknesses:   input.Weaknesses,
		Suggestions:  input.Suggestions,
		Verdict:      input.Verdict,
	}

	if err := s.AnswerRepo.CreateReviewAndMarkReviewed(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *AnswerService) GetReview(submissionID uint) (*model.AnswerReview, error) {
	review, err := s.AnswerRepo.FindReviewBySubmission(submissionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrReviewNotFound
	}
	return review, err
}
