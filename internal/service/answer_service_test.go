package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"walkalong_backend/internal/config"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin/binding"
)

func newAnswerService(t *testing.T) *AnswerService {
	t.Helper()
	db := setupTestDB(t)
	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}
	return NewAnswerService(repository.NewAnswerRepository(db), storage)
}

func createQuestion(t *testing.T, s *AnswerService) *model.AnswerQuestion {
	t.Helper()
	q := &model.AnswerQuestion{Text: "评价近十年的行政改革", Subject: "Polity", Topic: "Governance"}
	if err := s.CreateQuestion(q); err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

func submitPdf(t *testing.T, s *AnswerService, questionID uint, parentID *uint) *model.AnswerSubmission {
	t.Helper()
	content := "%PDF-1.4 fake answer body"
	submission, err := s.SubmitAnswer(context.Background(), testUserID, questionID,
		strings.NewReader(content), int64(len(content)), 45, parentID)
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	return submission
}

func TestSubmitAnswerStoresPdf(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)

	submission := submitPdf(t, s, q.ID, nil)

	if submission.Status != model.SubmissionSubmitted {
		t.Errorf("status = %s, want SUBMITTED", submission.Status)
	}
	if submission.TimeTakenMinutes != 45 {
		t.Errorf("timeTaken = %d, want 45", submission.TimeTakenMinutes)
	}
	if !strings.HasPrefix(submission.PdfPath, "answers/") || !strings.HasSuffix(submission.PdfPath, ".pdf") {
		t.Errorf("pdfPath = %q, want answers/<uuid>.pdf", submission.PdfPath)
	}

	reader, err := s.OpenPdf(context.Background(), submission.ID)
	if err != nil {
		t.Fatalf("open pdf: %v", err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-1.4") {
		t.Errorf("stored file does not start with pdf header: %q", data)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	s := newAnswerService(t)

	_, err := s.SubmitAnswer(context.Background(), testUserID, 9999,
		strings.NewReader("x"), 1, 10, nil)
	if !errors.Is(err, util.ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestSubmitAnswerUnknownParent(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)

	parent := uint(9999)
	_, err := s.SubmitAnswer(context.Background(), testUserID, q.ID,
		strings.NewReader("x"), 1, 10, &parent)
	if !errors.Is(err, util.ErrSubmissionNotFound) {
		t.Errorf("err = %v, want ErrSubmissionNotFound", err)
	}
}

func TestResubmissionLinksParent(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)

	first := submitPdf(t, s, q.ID, nil)
	second := submitPdf(t, s, q.ID, &first.ID)

	if second.ParentSubmissionID == nil || *second.ParentSubmissionID != first.ID {
		t.Errorf("parentSubmissionId = %v, want %d", second.ParentSubmissionID, first.ID)
	}
}

func TestSubmitReviewFlipsStatus(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)
	submission := submitPdf(t, s, q.ID, nil)

	review, err := s.SubmitReview(submission.ID, &SubmitReviewInput{
		Score:    7.5,
		Feedback: "结构清晰，论证还需加强",
		Verdict:  model.VerdictGood,
	})
	if err != nil {
		t.Fatalf("submit review: %v", err)
	}
	if review.Score != 7.5 {
		t.Errorf("score = %v, want 7.5", review.Score)
	}

	reloaded, err := s.GetSubmission(submission.ID)
	if err != nil {
		t.Fatalf("reload submission: %v", err)
	}
	if reloaded.Status != model.SubmissionReviewed {
		t.Errorf("status = %s, want REVIEWED", reloaded.Status)
	}
}

func TestSubmitReviewOnlyOnce(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)
	submission := submitPdf(t, s, q.ID, nil)

	if _, err := s.SubmitReview(submission.ID, &SubmitReviewInput{Score: 8}); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := s.SubmitReview(submission.ID, &SubmitReviewInput{Score: 9}); !errors.Is(err, util.ErrAlreadyReviewed) {
		t.Errorf("second review err = %v, want ErrAlreadyReviewed", err)
	}

	review, err := s.GetReview(submission.ID)
	if err != nil {
		t.Fatalf("get review: %v", err)
	}
	if review.Score != 8 {
		t.Errorf("score = %v, first review should stand", review.Score)
	}
}

func TestSubmitReviewScoreRange(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)

	for _, score := range []float64{-1, 10.5} {
		if err := binding.Validator.ValidateStruct(&SubmitReviewInput{Score: score}); err == nil {
			t.Errorf("score %v: accepted at binding, want validation error", score)
		}
		submission := submitPdf(t, s, q.ID, nil)
		if _, err := s.SubmitReview(submission.ID, &SubmitReviewInput{Score: score}); !errors.Is(err, util.ErrInvalidScore) {
			t.Errorf("score %v: err = %v, want ErrInvalidScore", score, err)
		}
	}
}

func TestSubmitReviewZeroScore(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)
	submission := submitPdf(t, s, q.ID, nil)

	// 0 分是 REWRITE 判定的正常评分，不能被绑定层当作缺失字段拦下
	input := &SubmitReviewInput{Score: 0, Verdict: model.VerdictRewrite}
	if err := binding.Validator.ValidateStruct(input); err != nil {
		t.Fatalf("zero score rejected at binding: %v", err)
	}

	review, err := s.SubmitReview(submission.ID, input)
	if err != nil {
		t.Fatalf("submit review: %v", err)
	}
	if review.Score != 0 {
		t.Errorf("score = %v, want 0", review.Score)
	}
	if review.Verdict != model.VerdictRewrite {
		t.Errorf("verdict = %s, want REWRITE", review.Verdict)
	}

	reloaded, err := s.GetSubmission(submission.ID)
	if err != nil {
		t.Fatalf("reload submission: %v", err)
	}
	if reloaded.Status != model.SubmissionReviewed {
		t.Errorf("status = %s, want REVIEWED", reloaded.Status)
	}
}

func TestGetReviewNotFound(t *testing.T) {
	s := newAnswerService(t)
	q := createQuestion(t, s)
	submission := submitPdf(t, s, q.ID, nil)

	if _, err := s.GetReview(submission.ID); !errors.Is(err, util.ErrReviewNotFound) {
		t.Errorf("err = %v, want ErrReviewNotFound", err)
	}
}
