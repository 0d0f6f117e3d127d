package service

import (
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

// AnalyticsService 学习数据总览
type AnalyticsService struct {
	TaskRepo     *repository.TaskRepository
	WorkDoneRepo *repository.WorkDoneRepository
	AnswerRepo   *repository.AnswerRepository
	CalendarRepo *repository.CalendarRepository
}

func NewAnalyticsService(
	taskRepo *repository.TaskRepository,
	workDoneRepo *repository.WorkDoneRepository,
	answerRepo *repository.AnswerRepository,
	calendarRepo *repository.CalendarRepository,
) *AnalyticsService {
	return &AnalyticsService{
		TaskRepo:     taskRepo,
		WorkDoneRepo: workDoneRepo,
		AnswerRepo:   answerRepo,
		CalendarRepo: calendarRepo,
	}
}

// Overview 首页分析总览
type Overview struct {
	TotalTasks          int64   `json:"totalTasks"`
	CompletedTasks      int64   `json:"completedTasks"`
	PendingTasks        int64   `json:"pendingTasks"`
	SkippedTasks        int64   `json:"skippedTasks"`
	LearningRate        float64 `json:"learningRate"`
	CompletedThisWeek   int64   `json:"completedThisWeek"`
	TotalPoints         int64   `json:"totalPoints"`
	TotalStudySeconds   int64   `json:"totalStudySeconds"`
	StudiedDays         int64   `json:"studiedDays"`
	ReviewedSubmissions int64   `json:"reviewedSubmissions"`
	PendingSubmissions  int64   `json:"pendingSubmissions"`
}

// GetOverview 汇总任务、积分、日历与答题数据；无任务时完成率为 0
func (s *AnalyticsService) GetOverview(userID uint) (*Overview, error) {
	completed, err := s.TaskRepo.CountByStatus(userID, model.TaskCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.TaskRepo.CountByStatus(userID, model.TaskPending)
	if err != nil {
		return nil, err
	}
	skipped, err := s.TaskRepo.CountByStatus(userID, model.TaskSkipped)
	if err != nil {
		return nil, err
	}
	total := completed + pending + skipped

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total)
	}

	today := util.Today()
	weekCompleted, err := s.TaskRepo.CountCompletedInRange(userID, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	totalPoints, err := s.WorkDoneRepo.SumPoints(userID)
	if err != nil {
		return nil, err
	}

	studySeconds, err := s.TaskRepo.SumDurationSeconds(userID)
	if err != nil {
		return nil, err
	}

	studiedDays, err := s.CalendarRepo.CountStudiedDays(userID)
	if err != nil {
		return nil, err
	}

	reviewed, err := s.AnswerRepo.CountSubmissionsByStatus(userID, model.SubmissionReviewed)
	if err != nil {
		return nil, err
	}
	submitted, err := s.AnswerRepo.CountSubmissionsByStatus(userID, model.SubmissionSubmitted)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalTasks:          total,
		CompletedTasks:      completed,
		PendingTasks:        pending,
		SkippedTasks:        skipped,
		LearningRate:        rate,
		CompletedThisWeek:   weekCompleted,
		TotalPoints:         totalPoints,
		TotalStudySeconds:   studySeconds,
		StudiedDays:         studiedDays,
		ReviewedSubmissions: reviewed,
		PendingSubmissions:  submitted,
	}, nil
}
