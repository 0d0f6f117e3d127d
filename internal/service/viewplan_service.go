package service

import (
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

// ViewPlanService 按日/周/月三个视角查询计划任务
type ViewPlanService struct {
	TaskRepo *repository.TaskRepository
}

func NewViewPlanService(taskRepo *repository.TaskRepository) *ViewPlanService {
	return &ViewPlanService{TaskRepo: taskRepo}
}

// GetDailyTasks 指定日期的 DAILY 任务
func (s *ViewPlanService) GetDailyTasks(userID uint, date time.Time) ([]model.LearningTask, error) {
	day := util.TruncateDate(date)
	return s.TaskRepo.FindByTypeAndDateRange(userID, model.TaskDaily, day, day.AddDate(0, 0, 1))
}

// GetWeeklyTasks 指定日期所在 ISO 周的 WEEKLY 任务
func (s *ViewPlanService) GetWeeklyTasks(userID uint, date time.Time) ([]model.LearningTask, error) {
	start := mondayOf(util.TruncateDate(date))
	return s.TaskRepo.FindByTypeAndDateRange(userID, model.TaskWeekly, start, start.AddDate(0, 0, 7))
}

// GetMonthlyTasks 指定日期所在自然月的 MONTHLY 任务
func (s *ViewPlanService) GetMonthlyTasks(userID uint, date time.Time) ([]model.LearningTask, error) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
	return s.TaskRepo.FindByTypeAndDateRange(userID, model.TaskMonthly, start, start.AddDate(0, 1, 0))
}
