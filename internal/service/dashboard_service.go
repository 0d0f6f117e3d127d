package service

import (
	"math"
	"sort"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

// DashboardService 聚合首页需要的派生视图，全部即时计算不做缓存
type DashboardService struct {
	TaskRepo     *repository.TaskRepository
	CalendarRepo *repository.CalendarRepository
}

func NewDashboardService(taskRepo *repository.TaskRepository, calendarRepo *repository.CalendarRepository) *DashboardService {
	return &DashboardService{TaskRepo: taskRepo, CalendarRepo: calendarRepo}
}

// RevisionReminder 附带了距复习日天数的任务视图，负数表示已逾期
type RevisionReminder struct {
	Task      model.LearningTask `json:"task"`
	DaysUntil int                `json:"daysUntil"`
}

// GetRevisionReminders 复习日在 3 天内（含逾期）的任务，按临近程度升序取前 5 条
func (s *DashboardService) GetRevisionReminders(userID uint) ([]RevisionReminder, error) {
	tasks, err := s.TaskRepo.FindWithRevisionDate(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reminders := make([]RevisionReminder, 0, len(tasks))
	for _, task := range tasks {
		if task.RevisionDate == nil {
			continue
		}
		daysUntil := int(math.Ceil(task.RevisionDate.Sub(now).Hours() / 24))
		if daysUntil <= 3 {
			reminders = append(reminders, RevisionReminder{Task: task, DaysUntil: daysUntil})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysUntil < reminders[j].DaysUntil
	})

	if len(reminders) > 5 {
		reminders = reminders[:5]
	}
	return reminders, nil
}

// GetTodayTasks 今天分配的任务
func (s *DashboardService) GetTodayTasks(userID uint) ([]model.LearningTask, error) {
	today := util.Today()
	return s.TaskRepo.FindByDateRange(userID, today, today.AddDate(0, 0, 1))
}

// GetStudiedDays 日历上标记为已学习的总天数
func (s *DashboardService) GetStudiedDays(userID uint) (int64, error) {
	return s.CalendarRepo.CountStudiedDays(userID)
}
