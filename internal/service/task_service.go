package service

import (
	"errors"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
	"walkalong_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type TaskService struct {
	TaskRepo   *repository.TaskRepository
	StreamRepo *repository.StreamRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, streamRepo *repository.StreamRepository) *TaskService {
	return &TaskService{TaskRepo: taskRepo, StreamRepo: streamRepo}
}

// UpdateTaskInput 更新任务的字段集合，nil 表示不修改
type UpdateTaskInput struct {
	Title           *string          `json:"title"`
	Type            *model.TaskType  `json:"type"`
	StreamID        *uint            `json:"streamId"`
	AssignedDate    *time.Time       `json:"assignedDate"`
	Duration        *int             `json:"duration"`
	DurationSeconds *int             `json:"durationSeconds"`
	Points          *int             `json:"points"`
	RevisionDate    *time.Time       `json:"revisionDate"`
	RevisionCount   *int             `json:"revisionCount"`
}

// CreateTask 创建任务，状态固定为 PENDING，分配日期缺省为今天
func (s *TaskService) CreateTask(userID uint, task *model.LearningTask) error {
	task.UserID = userID
	task.Status = model.TaskPending
	task.CompletedDate = nil
	if task.Type == "" {
		task.Type = model.TaskDaily
	}
	if task.AssignedDate.IsZero() {
		task.AssignedDate = util.Today()
	} else {
		task.AssignedDate = util.TruncateDate(task.AssignedDate)
	}
	if task.Points == 0 {
		task.Points = 10
	}

	if task.StreamID != nil {
		if _, err := s.StreamRepo.FindByID(*task.StreamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrStreamNotFound
			}
			return err
		}
	}

	return s.TaskRepo.Create(task)
}

func (s *TaskService) GetAllTasks(userID uint) ([]model.LearningTask, error) {
	return s.TaskRepo.FindAllByUser(userID)
}

// GetFilteredTasks 按状态和方向过滤，零值表示不过滤
func (s *TaskService) GetFilteredTasks(userID uint, status model.TaskStatus, streamID uint) ([]model.LearningTask, error) {
	return s.TaskRepo.FindFiltered(userID, status, streamID)
}

func (s *TaskService) GetTask(id uint) (*model.LearningTask, error) {
	task, err := s.TaskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	return task, err
}

func (s *TaskService) GetTasksByDate(userID uint, date time.Time) ([]model.LearningTask, error) {
	day := util.TruncateDate(date)
	return s.TaskRepo.FindByDateRange(userID, day, day.AddDate(0, 0, 1))
}

// UpdateTask 按字段合并更新，已完成的任务拒绝再编辑
func (s *TaskService) UpdateTask(id uint, input *UpdateTaskInput) (*model.LearningTask, error) {
	task, err := s.TaskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if task.Status == model.TaskCompleted {
		return nil, util.ErrTaskCompleted
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Type != nil {
		task.Type = *input.Type
	}
	if input.StreamID != nil {
		if *input.StreamID == 0 {
			task.StreamID = nil
			task.Stream = nil
		} else {
			if _, err := s.StreamRepo.FindByID(*input.StreamID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, util.ErrStreamNotFound
				}
				return nil, err
			}
			task.StreamID = input.StreamID
		}
	}
	if input.AssignedDate != nil {
		task.AssignedDate = util.TruncateDate(*input.AssignedDate)
	}
	if input.Duration != nil {
		task.Duration = *input.Duration
	}
	if input.DurationSeconds != nil {
		task.DurationSeconds = *input.DurationSeconds
	}
	if input.Points != nil {
		task.Points = *input.Points
	}
	if input.RevisionDate != nil {
		d := util.TruncateDate(*input.RevisionDate)
		task.RevisionDate = &d
	}
	if input.RevisionCount != nil {
		task.RevisionCount = *input.RevisionCount
	}

	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus 切换任务状态，COMPLETED 时写入完成日期，否则清空
func (s *TaskService) UpdateStatus(id uint, status model.TaskStatus) (*model.LearningTask, error) {
	task, err := s.TaskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	task.Status = status
	if status == model.TaskCompleted {
		today := util.Today()
		task.CompletedDate = &today
		monitoring.TaskCompletions.WithLabelValues(string(task.Type)).Inc()
	} else {
		task.CompletedDate = nil
	}

	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

// AddStopwatchTime 秒表暂停后刷新累计学习秒数
func (s *TaskService) AddStopwatchTime(id uint, seconds int) (*model.LearningTask, error) {
	task, err := s.TaskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	task.DurationSeconds += seconds
	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}
	monitoring.StudySeconds.Add(float64(seconds))
	return task, nil
}

func (s *TaskService) DeleteTask(id uint) error {
	_, err := s.TaskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrTaskNotFound
	}
	if err != nil {
		return err
	}
	return s.TaskRepo.Delete(id)
}
