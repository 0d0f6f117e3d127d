package repository

import (
	"time"
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(task *model.LearningTask) error {
	return r.DB.Create(task).Error
}

// FindAllByUser 返回用户全部任务，预加载所属方向，按分配日期降序
func (r *TaskRepository) FindAllByUser(userID uint) ([]model.LearningTask, error) {
	var tasks []model.LearningTask
	err := r.DB.Preload("Stream").Where("user_id = ?", userID).
		Order("assigned_date DESC, id DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByID(id uint) (*model.LearningTask, error) {
	var task model.LearningTask
	err := r.DB.Preload("Stream").First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindFiltered 按状态和方向过滤任务列表，零值参数表示不过滤
func (r *TaskRepository) FindFiltered(userID uint, status model.TaskStatus, streamID uint) ([]model.LearningTask, error) {
	query := r.DB.Preload("Stream").Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if streamID != 0 {
		query = query.Where("stream_id = ?", streamID)
	}

	var tasks []model.LearningTask
	err := query.Order("assigned_date DESC, id DESC").Find(&tasks).Error
	return tasks, err
}

// FindByDateRange 返回分配日期落在 [start, end) 内的任务
func (r *TaskRepository) FindByDateRange(userID uint, start, end time.Time) ([]model.LearningTask, error) {
	var tasks []model.LearningTask
	err := r.DB.Preload("Stream").
		Where("user_id = ? AND assigned_date >= ? AND assigned_date < ?", userID, start, end).
		Order("assigned_date ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

// FindByTypeAndDateRange 视图计划用：按周期类型过滤
func (r *TaskRepository) FindByTypeAndDateRange(userID uint, taskType model.TaskType, start, end time.Time) ([]model.LearningTask, error) {
	var tasks []model.LearningTask
	err := r.DB.Preload("Stream").
		Where("user_id = ? AND type = ? AND assigned_date >= ? AND assigned_date < ?", userID, taskType, start, end).
		Order("assigned_date ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

// FindWithRevisionDate 返回设置了复习日期的任务
func (r *TaskRepository) FindWithRevisionDate(userID uint) ([]model.LearningTask, error) {
	var tasks []model.LearningTask
	err := r.DB.Where("user_id = ? AND revision_date IS NOT NULL", userID).
		Order("revision_date ASC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(task *model.LearningTask) error {
	return r.DB.Save(task).Error
}

func (r *TaskRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LearningTask{}, id).Error
}

// CountByStatus 统计用户某状态下的任务数量
func (r *TaskRepository) CountByStatus(userID uint, status model.TaskStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningTask{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&count).Error
	return count, err
}

// CountCompletedInRange 统计区间内完成的任务数量，按完成日期判断
func (r *TaskRepository) CountCompletedInRange(userID uint, start, end time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningTask{}).
		Where("user_id = ? AND status = ? AND completed_date >= ? AND completed_date < ?",
			userID, model.TaskCompleted, start, end).Count(&count).Error
	return count, err
}

// SumDurationSeconds 累计用户实际学习秒数
func (r *TaskRepository) SumDurationSeconds(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.LearningTask{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration_seconds), 0)").Scan(&total).Error
	return total, err
}
