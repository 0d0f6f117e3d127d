package repository

import (
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
)

type StreamRepository struct {
	DB *gorm.DB
}

func NewStreamRepository(db *gorm.DB) *StreamRepository {
	return &StreamRepository{DB: db}
}

func (r *StreamRepository) Create(stream *model.Stream) error {
	return r.DB.Create(stream).Error
}

// FindAllByUser 返回用户的全部学习方向，按创建时间升序
func (r *StreamRepository) FindAllByUser(userID uint) ([]model.Stream, error) {
	var streams []model.Stream
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&streams).Error
	return streams, err
}

func (r *StreamRepository) FindByID(id uint) (*model.Stream, error) {
	var stream model.Stream
	err := r.DB.First(&stream, id).Error
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

// FindByIDWithTasks 返回学习方向及其全部任务
func (r *StreamRepository) FindByIDWithTasks(id uint) (*model.Stream, error) {
	var stream model.Stream
	err := r.DB.Preload("Tasks").First(&stream, id).Error
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

func (r *StreamRepository) Update(stream *model.Stream) error {
	return r.DB.Save(stream).Error
}

// Delete 删除学习方向时级联删除其任务和便签
func (r *StreamRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stream_id = ?", id).Delete(&model.LearningTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stream_id = ?", id).Delete(&model.StreamNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Stream{}, id).Error
	})
}

// CountTasksByStatus 统计方向内给定状态的任务数量
func (r *StreamRepository) CountTasksByStatus(streamID uint, status model.TaskStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningTask{}).
		Where("stream_id = ? AND status = ?", streamID, status).Count(&count).Error
	return count, err
}

// CountTasks 统计方向内任务总数
func (r *StreamRepository) CountTasks(streamID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningTask{}).Where("stream_id = ?", streamID).Count(&count).Error
	return count, err
}
