package repository

import (
	"time"
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
)

type WorkDoneRepository struct {
	DB *gorm.DB
}

func NewWorkDoneRepository(db *gorm.DB) *WorkDoneRepository {
	return &WorkDoneRepository{DB: db}
}

func (r *WorkDoneRepository) Create(entry *model.WorkDoneEntry) error {
	return r.DB.Create(entry).Error
}

// FindAllByUser 按日期降序返回工作日志，包含条目
func (r *WorkDoneRepository) FindAllByUser(userID uint) ([]model.WorkDoneEntry, error) {
	var entries []model.WorkDoneEntry
	err := r.DB.Preload("Items").Where("user_id = ?", userID).
		Order("date DESC, id DESC").Find(&entries).Error
	return entries, err
}

func (r *WorkDoneRepository) FindByID(id uint) (*model.WorkDoneEntry, error) {
	var entry model.WorkDoneEntry
	err := r.DB.Preload("Items").First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByDateRange 返回日期落在 [start, end) 内的日志，包含条目
func (r *WorkDoneRepository) FindByDateRange(userID uint, start, end time.Time) ([]model.WorkDoneEntry, error) {
	var entries []model.WorkDoneEntry
	err := r.DB.Preload("Items").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").Find(&entries).Error
	return entries, err
}

// Update 保存日志并全量替换条目
func (r *WorkDoneRepository) Update(entry *model.WorkDoneEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&model.WorkDoneItem{}).Error; err != nil {
			return err
		}
		for i := range entry.Items {
			entry.Items[i].ID = 0
			entry.Items[i].EntryID = entry.ID
		}
		return tx.Save(entry).Error
	})
}

func (r *WorkDoneRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", id).Delete(&model.WorkDoneItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.WorkDoneEntry{}, id).Error
	})
}

// SumPoints 累计用户全部日志积分
func (r *WorkDoneRepository) SumPoints(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.WorkDoneEntry{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_points), 0)").Scan(&total).Error
	return total, err
}

// SumPointsInRange 累计 [start, end) 内的日志积分
func (r *WorkDoneRepository) SumPointsInRange(userID uint, start, end time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&model.WorkDoneEntry{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(total_points), 0)").Scan(&total).Error
	return total, err
}
