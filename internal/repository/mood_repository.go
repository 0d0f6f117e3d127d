package repository

import (
	"time"
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
)

type MoodRepository struct {
	DB *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{DB: db}
}

func (r *MoodRepository) Create(entry *model.MoodEntry) error {
	return r.DB.Create(entry).Error
}

// FindAllByUser 按日期降序返回情绪记录
func (r *MoodRepository) FindAllByUser(userID uint) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	err := r.DB.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&entries).Error
	return entries, err
}

func (r *MoodRepository) FindByID(id uint) (*model.MoodEntry, error) {
	var entry model.MoodEntry
	err := r.DB.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByDateRange 返回日期落在 [start, end) 内的记录
func (r *MoodRepository) FindByDateRange(userID uint, start, end time.Time) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	err := r.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").Find(&entries).Error
	return entries, err
}

func (r *MoodRepository) Update(entry *model.MoodEntry) error {
	return r.DB.Save(entry).Error
}

func (r *MoodRepository) Delete(id uint) error {
	return r.DB.Delete(&model.MoodEntry{}, id).Error
}
