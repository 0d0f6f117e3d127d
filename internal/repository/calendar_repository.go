package repository

import (
	"time"
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarRepository struct {
	DB *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

// Upsert 同一用户同一天只保留一条记录，重复写入时更新 studied
func (r *CalendarRepository) Upsert(entry *model.CalendarEntry) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"studied", "updated_at"}),
	}).Create(entry).Error
}

// FindByMonth 返回某月的全部打点
func (r *CalendarRepository) FindByMonth(userID uint, year int, month time.Month) ([]model.CalendarEntry, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var entries []model.CalendarEntry
	err := r.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").Find(&entries).Error
	return entries, err
}

func (r *CalendarRepository) FindByUserAndDate(userID uint, date time.Time) (*model.CalendarEntry, error) {
	var entry model.CalendarEntry
	err := r.DB.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindStudiedByUser 返回全部 studied=true 的打点，按日期升序
func (r *CalendarRepository) FindStudiedByUser(userID uint) ([]model.CalendarEntry, error) {
	var entries []model.CalendarEntry
	err := r.DB.Where("user_id = ? AND studied = ?", userID, true).
		Order("date ASC").Find(&entries).Error
	return entries, err
}

// CountStudiedDays 统计已学习天数
func (r *CalendarRepository) CountStudiedDays(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CalendarEntry{}).
		Where("user_id = ? AND studied = ?", userID, true).Count(&count).Error
	return count, err
}
