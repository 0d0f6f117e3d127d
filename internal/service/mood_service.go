package service

import (
	"errors"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"gorm.io/gorm"
)

type MoodService struct {
	MoodRepo *repository.MoodRepository
}

func NewMoodService(moodRepo *repository.MoodRepository) *MoodService {
	return &MoodService{MoodRepo: moodRepo}
}

// UpdateMoodInput 情绪记录更新字段，nil 表示不修改
type UpdateMoodInput struct {
	Mood       *int    `json:"mood"`
	Energy     *int    `json:"energy"`
	Motivation *int    `json:"motivation"`
	Notes      *string `json:"notes"`
}

func validRating(v int) bool {
	return v >= 1 && v <= 5
}

// CreateEntry 三项评分都必须在 1-5 之间
func (s *MoodService) CreateEntry(userID uint, entry *model.MoodEntry) error {
	if !validRating(entry.Mood) || !validRating(entry.Energy) || !validRating(entry.Motivation) {
		return util.ErrInvalidRating
	}

	entry.UserID = userID
	if entry.Date.IsZero() {
		entry.Date = util.Today()
	} else {
		entry.Date = util.TruncateDate(entry.Date)
	}
	return s.MoodRepo.Create(entry)
}

func (s *MoodService) GetAllEntries(userID uint) ([]model.MoodEntry, error) {
	return s.MoodRepo.FindAllByUser(userID)
}

func (s *MoodService) GetEntry(id uint) (*model.MoodEntry, error) {
	entry, err := s.MoodRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	return entry, err
}

// GetRecentEntries 返回最近 N 天的记录，用于趋势图
func (s *MoodService) GetRecentEntries(userID uint, days int) ([]model.MoodEntry, error) {
	end := util.Today().AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)
	return s.MoodRepo.FindByDateRange(userID, start, end)
}

func (s *MoodService) GetEntriesByDate(userID uint, date time.Time) ([]model.MoodEntry, error) {
	day := util.TruncateDate(date)
	return s.MoodRepo.FindByDateRange(userID, day, day.AddDate(0, 0, 1))
}

func (s *MoodService) UpdateEntry(id uint, input *UpdateMoodInput) (*model.MoodEntry, error) {
	entry, err := s.MoodRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Mood != nil {
		if !validRating(*input.Mood) {
			return nil, util.ErrInvalidRating
		}
		entry.Mood = *input.Mood
	}
	if input.Energy != nil {
		if !validRating(*input.Energy) {
			return nil, util.ErrInvalidRating
		}
		entry.Energy = *input.Energy
	}
	if input.Motivation != nil {
		if !validRating(*input.Motivation) {
			return nil, util.ErrInvalidRating
		}
		entry.Motivation = *input.Motivation
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}

	if err := s.MoodRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MoodService) DeleteEntry(id uint) error {
	_, err := s.MoodRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	return s.MoodRepo.Delete(id)
}
