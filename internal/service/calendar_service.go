package service

import (
	"errors"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"gorm.io/gorm"
)

// CalendarService 学习日历打点
type CalendarService struct {
	CalendarRepo *repository.CalendarRepository
}

func NewCalendarService(calendarRepo *repository.CalendarRepository) *CalendarService {
	return &CalendarService{CalendarRepo: calendarRepo}
}

// MarkDay 标记某天是否学习过，同一天重复标记时覆盖
func (s *CalendarService) MarkDay(userID uint, date time.Time, studied bool) (*model.CalendarEntry, error) {
	entry := &model.CalendarEntry{
		UserID:  userID,
		Date:    util.TruncateDate(date),
		Studied: studied,
	}
	if err := s.CalendarRepo.Upsert(entry); err != nil {
		return nil, err
	}
	return s.CalendarRepo.FindByUserAndDate(userID, entry.Date)
}

func (s *CalendarService) GetMonth(userID uint, year int, month time.Month) ([]model.CalendarEntry, error) {
	return s.CalendarRepo.FindByMonth(userID, year, month)
}

// GetStudiedDates 已学习日期的 yyyy-mm-dd 列表，供前端日历高亮
func (s *CalendarService) GetStudiedDates(userID uint) ([]string, error) {
	entries, err := s.CalendarRepo.FindStudiedByUser(userID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, entry.Date.Format(util.DateFormat))
	}
	return dates, nil
}

func (s *CalendarService) GetDay(userID uint, date time.Time) (*model.CalendarEntry, error) {
	entry, err := s.CalendarRepo.FindByUserAndDate(userID, util.TruncateDate(date))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	return entry, err
}
