package service

import (
	"errors"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"gorm.io/gorm"
)

type WorkDoneService struct {
	WorkDoneRepo *repository.WorkDoneRepository
}

func NewWorkDoneService(workDoneRepo *repository.WorkDoneRepository) *WorkDoneService {
	return &WorkDoneService{WorkDoneRepo: workDoneRepo}
}

// PointsSummary 积分概览
type PointsSummary struct {
	TotalPoints  int64             `json:"totalPoints"`
	WeeklyPoints int64             `json:"weeklyPoints"`
	Breakdown    []PointsBreakdown `json:"breakdown"`
}

type PointsBreakdown struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
	Points    int    `json:"points"`
	ItemCount int    `json:"itemCount"`
}

// DaySatisfaction 周满意度图表的单日数据
type DaySatisfaction struct {
	Date         string `json:"date"`
	Day          string `json:"day"`
	Satisfaction int    `json:"satisfaction"`
	Points       int    `json:"points"`
	HasEntry     bool   `json:"hasEntry"`
}

// CreateEntry 创建工作日志，日期缺省为今天，总积分按条目重算
func (s *WorkDoneService) CreateEntry(userID uint, entry *model.WorkDoneEntry) error {
	if entry.SatisfactionLevel != 0 && (entry.SatisfactionLevel < 1 || entry.SatisfactionLevel > 5) {
		return util.ErrInvalidRating
	}
	entry.UserID = userID
	if entry.Date.IsZero() {
		entry.Date = util.Today()
	} else {
		entry.Date = util.TruncateDate(entry.Date)
	}
	entry.DayOfWeek = entry.Date.Weekday().String()
	entry.CalculateTotalPoints()
	return s.WorkDoneRepo.Create(entry)
}

func (s *WorkDoneService) GetAllEntries(userID uint) ([]model.WorkDoneEntry, error) {
	return s.WorkDoneRepo.FindAllByUser(userID)
}

func (s *WorkDoneService) GetEntry(id uint) (*model.WorkDoneEntry, error) {
	entry, err := s.WorkDoneRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	return entry, err
}

// GetEntryByDate 某日无记录时返回 nil 而非错误，调用方据此渲染空白模板
func (s *WorkDoneService) GetEntryByDate(userID uint, date time.Time) (*model.WorkDoneEntry, error) {
	day := util.TruncateDate(date)
	entries, err := s.WorkDoneRepo.FindByDateRange(userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (s *WorkDoneService) GetWeekEntries(userID uint, weekStart time.Time) ([]model.WorkDoneEntry, error) {
	start := util.TruncateDate(weekStart)
	return s.WorkDoneRepo.FindByDateRange(userID, start, start.AddDate(0, 0, 7))
}

// UpdateEntry 全量替换条目列表并重算总积分
func (s *WorkDoneService) UpdateEntry(id uint, input *model.WorkDoneEntry) (*model.WorkDoneEntry, error) {
	entry, err := s.WorkDoneRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if !input.Date.IsZero() {
		entry.Date = util.TruncateDate(input.Date)
		entry.DayOfWeek = entry.Date.Weekday().String()
	}
	// 满意度和备注缺省时保持原值，条目列表始终整体替换
	if input.SatisfactionLevel != 0 {
		if input.SatisfactionLevel < 1 || input.SatisfactionLevel > 5 {
			return nil, util.ErrInvalidRating
		}
		entry.SatisfactionLevel = input.SatisfactionLevel
	}
	if input.Notes != "" {
		entry.Notes = input.Notes
	}
	entry.Items = input.Items
	entry.CalculateTotalPoints()

	if err := s.WorkDoneRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WorkDoneService) DeleteEntry(id uint) error {
	_, err := s.WorkDoneRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	return s.WorkDoneRepo.Delete(id)
}

// GetPointsSummary 总积分加滚动近 7 天积分，并附最近 10 条日志的明细
func (s *WorkDoneService) GetPointsSummary(userID uint) (*PointsSummary, error) {
	total, err := s.WorkDoneRepo.SumPoints(userID)
	if err != nil {
		return nil, err
	}

	today := util.Today()
	weekly, err := s.WorkDoneRepo.SumPointsInRange(userID, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	entries, err := s.WorkDoneRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]PointsBreakdown, 0, 10)
	for i, entry := range entries {
		if i >= 10 {
			break
		}
		breakdown = append(breakdown, PointsBreakdown{
			Date:      entry.Date.Format(util.DateFormat),
			DayOfWeek: entry.DayOfWeek,
			Points:    entry.TotalPoints,
			ItemCount: len(entry.Items),
		})
	}

	return &PointsSummary{
		TotalPoints:  total,
		WeeklyPoints: weekly,
		Breakdown:    breakdown,
	}, nil
}

// GetWeeklySatisfaction 按周一到周日返回 7 个槽位，无记录的日子 hasEntry=false
func (s *WorkDoneService) GetWeeklySatisfaction(userID uint, weekStart *time.Time) ([]DaySatisfaction, error) {
	var start time.Time
	if weekStart != nil {
		start = util.TruncateDate(*weekStart)
	} else {
		start = mondayOf(util.Today())
	}

	entries, err := s.WorkDoneRepo.FindByDateRange(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*model.WorkDoneEntry, len(entries))
	for i := range entries {
		key := entries[i].Date.Format(util.DateFormat)
		if _, exists := byDate[key]; !exists {
			byDate[key] = &entries[i]
		}
	}

	result := make([]DaySatisfaction, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		slot := DaySatisfaction{
			Date: day.Format(util.DateFormat),
			Day:  day.Weekday().String()[:3],
		}
		if entry, ok := byDate[slot.Date]; ok {
			slot.Satisfaction = entry.SatisfactionLevel
			slot.Points = entry.TotalPoints
			slot.HasEntry = true
		}
		result = append(result, slot)
	}

	return result, nil
}

// mondayOf 返回给定日期所在周的周一
func mondayOf(date time.Time) time.Time {
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return date.AddDate(0, 0, -offset)
}
