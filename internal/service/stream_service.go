package service

import (
	"errors"
	"math"
	"strings"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"gorm.io/gorm"
)

type StreamService struct {
	StreamRepo *repository.StreamRepository
}

func NewStreamService(streamRepo *repository.StreamRepository) *StreamService {
	return &StreamService{StreamRepo: streamRepo}
}

// StreamStats 方向的任务完成统计
type StreamStats struct {
	StreamID   uint   `json:"streamId"`
	Name       string `json:"name"`
	Total      int64  `json:"total"`
	Completed  int64  `json:"completed"`
	Pending    int64  `json:"pending"`
	Skipped    int64  `json:"skipped"`
	Percentage int    `json:"percentage"`
}

func (s *StreamService) CreateStream(userID uint, stream *model.Stream) error {
	if strings.TrimSpace(stream.Name) == "" {
		return errors.New("stream name is required")
	}
	stream.UserID = userID
	return s.StreamRepo.Create(stream)
}

func (s *StreamService) GetAllStreams(userID uint) ([]model.Stream, error) {
	return s.StreamRepo.FindAllByUser(userID)
}

func (s *StreamService) GetStream(id uint) (*model.Stream, error) {
	stream, err := s.StreamRepo.FindByIDWithTasks(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStreamNotFound
	}
	return stream, err
}

func (s *StreamService) UpdateStream(id uint, name string) (*model.Stream, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("stream name is required")
	}

	stream, err := s.StreamRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStreamNotFound
	}
	if err != nil {
		return nil, err
	}

	stream.Name = name
	if err := s.StreamRepo.Update(stream); err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *StreamService) DeleteStream(id uint) error {
	_, err := s.StreamRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrStreamNotFound
	}
	if err != nil {
		return err
	}
	return s.StreamRepo.Delete(id)
}

// GetStreamStats 无任务时完成率为 0 而非 NaN
func (s *StreamService) GetStreamStats(id uint) (*StreamStats, error) {
	stream, err := s.StreamRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStreamNotFound
	}
	if err != nil {
		return nil, err
	}

	total, err := s.StreamRepo.CountTasks(id)
	if err != nil {
		return nil, err
	}
	completed, err := s.StreamRepo.CountTasksByStatus(id, model.TaskCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.StreamRepo.CountTasksByStatus(id, model.TaskPending)
	if err != nil {
		return nil, err
	}
	skipped, err := s.StreamRepo.CountTasksByStatus(id, model.TaskSkipped)
	if err != nil {
		return nil, err
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return &StreamStats{
		StreamID:   stream.ID,
		Name:       stream.Name,
		Total:      total,
		Completed:  completed,
		Pending:    pending,
		Skipped:    skipped,
		Percentage: percentage,
	}, nil
}

// GetAllStreamStats 仪表盘展示所有方向的完成率
func (s *StreamService) GetAllStreamStats(userID uint) ([]StreamStats, error) {
	streams, err := s.StreamRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := make([]StreamStats, 0, len(streams))
	for _, stream := range streams {
		st, err := s.GetStreamStats(stream.ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *st)
	}
	return stats, nil
}
