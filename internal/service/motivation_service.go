package service

import (
	"context"
	"errors"
	"math/rand"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const motivationCacheKey = "walkalong:motivation:current"

// MotivationService 激励短句，每 12 小时轮换一条，当前短句走 Redis 缓存
type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
	Redis          *redis.Client
}

func NewMotivationService(motivationRepo *repository.MotivationRepository, rdb *redis.Client) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo, Redis: rdb}
}

func (s *MotivationService) GetAllMotivations() ([]*model.Motivation, error) {
	return s.MotivationRepo.GetAll()
}

// GetCurrentMotivation 到期时从启用列表中随机换一条（排除当前）
func (s *MotivationService) GetCurrentMotivation(ctx context.Context) (string, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, motivationCacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	current, err := s.MotivationRepo.GetCurrent()
	if err != nil {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return "", err
		}
		s.MotivationRepo.SetCurrent(enabled[0].ID)
		s.cache(ctx, enabled[0].Content)
		return enabled[0].Content, nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabled, err := s.MotivationRepo.GetEnabled()
	if err == nil && len(enabled) > 1 && elapsed.Hours() >= 12 {
		var candidates []*model.Motivation
		for _, m := range enabled {
			if m.ID != current.ID {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			s.MotivationRepo.SetCurrent(next.ID)
			s.cache(ctx, next.Content)
			return next.Content, nil
		}
	}

	s.cache(ctx, current.Content)
	return current.Content, nil
}

// cache 缓存有效期与轮换剩余时间无关，固定 10 分钟兜底
func (s *MotivationService) cache(ctx context.Context, content string) {
	if s.Redis != nil {
		s.Redis.Set(ctx, motivationCacheKey, content, 10*time.Minute)
	}
}

func (s *MotivationService) invalidate(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, motivationCacheKey)
	}
}

func (s *MotivationService) CreateMotivation(content string) error {
	motivation := &model.Motivation{
		Content:         content,
		IsEnabled:       true,
		IsCurrentlyUsed: false,
	}
	return s.MotivationRepo.Create(motivation)
}

func (s *MotivationService) UpdateMotivation(ctx context.Context, id uint, content string, isEnabled bool) error {
	motivation, err := s.MotivationRepo.FindByID(id)
	if err != nil {
		return err
	}

	current, err := s.MotivationRepo.GetCurrent()
	if err == nil && current.ID == id && !isEnabled {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("至少需要保留一个启用的激励短句")
		}
	}

	motivation.Content = content
	motivation.IsEnabled = isEnabled
	if err := s.MotivationRepo.Update(motivation); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MotivationService) DeleteMotivation(ctx context.Context, id uint) error {
	current, err := s.MotivationRepo.GetCurrent()
	if err == nil && current.ID == id {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("至少需要保留一个启用的激励短句")
		}
	}

	if err := s.MotivationRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// SwitchToMotivation 立即切换到指定短句
func (s *MotivationService) SwitchToMotivation(ctx context.Context, id uint) error {
	motivations, err := s.MotivationRepo.GetAll()
	if err != nil {
		return err
	}

	found := false
	for _, m := range motivations {
		if m.ID == id {
			found = true
			if !m.IsEnabled {
				return errors.New("该激励短句未启用")
			}
			break
		}
	}

	if !found {
		return errors.New("未找到指定的激励短句")
	}

	if err := s.MotivationRepo.SetCurrent(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
