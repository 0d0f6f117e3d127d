package service

import (
	"context"
	"testing"
	"walkalong_backend/internal/repository"
)

func newMotivationService(t *testing.T) *MotivationService {
	t.Helper()
	// Redis 为 nil 时直接走数据库
	return NewMotivationService(repository.NewMotivationRepository(setupTestDB(t)), nil)
}

func TestGetCurrentMotivationPicksFirstEnabled(t *testing.T) {
	s := newMotivationService(t)

	if err := s.CreateMotivation("坚持就是胜利"); err != nil {
		t.Fatalf("create motivation: %v", err)
	}

	content, err := s.GetCurrentMotivation(context.Background())
	if err != nil {
		t.Fatalf("get current: %v", err)
	}
	if content != "坚持就是胜利" {
		t.Errorf("content = %q, want 坚持就是胜利", content)
	}

	// 12 小时内再次获取不轮换
	again, err := s.GetCurrentMotivation(context.Background())
	if err != nil {
		t.Fatalf("get current again: %v", err)
	}
	if again != content {
		t.Errorf("content changed to %q within rotation window", again)
	}
}

func TestDeleteLastEnabledMotivationRejected(t *testing.T) {
	s := newMotivationService(t)

	if err := s.CreateMotivation("唯一的一条"); err != nil {
		t.Fatalf("create motivation: %v", err)
	}
	if _, err := s.GetCurrentMotivation(context.Background()); err != nil {
		t.Fatalf("get current: %v", err)
	}

	motivations, err := s.GetAllMotivations()
	if err != nil || len(motivations) != 1 {
		t.Fatalf("list motivations: %v (%d)", err, len(motivations))
	}
	if err := s.DeleteMotivation(context.Background(), motivations[0].ID); err == nil {
		t.Error("deleting the only enabled motivation should fail")
	}
}

func TestSwitchToMotivation(t *testing.T) {
	s := newMotivationService(t)

	if err := s.CreateMotivation("第一条"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CreateMotivation("第二条"); err != nil {
		t.Fatalf("create: %v", err)
	}

	motivations, err := s.GetAllMotivations()
	if err != nil || len(motivations) != 2 {
		t.Fatalf("list motivations: %v (%d)", err, len(motivations))
	}

	var target uint
	for _, m := range motivations {
		if m.Content == "第二条" {
			target = m.ID
		}
	}
	if err := s.SwitchToMotivation(context.Background(), target); err != nil {
		t.Fatalf("switch: %v", err)
	}

	content, err := s.GetCurrentMotivation(context.Background())
	if err != nil {
		t.Fatalf("get current: %v", err)
	}
	if content != "第二条" {
		t.Errorf("content = %q, want 第二条", content)
	}

	if err := s.SwitchToMotivation(context.Background(), 9999); err == nil {
		t.Error("switching to unknown motivation should fail")
	}
}
