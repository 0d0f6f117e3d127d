package service

import (
	"errors"
	"testing"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"gorm.io/gorm"
)

func newStreamNoteService(t *testing.T) (*StreamNoteService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewStreamNoteService(repository.NewStreamNoteRepository(db), repository.NewStreamRepository(db)), db
}

func createNoteStream(t *testing.T, db *gorm.DB, name string) *model.Stream {
	t.Helper()
	stream := &model.Stream{Name: name, UserID: testUserID}
	if err := db.Create(stream).Error; err != nil {
		t.Fatalf("create stream: %v", err)
	}
	return stream
}

func TestCreateNoteUnknownStreamRejected(t *testing.T) {
	s, _ := newStreamNoteService(t)

	err := s.CreateNote(&model.StreamNote{StreamID: 404, Title: "孤儿便签"})
	if !errors.Is(err, util.ErrStreamNotFound) {
		t.Fatalf("expected ErrStreamNotFound, got %v", err)
	}
}

func TestGetNotesByStreamScoped(t *testing.T) {
	s, db := newStreamNoteService(t)
	polity := createNoteStream(t, db, "Polity")
	economy := createNoteStream(t, db, "Economy")

	for _, n := range []*model.StreamNote{
		{StreamID: polity.ID, Title: "DPSP 整理"},
		{StreamID: polity.ID, Title: "联邦制对比"},
		{StreamID: economy.ID, Title: "通胀笔记"},
	} {
		if err := s.CreateNote(n); err != nil {
			t.Fatalf("create note: %v", err)
		}
	}

	notes, err := s.GetNotesByStream(polity.ID)
	if err != nil {
		t.Fatalf("get notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes for stream, got %d", len(notes))
	}
	for _, n := range notes {
		if n.StreamID != polity.ID {
			t.Errorf("note %d belongs to stream %d", n.ID, n.StreamID)
		}
	}
}

func TestUpdateNotePartialFields(t *testing.T) {
	s, db := newStreamNoteService(t)
	stream := createNoteStream(t, db, "Polity")

	note := &model.StreamNote{StreamID: stream.ID, Title: "草稿", Content: "待补充", X: 10, Y: 20}
	if err := s.CreateNote(note); err != nil {
		t.Fatalf("create note: %v", err)
	}

	// 仅移动画布坐标，标题和内容保持不变
	x, y := 320.5, 80.0
	updated, err := s.UpdateNote(note.ID, &UpdateNoteInput{X: &x, Y: &y})
	if err != nil {
		t.Fatalf("update note: %v", err)
	}
	if updated.X != x || updated.Y != y {
		t.Errorf("expected coordinates (%v, %v), got (%v, %v)", x, y, updated.X, updated.Y)
	}
	if updated.Title != "草稿" || updated.Content != "待补充" {
		t.Errorf("untouched fields changed: %q / %q", updated.Title, updated.Content)
	}

	title := "宪法修正案框架"
	updated, err = s.UpdateNote(note.ID, &UpdateNoteInput{Title: &title})
	if err != nil {
		t.Fatalf("update title: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
	if updated.X != x {
		t.Errorf("coordinate lost on title update: %v", updated.X)
	}
}

func TestUpdateNoteNotFound(t *testing.T) {
	s, _ := newStreamNoteService(t)

	title := "无"
	if _, err := s.UpdateNote(999, &UpdateNoteInput{Title: &title}); !errors.Is(err, util.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteNote(t *testing.T) {
	s, db := newStreamNoteService(t)
	stream := createNoteStream(t, db, "Polity")

	note := &model.StreamNote{StreamID: stream.ID, Title: "删我"}
	if err := s.CreateNote(note); err != nil {
		t.Fatalf("create note: %v", err)
	}

	if err := s.DeleteNote(note.ID); err != nil {
		t.Fatalf("delete note: %v", err)
	}
	notes, err := s.GetNotesByStream(stream.ID)
	if err != nil {
		t.Fatalf("get notes: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected no notes after delete, got %d", len(notes))
	}

	if err := s.DeleteNote(note.ID); !errors.Is(err, util.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound on second delete, got %v", err)
	}
}
