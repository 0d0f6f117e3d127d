package service

import (
	"errors"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"

	"gorm.io/gorm"
)

type StreamNoteService struct {
	NoteRepo   *repository.StreamNoteRepository
	StreamRepo *repository.StreamRepository
}

func NewStreamNoteService(noteRepo *repository.StreamNoteRepository, streamRepo *repository.StreamRepository) *StreamNoteService {
	return &StreamNoteService{NoteRepo: noteRepo, StreamRepo: streamRepo}
}

// UpdateNoteInput 便签更新字段，nil 表示不修改
type UpdateNoteInput struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
}

func (s *StreamNoteService) CreateNote(note *model.StreamNote) error {
	if _, err := s.StreamRepo.FindByID(note.StreamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStreamNotFound
		}
		return err
	}
	return s.NoteRepo.Create(note)
}

func (s *StreamNoteService) GetNotesByStream(streamID uint) ([]model.StreamNote, error) {
	return s.NoteRepo.FindByStream(streamID)
}

// UpdateNote 支持拖拽后仅更新画布坐标
func (s *StreamNoteService) UpdateNote(id uint, input *UpdateNoteInput) (*model.StreamNote, error) {
	note, err := s.NoteRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.X != nil {
		note.X = *input.X
	}
	if input.Y != nil {
		note.Y = *input.Y
	}

	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *StreamNoteService) DeleteNote(id uint) error {
	_, err := s.NoteRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	return s.NoteRepo.Delete(id)
}
