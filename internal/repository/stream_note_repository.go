package repository

import (
	"walkalong_backend/internal/model"

	"gorm.io/gorm"
)

type StreamNoteRepository struct {
	DB *gorm.DB
}

func NewStreamNoteRepository(db *gorm.DB) *StreamNoteRepository {
	return &StreamNoteRepository{DB: db}
}

func (r *StreamNoteRepository) Create(note *model.StreamNote) error {
	return r.DB.Create(note).Error
}

func (r *StreamNoteRepository) FindByStream(streamID uint) ([]model.StreamNote, error) {
	var notes []model.StreamNote
	err := r.DB.Where("stream_id = ?", streamID).Order("created_at ASC").Find(&notes).Error
	return notes, err
}

func (r *StreamNoteRepository) FindByID(id uint) (*model.StreamNote, error) {
	var note model.StreamNote
	err := r.DB.First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *StreamNoteRepository) Update(note *model.StreamNote) error {
	return r.DB.Save(note).Error
}

func (r *StreamNoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StreamNote{}, id).Error
}
