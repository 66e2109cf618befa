package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepo manages per-step notes.
type NoteRepo interface {
	// Upsert saves the note for (topicID, stepIndex), replacing any
	// existing content.
	Upsert(ctx context.Context, topicID uint, stepIndex int, content string) error

	// Get returns the note content for (topicID, stepIndex), or "" when
	// none exists.
	Get(ctx context.Context, topicID uint, stepIndex int) (string, error)

	// ByTopic returns all notes for a topic ordered by step.
	ByTopic(ctx context.Context, topicID uint) ([]Note, error)
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepo creates a NoteRepo backed by db.
func NewNoteRepo(db *gorm.DB) NoteRepo {
	return &noteRepo{db: db}
}

func (r *noteRepo) Upsert(ctx context.Context, topicID uint, stepIndex int, content string) error {
	note := Note{TopicID: topicID, StepIndex: stepIndex, Content: content}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "topic_id"}, {Name: "step_index"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&note).Error
	if err != nil {
		return fmt.Errorf("store: save note: %w", err)
	}
	return nil
}

func (r *noteRepo) Get(ctx context.Context, topicID uint, stepIndex int) (string, error) {
	var note Note
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND step_index = ?", topicID, stepIndex).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: load note: %w", err)
	}
	return note.Content, nil
}

func (r *noteRepo) ByTopic(ctx context.Context, topicID uint) ([]Note, error) {
	var notes []Note
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("step_index ASC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("store: list notes: %w", err)
	}
	return notes, nil
}
