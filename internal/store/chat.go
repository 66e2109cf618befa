package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ChatRepo manages the tutoring conversation log. Conversations are kept
// per step so the handbook can interleave them with the roadmap.
type ChatRepo interface {
	Append(ctx context.Context, topicID uint, stepIndex int, role, content string) error
	History(ctx context.Context, topicID uint, stepIndex int) ([]ChatMessage, error)
	Clear(ctx context.Context, topicID uint, stepIndex int) error
}

type chatRepo struct {
	db *gorm.DB
}

// NewChatRepo creates a ChatRepo backed by db.
func NewChatRepo(db *gorm.DB) ChatRepo {
	return &chatRepo{db: db}
}

func (r *chatRepo) Append(ctx context.Context, topicID uint, stepIndex int, role, content string) error {
	msg := ChatMessage{TopicID: topicID, StepIndex: stepIndex, Role: role, Content: content}
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return fmt.Errorf("store: append chat message: %w", err)
	}
	return nil
}

func (r *chatRepo) History(ctx context.Context, topicID uint, stepIndex int) ([]ChatMessage, error) {
	var msgs []ChatMessage
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND step_index = ?", topicID, stepIndex).
		Order("id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("store: load chat history: %w", err)
	}
	return msgs, nil
}

func (r *chatRepo) Clear(ctx context.Context, topicID uint, stepIndex int) error {
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND step_index = ?", topicID, stepIndex).
		Delete(&ChatMessage{}).Error
	if err != nil {
		return fmt.Errorf("store: clear chat history: %w", err)
	}
	return nil
}
