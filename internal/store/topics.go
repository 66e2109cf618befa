package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
)

// ErrTopicNotFound is returned when a topic id does not exist.
var ErrTopicNotFound = errors.New("store: topic not found")

// TopicRepo manages topics and their progress.
type TopicRepo interface {
	Create(ctx context.Context, t *Topic) error
	ByID(ctx context.Context, id uint) (*Topic, error)
	BySession(ctx context.Context, sessionID string) ([]Topic, error)
	UpdateProgress(ctx context.Context, id uint, currentStep int) error
}

type topicRepo struct {
	db *gorm.DB
}

// NewTopicRepo creates a TopicRepo backed by db.
func NewTopicRepo(db *gorm.DB) TopicRepo {
	return &topicRepo{db: db}
}

func (r *topicRepo) Create(ctx context.Context, t *Topic) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("store: create topic: %w", err)
	}
	return nil
}

func (r *topicRepo) ByID(ctx context.Context, id uint) (*Topic, error) {
	var t Topic
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTopicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load topic: %w", err)
	}
	return &t, nil
}

func (r *topicRepo) BySession(ctx context.Context, sessionID string) ([]Topic, error) {
	var topics []Topic
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("store: list topics: %w", err)
	}
	return topics, nil
}

func (r *topicRepo) UpdateProgress(ctx context.Context, id uint, currentStep int) error {
	res := r.db.WithContext(ctx).
		Model(&Topic{}).
		Where("id = ?", id).
		Update("current_step", currentStep)
	if res.Error != nil {
		return fmt.Errorf("store: update progress: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTopicNotFound
	}
	return nil
}

// EncodeRoadmap serializes a roadmap for storage on a Topic row.
func EncodeRoadmap(r *roadmap.Roadmap) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("store: encode roadmap: %w", err)
	}
	return data, nil
}

// DecodeRoadmap deserializes a stored roadmap. It returns nil for an
// empty column.
func DecodeRoadmap(data []byte) (*roadmap.Roadmap, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var r roadmap.Roadmap
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("store: decode roadmap: %w", err)
	}
	return &r, nil
}
