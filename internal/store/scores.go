package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ScoreRepo records quiz attempts.
type ScoreRepo interface {
	Record(ctx context.Context, s *QuizScore) error
	ByTopic(ctx context.Context, topicID uint) ([]QuizScore, error)
}

type scoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo creates a ScoreRepo backed by db.
func NewScoreRepo(db *gorm.DB) ScoreRepo {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) Record(ctx context.Context, s *QuizScore) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("store: record quiz score: %w", err)
	}
	return nil
}

func (r *scoreRepo) ByTopic(ctx context.Context, topicID uint) ([]QuizScore, error) {
	var scores []QuizScore
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("store: list quiz scores: %w", err)
	}
	return scores, nil
}
