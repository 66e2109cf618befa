package store

import (
	"time"

	"gorm.io/datatypes"
)

// Topic is one learning topic a user has started, with its generated
// roadmap and progress.
type Topic struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SessionID   string         `gorm:"index;not null" json:"session_id"`
	Name        string         `gorm:"not null" json:"name"`
	Persona     string         `gorm:"not null" json:"persona"`
	Difficulty  string         `gorm:"not null" json:"difficulty"`
	Roadmap     datatypes.JSON `json:"roadmap"`
	TotalSteps  int            `gorm:"not null;default:0" json:"total_steps"`
	CurrentStep int            `gorm:"not null;default:0" json:"current_step"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Note is the user's personal note for one step of a topic. At most one
// note exists per step.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TopicID   uint      `gorm:"not null;uniqueIndex:idx_note_topic_step" json:"topic_id"`
	StepIndex int       `gorm:"not null;uniqueIndex:idx_note_topic_step" json:"step_index"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage is one turn of the tutoring conversation, scoped to a
// single step of a topic.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TopicID   uint      `gorm:"index:idx_chat_topic_step;not null" json:"topic_id"`
	StepIndex int       `gorm:"index:idx_chat_topic_step;not null" json:"step_index"`
	Role      string    `gorm:"not null" json:"role"` // "user" or "assistant"
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizScore records the outcome of one quiz attempt.
type QuizScore struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TopicID    uint      `gorm:"index;not null" json:"topic_id"`
	StepIndex  int       `gorm:"not null" json:"step_index"`
	Score      int       `gorm:"not null" json:"score"`
	Total      int       `gorm:"not null" json:"total"`
	Percentage int       `gorm:"not null" json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}
