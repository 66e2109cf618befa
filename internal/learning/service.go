// Package learning orchestrates the tutoring workflow: it owns sessions,
// drives roadmap and quiz generation, and persists topics, notes, chat
// history, and quiz scores.
package learning

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JOHN41-tech/assistant-L/internal/handbook"
	"github.com/JOHN41-tech/assistant-L/internal/logger"
	"github.com/JOHN41-tech/assistant-L/internal/quiz"
	"github.com/JOHN41-tech/assistant-L/internal/resources"
	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
	"github.com/JOHN41-tech/assistant-L/internal/session"
	"github.com/JOHN41-tech/assistant-L/internal/store"
	"github.com/JOHN41-tech/assistant-L/internal/tutor"
)

var (
	// ErrNoActiveSession is returned when no session exists for the id.
	ErrNoActiveSession = errors.New("learning: no active session")

	// ErrTopicRequired is returned by StartTopic for a blank topic.
	ErrTopicRequired = errors.New("learning: topic is required")

	// ErrMessageRequired is returned by Chat for a blank message.
	ErrMessageRequired = errors.New("learning: message is required")

	// ErrContentRequired is returned by SaveNote for blank content.
	ErrContentRequired = errors.New("learning: content is required")

	// ErrStepRequired is returned by Resources when topic or step title
	// is missing.
	ErrStepRequired = errors.New("learning: topic and step title are required")
)

// QuizGenerator produces quiz questions for a roadmap step.
type QuizGenerator interface {
	Generate(ctx context.Context, topic, stepTitle, stepDetails string) ([]quiz.Question, error)
}

// ChatTutor answers a learner's question in the session's persona.
type ChatTutor interface {
	Reply(ctx context.Context, in tutor.ChatInput) (string, error)
}

// ResourceFinder suggests external material for a step.
type ResourceFinder interface {
	Find(ctx context.Context, topic, stepTitle string) []resources.Resource
}

// Service ties the generators, session store, and database together.
type Service struct {
	sessions  session.Store
	roadmaps  roadmap.Generator
	quizzes   QuizGenerator
	tutor     ChatTutor
	resources ResourceFinder
	topics    store.TopicRepo
	notes     store.NoteRepo
	chat      store.ChatRepo
	scores    store.ScoreRepo
	locks     *sessionLocks
	log       *logger.Logger
}

// Deps bundles the Service's collaborators.
type Deps struct {
	Sessions  session.Store
	Roadmaps  roadmap.Generator
	Quizzes   QuizGenerator
	Tutor     ChatTutor
	Resources ResourceFinder
	Topics    store.TopicRepo
	Notes     store.NoteRepo
	Chat      store.ChatRepo
	Scores    store.ScoreRepo
	Logger    *logger.Logger
}

// NewService creates a Service.
func NewService(d Deps) *Service {
	return &Service{
		sessions:  d.Sessions,
		roadmaps:  d.Roadmaps,
		quizzes:   d.Quizzes,
		tutor:     d.Tutor,
		resources: d.Resources,
		topics:    d.Topics,
		notes:     d.Notes,
		chat:      d.Chat,
		scores:    d.Scores,
		locks:     newSessionLocks(),
		log:       d.Logger.With("component", "learning"),
	}
}

// StartResult is the outcome of StartTopic.
type StartResult struct {
	TopicID          uint           `json:"topic_id"`
	Topic            string         `json:"topic"`
	Steps            []roadmap.Step `json:"steps"`
	CurrentStepIndex int            `json:"currentStep"`
}

// StartTopic generates a roadmap for topic, opens a session under
// sessionID, and persists the topic. Persona defaults to General and
// difficulty to Intermediate when blank.
func (s *Service) StartTopic(ctx context.Context, sessionID, topic, persona, difficulty string) (*StartResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	defer s.locks.lock(sessionID)()
	if persona == "" {
		persona = string(tutor.PersonaGeneral)
	}
	if difficulty == "" {
		difficulty = "Intermediate"
	}

	r, err := s.roadmaps.GenerateRoadmap(ctx, topic, difficulty)
	if err != nil {
		return nil, fmt.Errorf("learning: generate roadmap: %w", err)
	}

	sess := session.New(tutor.Persona(persona), difficulty)
	if err := sess.Start(r); err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	data, err := store.EncodeRoadmap(r)
	if err != nil {
		return nil, err
	}
	t := &store.Topic{
		SessionID:  sessionID,
		Name:       topic,
		Persona:    persona,
		Difficulty: difficulty,
		Roadmap:    data,
		TotalSteps: r.Len(),
	}
	if err := s.topics.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info("topic started", "session_id", sessionID, "topic", topic, "steps", r.Len())
	return &StartResult{
		TopicID:          t.ID,
		Topic:            topic,
		Steps:            r.Steps,
		CurrentStepIndex: 0,
	}, nil
}

func (s *Service) loadSession(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Guide generates the in-depth guide for the session's current step.
func (s *Service) Guide(ctx context.Context, sessionID string) (*roadmap.Guide, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	step, err := sess.CurrentStep()
	if err != nil {
		return nil, err
	}
	return s.roadmaps.GenerateGuide(ctx, sess.Roadmap.Topic, sess.Difficulty, step)
}

// StepResult is the outcome of NextStep.
type StepResult struct {
	Step             *roadmap.Step `json:"step,omitempty"`
	CurrentStepIndex int           `json:"currentStepIndex"`
	Completed        bool          `json:"completed"`
}

// NextStep advances the session and persists the new position. A topicID
// of zero skips persistence, matching a session that was never saved.
func (s *Service) NextStep(ctx context.Context, sessionID string, topicID uint) (*StepResult, error) {
	defer s.locks.lock(sessionID)()

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	step := sess.NextStep()
	if err := s.sessions.Put(ctx, sessionID, sess); err != nil {
		return nil, err
	}
	if topicID != 0 {
		if err := s.topics.UpdateProgress(ctx, topicID, sess.CurrentStepIndex); err != nil {
			return nil, err
		}
	}

	return &StepResult{
		Step:             step,
		CurrentStepIndex: sess.CurrentStepIndex,
		Completed:        step == nil,
	}, nil
}

// Chat answers message in the session's persona and records both sides of
// the exchange.
func (s *Service) Chat(ctx context.Context, sessionID string, topicID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMessageRequired
	}
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	step, err := sess.CurrentStep()
	if err != nil {
		return "", err
	}

	reply, err := s.tutor.Reply(ctx, tutor.ChatInput{
		Persona:     sess.Persona,
		Difficulty:  sess.Difficulty,
		Topic:       sess.Roadmap.Topic,
		StepTitle:   step.Title,
		UserMessage: message,
	})
	if err != nil {
		return "", fmt.Errorf("learning: chat: %w", err)
	}

	if topicID != 0 {
		if err := s.chat.Append(ctx, topicID, sess.CurrentStepIndex, "user", message); err != nil {
			return "", err
		}
		if err := s.chat.Append(ctx, topicID, sess.CurrentStepIndex, "assistant", reply); err != nil {
			return "", err
		}
	}
	return reply, nil
}

// GenerateQuiz produces questions for the session's current step.
func (s *Service) GenerateQuiz(ctx context.Context, sessionID string) ([]quiz.Question, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	step, err := sess.CurrentStep()
	if err != nil {
		return nil, err
	}

	details := strings.Join(step.Details, "\n")
	if details == "" {
		details = step.Title
	}
	return s.quizzes.Generate(ctx, sess.Roadmap.Topic, step.Title, details)
}

// SubmitQuiz scores the answers against questions and records the result.
func (s *Service) SubmitQuiz(ctx context.Context, sessionID string, topicID uint, questions []quiz.Question, answers map[string]string) (*quiz.Summary, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := quiz.Evaluate(questions, answers)

	if topicID != 0 {
		err := s.scores.Record(ctx, &store.QuizScore{
			TopicID:    topicID,
			StepIndex:  sess.CurrentStepIndex,
			Score:      summary.Score,
			Total:      summary.Total,
			Percentage: summary.Percentage,
		})
		if err != nil {
			return nil, err
		}
	}
	return &summary, nil
}

// SaveNote stores the note for the session's current step.
func (s *Service) SaveNote(ctx context.Context, sessionID string, topicID uint, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if topicID == 0 {
		return nil
	}
	return s.notes.Upsert(ctx, topicID, sess.CurrentStepIndex, content)
}

// GetNote returns the note for the session's current step, or "".
func (s *Service) GetNote(ctx context.Context, sessionID string, topicID uint) (string, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if topicID == 0 {
		return "", nil
	}
	return s.notes.Get(ctx, topicID, sess.CurrentStepIndex)
}

// ChatHistory returns the conversation for the session's current step.
func (s *Service) ChatHistory(ctx context.Context, sessionID string, topicID uint) ([]store.ChatMessage, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if topicID == 0 {
		return []store.ChatMessage{}, nil
	}
	return s.chat.History(ctx, topicID, sess.CurrentStepIndex)
}

// ClearChat deletes the conversation for the session's current step.
func (s *Service) ClearChat(ctx context.Context, sessionID string, topicID uint) error {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if topicID == 0 {
		return nil
	}
	return s.chat.Clear(ctx, topicID, sess.CurrentStepIndex)
}

// Topics lists the session's topics.
func (s *Service) Topics(ctx context.Context, sessionID string) ([]store.Topic, error) {
	return s.topics.BySession(ctx, sessionID)
}

// Stats aggregates progress and quiz performance across the session's
// topics.
func (s *Service) Stats(ctx context.Context, sessionID string) (store.Stats, error) {
	topics, err := s.topics.BySession(ctx, sessionID)
	if err != nil {
		return store.Stats{}, err
	}
	var scores []store.QuizScore
	for _, t := range topics {
		ts, err := s.scores.ByTopic(ctx, t.ID)
		if err != nil {
			return store.Stats{}, err
		}
		scores = append(scores, ts...)
	}
	return store.ComputeStats(topics, scores), nil
}

// Resources suggests learning material for a step. It never fails past
// validation; generation problems degrade to a search link.
func (s *Service) Resources(ctx context.Context, topic, stepTitle string) ([]resources.Resource, error) {
	if strings.TrimSpace(topic) == "" || strings.TrimSpace(stepTitle) == "" {
		return nil, ErrStepRequired
	}
	return s.resources.Find(ctx, topic, stepTitle), nil
}

// Export renders the topic as a Markdown handbook and returns the
// download filename with the content.
func (s *Service) Export(ctx context.Context, sessionID string, topicID uint) (filename, content string, err error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return "", "", err
	}

	t, err := s.topics.ByID(ctx, topicID)
	if err != nil {
		return "", "", err
	}
	r, err := store.DecodeRoadmap(t.Roadmap)
	if err != nil {
		return "", "", err
	}

	in := handbook.Input{
		TopicName:  t.Name,
		Persona:    string(sess.Persona),
		Difficulty: sess.Difficulty,
		Roadmap:    r,
		Notes:      make(map[int]string),
		Chats:      make(map[int][]handbook.Message),
	}

	notes, err := s.notes.ByTopic(ctx, topicID)
	if err != nil {
		return "", "", err
	}
	for _, n := range notes {
		in.Notes[n.StepIndex] = n.Content
	}

	if r != nil {
		for i := range r.Steps {
			msgs, err := s.chat.History(ctx, topicID, i)
			if err != nil {
				return "", "", err
			}
			for _, m := range msgs {
				in.Chats[i] = append(in.Chats[i], handbook.Message{Role: m.Role, Content: m.Content})
			}
		}
	}

	return handbook.Filename(t.Name), handbook.Render(in), nil
}
