// Package session tracks a learner's position within a roadmap.
//
// A session moves monotonically through roadmap steps: the current step
// index runs from 0 through len(steps), where the final value marks the
// roadmap as completed. Advancing past completion is a no-op.
package session

import (
	"errors"

	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
	"github.com/JOHN41-tech/assistant-L/internal/tutor"
)

var (
	// ErrNoRoadmap is returned when an operation needs a roadmap but the
	// session has none.
	ErrNoRoadmap = errors.New("session: no roadmap started")

	// ErrNoCurrentStep is returned by CurrentStep once every step has been
	// completed.
	ErrNoCurrentStep = errors.New("session: all steps completed")

	// ErrEmptyRoadmap is returned by Start for a roadmap with no steps.
	ErrEmptyRoadmap = errors.New("session: roadmap has no steps")
)

// Session is one learner's in-progress run through a topic.
type Session struct {
	Persona          tutor.Persona    `json:"persona"`
	Difficulty       string           `json:"difficulty"`
	Roadmap          *roadmap.Roadmap `json:"roadmap,omitempty"`
	CurrentStepIndex int              `json:"current_step_index"`
}

// New creates a session with the given persona and difficulty and no
// roadmap yet.
func New(persona tutor.Persona, difficulty string) *Session {
	return &Session{
		Persona:    persona,
		Difficulty: difficulty,
	}
}

// Start attaches a roadmap and resets progress to the first step.
func (s *Session) Start(r *roadmap.Roadmap) error {
	if r == nil || r.Len() == 0 {
		return ErrEmptyRoadmap
	}
	s.Roadmap = r
	s.CurrentStepIndex = 0
	return nil
}

// CurrentStep returns the step the learner is on. It returns ErrNoRoadmap
// before Start and ErrNoCurrentStep once the roadmap is completed.
func (s *Session) CurrentStep() (roadmap.Step, error) {
	if s.Roadmap == nil {
		return roadmap.Step{}, ErrNoRoadmap
	}
	step, ok := s.Roadmap.StepAt(s.CurrentStepIndex)
	if !ok {
		return roadmap.Step{}, ErrNoCurrentStep
	}
	return step, nil
}

// NextStep advances to the following step and returns it, or nil when the
// roadmap is already completed. The index never grows past the step count,
// so calling NextStep after completion stays a no-op.
func (s *Session) NextStep() *roadmap.Step {
	if s.Roadmap == nil || s.CurrentStepIndex >= s.Roadmap.Len() {
		return nil
	}
	s.CurrentStepIndex++
	step, ok := s.Roadmap.StepAt(s.CurrentStepIndex)
	if !ok {
		return nil
	}
	return &step
}

// Completed reports whether every step has been finished.
func (s *Session) Completed() bool {
	return s.Roadmap != nil && s.CurrentStepIndex >= s.Roadmap.Len()
}

// Progress returns the number of completed steps and the total step count.
func (s *Session) Progress() (done, total int) {
	if s.Roadmap == nil {
		return 0, 0
	}
	total = s.Roadmap.Len()
	done = s.CurrentStepIndex
	if done > total {
		done = total
	}
	return done, total
}
