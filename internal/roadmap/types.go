package roadmap

// Step is one unit of a roadmap: a short title plus explanatory detail
// bullets. Number is the 1-based display position and always equals the
// step's index in the owning roadmap plus one.
type Step struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// Roadmap is the ordered curriculum for one topic. Once built it is never
// reordered; steps are addressed by 0-based index internally and shown
// 1-based.
type Roadmap struct {
	Topic string `json:"topic"`
	Steps []Step `json:"steps"`
}

// Len returns the number of steps.
func (r *Roadmap) Len() int {
	return len(r.Steps)
}

// StepAt returns the step at the given 0-based index.
func (r *Roadmap) StepAt(i int) (Step, bool) {
	if i < 0 || i >= len(r.Steps) {
		return Step{}, false
	}
	return r.Steps[i], true
}

// Guide is the elaborated study material for a single step. The content is
// generator-produced Markdown and opaque to the rest of the system.
type Guide struct {
	StepTitle string `json:"step_title"`
	Content   string `json:"content"`
}
