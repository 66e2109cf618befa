package quiz

// Question is a generator-produced multiple-choice item. The Correct field
// is the canonical answer value; submissions are compared against it after
// normalization (see CheckAnswer).
type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Correct string   `json:"correct"`
}

// Result is the per-question outcome of a submission. It is computed on
// submission and not retained; persistence of the aggregate score is the
// store's concern.
type Result struct {
	QuestionNumber int    `json:"question_number"` // 1-based
	Correct        bool   `json:"correct"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
}

// Summary aggregates one submission.
type Summary struct {
	Results    []Result `json:"results"`
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Percentage int      `json:"percentage"`
}
