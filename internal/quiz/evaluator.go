package quiz

import (
	"math"
	"strconv"
	"strings"
)

// CheckAnswer compares a submitted answer against the question's canonical
// correct answer. Returns false for an empty submission. The comparison is
// an exact match after trimming surrounding whitespace, case-insensitively.
// No partial credit; same inputs always yield the same result.
func CheckAnswer(q Question, userAnswer string) bool {
	userAnswer = strings.TrimSpace(userAnswer)
	if userAnswer == "" {
		return false
	}
	return strings.EqualFold(userAnswer, strings.TrimSpace(q.Correct))
}

// Score evaluates a submission against the question list. Answers are keyed
// by the question's 0-based position rendered as a string (the wire format
// of the submission payload); a missing key scores as incorrect and extra
// keys are ignored. Every question yields exactly one Result, in question
// order, with 1-based QuestionNumber.
func Score(questions []Question, answers map[string]string) ([]Result, int) {
	results := make([]Result, 0, len(questions))
	correct := 0

	for i, q := range questions {
		userAnswer := answers[indexKey(i)]
		ok := CheckAnswer(q, userAnswer)
		if ok {
			correct++
		}
		results = append(results, Result{
			QuestionNumber: i + 1,
			Correct:        ok,
			UserAnswer:     userAnswer,
			CorrectAnswer:  q.Correct,
		})
	}

	return results, correct
}

// Evaluate scores a submission and packages it with the percentage.
func Evaluate(questions []Question, answers map[string]string) Summary {
	results, correct := Score(questions, answers)
	return Summary{
		Results:    results,
		Score:      correct,
		Total:      len(questions),
		Percentage: Percentage(correct, len(questions)),
	}
}

// Percentage returns round(correct/total*100), or 0 when total is 0.
// Rounding is half away from zero (math.Round), so 87.5% displays as 88.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func indexKey(i int) string {
	return strconv.Itoa(i)
}
