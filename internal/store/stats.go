package store

import "math"

// Stats summarizes a user's learning activity across topics.
type Stats struct {
	TopicCount      int `json:"topic_count"`
	CompletedTopics int `json:"completed_topics"`
	QuizCount       int `json:"quiz_count"`
	AverageScore    int `json:"average_score"` // mean quiz percentage, rounded
	Progress        int `json:"progress"`      // overall step completion, percent
}

// ComputeStats aggregates topics and quiz scores into a Stats summary.
// Overall progress counts each topic's reached steps (the zero-based
// cursor plus one, clamped to the topic's total so finished topics count
// exactly 100%) against the sum of all step counts.
func ComputeStats(topics []Topic, scores []QuizScore) Stats {
	var s Stats
	s.TopicCount = len(topics)

	var doneSteps, totalSteps int
	for _, t := range topics {
		done := t.CurrentStep + 1
		if done > t.TotalSteps {
			done = t.TotalSteps
		}
		doneSteps += done
		totalSteps += t.TotalSteps
		if t.TotalSteps > 0 && t.CurrentStep >= t.TotalSteps {
			s.CompletedTopics++
		}
	}
	if totalSteps > 0 {
		s.Progress = int(math.Round(float64(doneSteps) / float64(totalSteps) * 100))
	}

	s.QuizCount = len(scores)
	if len(scores) > 0 {
		var sum int
		for _, sc := range scores {
			sum += sc.Percentage
		}
		s.AverageScore = int(math.Round(float64(sum) / float64(len(scores))))
	}
	return s
}
