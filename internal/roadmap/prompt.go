package roadmap

import (
	"fmt"
	"strings"
)

const roadmapSystemPrompt = `You are a curriculum designer for a self-guided learning platform.

Rules:
- Break the topic into a sequence of 5-8 learning steps, ordered from fundamentals to advanced usage.
- Each step has a short title and 2-4 detail bullets naming the concrete things to learn in that step.
- Match the requested difficulty: assume no prior knowledge for Beginner, working familiarity for Intermediate, deep adjacent knowledge for Advanced.
- Steps must be self-contained enough that each can later be expanded into a study guide and quizzed on its own.`

const guideSystemPrompt = `You are a tutor writing a detailed study guide for one step of a learning roadmap.

Rules:
- Cover every detail bullet of the step, in order.
- Use Markdown: short sections, code or examples where they help, no front matter.
- Stay within the scope of this single step; mention neighboring steps only to orient the reader.
- Match the requested difficulty level in depth and vocabulary.`

// buildRoadmapMessage constructs the user message for roadmap generation.
func buildRoadmapMessage(topic, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	}
	return b.String()
}

// buildGuideMessage constructs the user message for guide generation.
func buildGuideMessage(topic, difficulty string, step Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	}
	fmt.Fprintf(&b, "Step %d: %s\n", step.Number, step.Title)
	if len(step.Details) > 0 {
		b.WriteString("Details:\n")
		for _, d := range step.Details {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}
	return b.String()
}
