// Package handbook renders a learning session as a downloadable Markdown
// document: the roadmap, the user's notes, and the per-step chat history.
package handbook

import (
	"fmt"
	"strings"

	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
)

// Message is one chat turn included in the export.
type Message struct {
	Role    string
	Content string
}

// Input collects everything the handbook needs. Notes and Chats are keyed
// by zero-based step index; absent entries are simply omitted.
type Input struct {
	TopicName  string
	Persona    string
	Difficulty string
	Roadmap    *roadmap.Roadmap
	Notes      map[int]string
	Chats      map[int][]Message
}

// Render produces the Markdown handbook.
func Render(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Learning Handbook: %s\n", in.TopicName)
	fmt.Fprintf(&b, "**Persona:** %s | **Difficulty:** %s\n\n", in.Persona, in.Difficulty)
	b.WriteString("## Roadmap\n")

	if in.Roadmap == nil {
		return b.String()
	}

	for i, step := range in.Roadmap.Steps {
		fmt.Fprintf(&b, "### Step %d: %s\n", i+1, step.Title)
		for _, detail := range step.Details {
			fmt.Fprintf(&b, "- %s\n", detail)
		}

		if note := in.Notes[i]; note != "" {
			fmt.Fprintf(&b, "\n#### My Notes\n> %s\n", note)
		}

		if chat := in.Chats[i]; len(chat) > 0 {
			b.WriteString("\n#### Chat History\n")
			for _, msg := range chat {
				fmt.Fprintf(&b, "**%s:** %s\n\n", capitalize(msg.Role), msg.Content)
			}
		}

		b.WriteString("\n---\n")
	}
	return b.String()
}

// Filename derives the download filename from the topic name.
func Filename(topicName string) string {
	return strings.ReplaceAll(topicName, " ", "_") + "_Handbook.md"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
