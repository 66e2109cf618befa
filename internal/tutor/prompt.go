package tutor

import (
	"fmt"
	"strings"
)

// ChatInput carries everything the prompt template needs. All fields are
// plain values; building the prompt performs no I/O.
type ChatInput struct {
	Persona     Persona
	Difficulty  string
	Topic       string
	StepTitle   string
	UserMessage string
}

// BuildChatPrompt renders the persona-conditioned instruction handed to the
// text generator. The output is deterministic: it embeds the persona, its
// style descriptor, the topic, difficulty, current step title, and the
// user's message verbatim, and instructs the generator to answer in-style
// and relate the answer to the current step.
func BuildChatPrompt(in ChatInput) string {
	style := in.Persona.Style()

	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s learning assistant. Your teaching style is %s.\n", in.Persona, style)
	b.WriteString("The user is currently learning about:\n")
	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", in.Difficulty)
	fmt.Fprintf(&b, "Current Step: %s\n", in.StepTitle)
	b.WriteString("\n")
	fmt.Fprintf(&b, "User question: %s\n", in.UserMessage)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Provide a clear, helpful answer in your assigned style (%s) that relates to their current learning step.", style)
	return b.String()
}
