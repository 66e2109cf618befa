package handbook

import (
	"strings"
	"testing"

	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
)

func TestRender(t *testing.T) {
	in := Input{
		TopicName:  "Recursion",
		Persona:    "eli5",
		Difficulty: "Beginner",
		Roadmap: &roadmap.Roadmap{
			Topic: "Recursion",
			Steps: []roadmap.Step{
				{Number: 1, Title: "What is Recursion?", Details: []string{"Definition", "Call stack"}},
				{Number: 2, Title: "Base Cases", Details: []string{"Termination"}},
			},
		},
		Notes: map[int]string{
			0: "A function that calls itself.",
		},
		Chats: map[int][]Message{
			1: {
				{Role: "user", Content: "Why do we need a base case?"},
				{Role: "assistant", Content: "So the recursion stops."},
			},
		},
	}

	got := Render(in)

	wantPrefix := "# Learning Handbook: Recursion\n**Persona:** eli5 | **Difficulty:** Beginner\n\n## Roadmap\n"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("header mismatch:\n%s", got[:min(len(got), len(wantPrefix)+20)])
	}

	for _, want := range []string{
		"### Step 1: What is Recursion?\n- Definition\n- Call stack\n",
		"\n#### My Notes\n> A function that calls itself.\n",
		"### Step 2: Base Cases\n- Termination\n",
		"\n#### Chat History\n**User:** Why do we need a base case?\n\n**Assistant:** So the recursion stops.\n\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("handbook missing section:\n%q", want)
		}
	}

	if strings.Count(got, "\n---\n") != 2 {
		t.Errorf("want one separator per step, got %d", strings.Count(got, "\n---\n"))
	}

	// Step 1 has no chat; its notes block precedes the separator directly.
	step1 := got[strings.Index(got, "### Step 1"):strings.Index(got, "### Step 2")]
	if strings.Contains(step1, "Chat History") {
		t.Error("step 1 should not contain a chat section")
	}
}

func TestRenderNoRoadmap(t *testing.T) {
	got := Render(Input{TopicName: "Recursion", Persona: "general", Difficulty: "Beginner"})
	if !strings.HasSuffix(got, "## Roadmap\n") {
		t.Errorf("Render() without roadmap = %q", got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Graph Theory Basics"); got != "Graph_Theory_Basics_Handbook.md" {
		t.Errorf("Filename() = %q", got)
	}
}
