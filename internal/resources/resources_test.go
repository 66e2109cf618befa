package resources

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/JOHN41-tech/assistant-L/internal/llm"
	"github.com/JOHN41-tech/assistant-L/internal/logger"
)

func TestParse(t *testing.T) {
	plain := `[{"title":"Go Tour","type":"Course","url":"https://go.dev/tour"},{"title":"Effective Go","type":"Article","url":"https://go.dev/doc/effective_go"}]`

	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain json", raw: plain, want: 2},
		{name: "json fence", raw: "```json\n" + plain + "\n```", want: 2},
		{name: "bare fence", raw: "```\n" + plain + "\n```", want: 2},
		{name: "fence with preamble", raw: "Here you go:\n```json\n" + plain + "\n```\nEnjoy!", want: 2},
		{name: "unterminated fence", raw: "```json\n" + plain, want: 2},
		{name: "surrounding whitespace", raw: "\n  " + plain + "  \n", want: 2},
		{name: "empty list", raw: "[]", wantErr: true},
		{name: "not json", raw: "I could not find any resources.", wantErr: true},
		{name: "object instead of list", raw: `{"title":"x"}`, wantErr: true},
		{name: "garbage inside fence", raw: "```json\nnot a list\n```", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Parse() returned %d resources, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	got := Fallback("Recursion", "Base Cases & Recursive Cases")

	if len(got) != 1 {
		t.Fatalf("Fallback() returned %d resources, want 1", len(got))
	}
	r := got[0]
	if r.Title != "Search for Base Cases & Recursive Cases" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Type != "Article" {
		t.Errorf("Type = %q, want Article", r.Type)
	}
	if !strings.HasPrefix(r.URL, "https://www.google.com/search?q=") {
		t.Errorf("URL = %q, want search link", r.URL)
	}
	if strings.ContainsAny(r.URL[len("https://www.google.com/search?q="):], " &") {
		t.Errorf("URL query not escaped: %q", r.URL)
	}
}

func TestFinderFind(t *testing.T) {
	list := []Resource{
		{Title: "Intro to Recursion", Type: "Video", URL: "https://example.com/v"},
		{Title: "Recursion Deep Dive", Type: "Article", URL: "https://example.com/a"},
		{Title: "Recursion Course", Type: "Course", URL: "https://example.com/c"},
	}
	body, _ := json.Marshal(list)

	mock := llm.NewMockProvider()
	mock.Enqueue(llm.MockReply{Content: json.RawMessage(body)})

	f := NewFinder(mock, DefaultConfig(), logger.Nop())
	got := f.Find(context.Background(), "Recursion", "What is Recursion?")

	if len(got) != 3 {
		t.Fatalf("Find() returned %d resources, want 3", len(got))
	}
	if got[0].Title != "Intro to Recursion" {
		t.Errorf("first resource = %+v", got[0])
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	prompt := mock.Requests()[0].Messages[0].Content
	for _, want := range []string{"What is Recursion?", "Recursion", "'title'", "'type'", "'url'"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFinderFindProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Enqueue(llm.MockReply{Err: errors.New("boom")})

	f := NewFinder(mock, DefaultConfig(), logger.Nop())
	got := f.Find(context.Background(), "Recursion", "What is Recursion?")

	if len(got) != 1 || !strings.HasPrefix(got[0].Title, "Search for ") {
		t.Fatalf("Find() = %+v, want fallback search link", got)
	}
}

func TestFinderFindBadOutput(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Enqueue(llm.MockReply{Content: json.RawMessage(`"sorry, no resources today"`)})

	f := NewFinder(mock, DefaultConfig(), logger.Nop())
	got := f.Find(context.Background(), "Recursion", "What is Recursion?")

	if len(got) != 1 || got[0].Type != "Article" {
		t.Fatalf("Find() = %+v, want fallback", got)
	}
}
