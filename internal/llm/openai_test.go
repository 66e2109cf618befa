package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o-mini",
	}
}

func completionBody(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("A base case is the condition that stops the recursion.", "stop"))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a Socratic learning assistant.",
		Messages:  []Message{{Role: RoleUser, Content: "What is a base case?"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "A base case is the condition that stops the recursion." {
		t.Errorf("unexpected content: %s", resp.Text())
	}
	if resp.Usage.TotalTokens != 65 {
		t.Errorf("total tokens = %d, want 65", resp.Usage.TotalTokens)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, StopEnd)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	var malformed *MalformedReplyError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedReplyError for empty choices, got %v", err)
	}
}

func TestOpenAIProvider_SchemaReplyCutOffFails(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`{"questions":[{"question":"Wh`, "length"))
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "quiz me"}},
		Schema: &Schema{
			Name:       "quiz",
			Definition: map[string]any{"type": "object"},
		},
		MaxTokens: 16,
	})
	var truncated *TruncatedReplyError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedReplyError, got %v", err)
	}
}

func TestOpenAIProvider_FreeTextCutOffStillReturned(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("A base case is", "length"))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "What is a base case?"}},
		MaxTokens: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != StopMaxTokens {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, StopMaxTokens)
	}
}

func TestOpenAIProvider_RateLimitedIsThrottled(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "rate limit reached",
				"type":    "rate_limit_error",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	var throttled *ThrottledError
	if !errors.As(err, &throttled) {
		t.Fatalf("expected ThrottledError, got %v", err)
	}
}

func TestOpenAIMessages(t *testing.T) {
	req := Request{
		System: "system prompt",
		Messages: []Message{
			{Role: RoleUser, Content: "question"},
			{Role: RoleAssistant, Content: "answer"},
		},
	}

	msgs := openaiMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message role = %q, want system", msgs[0].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("third message role = %q, want assistant", msgs[2].Role)
	}
}
