// Package assistant wraps the LLM services behind the scheduling grid:
// the daily production report and natural-language smart fill.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Message is one chat message sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the capability interface every provider implements. The
// grid core only ever sees this, so report and smart-fill logic is
// testable with a deterministic stub.
type Client interface {
	// Chat sends messages and returns the raw text response.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends messages and unmarshals the response into result,
	// stripping fenced-code markup the model may wrap around it.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}

// decodeJSON extracts the JSON payload from a model response and
// unmarshals it. A structurally invalid payload is an error, never a
// partial result.
func decodeJSON(content string, result any) error {
	payload := extractJSON(content)
	if err := json.Unmarshal([]byte(payload), result); err != nil {
		return fmt.Errorf("parsing assistant JSON: %w (content: %s)", err, content)
	}
	return nil
}

// extractJSON strips markdown fencing from a model response. Models
// are told to answer with bare JSON but routinely wrap it in
// ```json ... ``` anyway.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		idx := strings.Index(s, fence)
		if idx == -1 {
			continue
		}
		rest := s[idx+len(fence):]
		rest = strings.TrimLeft(rest, "\r\n")
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimRight(rest[:end], "\r\n")
		}
	}

	// No fence: take the first balanced {...} or [...] run.
	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[i : j+1]
				}
			}
		}
	}
	return s
}
