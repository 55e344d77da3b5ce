package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare array",
			input: `[{"date": "2024-05-20", "qty": 100}]`,
			want:  `[{"date": "2024-05-20", "qty": 100}]`,
		},
		{
			name:  "json fence",
			input: "```json\n[{\"date\": \"2024-05-20\", \"qty\": 100}]\n```",
			want:  `[{"date": "2024-05-20", "qty": 100}]`,
		},
		{
			name:  "plain fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around payload",
			input: "好的，结果如下：[{\"date\": \"2024-05-20\", \"qty\": 0}] 请确认。",
			want:  `[{"date": "2024-05-20", "qty": 0}]`,
		},
		{
			name:  "nested objects",
			input: `{"tasks": [{"qty": 1}], "warnings": []}`,
			want:  `{"tasks": [{"qty": 1}], "warnings": []}`,
		},
		{
			name:  "no json at all",
			input: "无法理解该指令",
			want:  "无法理解该指令",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.input))
		})
	}
}

func TestDecodeJSON_InvalidPayload(t *testing.T) {
	var out []map[string]any
	err := decodeJSON("```json\n[{broken\n```", &out)
	assert.Error(t, err)
}
