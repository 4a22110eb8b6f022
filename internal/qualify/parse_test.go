package qualify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Reply
	}{
		{
			name: "bare object",
			text: `{"budget": 1, "authority": 0.5, "need": 0.75, "timeline": 0, "reasoning": "ok"}`,
			want: Reply{Budget: 1, Authority: 0.5, Need: 0.75, Timeline: 0, Reasoning: "ok"},
		},
		{
			name: "json fence",
			text: "```json\n{\"budget\": 0.2, \"authority\": 0.3, \"need\": 0.4, \"timeline\": 0.5, \"reasoning\": \"r\"}\n```",
			want: Reply{Budget: 0.2, Authority: 0.3, Need: 0.4, Timeline: 0.5, Reasoning: "r"},
		},
		{
			name: "plain fence with prose",
			text: "Segue a análise:\n```\n{\"budget\": 0.9, \"authority\": 0.9, \"need\": 0.9, \"timeline\": 0.9, \"reasoning\": \"bom\"}\n```\nObrigado.",
			want: Reply{Budget: 0.9, Authority: 0.9, Need: 0.9, Timeline: 0.9, Reasoning: "bom"},
		},
		{
			name: "out of nominal range is trusted",
			text: `{"budget": 7, "authority": -1, "need": 1.5, "timeline": 0, "reasoning": ""}`,
			want: Reply{Budget: 7, Authority: -1, Need: 1.5},
		},
		{
			name: "extra keys ignored",
			text: `{"budget": 1, "authority": 1, "need": 1, "timeline": 1, "reasoning": "x", "confidence": "high"}`,
			want: Reply{Budget: 1, Authority: 1, Need: 1, Timeline: 1, Reasoning: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReply(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReply_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"empty", "   ", "empty reply"},
		{"prose", "Não consegui avaliar este lead.", "decode reply"},
		{"truncated", `{"budget": 1, "authority":`, "decode reply"},
		{"missing key", `{"budget": 1, "authority": 1, "need": 1, "reasoning": "x"}`, "timeline"},
		{"string score", `{"budget": "alto", "authority": 1, "need": 1, "timeline": 1, "reasoning": "x"}`, "budget"},
		{"numeric reasoning", `{"budget": 1, "authority": 1, "need": 1, "timeline": 1, "reasoning": 3}`, "reasoning"},
		{"array", `[1, 2, 3]`, "invalid reply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReply(tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSON("prefix {\"a\":1} suffix"))
	assert.Equal(t, "no braces", cleanJSON("  no braces  "))
}
