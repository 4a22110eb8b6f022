package qualify

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"

	"github.com/sells-group/leadrank/internal/scorer"
)

// Reply is the structured analysis returned by the model.
type Reply struct {
	Budget    float64 `json:"budget"`
	Authority float64 `json:"authority"`
	Need      float64 `json:"need"`
	Timeline  float64 `json:"timeline"`
	Reasoning string  `json:"reasoning"`
}

// SubScores returns the reply's BANT scores.
func (r Reply) SubScores() scorer.SubScores {
	return scorer.SubScores{
		Budget:    r.Budget,
		Authority: r.Authority,
		Need:      r.Need,
		Timeline:  r.Timeline,
	}
}

// Scores are not range-checked; the model's own scale is trusted.
var replySchema = map[string]any{
	"type":     "object",
	"required": []any{"budget", "authority", "need", "timeline", "reasoning"},
	"properties": map[string]any{
		"budget":    map[string]any{"type": "number"},
		"authority": map[string]any{"type": "number"},
		"need":      map[string]any{"type": "number"},
		"timeline":  map[string]any{"type": "number"},
		"reasoning": map[string]any{"type": "string"},
	},
}

// ParseReply extracts and validates the JSON object in a model reply.
func ParseReply(text string) (Reply, error) {
	cleaned := cleanJSON(text)
	if cleaned == "" {
		return Reply{}, eris.New("qualify: empty reply")
	}

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return Reply{}, eris.Wrap(err, "qualify: decode reply")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(replySchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return Reply{}, eris.Wrap(err, "qualify: validate reply")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Reply{}, eris.Errorf("qualify: invalid reply: %s", strings.Join(msgs, "; "))
	}

	var reply Reply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return Reply{}, eris.Wrap(err, "qualify: decode reply")
	}
	return reply, nil
}

// cleanJSON attempts to extract a JSON object from text that may contain
// markdown code fences or other wrapping.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
