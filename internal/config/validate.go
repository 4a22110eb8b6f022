package config

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks that the keys required by a command are present.
// Recognized modes: "run", "serve", "render".
func (c *Config) Validate(mode string) error {
	var errs []string

	needsLLM := mode == "run" || mode == "serve"
	if needsLLM {
		switch c.LLM.Provider {
		case "anthropic":
			if c.Anthropic.Key == "" {
				errs = append(errs, "anthropic.key is required")
			}
			if c.Anthropic.Model == "" {
				errs = append(errs, "anthropic.model is required")
			}
		case "gemini":
			if c.Gemini.Key == "" {
				errs = append(errs, "gemini.key is required")
			}
			if c.Gemini.Model == "" {
				errs = append(errs, "gemini.model is required")
			}
		default:
			errs = append(errs, "llm.provider must be anthropic or gemini")
		}
		if c.LLM.TimeoutSecs < 0 {
			errs = append(errs, "llm.timeout_secs must be >= 0")
		}
		if c.LLM.RequestsPerSecond < 0 {
			errs = append(errs, "llm.requests_per_second must be >= 0")
		}
		if c.LLM.AnalysisMaxTokens < 0 || c.LLM.RecommendMaxTokens < 0 {
			errs = append(errs, "llm max tokens must be >= 0")
		}
		if c.Pipeline.Concurrency < 1 {
			errs = append(errs, "pipeline.concurrency must be >= 1")
		}
	}

	if mode == "serve" && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		errs = append(errs, "server.port must be between 1 and 65535")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}
