package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Gemini    GeminiConfig    `yaml:"gemini" mapstructure:"gemini"`
	Pricing   PricingConfig   `yaml:"pricing" mapstructure:"pricing"`
	Scorer    ScorerConfig    `yaml:"scorer" mapstructure:"scorer"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	IO        IOConfig        `yaml:"io" mapstructure:"io"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// LLMConfig selects and paces the text-generation backend.
type LLMConfig struct {
	Provider             string  `yaml:"provider" mapstructure:"provider"` // "anthropic" or "gemini"
	TimeoutSecs          int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RequestsPerSecond    float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	AnalysisTemperature  float64 `yaml:"analysis_temperature" mapstructure:"analysis_temperature"`
	RecommendTemperature float64 `yaml:"recommend_temperature" mapstructure:"recommend_temperature"`
	// Per-phase reply caps; 0 uses the provider's max_tokens.
	AnalysisMaxTokens  int64 `yaml:"analysis_max_tokens" mapstructure:"analysis_max_tokens"`
	RecommendMaxTokens int64 `yaml:"recommend_max_tokens" mapstructure:"recommend_max_tokens"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// GeminiConfig holds Google Gemini API settings.
type GeminiConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int32  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// PricingConfig holds per-model token pricing used for cost attribution.
type PricingConfig struct {
	Models map[string]ModelPricing `yaml:"models" mapstructure:"models"`
}

// ModelPricing holds per-model token pricing (USD per million tokens).
type ModelPricing struct {
	Input  float64 `yaml:"input" mapstructure:"input"`
	Output float64 `yaml:"output" mapstructure:"output"`
}

// ScorerConfig holds the qualification rubric and prioritization weights.
// Weights in each group sum to 1.
type ScorerConfig struct {
	// BANT weights.
	BudgetWeight    float64 `yaml:"budget_weight" mapstructure:"budget_weight"`
	AuthorityWeight float64 `yaml:"authority_weight" mapstructure:"authority_weight"`
	NeedWeight      float64 `yaml:"need_weight" mapstructure:"need_weight"`
	TimelineWeight  float64 `yaml:"timeline_weight" mapstructure:"timeline_weight"`

	// Per-criterion diagnostic thresholds.
	BudgetThreshold    float64 `yaml:"budget_threshold" mapstructure:"budget_threshold"`
	AuthorityThreshold float64 `yaml:"authority_threshold" mapstructure:"authority_threshold"`
	NeedThreshold      float64 `yaml:"need_threshold" mapstructure:"need_threshold"`
	TimelineThreshold  float64 `yaml:"timeline_threshold" mapstructure:"timeline_threshold"`

	// Tier cutoffs on the overall score.
	HotTier  float64 `yaml:"hot_tier" mapstructure:"hot_tier"`
	WarmTier float64 `yaml:"warm_tier" mapstructure:"warm_tier"`
	ColdTier float64 `yaml:"cold_tier" mapstructure:"cold_tier"`

	// Prioritization weights.
	QualificationWeight float64 `yaml:"qualification_weight" mapstructure:"qualification_weight"`
	RecencyWeight       float64 `yaml:"recency_weight" mapstructure:"recency_weight"`
	EngagementWeight    float64 `yaml:"engagement_weight" mapstructure:"engagement_weight"`

	// Priority level cutoffs.
	HighPriority   float64 `yaml:"high_priority" mapstructure:"high_priority"`
	MediumPriority float64 `yaml:"medium_priority" mapstructure:"medium_priority"`
}

// PipelineConfig configures stage execution.
type PipelineConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// IOConfig configures input and output files.
type IOConfig struct {
	Input       string `yaml:"input" mapstructure:"input"`
	Output      string `yaml:"output" mapstructure:"output"`
	CSVEncoding string `yaml:"csv_encoding" mapstructure:"csv_encoding"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	MaxLeads    int      `yaml:"max_leads" mapstructure:"max_leads"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, config file and environment.
func Load() (*Config, error) {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.timeout_secs", 120)
	v.SetDefault("llm.requests_per_second", 0)
	v.SetDefault("llm.analysis_temperature", 0.2)
	v.SetDefault("llm.recommend_temperature", 0.7)
	v.SetDefault("llm.analysis_max_tokens", 1024)
	v.SetDefault("llm.recommend_max_tokens", 0)
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("gemini.key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.max_tokens", 2048)
	v.SetDefault("scorer.budget_weight", 0.25)
	v.SetDefault("scorer.authority_weight", 0.25)
	v.SetDefault("scorer.need_weight", 0.30)
	v.SetDefault("scorer.timeline_weight", 0.20)
	v.SetDefault("scorer.budget_threshold", 0.6)
	v.SetDefault("scorer.authority_threshold", 0.7)
	v.SetDefault("scorer.need_threshold", 0.6)
	v.SetDefault("scorer.timeline_threshold", 0.5)
	v.SetDefault("scorer.hot_tier", 0.8)
	v.SetDefault("scorer.warm_tier", 0.6)
	v.SetDefault("scorer.cold_tier", 0.4)
	v.SetDefault("scorer.qualification_weight", 0.5)
	v.SetDefault("scorer.recency_weight", 0.3)
	v.SetDefault("scorer.engagement_weight", 0.2)
	v.SetDefault("scorer.high_priority", 0.8)
	v.SetDefault("scorer.medium_priority", 0.5)
	v.SetDefault("pipeline.concurrency", 1)
	v.SetDefault("io.input", "data/sample_leads.json")
	v.SetDefault("io.output", "resultados_leads.json")
	v.SetDefault("io.csv_encoding", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.max_leads", 500)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
