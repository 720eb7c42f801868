package config

import (
	"fmt"

	"github.com/nityasrik/Survey-Analysis/pkg/store/duckdb/survey"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

type ServerConfig struct {
	Host                   string   `mapstructure:"host"`
	Port                   string   `mapstructure:"port"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"`
}

type DatasetConfig struct {
	Path    string        `mapstructure:"path"`
	Columns ColumnsConfig `mapstructure:"columns"`
}

// ColumnsConfig names the CSV headers for each survey field. Defaults match
// the headers of the original survey export, misspellings included.
type ColumnsConfig struct {
	AgeGroup              string `mapstructure:"age_group"`
	Occupation            string `mapstructure:"occupation"`
	Attention             string `mapstructure:"attention"`
	Distraction           string `mapstructure:"distraction"`
	ScreenTime            string `mapstructure:"screen_time"`
	FocusDuration         string `mapstructure:"focus_duration"`
	Platforms             string `mapstructure:"platforms"`
	Strategies            string `mapstructure:"strategies"`
	StrategyEffectiveness string `mapstructure:"strategy_effectiveness"`
	Reflection            string `mapstructure:"reflection"`
	DigitalGuilt          string `mapstructure:"digital_guilt"`
	EmotionalImpact       string `mapstructure:"emotional_impact"`
}

type AnalysisConfig struct {
	TopTerms                int     `mapstructure:"top_terms"`
	TopStrategies           int     `mapstructure:"top_strategies"`
	ScreenTimeBucketMinutes float64 `mapstructure:"screen_time_bucket_minutes"`
	FocusBucketMinutes      float64 `mapstructure:"focus_bucket_minutes"`
}

// Mapping converts the configured headers into the store's column mapping.
func (c ColumnsConfig) Mapping() survey.Columns {
	return survey.Columns{
		AgeGroup:              c.AgeGroup,
		Occupation:            c.Occupation,
		Attention:             c.Attention,
		Distraction:           c.Distraction,
		ScreenTime:            c.ScreenTime,
		FocusDuration:         c.FocusDuration,
		Platforms:             c.Platforms,
		Strategies:            c.Strategies,
		StrategyEffectiveness: c.StrategyEffectiveness,
		Reflection:            c.Reflection,
		DigitalGuilt:          c.DigitalGuilt,
		EmotionalImpact:       c.EmotionalImpact,
	}
}

// Load reads the app config from path. An empty path yields the defaults,
// which match the original survey.csv layout.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("dataset.path", "survey.csv")
	v.SetDefault("dataset.columns.age_group", "Age Group")
	v.SetDefault("dataset.columns.occupation", "Occupation")
	v.SetDefault("dataset.columns.attention", "Attention Rating")
	v.SetDefault("dataset.columns.distraction", "Distraction Rating")
	v.SetDefault("dataset.columns.screen_time", "Screen TIme")
	v.SetDefault("dataset.columns.focus_duration", "Focus Duration")
	v.SetDefault("dataset.columns.platforms", "Platforms used")
	v.SetDefault("dataset.columns.strategies", "Cleaned Strategies")
	v.SetDefault("dataset.columns.strategy_effectiveness", "Strategy Affectiveness")
	v.SetDefault("dataset.columns.reflection", "Tech Relationship")
	v.SetDefault("dataset.columns.digital_guilt", "Digital Guilt")
	v.SetDefault("dataset.columns.emotional_impact", "Emotional Impact")

	v.SetDefault("analysis.top_terms", 25)
	v.SetDefault("analysis.top_strategies", 5)
	v.SetDefault("analysis.screen_time_bucket_minutes", 60)
	v.SetDefault("analysis.focus_bucket_minutes", 15)
}
