package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Model     ModelConfig     `yaml:"model"`
	Data      DataConfig      `yaml:"data"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	LogLevel  string          `yaml:"log_level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type ModelConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Name       string `yaml:"name"`
	MaxTokens  int    `yaml:"max_tokens"`
	MaxRounds  int    `yaml:"max_rounds"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type DataConfig struct {
	// CSVPaths are tried in order; the first readable file wins.
	CSVPaths []string `yaml:"csv_paths"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Model: ModelConfig{
			BaseURL:    "https://api.anthropic.com",
			Name:       "claude-sonnet-4-20250514",
			MaxTokens:  1024,
			MaxRounds:  5,
			TimeoutSec: 60,
		},
		Data: DataConfig{
			CSVPaths: []string{
				"data/support_orders.csv",
				"support_orders.csv",
				"../support_orders.csv",
			},
		},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 10},
		LogLevel:  "info",
	}

	// Load from YAML if exists
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override from environment
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Model.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_BASE_URL"); v != "" {
		cfg.Model.BaseURL = v
	}
	if v := os.Getenv("MODEL_NAME"); v != "" {
		cfg.Model.Name = v
	}
	if v := os.Getenv("ORDERS_CSV"); v != "" {
		cfg.Data.CSVPaths = append([]string{v}, cfg.Data.CSVPaths...)
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			cfg.RateLimit.RPS = rps
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
