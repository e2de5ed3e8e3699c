// In file: cmd/reasoner/config.go
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SessionSettings come from config.yaml and control the reasoning loop.
type SessionSettings struct {
	DefaultModel        string   `yaml:"default_model"`
	MaxToolRounds       int      `yaml:"max_tool_rounds"`
	MaxTokens           int      `yaml:"max_tokens"`
	Temperature         *float32 `yaml:"temperature"`
	AnswerCacheTTLHours int      `yaml:"answer_cache_ttl_hours"`
}

// AppConfig holds all configuration for the reasoner, loaded from the
// environment and config.yaml.
type AppConfig struct {
	EnabledModels []string
	APIKeys       map[string]string
	RedisAddr     string
	Session       SessionSettings
}

// LoadConfig loads configuration from a .env file, environment variables,
// and config.yaml. Credentials are validated here, before any session is
// constructed; a missing key for an enabled model is fatal.
func LoadConfig() (*AppConfig, error) {
	// Only load a .env file in local development. In release mode,
	// configuration comes in as real environment variables.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		APIKeys:   make(map[string]string),
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}

	enabledModelsStr := os.Getenv("ENABLED_MODELS")
	if enabledModelsStr == "" {
		return nil, fmt.Errorf("ENABLED_MODELS environment variable is not set")
	}
	cfg.EnabledModels = strings.Split(enabledModelsStr, ",")

	for _, modelID := range cfg.EnabledModels {
		apiKey := apiKeyForModel(modelID)
		if apiKey == "" {
			return nil, fmt.Errorf("no API key set for enabled model %q", modelID)
		}
		cfg.APIKeys[modelID] = apiKey
	}

	sessionConfigFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}
	var fileCfg struct {
		Session SessionSettings `yaml:"session"`
	}
	if err := yaml.Unmarshal(sessionConfigFile, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}
	cfg.Session = fileCfg.Session

	if cfg.Session.DefaultModel == "" {
		cfg.Session.DefaultModel = cfg.EnabledModels[0]
	}
	if !contains(cfg.EnabledModels, cfg.Session.DefaultModel) {
		return nil, fmt.Errorf("default model %q is not in ENABLED_MODELS", cfg.Session.DefaultModel)
	}

	return cfg, nil
}

// apiKeyForModel maps a model-ID prefix to the provider's API key env var.
func apiKeyForModel(modelID string) string {
	switch {
	case strings.HasPrefix(modelID, "gpt"):
		return os.Getenv("OPENAI_API_KEY")
	case strings.HasPrefix(modelID, "claude"):
		return os.Getenv("ANTHROPIC_API_KEY")
	case strings.HasPrefix(modelID, "gemini"):
		return os.Getenv("GEMINI_API_KEY")
	case strings.HasPrefix(modelID, "mistral"):
		return os.Getenv("MISTRAL_API_KEY")
	}
	return ""
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
