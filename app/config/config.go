package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log        Log         `yaml:"log"`
	DB         DB          `yaml:"db"`
	Server     Server      `yaml:"server"`
	Security   Security    `yaml:"security"`
	OpenRouter ModelConfig `yaml:"openrouter"`
	Nominatim  Nominatim   `yaml:"nominatim"`
}

type ModelConfig struct {
	// OpenAI-compatible base url
	BaseURL string `yaml:"base_url" example:"https://openrouter.ai/api/v1" validate:"required"`
	// API token
	Token string `yaml:"token" example:"sk-or-v1-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// Model name
	Model string `yaml:"model" example:"deepseek/deepseek-chat-v3-0324:free" validate:"required"`
}

type Server struct {
	// Address the HTTP API listens on
	Listen string `yaml:"listen" example:":8080"`
}

type Security struct {
	// Base64 32-byte key used to encrypt candidate contact fields at rest.
	// Generate one with `talentscout -genkey`.
	EncryptionKey string `yaml:"encryption_key" validate:"required,base64"`
}

type Nominatim struct {
	// Nominatim endpoint used for location verification
	BaseURL string `yaml:"base_url" example:"https://nominatim.openstreetmap.org"`
	// User agent sent with every request, Nominatim policy requires one
	UserAgent string `yaml:"user_agent" example:"talentscout-screening-bot"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

type DB struct {
	// Postgres username
	User string `yaml:"user" example:"postgres" validate:"required"`
	// Postgres password
	Pass string `yaml:"pass" validate:"required"`
	// Postgres host
	Host string `yaml:"host"  example:"localhost:5432" validate:"required"`
	// Postgres database name
	Database string `yaml:"database" example:"talentscout" validate:"required"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.DB.User == "" {
		result.DB.User = "postgres"
	}
	if result.DB.Pass == "" {
		result.DB.Pass = "postgres"
	}
	if result.DB.Host == "" {
		result.DB.Host = "localhost:5432"
	}
	if result.DB.Database == "" {
		result.DB.Database = "talentscout"
	}
	if result.Server.Listen == "" {
		result.Server.Listen = ":8080"
	}
	if result.Nominatim.BaseURL == "" {
		result.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if result.Nominatim.UserAgent == "" {
		result.Nominatim.UserAgent = "talentscout-screening-bot"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
