package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendModeHTTP   = "http"
	BackendModeOpenAI = "openai"

	StorageDriverRedis  = "redis"
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

type Backend struct {
	Mode           string        `yaml:"mode" env:"BACKEND_MODE" env-default:"http"`
	BaseURL        string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:5000"`
	AskPath        string        `yaml:"ask_path" env:"BACKEND_ASK_PATH" env-default:"/api/ask"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BACKEND_REQUEST_TIMEOUT" env-default:"60s"`
}

type OpenAI struct {
	OpenAIAPIKey     string  `yaml:"api_key" env:"OPENAI_API_KEY"`
	OpenAIModel      string  `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	OpenAIBaseURL    string  `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:"https://api.openai.com"`
	ModelTemperature float32 `yaml:"model_temperature" env:"MODEL_TEMPERATURE" env-default:"0.7"`
	MaxContextTokens int     `yaml:"max_context_tokens" env:"OPENAI_MAX_CONTEXT_TOKENS" env-default:"3500"`
}

type Session struct {
	HistoryLimit int `yaml:"history_limit" env:"SESSION_HISTORY_LIMIT" env-default:"50"`
	TitleLength  int `yaml:"title_length" env:"SESSION_TITLE_LENGTH" env-default:"30"`
}

type Redis struct {
	Endpoint  string `yaml:"endpoint" env:"REDIS_ENDPOINT" env-default:"localhost:6379"`
	Password  string `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"krishisahay:"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./krishisahay.db"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
	Redis  Redis  `yaml:"redis"`
	SQLite SQLite `yaml:"sqlite"`
}

type Telegram struct {
	TelegramAPIToken     string  `yaml:"api_token" env:"TELEGRAM_APITOKEN" env-required:"true"`
	IsNotPublic          bool    `yaml:"is_not_public" env:"TELEGRAM_IS_NOT_PUBLIC" env-default:"false"`
	AllowedTelegramID    []int64 `yaml:"allowed_telegram_id" env:"ALLOWED_TELEGRAM_ID" env-separator:","`
	MaxConcurrentUpdates int     `yaml:"max_concurrent_updates" env:"TELEGRAM_MAX_CONCURRENT_UPDATES" env-default:"8"`
	MaxQuestionLength    int     `yaml:"max_question_length" env:"TELEGRAM_MAX_QUESTION_LENGTH" env-default:"500"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Config struct {
	Backend  Backend  `yaml:"backend"`
	OpenAI   OpenAI   `yaml:"openai"`
	Session  Session  `yaml:"session"`
	Storage  Storage  `yaml:"storage"`
	Telegram Telegram `yaml:"telegram"`
	Log      Log      `yaml:"log"`
}

// LoadConfig reads the YAML file at cfgPath and applies environment overrides.
func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
