package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	AI       AIConfig
	Imports  ImportsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr  string
	JWTSecret string
}

// OCRConfig holds configuration for the CLI text-extraction tools
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// AIConfig holds configuration for the extraction model backend
type AIConfig struct {
	Model          string
	APIKey         string
	BaseURL        string
	Temperature    float32
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	MaxInputChars  int
}

// ImportsConfig holds policy knobs for the import pipeline
type ImportsConfig struct {
	StorageRoot          string
	StaleAfter           time.Duration
	HeartbeatEvery       time.Duration
	MinSectionConfidence float64
	MinTextLength        int
	Workers              int
	QueueSize            int
	ProcessTimeout       time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "spa"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		AI: AIConfig{
			Model:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			BaseURL:        getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature:    getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			RequestTimeout: getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			ConnectTimeout: getEnvAsDuration("OPENAI_CONNECT_TIMEOUT", 10*time.Second),
			MaxInputChars:  getEnvAsInt("OPENAI_MAX_INPUT_CHARS", 16000),
		},
		Imports: ImportsConfig{
			StorageRoot:          getEnv("STORAGE_ROOT", "./storage"),
			StaleAfter:           getEnvAsDuration("IMPORT_STALE_AFTER", 5*time.Minute),
			HeartbeatEvery:       getEnvAsDuration("IMPORT_HEARTBEAT_EVERY", 15*time.Second),
			MinSectionConfidence: getEnvAsFloat64("IMPORT_MIN_SECTION_CONFIDENCE", 0.60),
			MinTextLength:        getEnvAsInt("IMPORT_MIN_TEXT_LENGTH", 80),
			Workers:              getEnvAsInt("IMPORT_WORKERS", 4),
			QueueSize:            getEnvAsInt("IMPORT_QUEUE_SIZE", 256),
			ProcessTimeout:       getEnvAsDuration("IMPORT_PROCESS_TIMEOUT", 3*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.AI.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Server.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET is required", ErrInvalidInput)
	}
	if c.Imports.StaleAfter <= 0 {
		return NewAppError("CONFIG_ERROR", "IMPORT_STALE_AFTER must be positive", ErrInvalidInput)
	}
	if c.Imports.MinSectionConfidence < 0 || c.Imports.MinSectionConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "IMPORT_MIN_SECTION_CONFIDENCE must be in [0,1]", ErrInvalidInput)
	}
	return nil
}
