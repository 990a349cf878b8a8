package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// roster config
	ROSTER_SEED_FILE  string
	REPORT_SHEET_NAME string
	IMPORT_WORKERS    int
}

// LoadEnvConfig reads .env when present and fills DefaultEnvConfig from the environment.
func LoadEnvConfig(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:          getEnvString("APP_PORT", "8080"),
		LOG_FILE_PATH:     getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:         getEnvString("LOG_LEVEL", "info"),
		ROSTER_SEED_FILE:  getEnvString("ROSTER_SEED_FILE", ""),
		REPORT_SHEET_NAME: getEnvString("REPORT_SHEET_NAME", "Roster"),
		IMPORT_WORKERS:    getEnvInt("IMPORT_WORKERS", 4),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
