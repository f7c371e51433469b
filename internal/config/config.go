package config

import (
	"os"
	"path/filepath"

	"fjacquet/ngtax/internal/logging"

	"github.com/joho/godotenv"
)

// FindEnvFile returns the .env file in the current or parent directory, or
// "" when there is none.
func FindEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadEnv loads environment variables from a .env file if one exists.
// Variables already set in the process take precedence.
func LoadEnv(logger logging.Logger) {
	envFile := FindEnvFile()
	if envFile == "" {
		logger.Debug("No .env file found, using environment variables")
		return
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, envFile))
		return
	}
	logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// ConfigureLogging builds the application logger from the configuration.
// Log output goes to stderr so reports on stdout stay clean.
func ConfigureLogging(config *Config) logging.Logger {
	return logging.NewLogrusAdapterWithOutput(config.Log.Level, config.Log.Format, os.Stderr)
}

// DataPath resolves name against the data directory. Absolute names and an
// empty directory leave name unchanged.
func (c *Config) DataPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.Data.Directory == "" {
		return name
	}
	return filepath.Join(c.Data.Directory, name)
}
