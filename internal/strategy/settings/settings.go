package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Settings holds the ambient configuration read from the environment.
type Settings struct {
	LogLevel string `env:"STRATEGY_LOG_LEVEL" envDefault:"info"`
}

// Load reads the .env files in the working directory, if any, and parses the
// environment into Settings. Variables already set take precedence over the
// ones in the files.
func Load(files ...string) (*Settings, error) {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}

	for _, file := range files {
		// missing files are fine
		_ = godotenv.Load(file)
	}

	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &settings, nil
}

// Level returns the configured logrus level.
func (settings *Settings) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}
