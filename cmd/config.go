//go:build !tinygo

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Logger exposes the package logger to main.
func Logger() *logrus.Logger {
	return log
}

// LoadSettings reads the painter configuration from the environment.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment win.
func LoadSettings(envFiles ...string) Settings {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debug("No .env file loaded, using environment variables directly")
	}

	return Settings{
		Role:       ParseRole(os.Getenv("PIXEL_ROLE")),
		View:       ParseView(getenv("PIXEL_VIEW", "window")),
		SideLength: ParseSideLength(os.Getenv("PIXEL_SIDE_LENGTH")),
		Transport:  getenv("PIXEL_TRANSPORT", "/dev/ttyACM0"),
		Baud:       getenvInt("PIXEL_BAUD", DefaultBaud),
		Color:      getenv("PIXEL_COLOR", DefaultColor),
		LogLevel:   getenv("PIXEL_LOG_LEVEL", "info"),
		LogFile:    os.Getenv("PIXEL_LOG_FILE"),
		QueueSize:  getenvInt("PIXEL_QUEUE", DefaultQueueSize),
	}
}

// ConfigureLogging applies the level and output file. Unknown level names fall
// back to info; an empty file keeps logging on stderr.
func ConfigureLogging(s Settings) error {
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		log.WithField("level", s.LogLevel).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if s.LogFile == "" {
		return nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.WithField(key, v).Warn("Invalid integer setting, using default")
		return def
	}
	return n
}
