//go:build !tinygo

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingKeys = []string{
	"PIXEL_ROLE", "PIXEL_VIEW", "PIXEL_SIDE_LENGTH", "PIXEL_TRANSPORT", "PIXEL_BAUD",
	"PIXEL_COLOR", "PIXEL_LOG_LEVEL", "PIXEL_LOG_FILE", "PIXEL_QUEUE",
}

// unsetSettings clears every setting for the test and restores them afterwards.
func unsetSettings(t *testing.T) {
	t.Helper()
	for _, k := range settingKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func restoreLogger(t *testing.T) {
	t.Helper()
	level, out, formatter := log.GetLevel(), log.Out, log.Formatter
	t.Cleanup(func() {
		log.SetLevel(level)
		log.SetOutput(out)
		log.SetFormatter(formatter)
	})
}

func TestLoadSettings_Defaults(t *testing.T) {
	unsetSettings(t)

	s := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, Settings{
		Role:       Painter,
		View:       View_Window,
		SideLength: DefaultSideLength,
		Transport:  "/dev/ttyACM0",
		Baud:       DefaultBaud,
		Color:      DefaultColor,
		LogLevel:   "info",
		QueueSize:  DefaultQueueSize,
	}, s)
}

func TestLoadSettings_Environment(t *testing.T) {
	unsetSettings(t)
	t.Setenv("PIXEL_VIEW", "script")
	t.Setenv("PIXEL_SIDE_LENGTH", "8")
	t.Setenv("PIXEL_TRANSPORT", "ws://127.0.0.1:8080/pixels")
	t.Setenv("PIXEL_BAUD", "9600")
	t.Setenv("PIXEL_QUEUE", "-3")

	s := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, View_Script, s.View)
	assert.Equal(t, 8, s.SideLength)
	assert.Equal(t, "ws://127.0.0.1:8080/pixels", s.Transport)
	assert.Equal(t, 9600, s.Baud)
	assert.Equal(t, DefaultQueueSize, s.QueueSize)
}

func TestLoadSettings_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	unsetSettings(t)
	t.Setenv("PIXEL_COLOR", "#123456")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("PIXEL_VIEW=terminal\nPIXEL_COLOR=#abcdef\nPIXEL_SIDE_LENGTH=0\n"), 0o600))

	s := LoadSettings(env)
	assert.Equal(t, View_Terminal, s.View)
	assert.Equal(t, "#123456", s.Color)
	assert.Equal(t, DefaultSideLength, s.SideLength)
}

func TestConfigureLogging(t *testing.T) {
	restoreLogger(t)

	path := filepath.Join(t.TempDir(), "pixel.log")
	require.NoError(t, ConfigureLogging(Settings{LogLevel: "debug", LogFile: path}))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("cell", "1,0").Debug("Draw")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `cell="1,0"`)
	assert.Contains(t, string(b), "msg=Draw")
}

func TestConfigureLogging_UnknownLevel(t *testing.T) {
	restoreLogger(t)

	require.NoError(t, ConfigureLogging(Settings{LogLevel: "chatty"}))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestConfigureLogging_BadFile(t *testing.T) {
	restoreLogger(t)

	err := ConfigureLogging(Settings{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")})
	assert.Error(t, err)
}
