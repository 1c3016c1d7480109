package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, Initialize(Options{}))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel), "logger should be a no-op")
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	require.NoError(t, InitializeFromEnv())
	assert.True(t, GetLogger().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestInitializeToFile(t *testing.T) {
	path := t.TempDir() + "/motohub.log"

	require.NoError(t, Initialize(Options{Level: "debug", File: path}))
	Info("hello")
	Sync()

	assert.FileExists(t, path)
}

func TestInitializeCreatesLogDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/motohub.log"

	require.NoError(t, Initialize(Options{Level: "info", File: path}))
	t.Cleanup(func() { SetLogger(nil) })
	Info("hello")
	Sync()

	assert.FileExists(t, path)
	assert.True(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogMerge(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogMerge("vehicle", "vehicle-1", true, 2)
	LogMerge("vehicle", "vehicle-2", false, 3)

	entries := logs.FilterMessage("Collection merged").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "replaced", entries[0].ContextMap()["op"])
	assert.Equal(t, "appended", entries[1].ContextMap()["op"])
	assert.EqualValues(t, 3, entries[1].ContextMap()["size"])
}
