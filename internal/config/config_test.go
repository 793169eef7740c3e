package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationEnv(t *testing.T) {
	t.Setenv("X_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, durationEnv("X_TIMEOUT", time.Second))

	t.Setenv("X_TIMEOUT", "not-a-duration")
	assert.Equal(t, time.Second, durationEnv("X_TIMEOUT", time.Second))

	t.Setenv("X_TIMEOUT", "-5s")
	assert.Equal(t, time.Second, durationEnv("X_TIMEOUT", time.Second),
		"non-positive durations fall back to the default")

	t.Setenv("X_TIMEOUT", "")
	assert.Equal(t, time.Second, durationEnv("X_TIMEOUT", time.Second))
}

func TestIntEnv(t *testing.T) {
	t.Setenv("X_ROUNDS", "5")
	assert.Equal(t, 5, intEnv("X_ROUNDS", 3))

	t.Setenv("X_ROUNDS", "0")
	assert.Equal(t, 3, intEnv("X_ROUNDS", 3))

	t.Setenv("X_ROUNDS", "many")
	assert.Equal(t, 3, intEnv("X_ROUNDS", 3))
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("X_FAKE", "1")
	assert.True(t, boolEnv("X_FAKE", false))

	t.Setenv("X_FAKE", "maybe")
	assert.False(t, boolEnv("X_FAKE", false))
}

func TestDefaultLogFormat(t *testing.T) {
	assert.Equal(t, "console", defaultLogFormat("local"))
	assert.Equal(t, "json", defaultLogFormat("production"))
}
