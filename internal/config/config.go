// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from NOTESYNTH_* environment
// variables. Command-line flags override what it returns.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration.
type Config struct {
	SongsDir   string        // directory of <name>.json songs
	SampleRate int           // device and render rate
	Buffer     time.Duration // speaker latency
	Gap        time.Duration // silence after every note
	LogLevel   string        // debug, info, warn, error
}

// Load reads configuration from the environment. Malformed or
// out-of-range values fall back to the default.
func Load() Config {
	return Config{
		SongsDir:   envStr("NOTESYNTH_SONGS_DIR", "songs"),
		SampleRate: envPositiveInt("NOTESYNTH_SAMPLE_RATE", 44100),
		Buffer:     envDuration("NOTESYNTH_BUFFER", 100*time.Millisecond, false),
		Gap:        envDuration("NOTESYNTH_GAP", 5*time.Millisecond, true),
		LogLevel:   envStr("NOTESYNTH_LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envPositiveInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// envDuration accepts Go durations ("250ms") or bare milliseconds ("250").
func envDuration(key string, fallback time.Duration, allowZero bool) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fallback
		}
		d = time.Duration(ms) * time.Millisecond
	}

	if d < 0 || (d == 0 && !allowZero) {
		return fallback
	}
	return d
}
