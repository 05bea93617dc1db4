// SPDX-License-Identifier: EPL-2.0

package config

import (
	"testing"
	"time"
)

var keys = []string{
	"NOTESYNTH_SONGS_DIR",
	"NOTESYNTH_SAMPLE_RATE",
	"NOTESYNTH_BUFFER",
	"NOTESYNTH_GAP",
	"NOTESYNTH_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.SongsDir != "songs" {
		t.Errorf("SongsDir = %q, want songs", cfg.SongsDir)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Buffer != 100*time.Millisecond {
		t.Errorf("Buffer = %v, want 100ms", cfg.Buffer)
	}
	if cfg.Gap != 5*time.Millisecond {
		t.Errorf("Gap = %v, want 5ms", cfg.Gap)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NOTESYNTH_SONGS_DIR", "/srv/songs")
	t.Setenv("NOTESYNTH_SAMPLE_RATE", "48000")
	t.Setenv("NOTESYNTH_BUFFER", "250ms")
	t.Setenv("NOTESYNTH_GAP", "20")
	t.Setenv("NOTESYNTH_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.SongsDir != "/srv/songs" {
		t.Errorf("SongsDir = %q, want env override", cfg.SongsDir)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
	if cfg.Buffer != 250*time.Millisecond {
		t.Errorf("Buffer = %v, want 250ms", cfg.Buffer)
	}
	if cfg.Gap != 20*time.Millisecond {
		t.Errorf("Gap = %v, want 20ms", cfg.Gap)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadInvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTESYNTH_SAMPLE_RATE", "fast")
	t.Setenv("NOTESYNTH_BUFFER", "0")
	t.Setenv("NOTESYNTH_GAP", "-5ms")

	cfg := Load()

	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want default for invalid", cfg.SampleRate)
	}
	if cfg.Buffer != 100*time.Millisecond {
		t.Errorf("Buffer = %v, want default for zero", cfg.Buffer)
	}
	if cfg.Gap != 5*time.Millisecond {
		t.Errorf("Gap = %v, want default for negative", cfg.Gap)
	}
}

func TestLoadZeroGap(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTESYNTH_GAP", "0s")

	if cfg := Load(); cfg.Gap != 0 {
		t.Errorf("Gap = %v, want 0", cfg.Gap)
	}
}

func TestLoadNegativeRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTESYNTH_SAMPLE_RATE", "-8000")

	if cfg := Load(); cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want default for negative", cfg.SampleRate)
	}
}
