package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogFile, EnvStartPet, EnvDemo, EnvSampleInterval, EnvBackoffInterval, EnvPublishInterval} {
		t.Setenv(k, "")
	}
}

func TestParse(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: Config{
				LogFile:         "debug.log",
				SampleInterval:  50 * time.Millisecond,
				BackoffInterval: 5 * time.Second,
				PublishInterval: time.Second,
			},
		},
		{
			name: "pet and demo",
			args: []string{"-pet", "-demo", "-log", "/tmp/steppet.log"},
			want: Config{
				LogFile:         "/tmp/steppet.log",
				StartPet:        true,
				Demo:            true,
				SampleInterval:  50 * time.Millisecond,
				BackoffInterval: 5 * time.Second,
				PublishInterval: time.Second,
			},
		},
		{
			name: "intervals",
			args: []string{"-sample", "20", "-backoff", "1s", "-publish", "250ms"},
			want: Config{
				LogFile:         "debug.log",
				SampleInterval:  20 * time.Millisecond,
				BackoffInterval: time.Second,
				PublishInterval: 250 * time.Millisecond,
			},
		},
		{
			name: "version short flag",
			args: []string{"-v"},
			want: Config{
				LogFile:         "debug.log",
				SampleInterval:  50 * time.Millisecond,
				BackoffInterval: 5 * time.Second,
				PublishInterval: time.Second,
				ShowVersion:     true,
			},
		},
		{name: "bad interval", args: []string{"-sample", "fast"}, wantErr: true},
		{name: "zero interval", args: []string{"-publish", "0"}, wantErr: true},
		{name: "unknown flag", args: []string{"-duration", "5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseUsesEnvironmentDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStartPet, "true")
	t.Setenv(EnvSampleInterval, "100ms")
	t.Setenv(EnvLogFile, "env.log")

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.True(t, cfg.StartPet)
	assert.Equal(t, 100*time.Millisecond, cfg.SampleInterval)
	assert.Equal(t, "env.log", cfg.LogFile)

	// flags win over the environment
	cfg, err = Parse([]string{"-sample", "75ms"})
	require.NoError(t, err)
	assert.Equal(t, 75*time.Millisecond, cfg.SampleInterval)
}

func TestDotEnvFileFeedsDefaults(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvBackoffInterval)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvBackoffInterval+"=2s\n"), 0o600))
	require.NoError(t, godotenv.Load(path))
	t.Cleanup(func() { os.Unsetenv(EnvBackoffInterval) })

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.BackoffInterval)
}

func TestFormatError(t *testing.T) {
	_, err := Parse([]string{"-sample", "fast"})
	require.Error(t, err)
	out := formatError(err)
	assert.Contains(t, out, "invalid interval")
	assert.Contains(t, out, "Valid formats")
}
