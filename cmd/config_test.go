package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// parseDuration
// ---------------------------------------------------------------------------

func TestParseDuration(t *testing.T) {

	cases := []struct {
		input string
		want  time.Duration
	}{
		{"", 0},
		{"0", 0},
		{"30", 30 * time.Second},
		{"90s", 90 * time.Second},
		{"2m", 2 * time.Minute},
		{" 15 ", 15 * time.Second},
	}

	for _, tc := range cases {
		got, err := parseDuration(tc.input)
		require.NoError(t, err, "input=%q", tc.input)
		require.Equal(t, tc.want, got, "input=%q", tc.input)
	}

	_, err := parseDuration("soon")
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// FileConfig
// ---------------------------------------------------------------------------

func TestFileConfig_EmptyIsValid(t *testing.T) {

	cfg := &FileConfig{}
	require.NoError(t, cfg.Valid())

	require.Zero(t, cfg.RequestTimeout())
	require.Equal(t, 5*time.Minute, cfg.Watch.IntervalValue())
}

func TestFileConfig_Values(t *testing.T) {

	cfg := &FileConfig{
		Endpoint: "http://10.0.0.5:11434",
		Model:    "llava:13b",
		Timeout:  "120",
		Watch:    WatchFileConfig{Interval: "1m"},
	}

	require.NoError(t, cfg.Valid())
	require.Equal(t, 120*time.Second, cfg.RequestTimeout())
	require.Equal(t, time.Minute, cfg.Watch.IntervalValue())
}

func TestFileConfig_InvalidTimeout(t *testing.T) {
	cfg := &FileConfig{Timeout: "whenever"}
	require.Error(t, cfg.Valid())
}

// ---------------------------------------------------------------------------
// config file loading
// ---------------------------------------------------------------------------

func TestLoadConfigFile_Yaml(t *testing.T) {

	path := filepath.Join(t.TempDir(), "basia.yml")

	content := `
endpoint: http://localhost:11434
model: llama3.2-vision:11b
image: ./samples/cells.jpg
timeout: 90s
watch:
  interval: 2m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Valid())

	require.Equal(t, "http://localhost:11434", cfg.Endpoint)
	require.Equal(t, "llama3.2-vision:11b", cfg.Model)
	require.Equal(t, "./samples/cells.jpg", cfg.Image)
	require.Equal(t, 90*time.Second, cfg.RequestTimeout())
	require.Equal(t, 2*time.Minute, cfg.Watch.IntervalValue())
}

func TestLoadConfigFile_UnsupportedFormat(t *testing.T) {

	path := filepath.Join(t.TempDir(), "basia.toml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint = 'x'"), 0644))

	_, err := LoadConfigFile(path)
	require.Error(t, err)
}

func TestFindConfig(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "basia.yml")
	require.NoError(t, os.WriteFile(path, []byte("model: test"), 0644))

	loc, has := FindConfig([]string{
		filepath.Join(dir, "missing.yml"),
		path,
	})
	require.True(t, has)
	require.Equal(t, path, loc)

	_, has = FindConfig([]string{filepath.Join(dir, "missing.yml")})
	require.False(t, has)
}
