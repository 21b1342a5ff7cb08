package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// withHome points the user config lookup at dir for the duration of the test.
func withHome(t *testing.T, dir string) {
	t.Helper()
	original := osUserHomeDir
	t.Cleanup(func() { osUserHomeDir = original })
	osUserHomeDir = func() (string, error) { return dir, nil }
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DefaultOnly(t *testing.T) {
	withHome(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Swatch.ShowLabels())
}

func TestLoad_UserYAML(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)
	writeFile(t, filepath.Join(home, userConfigDir, "config.yaml"), `
count: 24
min_diff: 0.25
max_diff: 1.2
sampler: happy
timeout: 3s
seeds: ["#ff0000", "0,0,1"]
swatch:
  columns: 4
  labels: false
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Count)
	assert.Equal(t, 0.25, cfg.MinDiff)
	assert.Equal(t, 1.2, cfg.MaxDiff)
	assert.Equal(t, "happy", cfg.Sampler)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"#ff0000", "0,0,1"}, cfg.Seeds)
	assert.Equal(t, 4, cfg.Swatch.Columns)
	assert.False(t, cfg.Swatch.ShowLabels())

	// untouched fields keep their defaults
	assert.Equal(t, Default().MaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, 90, cfg.Swatch.Cell)
}

func TestLoad_ExplicitTOMLOverridesUser(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)
	writeFile(t, filepath.Join(home, userConfigDir, "config.toml"), `
count = 12
sampler = "warm"
`)
	explicit := filepath.Join(t.TempDir(), "palette.toml")
	writeFile(t, explicit, `
count = 6
hex = true
timeout = "250ms"
max_attempts = -1

[swatch]
cell = 40
label_size = 8.5
`)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Count)
	assert.Equal(t, "warm", cfg.Sampler)
	assert.True(t, cfg.Hex)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, -1, cfg.MaxAttempts)
	assert.Equal(t, 40, cfg.Swatch.Cell)
	assert.Equal(t, 8.5, cfg.Swatch.LabelSize)
}

func TestLoad_Errors(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)

	_, err := Load(filepath.Join(home, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(home, "bad.yaml")
	writeFile(t, bad, "count: [1, 2\n")
	_, err = Load(bad)
	assert.Error(t, err)

	writeFile(t, filepath.Join(home, userConfigDir, "config.yaml"), "min_diff: nope\n")
	_, err = Load("")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	off := false
	base := Default()
	overlay := Config{MinDiff: 0.4, Seeds: []string{"#000"}, Swatch: SwatchConfig{Labels: &off}}

	merged := Merge(base, overlay)
	assert.Equal(t, 0.4, merged.MinDiff)
	assert.Equal(t, base.MaxDiff, merged.MaxDiff)
	assert.Equal(t, []string{"#000"}, merged.Seeds)
	assert.False(t, merged.Swatch.ShowLabels())

	// the overlay's pointers and slices are not shared
	off = true
	overlay.Seeds[0] = "#fff"
	assert.False(t, merged.Swatch.ShowLabels())
	assert.Equal(t, "#000", merged.Seeds[0])
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Timeout = time.Minute
	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
