package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/appassets/pkg/config"
	"github.com/kerbaras/appassets/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#000"/></svg>`

func writeManifest(t *testing.T, dir string) string {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.svg"), []byte(iconSVG), 0o644))
	path := filepath.Join(dir, "assets.toml")
	manifest := `
[[jobs]]
source = "icon.svg"
destination = "out/icon.png"
width = 32
height = 32

[[jobs]]
source = "missing.svg"
destination = "out/missing.png"
width = 16
height = 16

[[jobs]]
source = "icon.svg"
destination = "out/favicon.png"
width = 16
height = 16
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
	return path
}

func TestConvertReportsEveryJobAndFails(t *testing.T) {
	dir := t.TempDir()
	manifest, err := config.Load(writeManifest(t, dir))
	require.NoError(t, err)

	var out bytes.Buffer
	err = convert(context.Background(), &out, logging.Discard(), manifest, convertOptions{})
	require.Error(t, err)
	assert.Equal(t, "1 of 3 conversions failed", err.Error())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4, "one line per job plus the completion line:\n%s", out.String())
	assert.Contains(t, lines[0], "out/icon.png")
	assert.Contains(t, lines[1], "missing.svg")
	assert.Contains(t, lines[1], "no such file or directory")
	assert.Contains(t, lines[2], "out/favicon.png")
	assert.Contains(t, lines[3], "Done: 2 converted, 1 failed")

	_, err = os.Stat(filepath.Join(dir, "out", "favicon.png"))
	assert.NoError(t, err)
}

func TestConvertSucceeds(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.svg"), []byte(iconSVG), 0o644))
	path := filepath.Join(dir, "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - {source: icon.svg, destination: icon.png, width: 8, height: 8}\n"), 0o644))

	manifest, err := config.Load(path)
	require.NoError(t, err)

	var out bytes.Buffer
	err = convert(context.Background(), &out, logging.Discard(), manifest, convertOptions{summary: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Done: 1 converted, 0 failed")
	assert.Contains(t, out.String(), "8x8")
}

func TestLoadManifest(t *testing.T) {
	m, err := loadManifest(convertOptions{})
	require.NoError(t, err)
	assert.Len(t, m.ConversionJobs(), 4)

	m, err = loadManifest(convertOptions{preset: "pwa"})
	require.NoError(t, err)
	assert.Len(t, m.ConversionJobs(), 3)

	_, err = loadManifest(convertOptions{preset: "nope"})
	assert.ErrorContains(t, err, "unknown preset")

	_, err = loadManifest(convertOptions{configPath: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestPrintPresetList(t *testing.T) {
	var out bytes.Buffer
	printPresetList(&out)

	assert.Contains(t, out.String(), "expo")
	assert.Contains(t, out.String(), "assets/splash.svg -> assets/splash.png (1284x2778)")
}

func TestParseBadgeArg(t *testing.T) {
	count, err := parseBadgeArg(nil)
	require.NoError(t, err)
	assert.Nil(t, count)

	count, err = parseBadgeArg([]string{"42"})
	require.NoError(t, err)
	require.NotNil(t, count)
	assert.Equal(t, 42, *count)

	_, err = parseBadgeArg([]string{"lots"})
	assert.ErrorContains(t, err, "invalid count")
}

func TestBadgeCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantEmpty bool
		want      string
	}{
		{"no count", []string{"badge"}, true, ""},
		{"zero", []string{"badge", "0"}, true, ""},
		{"small", []string{"badge", "7"}, false, "7"},
		{"capped", []string{"badge", "250"}, false, "99+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(tt.args)
			defer rootCmd.SetOut(nil)

			require.NoError(t, rootCmd.Execute())

			if tt.wantEmpty {
				assert.Empty(t, out.String())
			} else {
				assert.Contains(t, out.String(), tt.want)
			}
		})
	}
}
