package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stderr bytes.Buffer
	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func TestDryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")

	logs, err := execute(t, "--dry-run", "--seed", "3", "--out", out)
	require.NoError(t, err)

	assert.Contains(t, logs, "drew tree")
	assert.Contains(t, logs, "(dry run)")
	assert.NoFileExists(t, out)
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")

	_, err := execute(t, "--seed", "5", "--width", "320", "--height", "320",
		"--scale", "0.4", "--segment", "straight", "--out", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())
}

func TestVerbose(t *testing.T) {
	logs, err := execute(t, "--dry-run", "-v", "--seed", "1", "--passes", "2")
	require.NoError(t, err)

	assert.Contains(t, logs, "pass complete")
	assert.Contains(t, logs, "seed=1")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tree]\nmax_depth = 0\n"), 0o644))

	_, err := execute(t, "--dry-run", "--config", path)
	assert.ErrorContains(t, err, "max depth")

	// Flags set on the command line win over the file.
	_, err = execute(t, "--dry-run", "--config", path, "--max-depth", "10")
	assert.NoError(t, err)
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "segment", args: []string{"--segment", "spiral"}, want: "spiral"},
		{name: "color", args: []string{"--leaf-color", "nope"}, want: "nope"},
		{name: "max depth", args: []string{"--max-depth", "-1"}, want: "max depth"},
		{name: "positional", args: []string{"extra"}, want: "accepts 0 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"--dry-run"}, tt.args...)...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
