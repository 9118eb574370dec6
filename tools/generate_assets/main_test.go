package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/gospel-assets/engine/catalog"
	"github.com/1siamBot/gospel-assets/engine/generator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	cmd := newRootCmd(l)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assetPath(root, name, file string) string {
	return filepath.Join(catalog.Dir(root, name), file)
}

func TestListWritesNothing(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "list")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	for _, st := range generator.Stages() {
		assert.Contains(t, out, st.Name+":\n")
		for _, n := range st.Names() {
			assert.Contains(t, out, "  "+n+"\n")
		}
	}
	names := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ") {
			names++
		}
	}
	assert.Equal(t, 34, names)
}

func TestDefaultOutDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := execute(t)
	require.NoError(t, err)
	assert.FileExists(t, assetPath(filepath.Join(dir, generator.DefaultOutDir), "jesus", "jesus.png"))
}

func TestUpscaleFlag(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Assets.xcassets")
	_, err := execute(t, "-o", root, "--upscale")
	require.NoError(t, err)
	assert.FileExists(t, assetPath(root, "tile_rock", "tile_rock@3x.png"))
}

func TestRejectsBadInvocations(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "extra")
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "bogus")
	assert.Error(t, err)
	_, err = execute(t, "list", "--log-level", "bogus")
	assert.Error(t, err)
}

func TestSeedFlag(t *testing.T) {
	a := filepath.Join(t.TempDir(), "a")
	b := filepath.Join(t.TempDir(), "b")
	_, err := execute(t, "-o", a)
	require.NoError(t, err)
	_, err = execute(t, "-o", b, "--seed", "7")
	require.NoError(t, err)

	pa, err := os.ReadFile(assetPath(a, "tile_grass", "tile_grass.png"))
	require.NoError(t, err)
	pb, err := os.ReadFile(assetPath(b, "tile_grass", "tile_grass.png"))
	require.NoError(t, err)
	assert.NotEqual(t, pa, pb)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
