package generator

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/gospel-assets/engine/catalog"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func run(t *testing.T, cfg Config) *Report {
	t.Helper()
	rep, err := New(cfg, quietLogger()).Run()
	require.NoError(t, err)
	return rep
}

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "Assets.xcassets")
	return cfg
}

func allNames() []string {
	var names []string
	for _, st := range Stages() {
		names = append(names, st.Names()...)
	}
	return names
}

func stage(t *testing.T, name string) Stage {
	t.Helper()
	for _, st := range Stages() {
		if st.Name == name {
			return st
		}
	}
	t.Fatalf("no stage %q", name)
	return Stage{}
}

func TestNamesAreUnique(t *testing.T) {
	require.NoError(t, CheckUnique(Stages()))
	names := allNames()
	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
	assert.Len(t, names, 34)
}

func TestDuplicateNameAbortsBeforeWriting(t *testing.T) {
	one := func() []string { return []string{"tile_grass"} }
	build := func(Config) []catalog.Asset {
		return []catalog.Asset{{Name: "tile_grass", Canvas: pixel.NewTransparent(1, 1)}}
	}
	stages := []Stage{
		{Name: "a", Banner: "a", Names: one, Build: build},
		{Name: "b", Banner: "b", Names: one, Build: build},
	}
	cfg := testConfig(t)

	_, err := newWithStages(cfg, stages, quietLogger()).Run()
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), "tile_grass")
	assert.NoDirExists(t, cfg.OutDir)
}

func TestRunWritesEveryAsset(t *testing.T) {
	cfg := testConfig(t)
	rep := run(t, cfg)
	assert.Equal(t, 34, rep.Total)
	assert.Len(t, rep.Assets["sprites"], 11)
	assert.Len(t, rep.Assets["tiles"], 13)
	assert.Len(t, rep.Assets["backgrounds"], 5)
	assert.Len(t, rep.Assets["ui"], 5)

	for _, name := range allNames() {
		dir := catalog.Dir(cfg.OutDir, name)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err, name)
		require.Len(t, entries, 2, name)

		c, err := catalog.ReadContents(cfg.OutDir, name)
		require.NoError(t, err, name)
		require.Len(t, c.Images, 3, name)
		assert.Equal(t, name+".png", c.Images[0].Filename)
		for i, scale := range []string{"1x", "2x", "3x"} {
			assert.Equal(t, "universal", c.Images[i].Idiom)
			assert.Equal(t, scale, c.Images[i].Scale)
		}
		assert.Empty(t, c.Images[1].Filename)
		assert.Empty(t, c.Images[2].Filename)
		assert.Equal(t, catalog.Info{Author: "xcode", Version: 1}, c.Info)
	}
}

func TestDecodedDimensions(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg)

	size := func(name string) (int, int) {
		f, err := os.Open(filepath.Join(catalog.Dir(cfg.OutDir, name), name+".png"))
		require.NoError(t, err)
		defer f.Close()
		conf, err := png.DecodeConfig(f)
		require.NoError(t, err)
		return conf.Width, conf.Height
	}
	want := map[string][2]int{
		"ui_textbox":         {320, 80},
		"ui_healthbar_green": {64, 8},
		"ui_healthbar_red":   {64, 8},
		"ui_menu_panel":      {200, 160},
		"ui_battle_commands": {160, 80},
	}
	for _, n := range allNames() {
		switch {
		case strings.HasPrefix(n, "tile_"):
			want[n] = [2]int{16, 16}
		case strings.HasPrefix(n, "bg_"):
			want[n] = [2]int{320, 240}
		case !strings.HasPrefix(n, "ui_"):
			want[n] = [2]int{32, 32}
		}
	}
	require.Len(t, want, 34)
	for name, wh := range want {
		w, h := size(name)
		assert.Equal(t, wh[0], w, name)
		assert.Equal(t, wh[1], h, name)
	}
}

func TestSameSeedSameTiles(t *testing.T) {
	a, b := testConfig(t), testConfig(t)
	run(t, a)
	run(t, b)

	names := stage(t, "tiles").Names()
	require.Len(t, names, 13)
	for _, name := range names {
		pa, err := os.ReadFile(filepath.Join(catalog.Dir(a.OutDir, name), name+".png"))
		require.NoError(t, err)
		pb, err := os.ReadFile(filepath.Join(catalog.Dir(b.OutDir, name), name+".png"))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(pa, pb), "%s differs between runs", name)
	}
}

func TestEndToEndKeyAssets(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg)
	for _, name := range []string{"jesus", "tile_grass", "bg_temple", "ui_textbox"} {
		fi, err := os.Stat(filepath.Join(cfg.OutDir, name+".imageset", name+".png"))
		require.NoError(t, err, name)
		assert.Positive(t, fi.Size(), name)
	}

	// The headscarf redraw survives encoding.
	f, err := os.Open(filepath.Join(cfg.OutDir, "npc_villager_f.imageset", "npc_villager_f.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(14, 9).RGBA()
	assert.Equal(t, [3]uint32{0x18, 0x28, 0x38}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestUpscaleRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Upscale = true
	run(t, cfg)

	data, err := os.ReadFile(filepath.Join(catalog.Dir(cfg.OutDir, "tile_rock"), catalog.ContentsFile))
	require.NoError(t, err)
	var c catalog.Contents
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, "tile_rock@3x.png", c.Images[2].Filename)

	f, err := os.Open(filepath.Join(catalog.Dir(cfg.OutDir, "tile_rock"), "tile_rock@3x.png"))
	require.NoError(t, err)
	defer f.Close()
	conf, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, image.Point{48, 48}, image.Point{conf.Width, conf.Height})
}

func TestRunFailsOnUnwritableRoot(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocked, nil, 0644))
	cfg := DefaultConfig()
	cfg.OutDir = blocked

	rep, err := New(cfg, quietLogger()).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage sprites")
	assert.Zero(t, rep.Total)
}
