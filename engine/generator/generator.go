// Package generator runs the four asset stages in order and hands every image
// to the catalog writer.
package generator

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/1siamBot/gospel-assets/engine/backgrounds"
	"github.com/1siamBot/gospel-assets/engine/catalog"
	"github.com/1siamBot/gospel-assets/engine/sprites"
	"github.com/1siamBot/gospel-assets/engine/tiles"
	"github.com/1siamBot/gospel-assets/engine/ui"
)

// ErrDuplicateName is returned before anything is written when two stages
// would produce the same asset name.
var ErrDuplicateName = errors.New("duplicate asset name")

// DefaultOutDir is the catalog location relative to the working directory.
const DefaultOutDir = "GospelRPG/Assets.xcassets"

// Config holds the knobs of one run. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	OutDir  string
	Seed    int64
	Upscale bool
}

// DefaultConfig writes to DefaultOutDir with the default tile seed.
func DefaultConfig() Config {
	return Config{OutDir: DefaultOutDir, Seed: tiles.DefaultSeed}
}

// Stage is one batch of assets.
type Stage struct {
	Name   string
	Banner string
	Names  func() []string
	Build  func(cfg Config) []catalog.Asset
}

// Stages returns the four stages in run order.
func Stages() []Stage {
	return []Stage{
		{"sprites", "Generating character sprites...", spriteNames, buildSprites},
		{"tiles", "Generating tiles...", tileNames, buildTiles},
		{"backgrounds", "Generating battle backgrounds...", backgroundNames, buildBackgrounds},
		{"ui", "Generating UI elements...", uiNames, buildUI},
	}
}

func spriteNames() []string {
	var names []string
	for _, ch := range sprites.Roster {
		names = append(names, ch.Name)
	}
	return names
}

func buildSprites(Config) []catalog.Asset {
	var out []catalog.Asset
	for _, ch := range sprites.Roster {
		out = append(out, catalog.Asset{Name: ch.Name, Canvas: sprites.Render(ch)})
	}
	return out
}

func tileNames() []string {
	var names []string
	for _, t := range tiles.Base {
		names = append(names, t.Name)
	}
	for _, o := range tiles.Objects {
		names = append(names, o.Name)
	}
	return names
}

// buildTiles seeds one generator for the whole stage and threads it through
// the base tiles in roster order.
func buildTiles(cfg Config) []catalog.Asset {
	rng := tiles.NewRand(cfg.Seed)
	var out []catalog.Asset
	for _, t := range tiles.Base {
		out = append(out, catalog.Asset{Name: t.Name, Canvas: tiles.Build(t.Base, t.Detail, rng)})
	}
	for _, o := range tiles.Objects {
		out = append(out, catalog.Asset{Name: o.Name, Canvas: o.Draw()})
	}
	return out
}

func backgroundNames() []string {
	var names []string
	for _, s := range backgrounds.Scenes {
		names = append(names, s.Name)
	}
	return names
}

func buildBackgrounds(Config) []catalog.Asset {
	var out []catalog.Asset
	for _, s := range backgrounds.Scenes {
		out = append(out, catalog.Asset{Name: s.Name, Canvas: s.Draw()})
	}
	return out
}

func uiNames() []string {
	var names []string
	for _, e := range ui.Elements {
		names = append(names, e.Name)
	}
	return names
}

func buildUI(Config) []catalog.Asset {
	var out []catalog.Asset
	for _, e := range ui.Elements {
		out = append(out, catalog.Asset{Name: e.Name, Canvas: e.Draw()})
	}
	return out
}

// CheckUnique reports the first name claimed by two stages.
func CheckUnique(stages []Stage) error {
	owner := map[string]string{}
	for _, st := range stages {
		for _, n := range st.Names() {
			if prev, ok := owner[n]; ok {
				return fmt.Errorf("%w: %q in stages %s and %s", ErrDuplicateName, n, prev, st.Name)
			}
			owner[n] = st.Name
		}
	}
	return nil
}

// Report summarises a finished run.
type Report struct {
	OutDir string
	Assets map[string][]string // stage name -> asset names, in write order
	Total  int
}

// Generator writes every stage's assets through a catalog writer.
type Generator struct {
	cfg    Config
	stages []Stage
	writer *catalog.Writer
	log    *logrus.Entry
}

// New returns a Generator over the standard stages.
func New(cfg Config, log *logrus.Entry) *Generator {
	return newWithStages(cfg, Stages(), log)
}

func newWithStages(cfg Config, stages []Stage, log *logrus.Entry) *Generator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	opts := []catalog.Option{catalog.WithLogger(log)}
	if cfg.Upscale {
		opts = append(opts, catalog.WithUpscale())
	}
	return &Generator{
		cfg:    cfg,
		stages: stages,
		writer: catalog.NewWriter(cfg.OutDir, opts...),
		log:    log.WithField("component", "generator"),
	}
}

// Run generates and writes every asset. The first filesystem error aborts
// the run; assets already written stay on disk.
func (g *Generator) Run() (*Report, error) {
	if err := CheckUnique(g.stages); err != nil {
		return nil, err
	}
	rep := &Report{OutDir: g.cfg.OutDir, Assets: map[string][]string{}}
	for _, st := range g.stages {
		g.log.Info(st.Banner)
		for _, a := range st.Build(g.cfg) {
			if err := g.writer.Save(a); err != nil {
				return rep, fmt.Errorf("stage %s: %w", st.Name, err)
			}
			rep.Assets[st.Name] = append(rep.Assets[st.Name], a.Name)
			rep.Total++
		}
	}
	g.log.WithFields(logrus.Fields{"assets": rep.Total, "out": g.cfg.OutDir}).Info("All assets generated successfully!")
	return rep, nil
}
