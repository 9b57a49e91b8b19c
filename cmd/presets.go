package cmd

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/sweepcore/game"
)

const defaultPreset = "hard"

type preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

func (p preset) config() game.Config {
	return game.Config{Width: p.Width, Height: p.Height, MineCount: p.Mines}
}

type presets map[string]preset

func builtinPresets() presets {
	return presets{
		"easy":   {Width: 10, Height: 10, Mines: 10},
		"medium": {Width: 16, Height: 16, Mines: 40},
		"hard":   {Width: 30, Height: 16, Mines: 99},
	}
}

// parsePresets reads a YAML mapping of preset names, e.g.
//
//	tiny: {width: 5, height: 5, mines: 3}
func parsePresets(in []byte) (presets, error) {
	var parsed presets
	if err := yaml.UnmarshalStrict(in, &parsed); err != nil {
		return nil, errors.Wrap(err, "parse presets")
	}
	for name, p := range parsed {
		if err := p.config().Validate(); err != nil {
			return nil, errors.Wrapf(err, "preset %q", name)
		}
	}
	return parsed, nil
}

// loadPresets returns the builtin presets, overridden by those in path
func loadPresets(path string) (presets, error) {
	all := builtinPresets()
	if path == "" {
		return all, nil
	}

	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read presets")
	}
	parsed, err := parsePresets(in)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	for name, p := range parsed {
		all[name] = p
	}
	return all, nil
}

func (all presets) lookup(name string) (game.Config, error) {
	p, ok := all[name]
	if !ok {
		return game.Config{}, errors.Errorf("unknown preset %q (known: %v)", name, all.names())
	}
	return p.config(), nil
}

func (all presets) names() []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
