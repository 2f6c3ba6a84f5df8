// Package campaign loads ordered encounter lists from YAML or JSON files.
package campaign

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"card-crawl/internal/game"
)

// ErrEmptyCampaign is returned for a campaign file with no encounters.
var ErrEmptyCampaign = errors.New("campaign has no encounters")

// Campaign is a named, ordered list of encounter rosters.
type Campaign struct {
	Name       string
	Encounters [][]game.Spawn
}

// fileCampaign is the on-disk format, shared by YAML and JSON.
type fileCampaign struct {
	Name       string          `yaml:"name" json:"name"`
	Encounters []fileEncounter `yaml:"encounters" json:"encounters"`
}

type fileEncounter struct {
	Monsters []fileMonster `yaml:"monsters" json:"monsters"`
}

type fileMonster struct {
	Kind string `yaml:"kind" json:"kind"`
	HP   int    `yaml:"hp" json:"hp"`
}

// Parse decodes campaign data. format is a file extension such as ".yaml"
// or ".json".
func Parse(data []byte, format string) (*Campaign, error) {
	var fc fileCampaign
	switch strings.ToLower(format) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse campaign YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse campaign JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported campaign format %q", format)
	}
	return fc.build()
}

func (fc fileCampaign) build() (*Campaign, error) {
	if len(fc.Encounters) == 0 {
		return nil, ErrEmptyCampaign
	}

	c := &Campaign{
		Name:       fc.Name,
		Encounters: make([][]game.Spawn, len(fc.Encounters)),
	}
	for i, fe := range fc.Encounters {
		if len(fe.Monsters) > game.MaxMonsters {
			return nil, fmt.Errorf("encounter %d has %d monsters, at most %d allowed", i+1, len(fe.Monsters), game.MaxMonsters)
		}
		roster := make([]game.Spawn, 0, len(fe.Monsters))
		for _, fm := range fe.Monsters {
			kind, err := game.ParseMonsterKind(fm.Kind)
			if err != nil {
				return nil, fmt.Errorf("encounter %d: %w", i+1, err)
			}
			if fm.HP <= 0 {
				return nil, fmt.Errorf("encounter %d: %s needs positive hp, got %d", i+1, fm.Kind, fm.HP)
			}
			roster = append(roster, game.Spawn{Kind: kind, MaxHP: fm.HP})
		}
		c.Encounters[i] = roster
	}
	return c, nil
}

// Load reads a campaign file, choosing the decoder by extension. A missing
// name falls back to the file's base name.
func Load(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read campaign file: %w", err)
	}
	ext := filepath.Ext(path)
	c, err := Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return c, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadDir loads every campaign file in dir and returns them indexed by Name.
func LoadDir(dir string) (map[string]*Campaign, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read campaign directory: %w", err)
	}

	all := make(map[string]*Campaign)
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		c, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := all[c.Name]; exists {
			return nil, fmt.Errorf("duplicate campaign name %q in %s", c.Name, entry.Name())
		}
		all[c.Name] = c
	}
	return all, nil
}

// Default returns the built-in campaign used when no file is configured.
func Default() *Campaign {
	return &Campaign{
		Name: "Default",
		Encounters: [][]game.Spawn{
			{{Kind: game.Louse, MaxHP: 12}},
			{{Kind: game.Cultist, MaxHP: 30}, {Kind: game.Louse, MaxHP: 10}},
			{{Kind: game.JawWorm, MaxHP: 40}, {Kind: game.Cultist, MaxHP: 24}, {Kind: game.Louse, MaxHP: 11}},
		},
	}
}
