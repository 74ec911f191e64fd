package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CustomPresetName is reported for settings that match no named preset.
const CustomPresetName = "Custom"

// Preset is a complete set of match settings.
type Preset struct {
	Tower           int `json:"tower" yaml:"tower"`
	Wall            int `json:"wall" yaml:"wall"`
	Quarries        int `json:"quarries" yaml:"quarries"`
	Magic           int `json:"magic" yaml:"magic"`
	Dungeons        int `json:"dungeons" yaml:"dungeons"`
	Bricks          int `json:"bricks" yaml:"bricks"`
	Gems            int `json:"gems" yaml:"gems"`
	Recruits        int `json:"recruits" yaml:"recruits"`
	TowerVictory    int `json:"towerVictory" yaml:"tower_victory"`
	ResourceVictory int `json:"resourceVictory" yaml:"resource_victory"`
}

// NamedPreset pairs a preset with its display name.
type NamedPreset struct {
	Name   string `json:"name" yaml:"name"`
	Preset `yaml:",inline"`
}

// PresetFile represents the top-level YAML structure.
type PresetFile struct {
	Presets []NamedPreset `yaml:"presets"`
}

// builtinPresets are the tavern settings, in menu order.
var builtinPresets = []NamedPreset{
	{"Default", Preset{20, 10, 2, 2, 2, 5, 5, 5, 50, 100}},
	{"On The House - Harmondale", Preset{15, 5, 2, 2, 2, 10, 10, 10, 30, 100}},
	{"Griffin's Rest - Erathia", Preset{20, 5, 2, 2, 2, 5, 5, 5, 50, 150}},
	{"Emerald Inn - Tularean Forest", Preset{20, 5, 2, 2, 2, 5, 5, 5, 50, 150}},
	{"Snobbish Goblin - Deyja", Preset{25, 10, 3, 3, 3, 5, 5, 5, 75, 200}},
	{"Familiar Place - Bracada Desert", Preset{20, 10, 3, 3, 3, 5, 5, 5, 75, 200}},
	{"The Blessed Brew - Celeste", Preset{30, 15, 4, 4, 4, 10, 10, 10, 100, 300}},
	{"The Vampyre Lounge - The Pit", Preset{30, 15, 4, 4, 4, 10, 10, 10, 100, 300}},
	{"The Laughing Monk - Evermorn Island", Preset{20, 10, 5, 5, 5, 25, 25, 25, 150, 400}},
	{"Fortune's Folly - Nighon", Preset{20, 10, 1, 1, 1, 15, 15, 15, 200, 500}},
	{"Miner's Only - Barrow Downs", Preset{20, 50, 1, 1, 5, 5, 5, 25, 100, 300}},
	{"The Loyal Mercenary - Tatalia", Preset{10, 20, 3, 1, 2, 15, 5, 10, 125, 350}},
	{"The Potted Pixie - Avlee", Preset{10, 20, 3, 1, 2, 15, 5, 10, 125, 350}},
	{"Grogg's Grog - Stone City", Preset{50, 50, 5, 3, 5, 20, 10, 20, 100, 300}},
}

// DefaultPreset returns the "Default" settings.
func DefaultPreset() Preset { return builtinPresets[0].Preset }

// Presets returns the built-in presets in menu order.
func Presets() []NamedPreset {
	return append([]NamedPreset(nil), builtinPresets...)
}

// PresetByName looks up a built-in preset.
func PresetByName(name string) (Preset, bool) {
	for _, p := range builtinPresets {
		if p.Name == name {
			return p.Preset, true
		}
	}
	return Preset{}, false
}

// PresetName returns the name of the built-in preset equal to p, or
// CustomPresetName.
func PresetName(p Preset) string {
	for _, np := range builtinPresets {
		if np.Preset == p {
			return np.Name
		}
	}
	return CustomPresetName
}

// ValidatePreset clamps every field into its allowed range. The starting
// tower always stays below the tower victory threshold.
func ValidatePreset(p Preset) Preset {
	p.TowerVictory = clamp(p.TowerVictory, 30, 999)
	p.Tower = clamp(p.Tower, 5, min(50, p.TowerVictory-1))
	p.Wall = clamp(p.Wall, 0, 50)
	p.Quarries = clamp(p.Quarries, 1, 5)
	p.Magic = clamp(p.Magic, 1, 5)
	p.Dungeons = clamp(p.Dungeons, 1, 5)
	p.Bricks = clamp(p.Bricks, 0, 50)
	p.Gems = clamp(p.Gems, 0, 50)
	p.Recruits = clamp(p.Recruits, 0, 50)
	p.ResourceVictory = clamp(p.ResourceVictory, 100, 999)
	return p
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

// Params returns the starting params both players receive.
func (p Preset) Params() Params {
	return Params{
		Bricks:   p.Bricks,
		Gems:     p.Gems,
		Recruits: p.Recruits,
		Quarries: p.Quarries,
		Magic:    p.Magic,
		Dungeons: p.Dungeons,
		Tower:    p.Tower,
		Wall:     p.Wall,
	}
}

// Victory returns the preset's win thresholds.
func (p Preset) Victory() VictoryConditions {
	return VictoryConditions{Tower: p.TowerVictory, Resource: p.ResourceVictory}
}

// ParsePresets parses YAML preset data. Every preset is validated.
func ParsePresets(data []byte) ([]NamedPreset, error) {
	var pf PresetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse preset YAML: %w", err)
	}
	out := make([]NamedPreset, 0, len(pf.Presets))
	for i, np := range pf.Presets {
		if np.Name == "" {
			return nil, fmt.Errorf("preset %d has no name", i+1)
		}
		np.Preset = ValidatePreset(np.Preset)
		out = append(out, np)
	}
	return out, nil
}

// LoadPresetFile reads presets from a YAML file.
func LoadPresetFile(path string) ([]NamedPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data)
}

// ResolvePreset finds name among extra presets first, then the built-ins.
func ResolvePreset(name string, extra []NamedPreset) (Preset, bool) {
	for _, np := range extra {
		if np.Name == name {
			return np.Preset, true
		}
	}
	return PresetByName(name)
}
