package game

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePresetMin(t *testing.T) {
	got := ValidatePreset(Preset{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1})
	want := Preset{
		Tower: 5, Wall: 0,
		Quarries: 1, Magic: 1, Dungeons: 1,
		Bricks: 0, Gems: 0, Recruits: 0,
		TowerVictory: 30, ResourceVictory: 100,
	}
	if got != want {
		t.Errorf("ValidatePreset = %+v, want %+v", got, want)
	}
}

func TestValidatePresetMax(t *testing.T) {
	m := math.MaxInt
	got := ValidatePreset(Preset{m, m, m, m, m, m, m, m, m, m})
	want := Preset{
		Tower: 50, Wall: 50,
		Quarries: 5, Magic: 5, Dungeons: 5,
		Bricks: 50, Gems: 50, Recruits: 50,
		TowerVictory: 999, ResourceVictory: 999,
	}
	if got != want {
		t.Errorf("ValidatePreset = %+v, want %+v", got, want)
	}
}

func TestValidatePresetTowerBelowVictory(t *testing.T) {
	got := ValidatePreset(Preset{Tower: 50, TowerVictory: 40})
	if got.Tower != got.TowerVictory-1 {
		t.Errorf("tower = %d, want %d", got.Tower, got.TowerVictory-1)
	}
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	presets := Presets()
	if len(presets) != 14 {
		t.Errorf("got %d presets, want 14", len(presets))
	}
	for _, np := range presets {
		if v := ValidatePreset(np.Preset); v != np.Preset {
			t.Errorf("%s is out of range: %+v", np.Name, np.Preset)
		}
		if PresetName(np.Preset) == CustomPresetName {
			t.Errorf("%s not recognized by PresetName", np.Name)
		}
	}

	if DefaultPreset() != presets[0].Preset || presets[0].Name != "Default" {
		t.Error("the first preset should be Default")
	}

	custom := DefaultPreset()
	custom.Wall = 49
	if got := PresetName(custom); got != CustomPresetName {
		t.Errorf("PresetName(custom) = %q", got)
	}
}

func TestPresetParams(t *testing.T) {
	p, ok := PresetByName("Grogg's Grog - Stone City")
	if !ok {
		t.Fatal("preset not found")
	}
	params := p.Params()
	if params.Tower != 50 || params.Wall != 50 || params.Quarries != 5 || params.Gems != 10 {
		t.Errorf("params = %+v", params)
	}
	if params.IsActive || params.IsWinner || params.IsDiscardMode {
		t.Error("preset params must not carry flags")
	}
	if v := p.Victory(); v != (VictoryConditions{Tower: 100, Resource: 300}) {
		t.Errorf("victory = %+v", v)
	}
}

const presetYAML = `
presets:
  - name: Quick
    tower: 10
    wall: 5
    quarries: 3
    magic: 3
    dungeons: 3
    bricks: 15
    gems: 15
    recruits: 15
    tower_victory: 40
    resource_victory: 120
  - name: Wild
    tower: 500
    wall: 0
    quarries: 9
    magic: 1
    dungeons: 1
    bricks: 0
    gems: 0
    recruits: 0
    tower_victory: 60
    resource_victory: 100
`

func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets([]byte(presetYAML))
	if err != nil {
		t.Fatalf("ParsePresets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}

	quick := presets[0]
	want := Preset{10, 5, 3, 3, 3, 15, 15, 15, 40, 120}
	if quick.Name != "Quick" || quick.Preset != want {
		t.Errorf("Quick = %+v, want %+v", quick, want)
	}

	wild := presets[1].Preset
	if wild.Tower != 50 || wild.Quarries != 5 {
		t.Errorf("Wild should be clamped, got %+v", wild)
	}

	if p, ok := ResolvePreset("Quick", presets); !ok || p != want {
		t.Errorf("ResolvePreset(Quick) = %+v, %v", p, ok)
	}
	if p, ok := ResolvePreset("Default", presets); !ok || p != DefaultPreset() {
		t.Errorf("ResolvePreset(Default) = %+v, %v", p, ok)
	}
	if _, ok := ResolvePreset("Nowhere", presets); ok {
		t.Error("ResolvePreset should miss an unknown name")
	}
}

func TestParsePresetsErrors(t *testing.T) {
	if _, err := ParsePresets([]byte("presets: [")); err == nil {
		t.Error("expected a YAML error")
	}
	if _, err := ParsePresets([]byte("presets:\n  - tower: 10\n")); err == nil {
		t.Error("expected an error for an unnamed preset")
	}
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(presetYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresetFile(path)
	if err != nil {
		t.Fatalf("LoadPresetFile: %v", err)
	}
	if len(presets) != 2 {
		t.Errorf("got %d presets, want 2", len(presets))
	}

	if _, err := LoadPresetFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
