package match

import "github.com/peterkuimelis/arcomage/internal/game"

// Event is something the view asks the match to do.
type Event interface {
	isEvent()
}

// CardEvent plays or discards a card from the view's hand.
type CardEvent struct {
	Move game.Move
}

// RestartEvent starts a new match with the current settings.
type RestartEvent struct{}

// SettingsEvent stores a new preset and restarts.
type SettingsEvent struct {
	Preset game.Preset
}

func (CardEvent) isEvent()     {}
func (RestartEvent) isEvent()  {}
func (SettingsEvent) isEvent() {}

// View is the human side of a match. It receives side 0 of every split.
type View interface {
	Init(data game.GameData, preset game.Preset)
	Update(changes game.GameChanges)
	Destroy()
}

// ViewFuncs adapts plain functions to View. Nil fields are no-ops.
type ViewFuncs struct {
	OnInit    func(data game.GameData, preset game.Preset)
	OnUpdate  func(changes game.GameChanges)
	OnDestroy func()
}

func (v ViewFuncs) Init(data game.GameData, preset game.Preset) {
	if v.OnInit != nil {
		v.OnInit(data, preset)
	}
}

func (v ViewFuncs) Update(changes game.GameChanges) {
	if v.OnUpdate != nil {
		v.OnUpdate(changes)
	}
}

func (v ViewFuncs) Destroy() {
	if v.OnDestroy != nil {
		v.OnDestroy()
	}
}
