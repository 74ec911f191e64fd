package game

// ParamsDiff holds only the params that changed. A nil field is unchanged.
type ParamsDiff struct {
	IsActive      *bool `json:"isActive,omitempty"`
	IsWinner      *bool `json:"isWinner,omitempty"`
	IsDiscardMode *bool `json:"isDiscardMode,omitempty"`
	Bricks        *int  `json:"bricks,omitempty"`
	Gems          *int  `json:"gems,omitempty"`
	Recruits      *int  `json:"recruits,omitempty"`
	Quarries      *int  `json:"quarries,omitempty"`
	Magic         *int  `json:"magic,omitempty"`
	Dungeons      *int  `json:"dungeons,omitempty"`
	Tower         *int  `json:"tower,omitempty"`
	Wall          *int  `json:"wall,omitempty"`
}

// Diff returns the fields of after that differ from before.
func Diff(before, after Params) ParamsDiff {
	var d ParamsDiff
	d.IsActive = diffBool(before.IsActive, after.IsActive)
	d.IsWinner = diffBool(before.IsWinner, after.IsWinner)
	d.IsDiscardMode = diffBool(before.IsDiscardMode, after.IsDiscardMode)
	for _, s := range Stats {
		if v := diffInt(before.Get(s), after.Get(s)); v != nil {
			*d.field(s) = v
		}
	}
	return d
}

// IsEmpty reports whether nothing changed.
func (d ParamsDiff) IsEmpty() bool {
	return d == ParamsDiff{}
}

// ApplyTo merges the changed fields into p.
func (d ParamsDiff) ApplyTo(p *Params) {
	if d.IsActive != nil {
		p.IsActive = *d.IsActive
	}
	if d.IsWinner != nil {
		p.IsWinner = *d.IsWinner
	}
	if d.IsDiscardMode != nil {
		p.IsDiscardMode = *d.IsDiscardMode
	}
	for _, s := range Stats {
		if v := *d.field(s); v != nil {
			p.set(s, *v)
		}
	}
}

func (d *ParamsDiff) field(s Stat) **int {
	switch s {
	case StatBricks:
		return &d.Bricks
	case StatGems:
		return &d.Gems
	case StatRecruits:
		return &d.Recruits
	case StatQuarries:
		return &d.Quarries
	case StatMagic:
		return &d.Magic
	case StatDungeons:
		return &d.Dungeons
	case StatTower:
		return &d.Tower
	default:
		return &d.Wall
	}
}

func diffBool(a, b bool) *bool {
	if a == b {
		return nil
	}
	return &b
}

func diffInt(a, b int) *int {
	if a == b {
		return nil
	}
	return &b
}
