package domain

// Event types published on the bus
const (
	EventAdventureStarted  = "adventure.started"
	EventAdventureResolved = "adventure.resolved"
	EventAdventureExpired  = "adventure.expired"
	EventCharacterLevelUp  = "character.level_up"
	EventCharacterRebirth  = "character.rebirth"
)

// SetBonus is one tier of a set's bonus table. A nil multiplier leaves that
// multiplier alone; an explicit value, including 0, shifts it by value-1.
type SetBonus struct {
	Parts    int      `json:"parts" validate:"gte=1"`
	Stats    Stats    `json:"stats"`
	StatMult *float64 `json:"statmult,omitempty"`
	XPMult   *float64 `json:"xpmult,omitempty"`
	CPMult   *float64 `json:"cpmult,omitempty"`
}

// SetDefinition is the canonical data for a named set
type SetDefinition struct {
	Name    string     `json:"name" validate:"required"`
	Parts   int        `json:"parts" validate:"gte=1"`
	Bonuses []SetBonus `json:"bonuses" validate:"dive"`
	Pieces  []SetPiece `json:"pieces" validate:"required,dive"`
}

// SetPiece is one item of a set as defined in content
type SetPiece struct {
	Name  string `json:"name" validate:"required"`
	Slots []Slot `json:"slot" validate:"required,min=1,max=2"`
	Stats Stats  `json:"stats"`
}

// ActiveBonus is the resolved effect of all active set tiers
type ActiveBonus struct {
	Stats    Stats   `json:"stats"`
	StatMult float64 `json:"statmult"`
	XPMult   float64 `json:"xpmult"`
	CPMult   float64 `json:"cpmult"`
}

// NeutralBonus is the bonus of a character with no active sets
func NeutralBonus() ActiveBonus {
	return ActiveBonus{StatMult: 1, XPMult: 1, CPMult: 1}
}
