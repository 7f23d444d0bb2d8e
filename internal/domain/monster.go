package domain

// MinibossGate is the extra condition a miniboss encounter imposes.
// Any non-empty field must be satisfied.
type MinibossGate struct {
	// MinParticipants is the minimum party size
	MinParticipants int `json:"min_participants,omitempty" validate:"gte=0"`
	// Reaction is a marker some participant must have reacted with
	Reaction string `json:"reaction,omitempty"`
	// RequiredItem is an item name some participant must have equipped
	RequiredItem string `json:"required_item,omitempty"`
	// RequiredSet is a set some participant must have a piece of equipped
	RequiredSet string `json:"required_set,omitempty"`
}

// Monster is a static content template
type Monster struct {
	Name     string        `json:"name" validate:"required"`
	HP       int           `json:"hp" validate:"gte=1"`
	Dipl     int           `json:"dipl" validate:"gte=1"`
	PDef     float64       `json:"pdef" validate:"gte=0"`
	MDef     float64       `json:"mdef" validate:"gte=0"`
	Boss     bool          `json:"boss"`
	Miniboss *MinibossGate `json:"miniboss,omitempty"`
	Image    string        `json:"image,omitempty"`
}

// IsSpecial reports boss or miniboss
func (m Monster) IsSpecial() bool {
	return m.Boss || m.Miniboss != nil
}

// Attribute modifies a monster for one encounter, e.g. "strong"
type Attribute struct {
	Name     string  `json:"name" validate:"required"`
	HPMult   float64 `json:"hp" validate:"gt=0"`
	DiplMult float64 `json:"dipl" validate:"gt=0"`
}

// ScaledMonster is a monster after difficulty scaling
type ScaledMonster struct {
	Template  Monster   `json:"template"`
	Attribute Attribute `json:"attribute"`
	HP        int       `json:"hp"`
	Dipl      int       `json:"dipl"`
	PDef      float64   `json:"pdef"`
	MDef      float64   `json:"mdef"`
	// StatMultiplier is the encounter-wide multiplier applied on top of scaling
	StatMultiplier float64 `json:"stat_multiplier"`
	// Title marks empowered encounters, e.g. "Ascended"
	Title string `json:"title,omitempty"`
}

// EffectiveHP is the hit points that must be dealt to slay the monster
func (m ScaledMonster) EffectiveHP() float64 {
	return float64(m.HP) * m.Attribute.HPMult * m.StatMultiplier
}

// EffectiveDipl is the diplomacy that must be reached to persuade it
func (m ScaledMonster) EffectiveDipl() float64 {
	return float64(m.Dipl) * m.Attribute.DiplMult * m.StatMultiplier
}

// DisplayName prefixes the title and attribute, e.g. "Ascended strong Ogre"
func (m ScaledMonster) DisplayName() string {
	name := m.Template.Name
	if m.Attribute.Name != "" {
		name = m.Attribute.Name + " " + name
	}
	if m.Title != "" {
		name = m.Title + " " + name
	}
	return name
}
