package combat

import (
	"math/rand"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

// NoteKind tags a narration-worthy event during resolution
type NoteKind string

const (
	NoteFumble   NoteKind = "fumble"
	NoteCrit     NoteKind = "crit"
	NoteBonus    NoteKind = "bonus"
	NoteSaved    NoteKind = "ability_saved"
	NoteBackfire NoteKind = "backfire"
	NoteBlessing NoteKind = "blessing"
	NoteRan      NoteKind = "ran"
	NoteGate     NoteKind = "gate_failed"
)

// Note is a single narration line for the UI layer
type Note struct {
	UserID string        `json:"user_id,omitempty"`
	Action domain.Action `json:"action,omitempty"`
	Kind   NoteKind      `json:"kind"`
	Amount float64       `json:"amount,omitempty"`
}

// Input is everything one resolution reads
type Input struct {
	Session *domain.Session
	// Fighters is keyed by user id; participants without an entry fight with zero stats
	Fighters map[string]Fighter
}

// Outcome is the structured result of a resolution
type Outcome struct {
	Rosters map[domain.Action][]string `json:"rosters"`

	Attack    float64 `json:"attack"`
	Magic     float64 `json:"magic"`
	Diplomacy float64 `json:"diplomacy"`
	HP        float64 `json:"hp"`
	Dipl      float64 `json:"dipl"`

	Slain      bool `json:"slain"`
	Persuaded  bool `json:"persuaded"`
	Success    bool `json:"success"`
	GateFailed bool `json:"gate_failed"`

	Fumbled map[string]bool `json:"fumbled"`
	Crits   map[string]bool `json:"crits"`

	// ClearedAmount is hp, dipl or both, depending on what was cleared
	ClearedAmount float64 `json:"cleared_amount"`
	RewardAmount  float64 `json:"reward_amount"`

	Rewarded  []string                   `json:"rewarded"`
	Penalized []string                   `json:"penalized"`
	Chests    map[string]domain.Treasure `json:"chests,omitempty"`

	Notes []Note `json:"notes,omitempty"`
}

// Participants returns everyone left on a roster after de-duplication
func (o Outcome) Participants() []string {
	var out []string
	for _, a := range domain.AllActions {
		out = append(out, o.Rosters[a]...)
	}
	return out
}

// AnyCrit reports whether some participant rolled a crit
func (o Outcome) AnyCrit() bool {
	return len(o.Crits) > 0
}

// Resolver runs the combat pass. It holds no state besides the rng.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve runs run, gate, pray, talk, then fight and magic
func (r *Resolver) Resolve(in Input) Outcome {
	s := in.Session
	out := Outcome{
		Rosters: dedupe(s.Rosters),
		HP:      s.Monster.EffectiveHP(),
		Dipl:    s.Monster.EffectiveDipl(),
		Fumbled: make(map[string]bool),
		Crits:   make(map[string]bool),
	}
	fighter := func(id string) Fighter {
		if f, ok := in.Fighters[id]; ok {
			return f
		}
		return Fighter{UserID: id}
	}

	for _, id := range out.Rosters[domain.ActionRun] {
		out.Notes = append(out.Notes, Note{UserID: id, Action: domain.ActionRun, Kind: NoteRan})
	}

	if s.Miniboss && s.Monster.Template.Miniboss != nil {
		if !gatePasses(*s.Monster.Template.Miniboss, s, out.Participants(), fighter) {
			out.GateFailed = true
			out.Notes = append(out.Notes, Note{Kind: NoteGate})
		}
	}

	r.pray(&out, fighter)
	r.contest(&out, talkSpec(), fighter, &out.Diplomacy)
	r.contest(&out, fightSpec(s.Monster), fighter, &out.Attack)
	r.contest(&out, magicSpec(s.Monster), fighter, &out.Magic)

	out.Attack = max(out.Attack, 0)
	out.Magic = max(out.Magic, 0)
	out.Diplomacy = max(out.Diplomacy, 0)

	out.Slain, out.Persuaded, out.Success = Judge(out.Attack, out.Magic, out.Diplomacy, out.HP, out.Dipl, out.GateFailed)

	if out.Success {
		out.ClearedAmount = cleared(out)
		out.RewardAmount = RewardAmount(s.Monster.StatMultiplier, out.ClearedAmount, len(out.Participants()))
		out.Rewarded = rewarded(out)
		out.Chests = r.chests(out, s.Boss, s.Miniboss)
	} else {
		out.Penalized = out.Participants()
	}
	return out
}

// Judge applies the outcome rule to accumulated totals
func Judge(attack, magic, diplomacy, hp, dipl float64, gateFailed bool) (slain, persuaded, success bool) {
	slain = attack+magic >= hp
	persuaded = diplomacy >= dipl
	success = (slain || persuaded) && !gateFailed
	return slain, persuaded, success
}

// RewardAmount is the pool shared by the rewarded participants
func RewardAmount(statMultiplier, clearedAmount float64, participants int) float64 {
	if statMultiplier <= 0 {
		statMultiplier = 1
	}
	return statMultiplier * clearedAmount * (1 + participantRewardBonus*float64(participants))
}

// pray applies prayers to every other roster, scaled by roster size
func (r *Resolver) pray(out *Outcome, fighter func(string) Fighter) {
	fightN := float64(len(out.Rosters[domain.ActionFight]))
	talkN := float64(len(out.Rosters[domain.ActionTalk]))
	magicN := float64(len(out.Rosters[domain.ActionMagic]))

	apply := func(amount float64) {
		out.Attack += amount * fightN
		out.Diplomacy += amount * talkN
		out.Magic += amount * magicN
	}

	for _, id := range out.Rosters[domain.ActionPray] {
		f := fighter(id)
		scale := rebirthScale(f.Rebirths)

		if !f.Class.Is(domain.ClassCleric) {
			if utils.RandomInt(r.rng, 1, prayerDie) == prayerLuckyRoll {
				amount := prayerFlatBonus * scale
				apply(amount)
				out.Notes = append(out.Notes, Note{UserID: id, Action: domain.ActionPray, Kind: NoteBlessing, Amount: amount})
			} else {
				out.Fumbled[id] = true
				out.Notes = append(out.Notes, Note{UserID: id, Action: domain.ActionPray, Kind: NoteFumble})
			}
			continue
		}

		roll, maxRoll := r.roll(f, f.Stats.MainStat())
		if roll == fumbleRoll {
			amount := prayerBackfire * scale
			apply(-amount)
			out.Notes = append(out.Notes, Note{UserID: id, Action: domain.ActionPray, Kind: NoteBackfire, Amount: amount})
			continue
		}
		if roll == maxRoll {
			out.Crits[id] = true
		}
		base := roll / prayerWeakDivide
		if f.Class.AbilityActive() {
			base = roll
		}
		amount := float64(base) * scale
		apply(amount)
		out.Notes = append(out.Notes, Note{UserID: id, Action: domain.ActionPray, Kind: NoteBlessing, Amount: amount})
	}
}

// contest rolls every member of spec's roster and accumulates into total.
// Fumbles are evicted from the roster.
func (r *Resolver) contest(out *Outcome, spec actionSpec, fighter func(string) Fighter, total *float64) {
	kept := make([]string, 0, len(out.Rosters[spec.action]))
	for _, id := range out.Rosters[spec.action] {
		res := r.attempt(spec, fighter(id))
		switch {
		case res.Fumbled:
			out.Fumbled[id] = true
			out.Notes = append(out.Notes, Note{UserID: id, Action: spec.action, Kind: NoteFumble})
			continue
		case res.Saved:
			out.Notes = append(out.Notes, Note{UserID: id, Action: spec.action, Kind: NoteSaved, Amount: res.Value})
		case res.Crit:
			out.Crits[id] = true
			out.Notes = append(out.Notes, Note{UserID: id, Action: spec.action, Kind: NoteCrit, Amount: res.Value})
		}
		*total += res.Value
		kept = append(kept, id)
	}
	out.Rosters[spec.action] = kept
}

func gatePasses(gate domain.MinibossGate, s *domain.Session, participants []string, fighter func(string) Fighter) bool {
	if gate.MinParticipants > 0 && len(participants) < gate.MinParticipants {
		return false
	}
	if gate.Reaction != "" && !s.Reacted[gate.Reaction] {
		return false
	}
	if gate.RequiredItem != "" && !anyFighter(participants, fighter, func(f Fighter) bool { return f.wears(gate.RequiredItem) }) {
		return false
	}
	if gate.RequiredSet != "" && !anyFighter(participants, fighter, func(f Fighter) bool { return f.hasSetPiece(gate.RequiredSet) }) {
		return false
	}
	return true
}

func anyFighter(ids []string, fighter func(string) Fighter, pred func(Fighter) bool) bool {
	for _, id := range ids {
		if pred(fighter(id)) {
			return true
		}
	}
	return false
}

func cleared(out Outcome) float64 {
	var amount float64
	if out.Slain {
		amount += out.HP
	}
	if out.Persuaded {
		amount += out.Dipl
	}
	return amount
}

// rewarded is the cleared rosters plus prayers, minus fumbles and runners
func rewarded(out Outcome) []string {
	var actions []domain.Action
	if out.Slain {
		actions = append(actions, domain.ActionFight, domain.ActionMagic)
	}
	if out.Persuaded {
		actions = append(actions, domain.ActionTalk)
	}
	actions = append(actions, domain.ActionPray)

	seen := make(map[string]bool)
	var ids []string
	for _, a := range actions {
		for _, id := range out.Rosters[a] {
			if seen[id] || out.Fumbled[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// dedupe copies rosters, keeping each participant once in the first roster
// they appear in
func dedupe(rosters map[domain.Action][]string) map[domain.Action][]string {
	seen := make(map[string]bool)
	out := make(map[domain.Action][]string, len(domain.AllActions))
	for _, a := range domain.AllActions {
		ids := make([]string, 0, len(rosters[a]))
		for _, id := range rosters[a] {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		out[a] = ids
	}
	return out
}
