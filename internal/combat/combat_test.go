package combat

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/utils"
)

func scaledMonster(hp, dipl int) domain.ScaledMonster {
	return domain.ScaledMonster{
		Template:       domain.Monster{Name: "Goblin", HP: hp, Dipl: dipl, PDef: 1, MDef: 1},
		Attribute:      domain.Attribute{Name: "plain", HPMult: 1, DiplMult: 1},
		HP:             hp,
		Dipl:           dipl,
		PDef:           1,
		MDef:           1,
		StatMultiplier: 1,
	}
}

func newSession(m domain.ScaledMonster, rosters map[domain.Action][]string) *domain.Session {
	s := domain.NewSession("group-1", "starter", m, time.Minute, time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC))
	for a, ids := range rosters {
		s.Rosters[a] = ids
	}
	return s
}

// steady never fumbles: dexterity 10 lifts the die floor to 2
func steady(id string) Fighter {
	return Fighter{
		UserID: id,
		Stats:  domain.Stats{Attack: 10, Charisma: 10, Intelligence: 10, Dexterity: 10},
		Class:  domain.DefaultHeroClass(),
	}
}

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return out
}

func TestJudge(t *testing.T) {
	tests := []struct {
		name                     string
		attack, magic, diplomacy float64
		hp, dipl                 float64
		gateFailed               bool
		wantSlain, wantPersuaded bool
		wantSuccess              bool
	}{
		{"slain by combined damage", 60, 40, 10, 100, 50, false, true, false, true},
		{"persuaded only", 0, 0, 50, 100, 50, false, false, true, true},
		{"both cleared", 100, 0, 50, 100, 50, false, true, true, true},
		{"neither", 10, 10, 10, 100, 50, false, false, false, false},
		{"gate failure overrides totals", 100, 100, 100, 100, 50, true, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slain, persuaded, success := Judge(tt.attack, tt.magic, tt.diplomacy, tt.hp, tt.dipl, tt.gateFailed)
			assert.Equal(t, tt.wantSlain, slain)
			assert.Equal(t, tt.wantPersuaded, persuaded)
			assert.Equal(t, tt.wantSuccess, success)
		})
	}
}

func TestRewardAmount(t *testing.T) {
	assert.InDelta(t, 300.0, RewardAmount(2, 100, 2), 1e-9)
	assert.InDelta(t, 125.0, RewardAmount(1, 100, 1), 1e-9)
	assert.InDelta(t, 125.0, RewardAmount(0, 100, 1), 1e-9, "zero multiplier defaults to one")
}

func TestPenalty(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		dexterity int
		want      int64
	}{
		{"no dexterity uses the raw rate", 1000, 0, 200},
		{"low dexterity floors at three", 1000, 1, 66},
		{"high dexterity divides", 1000, 4, 50},
		{"negative dexterity increases the penalty", 1000, -2, 400},
		{"minus one is neutral", 1000, -1, 200},
		{"empty balance", 0, 0, 0},
		{"capped", 100_000_000_000, 0, 1_000_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Penalty(tt.balance, tt.dexterity)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, tt.balance)
		})
	}
}

func TestRollModel(t *testing.T) {
	assert.Equal(t, 20, MaxRoll(0))
	assert.Equal(t, 20, MaxRoll(14))
	assert.Equal(t, 50, MaxRoll(15))

	assert.Equal(t, 1, Modifier(domain.Stats{Dexterity: 10}, 0, 20))
	assert.Equal(t, 1, Modifier(domain.Stats{Luck: 8}, 40, 20), "(8+2)/10 rounds to one")
	assert.Equal(t, 15, Modifier(domain.Stats{Dexterity: 1000}, 0, 20), "bounded by max roll headroom")
	assert.Equal(t, 45, Modifier(domain.Stats{Dexterity: 10000}, 0, 50), "hard cap")
	assert.Equal(t, 0, Modifier(domain.Stats{Dexterity: -50, Luck: -50}, 0, 20))

	r := NewResolver(utils.NewRand(7))
	f := Fighter{Stats: domain.Stats{Dexterity: 50}}
	for i := 0; i < 200; i++ {
		roll, maxRoll := r.roll(f, 0)
		assert.Equal(t, 20, maxRoll)
		assert.GreaterOrEqual(t, roll, 6)
		assert.LessOrEqual(t, roll, 20)
	}
}

func TestAttempt_DefenseFloor(t *testing.T) {
	f := Fighter{Stats: domain.Stats{Attack: 20, Dexterity: 50}}
	valueAt := func(pdef float64) float64 {
		r := NewResolver(utils.NewRand(12))
		a := r.attempt(fightSpec(domain.ScaledMonster{PDef: pdef}), f)
		require.False(t, a.Fumbled)
		return a.Value
	}

	floored := valueAt(minDefense)
	tests := []struct {
		name string
		pdef float64
		want float64
	}{
		{"zero uses floor", 0, floored},
		{"below floor uses floor", 0.3, floored},
		{"full defense halves floored value", 1, floored / 2},
		{"double defense", 2, floored / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, valueAt(tt.pdef), 1e-9)
		})
	}

	talk := NewResolver(utils.NewRand(12)).attempt(talkSpec(), Fighter{Stats: domain.Stats{Charisma: 20, Dexterity: 50}})
	assert.InDelta(t, floored*minDefense, talk.Value, 1e-9, "talk is never divided")
}

func TestRoll_PetCritForcesMax(t *testing.T) {
	r := NewResolver(utils.NewRand(3))
	f := Fighter{
		Class: domain.HeroClass{Name: domain.ClassRanger, Pet: &domain.Pet{Name: "hawk", Crit: 100}},
	}
	for i := 0; i < 50; i++ {
		roll, maxRoll := r.roll(f, 0)
		assert.Equal(t, maxRoll, roll)
	}

	// pets only matter for rangers
	f.Class.Name = domain.ClassHero
	seenLow := false
	for i := 0; i < 200; i++ {
		if roll, maxRoll := r.roll(f, 0); roll < maxRoll {
			seenLow = true
		}
	}
	assert.True(t, seenLow)
}

func TestResolve_SlainNotPersuaded(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		r := NewResolver(utils.NewRand(seed))
		s := newSession(scaledMonster(10, 1_000_000), map[domain.Action][]string{
			domain.ActionFight: {"a"},
			domain.ActionMagic: {"b"},
			domain.ActionTalk:  {"c"},
			domain.ActionRun:   {"d"},
		})
		out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{
			"a": steady("a"), "b": steady("b"), "c": steady("c"), "d": steady("d"),
		}})

		require.GreaterOrEqual(t, out.Attack+out.Magic, out.HP, "seed %d", seed)
		require.Less(t, out.Diplomacy, out.Dipl)
		assert.True(t, out.Success)
		assert.True(t, out.Slain)
		assert.False(t, out.Persuaded)
		assert.False(t, out.GateFailed)

		assert.ElementsMatch(t, []string{"a", "b"}, out.Rewarded, "talkers and runners get nothing")
		assert.Empty(t, out.Penalized)
		assert.InDelta(t, 10*(1+0.25*4), out.RewardAmount, 1e-9)
		assert.InDelta(t, 10.0, out.ClearedAmount, 1e-9)
		assert.Len(t, out.Chests, 2)
	}
}

func TestResolve_FailurePenalizesEveryone(t *testing.T) {
	r := NewResolver(utils.NewRand(11))
	s := newSession(scaledMonster(1_000_000, 1_000_000), map[domain.Action][]string{
		domain.ActionFight: {"a"},
		domain.ActionPray:  {"p"},
		domain.ActionRun:   {"d"},
	})
	out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{"a": steady("a"), "d": steady("d")}})

	assert.False(t, out.Success)
	assert.Empty(t, out.Rewarded)
	assert.Zero(t, out.RewardAmount)
	assert.ElementsMatch(t, []string{"a", "p", "d"}, out.Penalized)
}

func TestResolve_MinibossGate(t *testing.T) {
	gated := func(gate domain.MinibossGate) domain.ScaledMonster {
		m := scaledMonster(1, 1_000_000)
		m.Template.Name = "Basilisk"
		m.Template.Miniboss = &gate
		return m
	}

	blade := steady("a")
	blade.Equipped = []string{"Anvil Blade"}
	blade.Sets = []string{"Anvil"}

	tests := []struct {
		name     string
		gate     domain.MinibossGate
		reacted  map[string]bool
		wantFail bool
	}{
		{"too few participants", domain.MinibossGate{MinParticipants: 3}, nil, true},
		{"enough participants", domain.MinibossGate{MinParticipants: 2}, nil, false},
		{"missing reaction", domain.MinibossGate{Reaction: "shield"}, nil, true},
		{"reaction present", domain.MinibossGate{Reaction: "shield"}, map[string]bool{"shield": true}, false},
		{"required item worn", domain.MinibossGate{RequiredItem: "anvil blade"}, nil, false},
		{"required item missing", domain.MinibossGate{RequiredItem: "Mirror Shield"}, nil, true},
		{"required set worn", domain.MinibossGate{RequiredSet: "Anvil"}, nil, false},
		{"required set missing", domain.MinibossGate{RequiredSet: "Shadow Walker"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(utils.NewRand(5))
			s := newSession(gated(tt.gate), map[domain.Action][]string{
				domain.ActionFight: {"a"},
				domain.ActionRun:   {"b"},
			})
			for k, v := range tt.reacted {
				s.Reacted[k] = v
			}
			out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{"a": blade, "b": steady("b")}})

			assert.True(t, out.Slain)
			assert.Equal(t, tt.wantFail, out.GateFailed)
			assert.Equal(t, !tt.wantFail, out.Success)
			if !tt.wantFail {
				assert.GreaterOrEqual(t, out.Chests["a"].Get(domain.ChestEpic), 1)
			}
		})
	}
}

func TestResolve_FumblesAreEvictedAndUnrewarded(t *testing.T) {
	r := NewResolver(utils.NewRand(21))
	talkers := ids("t", 200)
	s := newSession(scaledMonster(1_000_000, 1), map[domain.Action][]string{domain.ActionTalk: talkers})
	out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{}})

	require.NotEmpty(t, out.Fumbled)
	assert.True(t, out.Persuaded)
	for id := range out.Fumbled {
		assert.NotContains(t, out.Rosters[domain.ActionTalk], id)
		assert.NotContains(t, out.Rewarded, id)
	}
	assert.Len(t, out.Rewarded, len(talkers)-len(out.Fumbled))
}

func TestResolve_AbilitySavesFumbles(t *testing.T) {
	r := NewResolver(utils.NewRand(9))
	fighters := make(map[string]Fighter)
	roster := ids("b", 200)
	for _, id := range roster {
		fighters[id] = Fighter{
			UserID: id,
			Stats:  domain.Stats{Attack: 10},
			Class:  domain.HeroClass{Name: domain.ClassBerserker, Ability: true},
		}
	}
	s := newSession(scaledMonster(1_000_000, 1_000_000), map[domain.Action][]string{domain.ActionFight: roster})
	out := r.Resolve(Input{Session: s, Fighters: fighters})

	assert.Empty(t, out.Fumbled)
	assert.Len(t, out.Rosters[domain.ActionFight], len(roster))

	saved := 0
	for _, n := range out.Notes {
		if n.Kind == NoteSaved {
			saved++
			assert.InDelta(t, 5.0, n.Amount, 1e-9)
		}
	}
	assert.Positive(t, saved)
}

func TestResolve_DedupesRosters(t *testing.T) {
	r := NewResolver(utils.NewRand(1))
	s := newSession(scaledMonster(1, 1_000_000), map[domain.Action][]string{
		domain.ActionFight: {"a", "a"},
		domain.ActionMagic: {"a", "b"},
	})
	out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{"a": steady("a"), "b": steady("b")}})

	assert.Equal(t, []string{"a"}, out.Rosters[domain.ActionFight])
	assert.Equal(t, []string{"b"}, out.Rosters[domain.ActionMagic])
	assert.Len(t, out.Participants(), 2)
	// the session itself is left untouched
	assert.Equal(t, []string{"a", "a"}, s.Rosters[domain.ActionFight])
}

func TestResolve_PetCritGrantsChest(t *testing.T) {
	r := NewResolver(utils.NewRand(4))
	ranger := steady("r")
	ranger.Class = domain.HeroClass{Name: domain.ClassRanger, Pet: &domain.Pet{Name: "hawk", Crit: 100}}
	s := newSession(scaledMonster(1, 1_000_000), map[domain.Action][]string{
		domain.ActionFight: {"r", "a"},
	})
	out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{"r": ranger, "a": steady("a")}})

	require.True(t, out.Success)
	assert.True(t, out.Crits["r"])
	for _, id := range []string{"r", "a"} {
		assert.GreaterOrEqual(t, out.Chests[id].Get(domain.ChestNormal), 1, id)
	}
}

func TestResolve_BossDropsLegendary(t *testing.T) {
	r := NewResolver(utils.NewRand(8))
	m := scaledMonster(1, 1_000_000)
	m.Template.Boss = true
	s := newSession(m, map[domain.Action][]string{domain.ActionFight: {"a"}})
	out := r.Resolve(Input{Session: s, Fighters: map[string]Fighter{"a": steady("a")}})

	require.True(t, out.Success)
	assert.Equal(t, 1, out.Chests["a"].Get(domain.ChestLegendary))
}

func TestPray(t *testing.T) {
	t.Run("cleric blessing scales by roster size", func(t *testing.T) {
		r := NewResolver(utils.NewRand(2))
		cleric := steady("c")
		cleric.Class = domain.HeroClass{Name: domain.ClassCleric, Ability: true}
		out := Outcome{
			Rosters: map[domain.Action][]string{
				domain.ActionFight: {"a", "b"},
				domain.ActionPray:  {"c"},
			},
			Fumbled: map[string]bool{},
			Crits:   map[string]bool{},
		}
		r.pray(&out, func(string) Fighter { return cleric })

		require.Len(t, out.Notes, 1)
		assert.Equal(t, NoteBlessing, out.Notes[0].Kind)
		assert.GreaterOrEqual(t, out.Notes[0].Amount, 2.0)
		assert.InDelta(t, out.Notes[0].Amount*2, out.Attack, 1e-9)
		assert.Zero(t, out.Diplomacy)
	})

	t.Run("non-clerics bless or fumble", func(t *testing.T) {
		r := NewResolver(utils.NewRand(12))
		prayers := ids("p", 100)
		out := Outcome{
			Rosters: map[domain.Action][]string{
				domain.ActionTalk: {"t"},
				domain.ActionPray: prayers,
			},
			Fumbled: map[string]bool{},
			Crits:   map[string]bool{},
		}
		r.pray(&out, func(id string) Fighter { return Fighter{UserID: id} })

		blessed := 0
		for _, n := range out.Notes {
			if n.Kind == NoteBlessing {
				blessed++
				assert.InDelta(t, 5.0, n.Amount, 1e-9)
			}
		}
		assert.Equal(t, len(prayers), blessed+len(out.Fumbled))
		assert.InDelta(t, float64(blessed)*5, out.Diplomacy, 1e-9)
	})
}

func TestChestDrop(t *testing.T) {
	r := NewResolver(utils.NewRand(6))
	for i := 0; i < 100; i++ {
		high := r.chestDrop(800, false, false, false)
		assert.Equal(t, 1, high.Get(domain.ChestRare))
		assert.Zero(t, high.Get(domain.ChestLegendary))

		low := r.chestDrop(100, false, false, false)
		assert.LessOrEqual(t, low.Total(), 1)
		assert.Equal(t, low.Total(), low.Get(domain.ChestNormal))

		mid := r.chestDrop(600, true, false, false)
		assert.Equal(t, 2, mid.Total(), "crit chest plus one mid tier chest")
	}
}
