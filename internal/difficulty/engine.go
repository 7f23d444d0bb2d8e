package difficulty

import (
	"sync"
)

// Kind is the category an outcome counts towards
type Kind string

const (
	KindAttack Kind = "attack"
	KindTalk   Kind = "talk"
)

// StatType names the monster stat a band applies to
type StatType string

const (
	StatHP   StatType = "hp"
	StatDipl StatType = "talk"
)

// Result is one recorded encounter outcome
type Result struct {
	Kind      Kind    `json:"kind"`
	Amount    float64 `json:"amount"`
	PartySize int     `json:"party_size"`
	Success   bool    `json:"success"`
}

// Range is the target stat band derived from a group's history
type Range struct {
	StatType   StatType `json:"stat_type"`
	MinStat    float64  `json:"min_stat"`
	MaxStat    float64  `json:"max_stat"`
	WinPercent float64  `json:"win_percent"`
}

// Active reports whether the band constrains monster selection
func (r Range) Active() bool {
	return r.MaxStat > 0
}

// Engine tracks recent outcomes per group and derives difficulty bands
type Engine interface {
	Record(groupID string, r Result)
	StatRange(groupID string) Range
	History(groupID string) []Result
	Reset(groupID string)
}

type engine struct {
	mu       sync.RWMutex
	capacity int
	history  map[string][]Result
}

// NewEngine creates an in-memory engine. History is lost on restart.
func NewEngine(capacity int) Engine {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &engine{
		capacity: capacity,
		history:  make(map[string][]Result),
	}
}

// Record appends an outcome, evicting the oldest beyond capacity
func (e *engine) Record(groupID string, r Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := append(e.history[groupID], r)
	if over := len(h) - e.capacity; over > 0 {
		h = append([]Result(nil), h[over:]...)
	}
	e.history[groupID] = h
}

// History returns a copy of the group's outcomes, oldest first
func (e *engine) History(groupID string) []Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Result(nil), e.history[groupID]...)
}

// Reset forgets a group's outcomes
func (e *engine) Reset(groupID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.history, groupID)
}

// StatRange derives the band for a group
func (e *engine) StatRange(groupID string) Range {
	return Compute(e.History(groupID), e.capacity)
}

// Compute derives a band from a history window
func Compute(history []Result, capacity int) Range {
	if len(history) == 0 {
		return Range{StatType: StatHP, WinPercent: NeutralWinPercent}
	}

	var attackSum, talkSum float64
	var attackCount, talkCount int
	var wins, losses float64
	for _, r := range history {
		amount := r.Amount
		if r.PartySize == 1 {
			amount *= SoloInflation
		}
		switch r.Kind {
		case KindTalk:
			talkSum += amount
			talkCount++
		default:
			attackSum += amount
			attackCount++
		}
		if r.Success {
			wins++
		} else {
			losses++
		}
	}

	if wins+losses == 0 {
		wins = float64(capacity) / 2
		losses = float64(capacity) / 2
	}
	winPercent := wins / (wins + losses)

	statType := StatHP
	sum, count := attackSum, attackCount
	if talkSum > attackSum {
		statType = StatDipl
		sum, count = talkSum, talkCount
	}

	var avg float64
	if count > 0 {
		avg = sum / float64(count)
	}

	r := Range{
		StatType:   statType,
		MinStat:    avg * bandMinMult,
		MaxStat:    avg * bandMaxMult,
		WinPercent: winPercent,
	}
	if winPercent < 0.5 {
		r.MinStat = avg * winPercent
		r.MaxStat = avg * losingBandMaxMult
	}
	return r
}
