package difficulty

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatRange_Empty(t *testing.T) {
	e := NewEngine(HistoryCapacity)
	for _, group := range []string{"", "a", "guild-42"} {
		assert.Equal(t, Range{StatType: StatHP, MinStat: 0, MaxStat: 0, WinPercent: 0.5}, e.StatRange(group))
		assert.False(t, e.StatRange(group).Active())
	}
}

func TestStatRange_SoloTalk(t *testing.T) {
	e := NewEngine(HistoryCapacity)
	e.Record("g", Result{Kind: KindTalk, Amount: 100, PartySize: 1, Success: true})

	r := e.StatRange("g")
	assert.Equal(t, StatDipl, r.StatType)
	assert.InDelta(t, 93.75, r.MinStat, 1e-9)
	assert.InDelta(t, 250, r.MaxStat, 1e-9)
	assert.InDelta(t, 1.0, r.WinPercent, 1e-9)
	assert.True(t, r.Active())
}

func TestStatRange(t *testing.T) {
	tests := []struct {
		name     string
		history  []Result
		expected Range
	}{
		{
			name: "attack band while winning",
			history: []Result{
				{KindAttack, 100, 3, true},
				{KindAttack, 200, 2, true},
				{KindTalk, 50, 2, false},
			},
			expected: Range{StatType: StatHP, MinStat: 112.5, MaxStat: 300, WinPercent: 2.0 / 3},
		},
		{
			name: "losing tightens the band",
			history: []Result{
				{KindAttack, 100, 2, false},
				{KindAttack, 100, 2, false},
				{KindAttack, 100, 2, false},
				{KindAttack, 100, 2, true},
			},
			expected: Range{StatType: StatHP, MinStat: 25, MaxStat: 150, WinPercent: 0.25},
		},
		{
			name: "talk must strictly exceed attack",
			history: []Result{
				{KindAttack, 80, 2, true},
				{KindTalk, 80, 2, true},
			},
			expected: Range{StatType: StatHP, MinStat: 60, MaxStat: 160, WinPercent: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(tt.history, HistoryCapacity)
			assert.Equal(t, tt.expected.StatType, r.StatType)
			assert.InDelta(t, tt.expected.MinStat, r.MinStat, 1e-9)
			assert.InDelta(t, tt.expected.MaxStat, r.MaxStat, 1e-9)
			assert.InDelta(t, tt.expected.WinPercent, r.WinPercent, 1e-9)
		})
	}
}

func TestRecord_EvictsOldest(t *testing.T) {
	e := NewEngine(3)
	for i := 1; i <= 5; i++ {
		e.Record("g", Result{Kind: KindAttack, Amount: float64(i), PartySize: 2})
	}

	h := e.History("g")
	require.Len(t, h, 3)
	assert.InDelta(t, 3.0, h[0].Amount, 1e-9)
	assert.InDelta(t, 5.0, h[2].Amount, 1e-9)

	e.Reset("g")
	assert.Empty(t, e.History("g"))
}

func TestRecord_GroupsAreIndependent(t *testing.T) {
	e := NewEngine(HistoryCapacity)
	e.Record("a", Result{Kind: KindTalk, Amount: 10, PartySize: 2, Success: true})
	assert.Len(t, e.History("a"), 1)
	assert.Empty(t, e.History("b"))
}

func TestRecord_Concurrent(t *testing.T) {
	e := NewEngine(HistoryCapacity)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			group := fmt.Sprintf("g%d", i%2)
			for j := 0; j < 50; j++ {
				e.Record(group, Result{Kind: KindAttack, Amount: 1, PartySize: 2})
				_ = e.StatRange(group)
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, e.History("g0"), HistoryCapacity)
	assert.Len(t, e.History("g1"), HistoryCapacity)
}
