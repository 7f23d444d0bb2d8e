package reward

import "time"

// ============================================================================
// Formula Constants
// ============================================================================

const (
	xpRebirthFactor  = 0.5
	xpIntFactor      = 0.1
	xpIntCap         = 250.0
	xpIntDivisor     = 10.0
	cpLuckDivisor    = 2.0
	petOdds          = 5
	minRewardPerHead = 1.0
)

// WeekdayBonus is added to the xp and currency multipliers
var WeekdayBonus = map[time.Weekday]float64{
	time.Monday:    0,
	time.Tuesday:   0,
	time.Wednesday: 0.5,
	time.Thursday:  0,
	time.Friday:    0.5,
	time.Saturday:  1.0,
	time.Sunday:    1.0,
}
