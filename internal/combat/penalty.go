package combat

import "math"

// Penalty is the currency a losing participant pays
func Penalty(balance int64, dexterity int) int64 {
	if balance <= 0 {
		return 0
	}
	rate := penaltyRate
	switch {
	case dexterity > 0:
		rate /= math.Max(float64(dexterity), minDexterityScale)
	case dexterity < 0:
		rate /= math.Min(1/math.Abs(float64(dexterity)), 1)
	}
	p := int64(float64(balance) * rate)
	return min(p, balance, maxPenalty)
}
