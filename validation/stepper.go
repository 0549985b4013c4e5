package validation

import "math"

// stepperValue mirrors how the hours control reads its input: anything that
// does not parse counts as zero.
func stepperValue(hours string) float64 {
	h, ok := ParseHours(hours)
	if !ok {
		return 0
	}
	return h
}

func CanIncrement(hours string) bool {
	return stepperValue(hours) < MaxHours
}

func CanDecrement(hours string) bool {
	return stepperValue(hours) > MinHours
}

// Increment adds one hour, clamped to MaxHours. It is a no-op at the bound.
func Increment(hours string) string {
	if !CanIncrement(hours) {
		return hours
	}
	return FormatHours(math.Min(stepperValue(hours)+1, MaxHours))
}

// Decrement removes one hour, clamped to MinHours. It is a no-op at the bound.
func Decrement(hours string) string {
	if !CanDecrement(hours) {
		return hours
	}
	return FormatHours(math.Max(stepperValue(hours)-1, MinHours))
}
