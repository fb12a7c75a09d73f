package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SeededFloat returns a deterministic float source for reproducible sessions.
// The returned function is not safe for concurrent use.
func SeededFloat(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return r.Float64
}

// IntFrom maps a draw from rnd onto [min, max] (inclusive)
func IntFrom(rnd func() float64, min, max int) int {
	if min >= max {
		return min
	}
	span := max - min + 1
	n := int(rnd() * float64(span))
	if n >= span {
		n = span - 1
	}
	return min + n
}

// PickIndex returns a uniformly chosen index into a collection of length n
func PickIndex(rnd func() float64, n int) int {
	if n <= 0 {
		return -1
	}
	return IntFrom(rnd, 0, n-1)
}

// ClampInt bounds value to [min, max]
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ScaleRound multiplies an integer delta and rounds half away from zero
func ScaleRound(value int, factor float64) int {
	return int(math.Round(float64(value) * factor))
}
