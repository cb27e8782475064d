// Package random provides the injectable randomness primitives used by the
// generator and the dice subsystem.
package random

// Source is the subset of *math/rand.Rand the engine draws from.
//
// Every engine operation that needs randomness takes a Source so tests can
// pin outcomes with a fixed seed or a scripted fake.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float64 returns a uniform real in [0, 1).
	Float64() float64
}

// Range returns a uniform integer in [a, b] inclusive.
// Reversed bounds are swapped.
func Range(src Source, a, b int) int {
	if b < a {
		a, b = b, a
	}
	return a + src.Intn(b-a+1)
}

// Choice pairs a value with its non-negative selection weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Weighted returns one value with probability proportional to its weight.
//
// A uniform real in [0, total) is drawn and weights are subtracted in table
// order until the remainder is no longer positive. When floating-point
// rounding leaves a residual after the whole table, the last entry wins.
// Weighted panics on an empty table.
func Weighted[T any](src Source, table []Choice[T]) T {
	if len(table) == 0 {
		panic("random: weighted choice over empty table")
	}
	total := 0.0
	for _, c := range table {
		total += c.Weight
	}
	remainder := src.Float64() * total
	for _, c := range table {
		remainder -= c.Weight
		if remainder <= 0 {
			return c.Value
		}
	}
	return table[len(table)-1].Value
}
