// Package randfake provides a scripted random.Source for tests.
package randfake

import "fmt"

// Source replays scripted draws in order.
//
// Intn pops from Ints and Float64 pops from Floats. Running out of script is a
// test bug, so both panic instead of inventing a value.
type Source struct {
	Ints   []int
	Floats []float64
}

// D10 scripts ten-sided faces (1..10) as the Intn(10) results that produce them.
func D10(faces ...int) *Source {
	ints := make([]int, len(faces))
	for i, face := range faces {
		ints[i] = face - 1
	}
	return &Source{Ints: ints}
}

// Intn returns the next scripted integer.
func (s *Source) Intn(n int) int {
	if len(s.Ints) == 0 {
		panic(fmt.Sprintf("randfake: Intn(%d) called with empty script", n))
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("randfake: scripted %d out of range for Intn(%d)", v, n))
	}
	return v
}

// Float64 returns the next scripted real.
func (s *Source) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("randfake: Float64 called with empty script")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Remaining reports how many scripted draws are still unused.
func (s *Source) Remaining() int {
	return len(s.Ints) + len(s.Floats)
}
