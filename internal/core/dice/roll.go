// Package dice implements the exploding ten-sided check roll.
package dice

import "github.com/louisbranch/netrun/internal/core/random"

const sides = 10

// Result captures an exploding check roll.
type Result struct {
	// Total is the signed chain sum plus Modifier.
	Total int `json:"total"`
	// Modifier is the flat bonus added to the chain.
	Modifier int `json:"modifier"`
	// Rolls lists every raw face drawn, in order.
	Rolls []int `json:"rolls"`
	// Exploded is true when the first face was a 10.
	Exploded bool `json:"exploded,omitempty"`
	// Fumbled is true when the first face was a 1.
	Fumbled bool `json:"fumbled,omitempty"`
}

// D10 draws one ten-sided face in 1..10.
func D10(src random.Source) int {
	return src.Intn(sides) + 1
}

// Roll performs an exploding d10 check and adds modifier.
//
// # Chains
//
// A first face of 10 keeps drawing and adding faces until one is not a 10;
// every face in the chain counts, including the triggering 10s. A first face
// of 1 mirrors this downward: the 1 and every following face are subtracted
// until a face other than 1 appears. Any other first face counts once.
//
// Example: faces [10, 10, 3] with modifier 2 total 25; faces [1, 1, 4] with
// modifier 0 total -6.
func Roll(src random.Source, modifier int) Result {
	first := D10(src)
	rolls := []int{first}
	sum := 0

	switch first {
	case sides:
		sum = first
		for {
			next := D10(src)
			rolls = append(rolls, next)
			sum += next
			if next != sides {
				break
			}
		}
	case 1:
		sum = -first
		for {
			next := D10(src)
			rolls = append(rolls, next)
			sum -= next
			if next != 1 {
				break
			}
		}
	default:
		sum = first
	}

	return Result{
		Total:    sum + modifier,
		Modifier: modifier,
		Rolls:    rolls,
		Exploded: first == sides,
		Fumbled:  first == 1,
	}
}
