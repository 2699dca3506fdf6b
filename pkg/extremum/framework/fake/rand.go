// Package fake provides a scripted random source for tests.
package fake

import "fmt"

// Rand replays fixed draws in order. It panics when a script runs out so a
// test notices an unexpected extra draw.
type Rand struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

func (r *Rand) Float64() float64 {
	if r.floatIdx >= len(r.Floats) {
		panic(fmt.Sprintf("fake.Rand: Float64 script exhausted after %d draws", r.floatIdx))
	}
	v := r.Floats[r.floatIdx]
	r.floatIdx++
	return v
}

func (r *Rand) IntN(n int) int {
	if r.intIdx >= len(r.Ints) {
		panic(fmt.Sprintf("fake.Rand: IntN script exhausted after %d draws", r.intIdx))
	}
	v := r.Ints[r.intIdx]
	r.intIdx++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("fake.Rand: scripted IntN value %d out of range [0,%d)", v, n))
	}
	return v
}

// Remaining reports how many scripted draws were not consumed.
func (r *Rand) Remaining() (floats, ints int) {
	return len(r.Floats) - r.floatIdx, len(r.Ints) - r.intIdx
}
