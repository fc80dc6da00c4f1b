package dice

import (
	"math/rand/v2"
	"time"
)

// seededSource implements Source with a PCG generator so that a game can be
// replayed exactly from its seed.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a Source whose sequence is fully determined by seed.
//
// Postcondition: two sources built from the same seed yield identical sequences.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSource returns a seeded Source derived from the wall clock, along
// with the seed it used so callers can log it for replay.
func NewTimeSource() (Source, uint64) {
	seed := uint64(time.Now().UnixNano())
	return NewSeededSource(seed), seed
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" otherwise.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.rng.IntN(n)
}

// FixedSource replays a scripted sequence of die faces. It exists for tests
// that need an exact roll; each queued value is a 1-based face and is
// returned as face-1 from Intn.
type FixedSource struct {
	faces []int
	next  int
}

// NewFixedSource returns a FixedSource that yields faces in order.
//
// Precondition: len(faces) > 0.
func NewFixedSource(faces ...int) *FixedSource {
	if len(faces) == 0 {
		panic("dice: NewFixedSource requires at least one face")
	}
	return &FixedSource{faces: faces}
}

// Intn returns the next scripted face minus one, clamped to [0, n).
// The script wraps around once exhausted.
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	face := f.faces[f.next%len(f.faces)]
	f.next++
	v := face - 1
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Used reports how many faces have been consumed.
func (f *FixedSource) Used() int { return f.next }
