package datasets

const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

// Sequence is a Lehmer linear congruential generator
// (state' = state * 16807 mod 2^31-1). It exists so the synthetic datasets in
// this package are exactly reproducible across runs: the same seed always
// yields the same point set, which the test fixtures and the documentation
// examples rely on.
//
// A Sequence is not safe for concurrent use; dataset construction is the only
// consumer and reads it sequentially.
type Sequence struct {
	state int64
}

// NewSequence returns a generator positioned at seed. Seeds outside the valid
// state range (1..2147483646) are folded back into it so that a zero or
// negative seed still produces a usable stream.
func NewSequence(seed int64) *Sequence {
	seed %= lcgModulus
	if seed <= 0 {
		seed += lcgModulus - 1
	}
	return &Sequence{state: seed}
}

// Next advances the generator and returns the next value in [0, 1).
func (s *Sequence) Next() float64 {
	s.state = s.state * lcgMultiplier % lcgModulus
	return float64(s.state-1) / float64(lcgModulus-1)
}
