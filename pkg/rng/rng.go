package rng

// RNG is a 32-bit xorshift generator and the engine's only source of
// randomness. The zero value is invalid: xorshift32 has a fixed point
// at state 0, so New coerces a zero seed to 1.
type RNG struct {
	state uint32
}

// New creates an RNG seeded with seed.
func New(seed uint32) RNG {
	if seed == 0 {
		seed = 1
	}
	return RNG{state: seed}
}

// FromState reconstructs an RNG from a previously observed internal
// state, e.g. when deserializing a SaveBlob's rng_state field.
func FromState(state uint32) RNG {
	if state == 0 {
		state = 1
	}
	return RNG{state: state}
}

// State returns the generator's current internal state, for embedding
// into a hashable RunState and for save/restore.
func (r RNG) State() uint32 {
	return r.state
}

// Next advances the generator and returns the new state: the classic
// 13/17/5 left/right/left xorshift triple, modulo 2^32 via uint32
// wraparound. Locked regression for seed 1: 270369, 67634689,
// 2647435461, 307599695, 2398689233.
func (r *RNG) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint32n returns a value in [0, n) by drawing Next() mod n. n must be
// positive.
func (r *RNG) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("rng: Uint32n argument must be positive")
	}
	return r.Next() % n
}

// IntN returns a value in [0, n) as an int. n must be positive.
func (r *RNG) IntN(n int) int {
	return int(r.Uint32n(uint32(n)))
}

// ShuffleStrings performs an in-place Fisher-Yates shuffle from the
// high index downward, drawing j = Next() mod (i+1) at each step. This
// exact order is load-bearing: it is what lets independent
// implementations reproduce identical deck shuffles given the same
// RNG state.
func (r *RNG) ShuffleStrings(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
