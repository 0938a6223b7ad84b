// Package rng provides the engine's single source of randomness.
//
// # Overview
//
// RunState embeds exactly one RNG value. Every shuffle, tie-break, and
// random target selection the reducer performs draws from it, so two
// runs created with the same seed and driven by the same action
// sequence produce bit-identical states at every step. There is no
// ambient randomness anywhere else in the module.
//
// # Algorithm
//
// The generator is a 32-bit xorshift: state is a single uint32, and
// Next advances it with the classic 13/17/5 left/right/left shift
// triple (Marsaglia's xorshift family), taken modulo 2^32 via the
// type's own wraparound. The sequence is locked: seed 1 must produce
// 270369, 67634689, 2647435461, 307599695, 2398689233 as its first
// five outputs on every platform. See rng_test.go for the regression.
//
// # Shuffling
//
// ShuffleStrings performs Fisher-Yates from the high index downward, drawing
// j = Next() mod (i+1) for each i. This order is part of the
// cross-implementation contract: two ports that both implement
// xorshift32 and Fisher-Yates-from-the-top will shuffle identical
// decks identically.
//
// # Ownership
//
// An RNG value is cheap to copy and carries no pointers, which is
// what lets RunState clone itself by value during apply_action without
// aliasing the RNG between the old and new state.
package rng
