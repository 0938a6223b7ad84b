// Package cards defines the fixed 56-card minor registry and the pure
// rules helpers that derive gameplay values from a card's suit, rank,
// and orientation.
//
// # Registry
//
// The registry is four suits — cups, pentacles, swords, wands — each
// with fourteen ranks: ace, the numbered cards 2 through 10, and the
// four court faces page, knight, queen, king. Every card has a
// deterministic string id of the form "<suit>_<rank>" (e.g. "cups_7",
// "swords_queen", "wands_ace"); id stability matters for hashing and
// save/replay, insertion order into any container never does.
//
// # Orientation
//
// A card's physical orientation is assigned once, at create_run, and
// never changes except through Leap of Faith. Its effective
// orientation — the one resolution and evaluation actually use — is
// derived fresh each time via EffectiveOrientation, folding in boss
// corruption and any pending cleanse on the slot.
//
// # Values
//
// NumericValue, EnemyValue, and OrderingValue convert a (rank,
// effective orientation) pair into the integers the reducer's
// resolution pipeline operates on. None of these functions consult
// mutable state; they are pure functions of their arguments, which is
// what makes them safe to call from both the reducer and the majors
// interpreter without risking drift between the two.
package cards
