package cards

import "fmt"

// Suit identifies one of the four minor suits.
type Suit string

// The four minor suits, in the SUIT_ORDER lock order used by §4.5's
// commit-slot filter.
const (
	Cups      Suit = "cups"
	Pentacles Suit = "pentacles"
	Swords    Suit = "swords"
	Wands     Suit = "wands"
)

// SuitLockOrder is the tiebreak order SUIT_ORDER constraints use.
var SuitLockOrder = []Suit{Cups, Pentacles, Swords, Wands}

// SuitOrderIndex returns s's position in SuitLockOrder, or -1 if s is
// not a recognized suit.
func SuitOrderIndex(s Suit) int {
	for i, candidate := range SuitLockOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Rank identifies a card's face within its suit.
type Rank string

// The fourteen ranks, ace through king.
const (
	Ace    Rank = "ace"
	Rank2  Rank = "2"
	Rank3  Rank = "3"
	Rank4  Rank = "4"
	Rank5  Rank = "5"
	Rank6  Rank = "6"
	Rank7  Rank = "7"
	Rank8  Rank = "8"
	Rank9  Rank = "9"
	Rank10 Rank = "10"
	Page   Rank = "page"
	Knight Rank = "knight"
	Queen  Rank = "queen"
	King   Rank = "king"
)

var numberedRanks = map[Rank]int{
	Rank2: 2, Rank3: 3, Rank4: 4, Rank5: 5, Rank6: 6,
	Rank7: 7, Rank8: 8, Rank9: 9, Rank10: 10,
}

var courtBaseValues = map[Rank]int{
	Page: 11, Knight: 12, Queen: 13, King: 14,
}

// IsNumbered reports whether rank is one of the numbered pip cards
// 2-10.
func IsNumbered(rank Rank) bool {
	_, ok := numberedRanks[rank]
	return ok
}

// IsCourt reports whether rank is one of the four court faces.
func IsCourt(rank Rank) bool {
	_, ok := courtBaseValues[rank]
	return ok
}

// IsAce reports whether rank is the ace.
func IsAce(rank Rank) bool {
	return rank == Ace
}

// Orientation is a card's physical or effective facing.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Upright {
		return Reversed
	}
	return Upright
}

// Card is a single minor's immutable identity: its suit and rank, and
// the deterministic string id derived from them.
type Card struct {
	ID   string
	Suit Suit
	Rank Rank
}

// ID formats a card's deterministic registry id.
func ID(suit Suit, rank Rank) string {
	return fmt.Sprintf("%s_%s", suit, rank)
}

// ParseID splits a card id back into its suit and rank. It returns an
// error if id does not name a card in the 56-card registry.
func ParseID(id string) (Suit, Rank, error) {
	c, ok := byID[id]
	if !ok {
		return "", "", fmt.Errorf("cards: unknown card id %q", id)
	}
	return c.Suit, c.Rank, nil
}

// MustParseID is ParseID for call sites that already know id is valid
// (e.g. ids drawn from the registry itself); it panics otherwise.
func MustParseID(id string) (Suit, Rank) {
	suit, rank, err := ParseID(id)
	if err != nil {
		panic(err)
	}
	return suit, rank
}
