package cards

var (
	allSuits = []Suit{Cups, Pentacles, Swords, Wands}
	allRanks = []Rank{
		Ace, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10,
		Page, Knight, Queen, King,
	}

	// byID indexes every registry card by its deterministic string id.
	byID = make(map[string]Card, 56)

	// allIDs lists the 56 registry ids in a fixed, deterministic
	// order: suit-major (in SuitLockOrder), rank-minor (in allRanks
	// order). Nothing in the rules depends on this order — only on
	// the set being exactly these 56 ids — but a fixed order keeps
	// deck construction at FloorStart reproducible before the first
	// shuffle.
	allIDs = make([]string, 0, 56)
)

func init() {
	for _, suit := range allSuits {
		for _, rank := range allRanks {
			id := ID(suit, rank)
			c := Card{ID: id, Suit: suit, Rank: rank}
			byID[id] = c
			allIDs = append(allIDs, id)
		}
	}
}

// AllCardIDs returns the 56 registry ids in deterministic order. The
// returned slice is a fresh copy; callers may mutate it freely.
func AllCardIDs() []string {
	out := make([]string, len(allIDs))
	copy(out, allIDs)
	return out
}

// Lookup returns the full Card value for id.
func Lookup(id string) (Card, bool) {
	c, ok := byID[id]
	return c, ok
}

// Count is the size of the minor registry.
const Count = 56
