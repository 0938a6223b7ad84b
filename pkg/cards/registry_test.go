package cards

import "testing"

func TestAllCardIDs_CountAndUniqueness(t *testing.T) {
	ids := AllCardIDs()
	if len(ids) != Count {
		t.Fatalf("AllCardIDs() returned %d ids, want %d", len(ids), Count)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestAllCardIDs_IsolatedCopy(t *testing.T) {
	ids := AllCardIDs()
	ids[0] = "mutated"
	again := AllCardIDs()
	if again[0] == "mutated" {
		t.Fatal("AllCardIDs() leaked its backing array across calls")
	}
}

func TestParseID_RoundTrip(t *testing.T) {
	for _, id := range AllCardIDs() {
		suit, rank, err := ParseID(id)
		if err != nil {
			t.Fatalf("ParseID(%q): %v", id, err)
		}
		if got := ID(suit, rank); got != id {
			t.Fatalf("ID(ParseID(%q)) = %q, want %q", id, got, id)
		}
	}
}

func TestParseID_Unknown(t *testing.T) {
	if _, _, err := ParseID("cups_11"); err == nil {
		t.Fatal("ParseID(\"cups_11\") should have failed")
	}
}

func TestLookup_MatchesParseID(t *testing.T) {
	c, ok := Lookup("swords_queen")
	if !ok {
		t.Fatal("Lookup(\"swords_queen\") not found")
	}
	if c.Suit != Swords || c.Rank != Queen {
		t.Fatalf("Lookup(\"swords_queen\") = %+v", c)
	}
}
