package engine

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/foolsgambit/pkg/content/contentfixture"
)

// TestProperty_InvariantsHoldAcrossRandomLegalSequences drives
// CreateRun through a bounded number of randomly-chosen legal
// actions and checks the §8 state-shape invariants after every step:
// HP/Fate/Gold bounds, deck/room card-count accounting, and that a
// pending resolution is only ever outstanding behind the resolution
// prompt (Ace, cups, ambush or fight choice) for the same slot.
func TestProperty_InvariantsHoldAcrossRandomLegalSequences(t *testing.T) {
	bundle := contentfixture.Minimal()
	runLengthTargets := []int{7, 14, 21}

	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint32().Draw(t, "seed")
		target := runLengthTargets[rapid.IntRange(0, len(runLengthTargets)-1).Draw(t, "targetIdx")]
		steps := rapid.IntRange(0, 40).Draw(t, "steps")

		s, err := CreateRun(seed, target, bundle)
		if err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
		assertInvariants(t, &s)

		for i := 0; i < steps; i++ {
			if s.Phase == PhaseRunVictory || s.Phase == PhaseRunDefeat {
				break
			}
			legal := LegalActions(&s, bundle)
			if len(legal) == 0 {
				break
			}
			choice := legal[rapid.IntRange(0, len(legal)-1).Draw(t, "actionIdx")]

			next, _, err := Apply(s, choice, bundle)
			if err != nil {
				t.Fatalf("Apply(%+v) on a LegalActions-offered action returned %v", choice, err)
			}
			s = next
			assertInvariants(t, &s)
		}
	})
}

func assertInvariants(t *rapid.T, s *RunState) {
	if s.Player.HP < 0 || s.Player.HP > s.Player.MaxHP {
		t.Fatalf("HP = %d out of [0,%d]", s.Player.HP, s.Player.MaxHP)
	}
	if s.Player.Fate < 0 || s.Player.Fate > 10 {
		t.Fatalf("Fate = %d out of [0,10]", s.Player.Fate)
	}
	if s.Player.Gold < 0 || s.Player.Gold > 9999 {
		t.Fatalf("Gold = %d out of [0,9999]", s.Player.Gold)
	}
	if r := s.PendingResolution; r != nil {
		p := s.PendingPrompt
		if p == nil || p.Kind == PromptMajorEffect || p.Slot != r.Slot {
			t.Fatalf("PendingResolution %+v outstanding without its resolution prompt (prompt %+v)", *r, p)
		}
	}

	seen := map[string]int{}
	for _, id := range s.MinorDeck {
		seen[id]++
	}
	for _, id := range s.Room.Slots {
		if id != "" {
			seen[id]++
		}
	}
	for _, id := range s.Floor.FloorDiscard {
		seen[id]++
	}
	for _, id := range s.Player.EquippedCardIDs() {
		seen[id]++
	}
	for _, id := range s.Floor.BossDeck {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("card %s appears in %d locations at once", id, n)
		}
	}

	attuned := map[string]bool{}
	for _, id := range s.Majors.Attuned {
		if attuned[id] {
			t.Fatalf("attuned major %s listed twice", id)
		}
		attuned[id] = true
	}
	claimed := map[string]bool{}
	for _, id := range s.Majors.Claimed {
		claimed[id] = true
	}
	for id := range attuned {
		if !claimed[id] {
			t.Fatalf("attuned major %s is not claimed", id)
		}
	}
}
