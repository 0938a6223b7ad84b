package engine

import (
	"testing"

	"github.com/dshills/foolsgambit/pkg/content/contentfixture"
)

func TestLegalActions_FloorStartOffersEmptyAttunementFirst(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if s.Phase != PhaseFloorStart {
		t.Fatalf("Phase = %s, want %s", s.Phase, PhaseFloorStart)
	}

	legal := LegalActions(&s, bundle)
	if len(legal) != 1 {
		t.Fatalf("got %d legal actions at floor 1 with no claimed majors, want 1 (empty attunement)", len(legal))
	}
	if legal[0].Kind != ActionSelectAttunement || len(legal[0].AttunedMajorIDs) != 0 {
		t.Fatalf("legal[0] = %+v, want empty SELECT_ATTUNEMENT", legal[0])
	}
}

func TestLegalActions_RoomChoiceOffersEngageAndFlee(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	next, _, err := Apply(s, Action{Kind: ActionSelectAttunement}, bundle)
	if err != nil {
		t.Fatalf("Apply(SELECT_ATTUNEMENT): %v", err)
	}
	if next.Phase != PhaseRoomChoice {
		t.Fatalf("Phase = %s, want %s", next.Phase, PhaseRoomChoice)
	}

	legal := LegalActions(&next, bundle)
	if len(legal) != 2 {
		t.Fatalf("got %d legal actions, want 2 (engage, flee)", len(legal))
	}
	kinds := map[ActionKind]bool{legal[0].Kind: true, legal[1].Kind: true}
	if !kinds[ActionChooseEngage] || !kinds[ActionChooseFlee] {
		t.Fatalf("legal kinds = %v, want CHOOSE_ENGAGE and CHOOSE_FLEE", kinds)
	}
}

func TestLegalActions_NoFleeAfterConsecutiveFlee(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	s, _, err = Apply(s, Action{Kind: ActionSelectAttunement}, bundle)
	if err != nil {
		t.Fatalf("Apply(SELECT_ATTUNEMENT): %v", err)
	}
	s, _, err = Apply(s, Action{Kind: ActionChooseFlee}, bundle)
	if err != nil {
		t.Fatalf("Apply(CHOOSE_FLEE): %v", err)
	}
	if !s.LastRoomWasFlee {
		t.Fatal("LastRoomWasFlee not set after fleeing")
	}

	legal := LegalActions(&s, bundle)
	for _, a := range legal {
		if a.Kind == ActionChooseFlee {
			t.Fatal("CHOOSE_FLEE offered twice in a row")
		}
	}
}

func TestLegalActions_EmptyAtTerminalPhases(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	s.Phase = PhaseRunVictory
	if legal := LegalActions(&s, bundle); legal != nil {
		t.Fatalf("LegalActions at RUN_VICTORY = %v, want nil", legal)
	}
	s.Phase = PhaseRunDefeat
	if legal := LegalActions(&s, bundle); legal != nil {
		t.Fatalf("LegalActions at RUN_DEFEAT = %v, want nil", legal)
	}
}

func TestPermuteStrings_AllDistinctAndCorrectCount(t *testing.T) {
	perms := permuteStrings([]string{"a", "b", "c"})
	if len(perms) != 6 {
		t.Fatalf("got %d permutations, want 6", len(perms))
	}
	seen := map[string]bool{}
	for _, p := range perms {
		key := p[0] + p[1] + p[2]
		if seen[key] {
			t.Fatalf("duplicate permutation %v", p)
		}
		seen[key] = true
	}
}

func TestPermuteInts_SiblingCallsDoNotAlias(t *testing.T) {
	// Regression test for an append-aliasing bug: sibling branches of
	// the recursion must not share a backing array, or earlier
	// recorded permutations get silently corrupted by later ones.
	perms := permuteInts([]int{0, 1, 2, 3})
	if len(perms) != 24 {
		t.Fatalf("got %d permutations, want 24", len(perms))
	}
	seen := map[[4]int]bool{}
	for _, p := range perms {
		var key [4]int
		copy(key[:], p)
		if seen[key] {
			t.Fatalf("duplicate or corrupted permutation %v", p)
		}
		seen[key] = true
	}
}
