package engine

import (
	"errors"
	"testing"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/content/contentfixture"
)

func TestApply_DoesNotMutateInputOnSuccess(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	before := s.Phase

	next, _, err := Apply(s, Action{Kind: ActionSelectAttunement}, bundle)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Phase != before {
		t.Fatalf("input state's Phase mutated: %s -> %s", before, s.Phase)
	}
	if next.Phase == before {
		t.Fatalf("output state's Phase unchanged: still %s", next.Phase)
	}
}

func TestApply_IllegalActionLeavesStateUnchanged(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	// COMMIT_RESOLVE is not legal at FLOOR_START.
	next, evts, err := Apply(s, Action{Kind: ActionCommitResolve, Slot: 0}, bundle)
	if !errors.Is(err, apierr.ErrIllegalAction) {
		t.Fatalf("got %v, want ErrIllegalAction", err)
	}
	if evts != nil {
		t.Fatalf("got events %v on illegal action, want nil", evts)
	}
	if next.Phase != s.Phase {
		t.Fatalf("returned state's Phase = %s, want unchanged %s", next.Phase, s.Phase)
	}
}

func TestApply_SelectAttunementRejectsUnclaimedMajor(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	_, _, err = Apply(s, Action{Kind: ActionSelectAttunement, AttunedMajorIDs: []string{"major_00"}}, bundle)
	if !errors.Is(err, apierr.ErrIllegalAction) {
		t.Fatalf("got %v, want ErrIllegalAction (major_00 not claimed)", err)
	}
}

func TestApply_NilBundleReturnsContentNotLoaded(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	_, _, err = Apply(s, Action{Kind: ActionSelectAttunement}, nil)
	if !errors.Is(err, apierr.ErrContentNotLoaded) {
		t.Fatalf("got %v, want ErrContentNotLoaded", err)
	}
}

func TestApply_FleeThenEngageReachesPreResolveWindow(t *testing.T) {
	bundle := contentfixture.Minimal()
	s, err := CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	s, _, err = Apply(s, Action{Kind: ActionSelectAttunement}, bundle)
	if err != nil {
		t.Fatalf("SELECT_ATTUNEMENT: %v", err)
	}
	s, _, err = Apply(s, Action{Kind: ActionChooseFlee}, bundle)
	if err != nil {
		t.Fatalf("CHOOSE_FLEE: %v", err)
	}
	if s.Phase != PhaseRoomChoice {
		t.Fatalf("Phase after flee = %s, want %s", s.Phase, PhaseRoomChoice)
	}
	s, _, err = Apply(s, Action{Kind: ActionChooseEngage}, bundle)
	if err != nil {
		t.Fatalf("CHOOSE_ENGAGE: %v", err)
	}
	if s.Phase != PhasePreResolveWindow {
		t.Fatalf("Phase after engage = %s, want %s", s.Phase, PhasePreResolveWindow)
	}
}
