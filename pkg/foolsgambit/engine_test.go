package foolsgambit

import (
	"testing"

	"github.com/dshills/foolsgambit/pkg/content/contentfixture"
	"github.com/dshills/foolsgambit/pkg/engine"
)

func TestNewEngine_RejectsNilBundle(t *testing.T) {
	if _, err := NewEngine(nil); err == nil {
		t.Fatal("expected error for nil bundle")
	}
}

func TestEngine_CreateRunLegalActionsApply(t *testing.T) {
	bundle := contentfixture.Minimal()
	e, err := NewEngine(bundle)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	s, err := e.CreateRun(1, 7)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if s.Phase != engine.PhaseFloorStart {
		t.Fatalf("Phase = %s, want %s", s.Phase, engine.PhaseFloorStart)
	}

	legal := e.LegalActions(s)
	if len(legal) == 0 {
		t.Fatal("LegalActions returned none at FLOOR_START")
	}

	next, _, err := e.Apply(s, legal[0])
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next == s {
		t.Fatal("Apply must not return the same pointer as its input")
	}

	h1, err := e.HashState(s)
	if err != nil {
		t.Fatalf("HashState(s): %v", err)
	}
	h2, err := e.HashState(s)
	if err != nil {
		t.Fatalf("HashState(s) again: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("HashState not stable across repeated calls: %s vs %s", h1, h2)
	}
}

func TestEngine_ReplayLog(t *testing.T) {
	bundle := contentfixture.Minimal()
	e, err := NewEngine(bundle)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	log := &ActionLog{Actions: []Action{
		{Kind: engine.ActionStartRun, Seed: 1, RunLengthTarget: 7},
	}}

	final, hashes, err := e.ReplayLog(log)
	if err != nil {
		t.Fatalf("ReplayLog: %v", err)
	}
	if final == nil {
		t.Fatal("final state is nil")
	}
	if len(hashes) != 1 {
		t.Fatalf("got %d hashes, want 1", len(hashes))
	}
}
