package replay

import (
	"errors"
	"testing"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/content/contentfixture"
	"github.com/dshills/foolsgambit/pkg/engine"
)

func TestRun_RejectsLogNotStartingWithStartRun(t *testing.T) {
	bundle := contentfixture.Minimal()
	log := &ActionLog{Actions: []engine.Action{{Kind: engine.ActionSelectAttunement}}}

	_, err := Run(log, bundle)
	if !errors.Is(err, apierr.ErrIllegalAction) {
		t.Fatalf("got %v, want ErrIllegalAction", err)
	}
}

func TestRun_StartRunOnlyProducesStepZeroHash(t *testing.T) {
	bundle := contentfixture.Minimal()
	log := &ActionLog{Actions: []engine.Action{
		{Kind: engine.ActionStartRun, Seed: 1, RunLengthTarget: 7},
	}}

	result, err := Run(log, bundle)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Hashes) != 1 {
		t.Fatalf("got %d hashes, want 1", len(result.Hashes))
	}
	if _, ok := result.Hashes[0]; !ok {
		t.Fatal("missing step 0 hash")
	}
	if result.FinalState == nil {
		t.Fatal("FinalState is nil")
	}
}

func TestRun_IdempotentAcrossTwoReplays(t *testing.T) {
	bundle := contentfixture.Minimal()
	log := &ActionLog{Actions: []engine.Action{
		{Kind: engine.ActionStartRun, Seed: 42, RunLengthTarget: 7},
	}}

	r1, err := Run(log, bundle)
	if err != nil {
		t.Fatalf("Run #1: %v", err)
	}
	r2, err := Run(log, bundle)
	if err != nil {
		t.Fatalf("Run #2: %v", err)
	}
	if r1.Hashes[0] != r2.Hashes[0] {
		t.Fatalf("replay is not idempotent: %s vs %s", r1.Hashes[0], r2.Hashes[0])
	}
}
