package hashstate

import (
	"testing"

	"github.com/dshills/foolsgambit/pkg/content/contentfixture"
	"github.com/dshills/foolsgambit/pkg/engine"
	"github.com/dshills/foolsgambit/pkg/majors"
)

func TestHashState_DeterministicForEqualStates(t *testing.T) {
	bundle := contentfixture.Minimal()

	s1, err := engine.CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	s2 := s1.Clone()

	h1, err := HashState(&s1)
	if err != nil {
		t.Fatalf("HashState(s1): %v", err)
	}
	h2, err := HashState(&s2)
	if err != nil {
		t.Fatalf("HashState(s2): %v", err)
	}
	if h1 != h2 {
		t.Fatalf("HashState(s) != HashState(clone(s)): %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("hash length = %d, want 64", len(h1))
	}
}

func TestHashState_DifferentSeedsDiffer(t *testing.T) {
	bundle := contentfixture.Minimal()

	s1, err := engine.CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun(1): %v", err)
	}
	s2, err := engine.CreateRun(2, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun(2): %v", err)
	}

	h1, _ := HashState(&s1)
	h2, _ := HashState(&s2)
	if h1 == h2 {
		t.Fatal("different seeds produced identical hashes")
	}
}

func TestHashState_IgnoresDebugSidecar(t *testing.T) {
	bundle := contentfixture.Minimal()

	s, err := engine.CreateRun(1, 7, bundle)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	before, err := HashState(&s)
	if err != nil {
		t.Fatalf("HashState: %v", err)
	}

	// Debug is excluded from the hash per §6; mutating it alone must
	// not change the digest.
	s.Debug.Continuation = &majors.Continuation{MajorID: "major_00"}

	after, err := HashState(&s)
	if err != nil {
		t.Fatalf("HashState after debug mutation: %v", err)
	}
	if before != after {
		t.Fatalf("hash changed after mutating only the debug sidecar: %s vs %s", before, after)
	}
}
