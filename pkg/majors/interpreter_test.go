package majors

import (
	"testing"

	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/rng"
)

// fakeEnv is a minimal in-memory Env for exercising the interpreter in
// isolation from pkg/engine.
type fakeEnv struct {
	rngv   rng.RNG
	slots  []string // "" = empty
	vals   []int
	rev    []bool
	deck   []string
	gold   int
	hp     int
	maxHP  int
	events []events.Event

	disabledThisRoom   map[content.FateActionKind]bool
	weaponMode         content.WeaponRestrictionMode
	orderConstraint    content.OrderConstraintKind
	requiresCarryFirst bool
	floorParams        map[string]string
	forcedExile        bool
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		rngv:        rng.New(1),
		slots:       make([]string, 4),
		vals:        make([]int, 4),
		rev:         make([]bool, 4),
		deck:        []string{"d1", "d2", "d3", "d4", "d5"},
		gold:        10,
		hp:          10,
		maxHP:       20,
		disabledThisRoom: map[content.FateActionKind]bool{},
		floorParams: map[string]string{},
	}
}

func (f *fakeEnv) RNG() *rng.RNG                    { return &f.rngv }
func (f *fakeEnv) EmitEvent(e events.Event)         { f.events = append(f.events, e) }
func (f *fakeEnv) RoomSlotCount() int               { return len(f.slots) }
func (f *fakeEnv) RoomSlotCardID(slot int) (string, bool) {
	if f.slots[slot] == "" {
		return "", false
	}
	return f.slots[slot], true
}
func (f *fakeEnv) RoomSlotOrderingValue(slot int) int      { return f.vals[slot] }
func (f *fakeEnv) RoomSlotEffectiveReversed(slot int) bool { return f.rev[slot] }
func (f *fakeEnv) RoomHasEnemy() bool                      { return false }
func (f *fakeEnv) RoomHasAnyEffectiveReversed() bool {
	for _, r := range f.rev {
		if r {
			return true
		}
	}
	return false
}
func (f *fakeEnv) BottomSlotAndDraw(slot int) {
	f.deck = append(f.deck, f.slots[slot])
	f.slots[slot] = f.draw()
	f.rev[slot] = false
}
func (f *fakeEnv) ExileSlotAndDraw(slot int) {
	f.slots[slot] = f.draw()
	f.rev[slot] = false
}
func (f *fakeEnv) draw() string {
	c := f.deck[0]
	f.deck = f.deck[1:]
	return c
}
func (f *fakeEnv) SetCleanse(slot int, v bool) { f.rev[slot] = !v && f.rev[slot] }
func (f *fakeEnv) ReorderRoomByValue()         {}
func (f *fakeEnv) ReorderRoomArbitrary(order []int) {
	next := make([]string, len(f.slots))
	for i, from := range order {
		next[i] = f.slots[from]
	}
	f.slots = next
}
func (f *fakeEnv) PeekTopN(n int) []string {
	if n > len(f.deck) {
		n = len(f.deck)
	}
	out := make([]string, n)
	copy(out, f.deck[:n])
	return out
}
func (f *fakeEnv) ReorderTopN(order []string) {
	copy(f.deck, order)
}
func (f *fakeEnv) PlayerGold() int { return f.gold }
func (f *fakeEnv) PayGold(amount int) bool {
	if f.gold < amount {
		return false
	}
	f.gold -= amount
	return true
}
func (f *fakeEnv) ApplyDamage(amount int) { f.hp -= amount }
func (f *fakeEnv) ApplyHeal(amount int) {
	f.hp += amount
	if f.hp > f.maxHP {
		f.hp = f.maxHP
	}
}
func (f *fakeEnv) GainGold(amount int) { f.gold += amount }
func (f *fakeEnv) DisableFateAction(action content.FateActionKind, scope content.Scope) {
	f.disabledThisRoom[action] = true
}
func (f *fakeEnv) SetWeaponRestrictionMode(mode content.WeaponRestrictionMode) { f.weaponMode = mode }
func (f *fakeEnv) SetOrderConstraint(kind content.OrderConstraintKind, requiresChooseCarriedFirst bool) {
	f.orderConstraint = kind
	f.requiresCarryFirst = requiresChooseCarriedFirst
}
func (f *fakeEnv) SetFloorParam(key, value string, scope content.Scope) { f.floorParams[key] = value }
func (f *fakeEnv) SetForcedExileFirstResolveAttempt()                   { f.forcedExile = true }

func TestEvaluate_Noop(t *testing.T) {
	env := newFakeEnv()
	outcome, err := Evaluate(env, "fool", &content.Effect{Kind: content.Noop})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !outcome.Done {
		t.Fatal("expected Done for NOOP")
	}
}

func TestEvaluate_SequenceRunsInOrder(t *testing.T) {
	env := newFakeEnv()
	eff := &content.Effect{Kind: content.Sequence, Effects: []*content.Effect{
		{Kind: content.SetFloorParam, ParamKey: "chariotDirection", ParamValue: "LEFT_TO_RIGHT", EffectScope: content.ThisFloor},
		{Kind: content.SetWeaponRestrictionMode, Mode: content.WeaponStrict, EffectScope: content.ThisFloor},
	}}
	outcome, err := Evaluate(env, "chariot", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !outcome.Done {
		t.Fatal("expected Done")
	}
	if env.floorParams["chariotDirection"] != "LEFT_TO_RIGHT" {
		t.Fatalf("chariotDirection = %q", env.floorParams["chariotDirection"])
	}
	if env.weaponMode != content.WeaponStrict {
		t.Fatalf("weaponMode = %q", env.weaponMode)
	}
}

func TestEvaluate_ConditionalBranches(t *testing.T) {
	env := newFakeEnv()
	env.gold = 3
	eff := &content.Effect{
		Kind: content.Conditional,
		If:   &content.Condition{Predicate: content.PlayerGoldAtLeast, GoldAtLeast: 5},
		Then: &content.Effect{Kind: content.SetFloorParam, ParamKey: "x", ParamValue: "then", EffectScope: content.ThisFloor},
		Else: &content.Effect{Kind: content.SetFloorParam, ParamKey: "x", ParamValue: "else", EffectScope: content.ThisFloor},
	}
	if _, err := Evaluate(env, "m", eff); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if env.floorParams["x"] != "else" {
		t.Fatalf("expected else branch, got %q", env.floorParams["x"])
	}
}

func TestEvaluate_ChoiceParksAndResumes(t *testing.T) {
	env := newFakeEnv()
	eff := &content.Effect{
		Kind:      content.Choice,
		PromptKey: "pick",
		Options: []content.ChoiceOption{
			{Key: "a", Effect: &content.Effect{Kind: content.SetFloorParam, ParamKey: "x", ParamValue: "a", EffectScope: content.ThisFloor}},
			{Key: "b", Effect: &content.Effect{Kind: content.SetFloorParam, ParamKey: "x", ParamValue: "b", EffectScope: content.ThisFloor}},
		},
	}
	outcome, err := Evaluate(env, "m", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.Done || outcome.Prompt == nil || outcome.Prompt.Kind != PromptChoice {
		t.Fatalf("expected parked PromptChoice, got %+v", outcome)
	}
	if len(outcome.Prompt.Options) != 2 {
		t.Fatalf("expected 2 options, got %v", outcome.Prompt.Options)
	}

	resumed, err := Resume(env, outcome.Continuation, Response{ChoiceKey: "b"})
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !resumed.Done {
		t.Fatal("expected Done after resume")
	}
	if env.floorParams["x"] != "b" {
		t.Fatalf("x = %q, want b", env.floorParams["x"])
	}
}

func TestEvaluate_BargainPayGoldInsufficientRejected(t *testing.T) {
	env := newFakeEnv()
	env.gold = 1
	eff := &content.Effect{
		Kind:      content.Bargain,
		PromptKey: "deal",
		BargainOptions: []content.BargainOption{
			{Key: "pay", PayGold: intPtr(5)},
			{Key: "free", GainGold: intPtr(1)},
		},
	}
	outcome, err := Evaluate(env, "m", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if _, err := Resume(env, outcome.Continuation, Response{ChoiceKey: "pay"}); err == nil {
		t.Fatal("expected error for insufficient gold")
	}
	if _, err := Resume(env, outcome.Continuation, Response{ChoiceKey: "free"}); err != nil {
		t.Fatalf("Resume free option: %v", err)
	}
	if env.gold != 2 {
		t.Fatalf("gold = %d, want 2", env.gold)
	}
}

func TestEvaluate_TargetSelectRandomNoCandidatesIsNoop(t *testing.T) {
	env := newFakeEnv() // all slots empty
	eff := &content.Effect{Kind: content.RerollRevealed, TargetSelector: content.RandomSelector}
	outcome, err := Evaluate(env, "m", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !outcome.Done {
		t.Fatal("expected no-op (Done) when no candidates")
	}
}

func TestEvaluate_TargetSelectLeftmostDeterministic(t *testing.T) {
	env := newFakeEnv()
	env.slots[1] = "cups_5"
	env.slots[2] = "cups_6"
	eff := &content.Effect{Kind: content.ExileReplaceRevealed, TargetSelector: content.Leftmost}
	outcome, err := Evaluate(env, "m", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !outcome.Done {
		t.Fatal("expected Done (Leftmost resolves deterministically)")
	}
	if env.slots[1] == "cups_5" {
		t.Fatal("expected slot 1 (leftmost occupied) to be replaced")
	}
	if env.slots[2] != "cups_6" {
		t.Fatal("slot 2 should be untouched")
	}
}

func TestEvaluate_CleanseRestrictedToReversedCandidates(t *testing.T) {
	env := newFakeEnv()
	env.slots[0] = "swords_4"
	env.rev[0] = false
	env.slots[1] = "swords_5"
	env.rev[1] = true
	eff := &content.Effect{Kind: content.CleanseRevealed, TargetSelector: content.PlayerChoice}
	outcome, err := Evaluate(env, "m", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.Done || outcome.Prompt == nil {
		t.Fatal("expected parked select-target prompt")
	}
	if len(outcome.Prompt.Candidates) != 1 || outcome.Prompt.Candidates[0] != 1 {
		t.Fatalf("expected only slot 1 as candidate, got %v", outcome.Prompt.Candidates)
	}
}

func TestEvaluate_PeekTopNReorderRoundTrip(t *testing.T) {
	env := newFakeEnv()
	eff := &content.Effect{Kind: content.PeekTopN, N: 3, CanReorder: true}
	outcome, err := Evaluate(env, "m", eff)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.Done || outcome.Prompt.Kind != PromptReorderTopN {
		t.Fatalf("expected parked PromptReorderTopN, got %+v", outcome)
	}
	if len(outcome.Prompt.TopIDs) != 3 {
		t.Fatalf("expected 3 peeked ids, got %v", outcome.Prompt.TopIDs)
	}
	reversed := []string{outcome.Prompt.TopIDs[2], outcome.Prompt.TopIDs[1], outcome.Prompt.TopIDs[0]}
	if _, err := Resume(env, outcome.Continuation, Response{Permutation: reversed}); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if env.deck[0] != reversed[0] || env.deck[1] != reversed[1] || env.deck[2] != reversed[2] {
		t.Fatalf("deck top = %v, want %v", env.deck[:3], reversed)
	}
}

func intPtr(v int) *int { return &v }
