package engine

import (
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/majors"
	"github.com/dshills/foolsgambit/pkg/rng"
)

// Phase is the reducer's finite state.
type Phase string

const (
	PhaseRunInit          Phase = "RUN_INIT"
	PhaseFloorStart       Phase = "FLOOR_START"
	PhaseRoomReveal       Phase = "ROOM_REVEAL"
	PhaseRoomChoice       Phase = "ROOM_CHOICE"
	PhaseEngageSetup      Phase = "ENGAGE_SETUP"
	PhasePreResolveWindow Phase = "PRE_RESOLVE_WINDOW"
	PhaseResolveCommit    Phase = "RESOLVE_COMMIT"
	PhaseResolveExecute   Phase = "RESOLVE_EXECUTE"
	PhaseRoomEnd          Phase = "ROOM_END"
	PhaseRunVictory       Phase = "RUN_VICTORY"
	PhaseRunDefeat        Phase = "RUN_DEFEAT"
)

// Equipment is one of the player's three equipment slots.
type Equipment struct {
	CardID                string
	Value                 int
	LastHelpedDefeatValue *int
	TuckedEnemyIDs        []string
}

func (e *Equipment) clone() *Equipment {
	if e == nil {
		return nil
	}
	out := &Equipment{CardID: e.CardID, Value: e.Value}
	if e.LastHelpedDefeatValue != nil {
		v := *e.LastHelpedDefeatValue
		out.LastHelpedDefeatValue = &v
	}
	out.TuckedEnemyIDs = append([]string(nil), e.TuckedEnemyIDs...)
	return out
}

// Player is the player's mutable battle state.
type Player struct {
	HP    int
	MaxHP int
	Gold  int
	Fate  int

	Weapon *Equipment
	Armor  *Equipment
	Spell  *Equipment

	CheatWeaponNextEnemyFight bool
	CheatWeaponThisRoom       bool
}

func (p Player) clone() Player {
	p.Weapon = p.Weapon.clone()
	p.Armor = p.Armor.clone()
	p.Spell = p.Spell.clone()
	return p
}

// EquippedCardIDs lists the card ids currently held in equipment
// slots (used when rebuilding the minor deck at floor start).
func (p Player) EquippedCardIDs() []string {
	var out []string
	for _, eq := range []*Equipment{p.Weapon, p.Armor, p.Spell} {
		if eq != nil {
			out = append(out, eq.CardID)
		}
	}
	return out
}

// FloorParams holds the floor-scoped SET_FLOOR_PARAM targets the
// content vocabulary recognizes.
type FloorParams struct {
	ChariotDirection string // "", LEFT_TO_RIGHT, RIGHT_TO_LEFT
}

// Floor is the current floor's progression state.
type Floor struct {
	FloorNumber           int
	ActiveMajorID         string
	EngagedRoomsCompleted int
	FloorDiscard          []string
	BossMode              bool
	BossRoomsRequired     int
	BossRoomsCompleted    int
	BossDeck              []string // nil unless BossMode
	Params                FloorParams

	// ForcedExileFirstResolveAttempt is set whenever an evaluated
	// effect tree reaches a FORCED_EXILE_FIRST_RESOLVE_ATTEMPT node and
	// stays set until the next floor starts. The reducer does not read
	// it: the Hanged Man hook (hangedManApplies) checks the active
	// Major's shadow definition and Room.HangedManTriggeredThisRoom.
	ForcedExileFirstResolveAttempt bool
}

func (f Floor) clone() Floor {
	f.FloorDiscard = append([]string(nil), f.FloorDiscard...)
	if f.BossDeck != nil {
		f.BossDeck = append([]string(nil), f.BossDeck...)
	}
	return f
}

// Room is the four-slot encounter currently in play.
type Room struct {
	Slots           [4]string
	ResolvedMask    [4]bool
	PendingCleanses [4]bool

	CarriedIndex     *int
	CarryChoiceIndex *int

	LeapUsed                   bool
	HealingUsedThisRoom        bool
	HangedManTriggeredThisRoom bool
	DisabledFateActionsThisRoom map[content.FateActionKind]bool
}

func newRoom() Room {
	return Room{DisabledFateActionsThisRoom: map[content.FateActionKind]bool{}}
}

func (r Room) clone() Room {
	if r.CarriedIndex != nil {
		v := *r.CarriedIndex
		r.CarriedIndex = &v
	}
	if r.CarryChoiceIndex != nil {
		v := *r.CarryChoiceIndex
		r.CarryChoiceIndex = &v
	}
	m := make(map[content.FateActionKind]bool, len(r.DisabledFateActionsThisRoom))
	for k, v := range r.DisabledFateActionsThisRoom {
		m[k] = v
	}
	r.DisabledFateActionsThisRoom = m
	return r
}

// OccupiedSlots returns the indices of non-empty slots in ascending
// order.
func (r Room) OccupiedSlots() []int {
	var out []int
	for i, id := range r.Slots {
		if id != "" {
			out = append(out, i)
		}
	}
	return out
}

// MajorsState tracks the Majors a run has defeated and attuned.
type MajorsState struct {
	Claimed        []string
	Attuned        []string
	SpentThisFloor []string
}

func (m MajorsState) clone() MajorsState {
	m.Claimed = append([]string(nil), m.Claimed...)
	m.Attuned = append([]string(nil), m.Attuned...)
	m.SpentThisFloor = append([]string(nil), m.SpentThisFloor...)
	return m
}

// OrderConstraintState is the floor's current commit-slot ordering
// regime.
type OrderConstraintState struct {
	Kind                       content.OrderConstraintKind
	RequiresChooseCarriedFirst bool
	ScopeMajorID               string
}

// RulesState holds floor- and room-scoped rule overrides a Major's
// shadow may install.
type RulesState struct {
	WeaponRestrictionMode content.WeaponRestrictionMode
	OrderConstraint       OrderConstraintState
}

// PromptKind identifies the shape of a parked pending prompt.
type PromptKind string

const (
	PromptAce               PromptKind = "ACE"
	PromptEnemyFightChoice  PromptKind = "ENEMY_FIGHT_CHOICE"
	PromptSwordsAmbush      PromptKind = "SWORDS_AMBUSH_BLOCK"
	PromptCupsChoice        PromptKind = "CUPS_CHOICE"
	PromptMajorEffect       PromptKind = "MAJOR_EFFECT"
)

// MajorHookKind distinguishes a shadow firing automatically from a
// gift the player spent explicitly, since they resume differently.
type MajorHookKind string

const (
	HookShadow MajorHookKind = "SHADOW"
	HookGift   MajorHookKind = "GIFT"
)

// ResumeAction names what the reducer does after a parked
// PendingPrompt resolves, when that continuation is more than "stay
// put" (the zero value).
type ResumeAction string

const (
	// ResumeOrderConstraintShadow follows the FLOOR_START shadow hook:
	// once the prompt resolves, run the ORDER_CONSTRAINT shadow next,
	// per FloorStart's fixed two-hook sequence.
	ResumeOrderConstraintShadow ResumeAction = "ORDER_CONSTRAINT_SHADOW"
	// ResumeRevealRoom follows the ORDER_CONSTRAINT shadow hook: once
	// the prompt resolves, fill and reveal the room.
	ResumeRevealRoom ResumeAction = "REVEAL_ROOM"
	// ResumeCheckRoomEnd follows the AFTER_FIRST_RESOLUTION shadow
	// hook: once the prompt resolves, run the room/floor completion
	// check that would otherwise have run immediately.
	ResumeCheckRoomEnd ResumeAction = "CHECK_ROOM_END"
)

// AceOption is one legal resolution of a parked Ace prompt. Slot is
// -1 when the option does not target another room slot.
type AceOption struct {
	Key  string
	Slot int
}

// PendingPrompt is the transient sum type surfaced when the reducer
// cannot progress without a decision. At most one exists at a time.
type PendingPrompt struct {
	Kind PromptKind
	Slot int

	// PromptMajorEffect
	MajorID      string
	MajorHook    MajorHookKind
	MajorTrigger content.Trigger
	MajorPrompt  *majors.Prompt
	ResumeAction ResumeAction

	// PromptAce
	AceOptions []AceOption
}

// PendingResolution is the slot currently being resolved.
type PendingResolution struct {
	Slot   int
	CardID string
}

// debugSidecar carries state excluded from the canonical hash: it
// exists only so Apply can resume a parked majors.Continuation across
// calls without re-deriving it from the hashable state.
type debugSidecar struct {
	Continuation *majors.Continuation
}

func (d debugSidecar) clone() debugSidecar {
	return d // majors.Continuation trees are immutable once parked
}

// RunState is the engine's complete state. It is created by CreateRun,
// mutated only by Apply, and never aliased across the old/new pair
// Apply returns.
type RunState struct {
	RNG             rng.RNG
	RunLengthTarget int
	Phase           Phase

	Player Player
	Floor  Floor
	Room   Room
	Majors MajorsState
	Rules  RulesState

	MinorDeck       []string
	MajorDeck       []string
	LastRoomWasFlee bool

	// Orientations is every minor card's current physical orientation,
	// assigned once at CreateRun and mutated only by
	// USE_LEAP_OF_FAITH. It is independent of where the card
	// currently lives (slot, deck, discard, equipment).
	Orientations map[string]cards.Orientation

	PendingPrompt     *PendingPrompt
	PendingResolution *PendingResolution

	Debug debugSidecar
}

// Clone returns a deep copy of s that shares no mutable state with
// it. Apply always operates on a clone of its input and returns that
// clone, never the input value itself.
func (s RunState) Clone() RunState {
	s.Player = s.Player.clone()
	s.Floor = s.Floor.clone()
	s.Room = s.Room.clone()
	s.Majors = s.Majors.clone()
	s.MinorDeck = append([]string(nil), s.MinorDeck...)
	s.MajorDeck = append([]string(nil), s.MajorDeck...)
	orient := make(map[string]cards.Orientation, len(s.Orientations))
	for k, v := range s.Orientations {
		orient[k] = v
	}
	s.Orientations = orient
	if s.PendingPrompt != nil {
		pp := *s.PendingPrompt
		s.PendingPrompt = &pp
	}
	if s.PendingResolution != nil {
		pr := *s.PendingResolution
		s.PendingResolution = &pr
	}
	s.Debug = s.Debug.clone()
	return s
}

// activeDeck returns a pointer to the deck the reducer draws from
// right now: the boss deck while BossMode, otherwise the minor deck.
func (s *RunState) activeDeck() *[]string {
	if s.Floor.BossMode {
		return &s.Floor.BossDeck
	}
	return &s.MinorDeck
}

func (s *RunState) effectiveOrientation(slot int) cards.Orientation {
	id := s.Room.Slots[slot]
	_, rank := cards.MustParseID(id)
	physical := s.Orientations[id]
	return cards.EffectiveOrientation(physical, s.Floor.BossMode, rank, s.Room.PendingCleanses[slot])
}
