package engine

import (
	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/majors"
)

// bossRoomsRequiredForFloor implements §4.5's boss-room count by floor
// band.
func bossRoomsRequiredForFloor(floorNumber int) int {
	switch {
	case floorNumber <= 7:
		return 2
	case floorNumber <= 14:
		return 3
	default:
		return 4
	}
}

// startFloor advances to the next floor: draws its Major, rebuilds and
// shuffles the minor deck, and resets every floor- and room-scoped
// piece of state. The caller is responsible for the subsequent
// SELECT_ATTUNEMENT legal-action surface.
func startFloor(s *RunState) {
	s.Floor.FloorNumber++
	if len(s.MajorDeck) > 0 {
		s.Floor.ActiveMajorID = s.MajorDeck[0]
		s.MajorDeck = s.MajorDeck[1:]
	}

	equipped := map[string]bool{}
	for _, id := range s.Player.EquippedCardIDs() {
		equipped[id] = true
	}
	minor := make([]string, 0, cards.Count)
	for _, id := range cards.AllCardIDs() {
		if !equipped[id] {
			minor = append(minor, id)
		}
	}
	s.RNG.ShuffleStrings(minor)
	s.MinorDeck = minor

	s.Floor.FloorDiscard = nil
	s.Floor.BossDeck = nil
	s.Floor.BossMode = false
	s.Floor.BossRoomsCompleted = 0
	s.Floor.EngagedRoomsCompleted = 0
	s.Floor.BossRoomsRequired = bossRoomsRequiredForFloor(s.Floor.FloorNumber)
	s.Floor.Params = FloorParams{}
	s.Floor.ForcedExileFirstResolveAttempt = false

	s.Rules.WeaponRestrictionMode = content.WeaponDefault
	s.Rules.OrderConstraint = OrderConstraintState{Kind: content.OrderNone}

	s.Majors.SpentThisFloor = nil
	s.Room = newRoom()
	s.Phase = PhaseFloorStart
}

// attunementSubsets enumerates every subset of claimed of size
// 0..min(3,len(claimed)) in the locked order: empty set, then
// singletons in claimed order, then pairs (lex by index), then
// triples (lex by index).
func attunementSubsets(claimed []string) [][]string {
	n := len(claimed)
	max := 3
	if n < max {
		max = n
	}
	var out [][]string
	out = append(out, nil)
	for size := 1; size <= max; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			set := make([]string, size)
			for i, j := range idx {
				set[i] = claimed[j]
			}
			out = append(out, set)
			if !nextCombination(idx, n) {
				break
			}
		}
	}
	return out
}

// nextCombination advances idx (a strictly increasing index tuple
// into a slice of length n) to the next combination in lexicographic
// order, reporting whether one exists.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}

// runShadowIfTriggered runs the active Major's shadow effect when its
// trigger matches one of wanted, parking a PendingPrompt if the
// effect tree needs a decision. It reports the PendingPrompt to
// install (nil if the effect completed or the trigger didn't match).
func runShadowIfTriggered(s *RunState, evts *[]events.Event, bundle *content.Bundle, wanted ...content.Trigger) (*PendingPrompt, error) {
	def, ok := bundle.MajorByID(s.Floor.ActiveMajorID)
	if !ok {
		return nil, nil
	}
	matched := false
	for _, t := range wanted {
		if def.Shadow.Trigger == t {
			matched = true
			break
		}
	}
	if !matched {
		return nil, nil
	}

	ctx := &reduceCtx{s: s, evts: evts}
	outcome, err := majors.Evaluate(ctx, def.ID, def.Shadow.Effect)
	if err != nil {
		return nil, err
	}
	if outcome.Done {
		return nil, nil
	}
	s.Debug.Continuation = outcome.Continuation
	return &PendingPrompt{
		Kind:         PromptMajorEffect,
		MajorID:      def.ID,
		MajorHook:    HookShadow,
		MajorTrigger: def.Shadow.Trigger,
		MajorPrompt:  outcome.Prompt,
	}, nil
}

// selectAttunement applies SELECT_ATTUNEMENT: it records the chosen
// attunement set and starts the fixed FLOOR_START → ORDER_CONSTRAINT →
// RoomReveal shadow-hook sequence per §4.5's FloorStart transition.
func selectAttunement(s *RunState, evts *[]events.Event, bundle *content.Bundle, attuned []string) (*PendingPrompt, error) {
	s.Majors.Attuned = attuned
	return floorStartShadowSequence(s, evts, bundle)
}

// floorStartShadowSequence runs the FLOOR_START shadow hook, parking a
// prompt with ResumeOrderConstraintShadow if it needs a decision.
func floorStartShadowSequence(s *RunState, evts *[]events.Event, bundle *content.Bundle) (*PendingPrompt, error) {
	prompt, err := runShadowIfTriggered(s, evts, bundle, content.FloorStart)
	if err != nil {
		return nil, err
	}
	if prompt != nil {
		prompt.ResumeAction = ResumeOrderConstraintShadow
		return prompt, nil
	}
	return orderConstraintShadowSequence(s, evts, bundle)
}

// orderConstraintShadowSequence runs the ORDER_CONSTRAINT shadow hook,
// parking a prompt with ResumeRevealRoom if it needs a decision.
func orderConstraintShadowSequence(s *RunState, evts *[]events.Event, bundle *content.Bundle) (*PendingPrompt, error) {
	prompt, err := runShadowIfTriggered(s, evts, bundle, content.OrderConstraintTrigger)
	if err != nil {
		return nil, err
	}
	if prompt != nil {
		prompt.ResumeAction = ResumeRevealRoom
		return prompt, nil
	}
	return revealRoom(s, evts, bundle)
}

// revealRoom fills empty slots from the active deck up to 4, emits
// ROOM_REVEALED, and runs the ROOM_REVEALED shadow hook.
func revealRoom(s *RunState, evts *[]events.Event, bundle *content.Bundle) (*PendingPrompt, error) {
	ctx := &reduceCtx{s: s, evts: evts}
	for i := range s.Room.Slots {
		if s.Room.Slots[i] == "" {
			s.Room.Slots[i] = ctx.draw()
		}
	}
	*evts = append(*evts, events.Event{Kind: events.RoomRevealed, Slots: append([]string(nil), s.Room.Slots[:]...)})
	s.Phase = PhaseRoomChoice
	return runShadowIfTriggered(s, evts, bundle, content.RoomRevealed)
}

// completeRoom handles RoomEnd: counts the room toward boss or engage
// progress, enters boss mode once six rooms are engaged, and checks
// boss-major defeat. It leaves the new room empty except for the
// surviving carried slot; the caller fills it via revealRoom.
func completeRoom(s *RunState, evts *[]events.Event) bool /* victory */ {
	if s.Floor.BossMode {
		s.Floor.BossRoomsCompleted++
	} else {
		s.Floor.EngagedRoomsCompleted++
	}

	carried := carriedCardID(s.Room)

	if !s.Floor.BossMode && s.Floor.EngagedRoomsCompleted >= 6 {
		bossDeck := append([]string(nil), s.Floor.FloorDiscard...)
		s.RNG.ShuffleStrings(bossDeck)
		s.Floor.BossDeck = bossDeck
		s.Floor.FloorDiscard = nil
		s.Floor.BossMode = true
	}

	s.Room = newRoom()
	if carried != "" {
		s.Room.Slots[0] = carried
		zero := 0
		s.Room.CarriedIndex = &zero
	}

	if s.Floor.BossMode && s.Floor.BossRoomsCompleted >= s.Floor.BossRoomsRequired {
		majorID := s.Floor.ActiveMajorID
		if !containsStr(s.Majors.Claimed, majorID) {
			s.Majors.Claimed = append(s.Majors.Claimed, majorID)
		}
		s.Majors.SpentThisFloor = append(s.Majors.SpentThisFloor, majorID)
		if len(s.Majors.Claimed) >= s.RunLengthTarget {
			s.Phase = PhaseRunVictory
			return true
		}
		startFloor(s)
		return false
	}

	s.Phase = PhaseRoomReveal
	return false
}

// carriedCardID returns the single surviving card id of a just-ended
// room (the one unresolved, non-empty slot), or "" if none.
func carriedCardID(r Room) string {
	for i, id := range r.Slots {
		if id != "" && !r.ResolvedMask[i] {
			return id
		}
	}
	return ""
}

func containsStr(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
