package engine

import (
	"math"
	"sort"

	"github.com/dshills/foolsgambit/pkg/cards"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/rng"
)

// deckExhaustedPanic is raised by reduceCtx.draw when the active deck
// is empty. A draw from an empty deck can never happen under valid
// content and a correctly enumerated legal-action set, so Apply
// recovers it at its boundary and reports apierr.ErrDeckExhausted
// rather than threading an error return through every majors.Env
// method.
type deckExhaustedPanic struct{}

// reduceCtx adapts a working RunState to majors.Env so pkg/majors can
// evaluate shadow and gift effect trees without importing this
// package.
type reduceCtx struct {
	s    *RunState
	evts *[]events.Event
}

func (c *reduceCtx) emit(e events.Event) { *c.evts = append(*c.evts, e) }

func (c *reduceCtx) RNG() *rng.RNG            { return &c.s.RNG }
func (c *reduceCtx) EmitEvent(e events.Event) { c.emit(e) }

func (c *reduceCtx) RoomSlotCount() int { return len(c.s.Room.Slots) }

func (c *reduceCtx) RoomSlotCardID(slot int) (string, bool) {
	id := c.s.Room.Slots[slot]
	return id, id != ""
}

func (c *reduceCtx) RoomSlotOrderingValue(slot int) int {
	_, rank := cards.MustParseID(c.s.Room.Slots[slot])
	return cards.OrderingValue(rank, c.s.effectiveOrientation(slot))
}

func (c *reduceCtx) RoomSlotEffectiveReversed(slot int) bool {
	return c.s.effectiveOrientation(slot) == cards.Reversed
}

func (c *reduceCtx) RoomHasEnemy() bool {
	for i, id := range c.s.Room.Slots {
		if id == "" {
			continue
		}
		if _, rank := cards.MustParseID(id); cards.IsCourt(rank) {
			_ = i
			return true
		}
	}
	return false
}

func (c *reduceCtx) RoomHasAnyEffectiveReversed() bool {
	for i, id := range c.s.Room.Slots {
		if id == "" {
			continue
		}
		if c.s.effectiveOrientation(i) == cards.Reversed {
			return true
		}
	}
	return false
}

func (c *reduceCtx) draw() string {
	deck := c.s.activeDeck()
	if len(*deck) == 0 {
		panic(deckExhaustedPanic{})
	}
	id := (*deck)[0]
	*deck = (*deck)[1:]
	return id
}

func (c *reduceCtx) BottomSlotAndDraw(slot int) {
	id := c.s.Room.Slots[slot]
	deck := c.s.activeDeck()
	*deck = append(*deck, id)
	c.emit(events.Bottomed(id))
	c.s.Room.Slots[slot] = c.draw()
	c.s.Room.PendingCleanses[slot] = false
}

func (c *reduceCtx) ExileSlotAndDraw(slot int) {
	id := c.s.Room.Slots[slot]
	c.s.Floor.FloorDiscard = append(c.s.Floor.FloorDiscard, id)
	c.emit(events.Exiled(id))
	c.s.Room.Slots[slot] = c.draw()
	c.s.Room.PendingCleanses[slot] = false
}

func (c *reduceCtx) SetCleanse(slot int, cleansed bool) {
	c.s.Room.PendingCleanses[slot] = cleansed
}

func (c *reduceCtx) ReorderRoomByValue() {
	n := len(c.s.Room.Slots)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return roomSortKey(c.s, order[a]) < roomSortKey(c.s, order[b])
	})
	remapRoomOrder(&c.s.Room, order)
}

func roomSortKey(s *RunState, slot int) int {
	id := s.Room.Slots[slot]
	if id == "" {
		return math.MaxInt32
	}
	_, rank := cards.MustParseID(id)
	return cards.OrderingValue(rank, s.effectiveOrientation(slot))
}

func (c *reduceCtx) ReorderRoomArbitrary(order []int) {
	remapRoomOrder(&c.s.Room, order)
}

// remapRoomOrder rewrites Slots, ResolvedMask, and PendingCleanses
// into the arrangement order describes (order[i] names which old slot
// now sits at new index i), and re-maps CarriedIndex/CarryChoiceIndex
// to follow the cards they referred to.
func remapRoomOrder(r *Room, order []int) {
	var carriedID, carryChoiceID string
	if r.CarriedIndex != nil {
		carriedID = r.Slots[*r.CarriedIndex]
	}
	if r.CarryChoiceIndex != nil {
		carryChoiceID = r.Slots[*r.CarryChoiceIndex]
	}

	var newSlots [4]string
	var newResolved [4]bool
	var newCleanses [4]bool
	for i, from := range order {
		newSlots[i] = r.Slots[from]
		newResolved[i] = r.ResolvedMask[from]
		newCleanses[i] = r.PendingCleanses[from]
	}
	r.Slots = newSlots
	r.ResolvedMask = newResolved
	r.PendingCleanses = newCleanses

	if r.CarriedIndex != nil {
		r.CarriedIndex = indexOfCard(r.Slots, carriedID)
	}
	if r.CarryChoiceIndex != nil {
		r.CarryChoiceIndex = indexOfCard(r.Slots, carryChoiceID)
	}
}

func indexOfCard(slots [4]string, id string) *int {
	for i, s := range slots {
		if s == id {
			v := i
			return &v
		}
	}
	return nil
}

func (c *reduceCtx) PeekTopN(n int) []string {
	deck := *c.s.activeDeck()
	if n > len(deck) {
		n = len(deck)
	}
	out := make([]string, n)
	copy(out, deck[:n])
	return out
}

func (c *reduceCtx) ReorderTopN(order []string) {
	deck := c.s.activeDeck()
	n := len(order)
	if n > len(*deck) {
		n = len(*deck)
	}
	next := make([]string, 0, len(*deck))
	next = append(next, order[:n]...)
	next = append(next, (*deck)[n:]...)
	*deck = next
}

func (c *reduceCtx) PlayerGold() int { return c.s.Player.Gold }

func (c *reduceCtx) PayGold(amount int) bool {
	if c.s.Player.Gold < amount {
		return false
	}
	c.s.Player.Gold -= amount
	c.emit(events.Gold(-amount, c.s.Player.Gold))
	return true
}

func (c *reduceCtx) ApplyDamage(amount int) {
	applyDamage(c.s, c.evts, amount, false)
}

func (c *reduceCtx) ApplyHeal(amount int) {
	applyHeal(c.s, c.evts, amount)
}

func (c *reduceCtx) GainGold(amount int) {
	if amount == 0 {
		return
	}
	c.s.Player.Gold += amount
	if c.s.Player.Gold > 9999 {
		c.s.Player.Gold = 9999
	}
	c.emit(events.Gold(amount, c.s.Player.Gold))
}

func (c *reduceCtx) DisableFateAction(action content.FateActionKind, scope content.Scope) {
	if scope != content.ThisRoom {
		return
	}
	c.s.Room.DisabledFateActionsThisRoom[action] = true
}

func (c *reduceCtx) SetWeaponRestrictionMode(mode content.WeaponRestrictionMode) {
	c.s.Rules.WeaponRestrictionMode = mode
}

func (c *reduceCtx) SetOrderConstraint(kind content.OrderConstraintKind, requiresChooseCarriedFirst bool) {
	c.s.Rules.OrderConstraint = OrderConstraintState{
		Kind:                       kind,
		RequiresChooseCarriedFirst: requiresChooseCarriedFirst,
		ScopeMajorID:               c.s.Floor.ActiveMajorID,
	}
}

func (c *reduceCtx) SetFloorParam(key, value string, scope content.Scope) {
	switch key {
	case "cheatWeapon":
		c.s.Player.CheatWeaponNextEnemyFight = true
	case "chariotDirection":
		c.s.Floor.Params.ChariotDirection = value
	}
}

func (c *reduceCtx) SetForcedExileFirstResolveAttempt() {
	c.s.Floor.ForcedExileFirstResolveAttempt = true
}

// applyDamage reduces amount by the player's armor unless bypassArmor
// is set (reversed-cups damage bypasses armor entirely), discards a
// consumed armor card, and lowers hp, clamped at 0.
func applyDamage(s *RunState, evts *[]events.Event, amount int, bypassArmor bool) {
	if amount <= 0 {
		return
	}
	armorValue := 0
	if s.Player.Armor != nil {
		armorValue = s.Player.Armor.Value
	}
	result := cards.ApplyArmor(amount, armorValue, bypassArmor)
	if result.Consumed && s.Player.Armor != nil {
		cardID := s.Player.Armor.CardID
		s.Floor.FloorDiscard = append(s.Floor.FloorDiscard, cardID)
		s.Player.Armor = nil
		*evts = append(*evts, events.Discard("armor", cardID))
	}
	newHP := s.Player.HP - result.DamageAfter
	if newHP < 0 {
		newHP = 0
	}
	delta := newHP - s.Player.HP
	s.Player.HP = newHP
	if delta != 0 {
		*evts = append(*evts, events.HP(delta, s.Player.HP))
	}
}

// applyHeal raises hp by at most one positive amount per room, per
// §4.5's per-room healing limiter; it applies to every healing source.
func applyHeal(s *RunState, evts *[]events.Event, amount int) {
	if s.Room.HealingUsedThisRoom || amount <= 0 {
		return
	}
	delta := amount
	if delta > s.Player.MaxHP-s.Player.HP {
		delta = s.Player.MaxHP - s.Player.HP
	}
	if delta <= 0 {
		return
	}
	s.Player.HP += delta
	s.Room.HealingUsedThisRoom = true
	*evts = append(*evts, events.HP(delta, s.Player.HP))
}

// gainGold adjusts gold by delta (positive or negative), clamped to
// [0, 9999], emitting a PLAYER_GOLD_CHANGED event for the actual
// change.
func gainGold(s *RunState, evts *[]events.Event, delta int) {
	newGold := s.Player.Gold + delta
	if newGold < 0 {
		newGold = 0
	}
	if newGold > 9999 {
		newGold = 9999
	}
	actual := newGold - s.Player.Gold
	s.Player.Gold = newGold
	if actual != 0 {
		*evts = append(*evts, events.Gold(actual, s.Player.Gold))
	}
}

func gainFate(s *RunState, evts *[]events.Event, amount int) {
	if amount == 0 {
		return
	}
	newFate := s.Player.Fate + amount
	if newFate > 10 {
		newFate = 10
	}
	if newFate < 0 {
		newFate = 0
	}
	delta := newFate - s.Player.Fate
	s.Player.Fate = newFate
	if delta != 0 {
		*evts = append(*evts, events.Fate(delta, s.Player.Fate))
	}
}
