package majors

import (
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/events"
	"github.com/dshills/foolsgambit/pkg/rng"
)

// Env is the set of room, deck, player, and rule-state operations the
// effect vocabulary needs. It is implemented by pkg/engine's reducer
// context.
type Env interface {
	RNG() *rng.RNG
	EmitEvent(events.Event)

	// RoomSlotCount returns the fixed number of room slots (4).
	RoomSlotCount() int
	// RoomSlotCardID reports the card occupying slot, or ("", false)
	// if the slot is empty.
	RoomSlotCardID(slot int) (string, bool)
	// RoomSlotOrderingValue returns the ordering value (§4.3) of the
	// card in slot, using its effective orientation at this instant.
	RoomSlotOrderingValue(slot int) int
	// RoomSlotEffectiveReversed reports whether the occupied slot's
	// effective orientation is reversed.
	RoomSlotEffectiveReversed(slot int) bool
	RoomHasEnemy() bool
	RoomHasAnyEffectiveReversed() bool

	// BottomSlotAndDraw bottoms the slot's current card into the
	// active deck, draws a replacement into the slot, and clears the
	// slot's cleanse flag. Used by REROLL_REVEALED.
	BottomSlotAndDraw(slot int)
	// ExileSlotAndDraw exiles the slot's current card to floor
	// discard, draws a replacement into the slot, and clears the
	// slot's cleanse flag. Used by EXILE_REPLACE_REVEALED.
	ExileSlotAndDraw(slot int)
	// SetCleanse sets or clears the slot's pending-cleanse flag.
	SetCleanse(slot int, cleansed bool)
	// ReorderRoomByValue reorders slots (and their cleanse/resolved
	// state, carried/carry-choice indices) into ascending ordering
	// value, ties broken by original index.
	ReorderRoomByValue()
	// ReorderRoomArbitrary applies order — a permutation of slot
	// indices giving the new left-to-right arrangement — with the
	// same re-mapping as ReorderRoomByValue.
	ReorderRoomArbitrary(order []int)

	// PeekTopN returns the top n card ids of the active deck without
	// removing them.
	PeekTopN(n int) []string
	// ReorderTopN splices order back onto the top of the active deck,
	// replacing its current top len(order) cards.
	ReorderTopN(order []string)

	PlayerGold() int
	// PayGold deducts amount if the player has at least that much
	// gold, reporting whether the deduction happened.
	PayGold(amount int) bool
	ApplyDamage(amount int)
	ApplyHeal(amount int)
	GainGold(amount int)

	DisableFateAction(action content.FateActionKind, scope content.Scope)
	SetWeaponRestrictionMode(mode content.WeaponRestrictionMode)
	SetOrderConstraint(kind content.OrderConstraintKind, requiresChooseCarriedFirst bool)
	SetFloorParam(key, value string, scope content.Scope)
	SetForcedExileFirstResolveAttempt()
}
