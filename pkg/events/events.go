package events

// Kind identifies the shape of an Event's populated fields.
type Kind string

const (
	RoomRevealed     Kind = "ROOM_REVEALED"
	PeekTopN         Kind = "PEEK_TOP_N"
	PlayerHPChanged  Kind = "PLAYER_HP_CHANGED"
	PlayerGoldChange Kind = "PLAYER_GOLD_CHANGED"
	PlayerFateChange Kind = "PLAYER_FATE_CHANGED"
	CardBottomed     Kind = "CARD_BOTTOMED"
	CardExiled       Kind = "CARD_EXILED"
	CardResolved     Kind = "CARD_RESOLVED"
	EquipWeapon      Kind = "EQUIP_WEAPON"
	EquipArmor       Kind = "EQUIP_ARMOR"
	EquipSpell       Kind = "EQUIP_SPELL"
	DiscardEquipment Kind = "DISCARD_EQUIPMENT"
)

// Event is a tagged union flattened into one JSON-friendly struct.
// Only the fields relevant to Kind are populated.
type Event struct {
	Kind Kind `json:"kind"`

	// ROOM_REVEALED
	Slots []string `json:"slots,omitempty"`

	// PEEK_TOP_N
	N       int      `json:"n,omitempty"`
	CardIDs []string `json:"card_ids,omitempty"`

	// PLAYER_HP_CHANGED, PLAYER_GOLD_CHANGED, PLAYER_FATE_CHANGED
	Delta int `json:"delta,omitempty"`
	HP    int `json:"hp,omitempty"`
	Gold  int `json:"gold,omitempty"`
	Fate  int `json:"fate,omitempty"`

	// CARD_BOTTOMED, CARD_EXILED
	CardID string `json:"card_id,omitempty"`

	// CARD_RESOLVED
	SlotIndex int `json:"slot_index,omitempty"`

	// EQUIP_WEAPON, EQUIP_ARMOR, EQUIP_SPELL
	Value int `json:"value,omitempty"`

	// DISCARD_EQUIPMENT
	EquipmentKind string `json:"equipment_kind,omitempty"`
}

func HP(delta, hp int) Event         { return Event{Kind: PlayerHPChanged, Delta: delta, HP: hp} }
func Gold(delta, gold int) Event     { return Event{Kind: PlayerGoldChange, Delta: delta, Gold: gold} }
func Fate(delta, fate int) Event     { return Event{Kind: PlayerFateChange, Delta: delta, Fate: fate} }
func Bottomed(cardID string) Event   { return Event{Kind: CardBottomed, CardID: cardID} }
func Exiled(cardID string) Event     { return Event{Kind: CardExiled, CardID: cardID} }
func Resolved(cardID string, slot int) Event {
	return Event{Kind: CardResolved, CardID: cardID, SlotIndex: slot}
}
func Equip(kind Kind, cardID string, value int) Event {
	return Event{Kind: kind, CardID: cardID, Value: value}
}
func Discard(equipmentKind, cardID string) Event {
	return Event{Kind: DiscardEquipment, EquipmentKind: equipmentKind, CardID: cardID}
}
