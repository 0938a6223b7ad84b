package content

// Trigger identifies when a Major's shadow effect fires automatically.
type Trigger string

const (
	FloorStart               Trigger = "FLOOR_START"
	RoomRevealed              Trigger = "ROOM_REVEALED"
	OrderConstraintTrigger    Trigger = "ORDER_CONSTRAINT"
	BeforeFirstResolveAttempt Trigger = "BEFORE_FIRST_RESOLVE_ATTEMPT"
	AfterFirstResolution      Trigger = "AFTER_FIRST_RESOLUTION"
)

var validTriggers = map[Trigger]bool{
	FloorStart: true, RoomRevealed: true, OrderConstraintTrigger: true,
	BeforeFirstResolveAttempt: true, AfterFirstResolution: true,
}

// EffectKind is one of the closed set of effect-tree primitives.
type EffectKind string

const (
	Noop                         EffectKind = "NOOP"
	Sequence                     EffectKind = "SEQUENCE"
	Choice                       EffectKind = "CHOICE"
	Conditional                  EffectKind = "CONDITIONAL"
	RerollRevealed               EffectKind = "REROLL_REVEALED"
	ExileReplaceRevealed         EffectKind = "EXILE_REPLACE_REVEALED"
	CleanseRevealed              EffectKind = "CLEANSE_REVEALED"
	PeekTopN                     EffectKind = "PEEK_TOP_N"
	ReorderTopN                  EffectKind = "REORDER_TOP_N"
	ReorderRoomByValue           EffectKind = "REORDER_ROOM_BY_VALUE"
	ReorderRoomArbitrary         EffectKind = "REORDER_ROOM_ARBITRARY"
	Bargain                      EffectKind = "BARGAIN"
	DisableFateAction            EffectKind = "DISABLE_FATE_ACTION"
	SetWeaponRestrictionMode     EffectKind = "SET_WEAPON_RESTRICTION_MODE"
	SetOrderConstraint           EffectKind = "SET_ORDER_CONSTRAINT"
	SetFloorParam                EffectKind = "SET_FLOOR_PARAM"
	ForcedExileFirstResolveAttempt EffectKind = "FORCED_EXILE_FIRST_RESOLVE_ATTEMPT"
)

var validEffectKinds = map[EffectKind]bool{
	Noop: true, Sequence: true, Choice: true, Conditional: true,
	RerollRevealed: true, ExileReplaceRevealed: true, CleanseRevealed: true,
	PeekTopN: true, ReorderTopN: true, ReorderRoomByValue: true,
	ReorderRoomArbitrary: true, Bargain: true, DisableFateAction: true,
	SetWeaponRestrictionMode: true, SetOrderConstraint: true,
	SetFloorParam: true, ForcedExileFirstResolveAttempt: true,
}

// Selector names a target-selection strategy for primitives that act
// on a revealed slot.
type Selector string

const (
	PlayerChoice                Selector = "PLAYER_CHOICE"
	RandomSelector               Selector = "RANDOM"
	Leftmost                    Selector = "LEFTMOST"
	HighestValue                Selector = "HIGHEST_VALUE"
	IfEnemyPresentPlayerChoice  Selector = "IF_ENEMY_PRESENT_PLAYER_CHOICE"
	IfAnyReversedPlayerChoice   Selector = "IF_ANY_REVERSED_PLAYER_CHOICE"
)

var validSelectors = map[Selector]bool{
	PlayerChoice: true, RandomSelector: true, Leftmost: true,
	HighestValue: true, IfEnemyPresentPlayerChoice: true, IfAnyReversedPlayerChoice: true,
}

// Predicate names a CONDITIONAL test.
type Predicate string

const (
	RoomHasEnemy               Predicate = "ROOM_HAS_ENEMY"
	RoomHasAnyEffectiveReversed Predicate = "ROOM_HAS_ANY_EFFECTIVE_REVERSED"
	PlayerGoldAtLeast          Predicate = "PLAYER_GOLD_AT_LEAST"
)

var validPredicates = map[Predicate]bool{
	RoomHasEnemy: true, RoomHasAnyEffectiveReversed: true, PlayerGoldAtLeast: true,
}

// Scope names how long a rule-state mutation persists.
type Scope string

const (
	ThisRoom  Scope = "THIS_ROOM"
	ThisFloor Scope = "THIS_FLOOR"
)

var validScopes = map[Scope]bool{ThisRoom: true, ThisFloor: true}

// FateActionKind names a Fate-spending action DISABLE_FATE_ACTION can
// suppress.
type FateActionKind string

const (
	FateCleanse FateActionKind = "CLEANSE"
	FateReroll  FateActionKind = "REROLL"
)

var validFateActions = map[FateActionKind]bool{FateCleanse: true, FateReroll: true}

// WeaponRestrictionMode names the two weapon-usability regimes.
type WeaponRestrictionMode string

const (
	WeaponDefault WeaponRestrictionMode = "DEFAULT"
	WeaponStrict  WeaponRestrictionMode = "STRICT"
)

var validWeaponModes = map[WeaponRestrictionMode]bool{WeaponDefault: true, WeaponStrict: true}

// OrderConstraintKind names the commit-slot ordering regimes.
type OrderConstraintKind string

const (
	OrderNone             OrderConstraintKind = "NONE"
	OrderLeftToRight      OrderConstraintKind = "LEFT_TO_RIGHT"
	OrderRightToLeft      OrderConstraintKind = "RIGHT_TO_LEFT"
	OrderSuitOrder        OrderConstraintKind = "SUIT_ORDER"
	OrderAscOrderingValue OrderConstraintKind = "ASC_ORDERING_VALUE"
)

var validOrderConstraints = map[OrderConstraintKind]bool{
	OrderNone: true, OrderLeftToRight: true, OrderRightToLeft: true,
	OrderSuitOrder: true, OrderAscOrderingValue: true,
}
