package content

// UIDescriptor is a Major's three opaque string-table keys. The
// engine never interprets their text; it passes them through for the
// client to localize.
type UIDescriptor struct {
	NameKey   string `yaml:"name_key" json:"name_key"`
	FlavorKey string `yaml:"flavor_key" json:"flavor_key"`
	IconKey   string `yaml:"icon_key" json:"icon_key"`
}

// ShadowDef is a Major's automatic per-floor penalty: it fires at
// Trigger via the effect tree.
type ShadowDef struct {
	Trigger Trigger `yaml:"trigger" json:"trigger"`
	Effect  *Effect `yaml:"effect" json:"effect"`
}

// GiftDef is a Major's claimable benefit: it fires only on explicit
// USE_MAJOR_GIFT once the Major is attuned.
type GiftDef struct {
	Effect *Effect `yaml:"effect" json:"effect"`
}

// MajorDef is one Major Arcana's full definition.
type MajorDef struct {
	ID    string       `yaml:"id" json:"id"`
	UI    UIDescriptor `yaml:"ui" json:"ui"`
	Shadow ShadowDef   `yaml:"shadow" json:"shadow"`
	Gift   GiftDef     `yaml:"gift" json:"gift"`
}

// MajorsBundle is the raw, decoded majors_bundle document.
type MajorsBundle struct {
	ContentVersion string     `yaml:"content_version" json:"content_version"`
	Majors         []MajorDef `yaml:"majors" json:"majors"`
}

// StringsBundle maps opaque string keys to localized text. The engine
// never reads the values, only checks key existence.
type StringsBundle map[string]string

// Bundle is the engine's immutable, process-wide content: a validated
// majors_bundle indexed by id, plus the strings bundle it references.
// Set once by LoadContent and never mutated afterward.
type Bundle struct {
	ContentVersion string
	MajorOrder     []string // shuffle-source order: the order majors appeared in the bundle
	Majors         map[string]MajorDef
	Strings        StringsBundle
}

// MajorByID looks up a Major definition by id.
func (b *Bundle) MajorByID(id string) (MajorDef, bool) {
	m, ok := b.Majors[id]
	return m, ok
}

// RequiredMajorCount is the fixed size of the Major Arcana.
const RequiredMajorCount = 21
