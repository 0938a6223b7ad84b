package content

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dshills/foolsgambit/pkg/apierr"
)

func validMajorsBundle(n int) MajorsBundle {
	majors := make([]MajorDef, 0, n)
	for i := 0; i < n; i++ {
		id := "major_" + string(rune('a'+i))
		majors = append(majors, MajorDef{
			ID: id,
			UI: UIDescriptor{
				NameKey:   id + "_name",
				FlavorKey: id + "_flavor",
				IconKey:   id + "_icon",
			},
			Shadow: ShadowDef{
				Trigger: FloorStart,
				Effect:  &Effect{Kind: Noop},
			},
			Gift: GiftDef{
				Effect: &Effect{Kind: Noop},
			},
		})
	}
	return MajorsBundle{ContentVersion: "v1", Majors: majors}
}

func stringsFor(b MajorsBundle) StringsBundle {
	strs := StringsBundle{}
	for _, m := range b.Majors {
		strs[m.UI.NameKey] = "Name"
		strs[m.UI.FlavorKey] = "Flavor"
		strs[m.UI.IconKey] = "icon.png"
	}
	return strs
}

func marshalJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	return data
}

func TestLoadContent_Valid(t *testing.T) {
	mb := validMajorsBundle(21)
	strs := stringsFor(mb)

	bundle, err := LoadContent(marshalJSON(t, mb), marshalJSON(t, strs))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if len(bundle.Majors) != 21 {
		t.Fatalf("got %d majors, want 21", len(bundle.Majors))
	}
	if len(bundle.MajorOrder) != 21 {
		t.Fatalf("got %d in MajorOrder, want 21", len(bundle.MajorOrder))
	}
	if _, ok := bundle.MajorByID("major_a"); !ok {
		t.Fatal("major_a not found")
	}
}

func TestLoadContent_WrongMajorCount(t *testing.T) {
	mb := validMajorsBundle(20)
	strs := stringsFor(mb)

	_, err := LoadContent(marshalJSON(t, mb), marshalJSON(t, strs))
	if err == nil {
		t.Fatal("expected error for wrong major count")
	}
	if !errors.Is(err, apierr.ErrContentInvalid) {
		t.Fatalf("error %v does not wrap ErrContentInvalid", err)
	}
}

func TestLoadContent_DuplicateID(t *testing.T) {
	mb := validMajorsBundle(21)
	mb.Majors[1].ID = mb.Majors[0].ID
	strs := stringsFor(mb)

	_, err := LoadContent(marshalJSON(t, mb), marshalJSON(t, strs))
	if err == nil || !errors.Is(err, apierr.ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid, got %v", err)
	}
}

func TestLoadContent_MissingStringKey(t *testing.T) {
	mb := validMajorsBundle(21)
	strs := stringsFor(mb)
	delete(strs, mb.Majors[0].UI.NameKey)

	_, err := LoadContent(marshalJSON(t, mb), marshalJSON(t, strs))
	if err == nil || !errors.Is(err, apierr.ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid, got %v", err)
	}
}

func TestLoadContent_UnknownTrigger(t *testing.T) {
	mb := validMajorsBundle(21)
	mb.Majors[0].Shadow.Trigger = "NOT_A_TRIGGER"
	strs := stringsFor(mb)

	_, err := LoadContent(marshalJSON(t, mb), marshalJSON(t, strs))
	if err == nil || !errors.Is(err, apierr.ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid, got %v", err)
	}
}

func TestLoadContent_MalformedEffect(t *testing.T) {
	mb := validMajorsBundle(21)
	mb.Majors[0].Shadow.Effect = &Effect{Kind: Sequence} // SEQUENCE requires effects
	strs := stringsFor(mb)

	_, err := LoadContent(marshalJSON(t, mb), marshalJSON(t, strs))
	if err == nil || !errors.Is(err, apierr.ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid, got %v", err)
	}
}

func TestValidateEffect_KindRequirements(t *testing.T) {
	tests := []struct {
		name    string
		effect  *Effect
		wantErr bool
	}{
		{"noop", &Effect{Kind: Noop}, false},
		{"sequence missing children", &Effect{Kind: Sequence}, true},
		{"sequence with children", &Effect{Kind: Sequence, Effects: []*Effect{{Kind: Noop}}}, false},
		{"choice missing prompt", &Effect{Kind: Choice, Options: []ChoiceOption{{Key: "a", Effect: &Effect{Kind: Noop}}}}, true},
		{"choice valid", &Effect{Kind: Choice, PromptKey: "p", Options: []ChoiceOption{
			{Key: "a", Effect: &Effect{Kind: Noop}}, {Key: "b", Effect: &Effect{Kind: Noop}},
		}}, false},
		{"bargain too few options", &Effect{Kind: Bargain, PromptKey: "p", BargainOptions: []BargainOption{{Key: "a"}}}, true},
		{"bargain valid", &Effect{Kind: Bargain, PromptKey: "p", BargainOptions: []BargainOption{{Key: "a"}, {Key: "b"}}}, false},
		{"peek wrong n", &Effect{Kind: PeekTopN, N: 5}, true},
		{"peek n=3", &Effect{Kind: PeekTopN, N: 3}, false},
		{"disable fate action missing scope", &Effect{Kind: DisableFateAction, FateAction: FateCleanse}, true},
		{"disable fate action valid", &Effect{Kind: DisableFateAction, FateAction: FateReroll, EffectScope: ThisRoom}, false},
		{"set floor param missing key", &Effect{Kind: SetFloorParam, EffectScope: ThisFloor}, true},
		{"set floor param valid", &Effect{Kind: SetFloorParam, ParamKey: "chariotDirection", EffectScope: ThisFloor}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEffect(tt.effect, "root")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEffect() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
