// Package contentfixture builds minimal valid content bundles for
// tests in other packages that need a *content.Bundle but are not
// themselves exercising the content loader.
package contentfixture

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/foolsgambit/pkg/content"
)

// Minimal returns a loaded Bundle with 21 no-op Majors: enough for
// pkg/engine, pkg/hashstate, pkg/replay, pkg/saveio and
// pkg/foolsgambit tests that need a real bundle but don't exercise
// Major effects themselves.
func Minimal() *content.Bundle {
	majors := make([]content.MajorDef, 0, 21)
	strs := content.StringsBundle{}
	for i := 0; i < 21; i++ {
		id := fmt.Sprintf("major_%02d", i)
		nameKey, flavorKey, iconKey := id+"_name", id+"_flavor", id+"_icon"
		majors = append(majors, content.MajorDef{
			ID: id,
			UI: content.UIDescriptor{
				NameKey:   nameKey,
				FlavorKey: flavorKey,
				IconKey:   iconKey,
			},
			Shadow: content.ShadowDef{
				Trigger: content.FloorStart,
				Effect:  &content.Effect{Kind: content.Noop},
			},
			Gift: content.GiftDef{
				Effect: &content.Effect{Kind: content.Noop},
			},
		})
		strs[nameKey] = "Name"
		strs[flavorKey] = "Flavor"
		strs[iconKey] = "icon.png"
	}
	mb := content.MajorsBundle{ContentVersion: "test", Majors: majors}

	majorsRaw, err := json.Marshal(mb)
	if err != nil {
		panic(fmt.Sprintf("contentfixture: marshal majors: %v", err))
	}
	stringsRaw, err := json.Marshal(strs)
	if err != nil {
		panic(fmt.Sprintf("contentfixture: marshal strings: %v", err))
	}

	bundle, err := content.LoadContent(majorsRaw, stringsRaw)
	if err != nil {
		panic(fmt.Sprintf("contentfixture: LoadContent: %v", err))
	}
	return bundle
}
