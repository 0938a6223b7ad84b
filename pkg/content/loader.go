package content

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/foolsgambit/pkg/apierr"
)

// LoadContent parses and validates a majors_bundle document and a
// strings_bundle document, returning an immutable Bundle on success.
// Either document may be authored as YAML or JSON. Failures of any
// kind — malformed YAML/JSON, schema mismatch, duplicate/unknown
// Major ids, a missing string key, a malformed effect node — are
// wrapped in apierr.ErrContentInvalid.
func LoadContent(majorsRaw, stringsRaw []byte) (*Bundle, error) {
	normalized, err := yamlToJSON(majorsRaw)
	if err != nil {
		return nil, fmt.Errorf("content: parsing majors bundle: %w: %w", apierr.ErrContentInvalid, err)
	}

	var generic interface{}
	if err := json.Unmarshal(normalized, &generic); err != nil {
		return nil, fmt.Errorf("content: decoding majors bundle: %w: %w", apierr.ErrContentInvalid, err)
	}
	if err := validateSchema(generic); err != nil {
		return nil, fmt.Errorf("content: majors bundle failed schema validation: %w: %w", apierr.ErrContentInvalid, err)
	}

	var raw MajorsBundle
	if err := json.Unmarshal(normalized, &raw); err != nil {
		return nil, fmt.Errorf("content: decoding majors bundle into typed form: %w: %w", apierr.ErrContentInvalid, err)
	}

	var strs StringsBundle
	if err := yaml.Unmarshal(stringsRaw, &strs); err != nil {
		return nil, fmt.Errorf("content: parsing strings bundle: %w: %w", apierr.ErrContentInvalid, err)
	}

	bundle, err := build(raw, strs)
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var generic interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}

func build(raw MajorsBundle, strs StringsBundle) (*Bundle, error) {
	if len(raw.Majors) != RequiredMajorCount {
		return nil, fmt.Errorf("content: expected exactly %d majors, got %d: %w",
			RequiredMajorCount, len(raw.Majors), apierr.ErrContentInvalid)
	}

	majors := make(map[string]MajorDef, len(raw.Majors))
	order := make([]string, 0, len(raw.Majors))

	for i, m := range raw.Majors {
		if m.ID == "" {
			return nil, fmt.Errorf("content: majors[%d] has empty id: %w", i, apierr.ErrContentInvalid)
		}
		if _, dup := majors[m.ID]; dup {
			return nil, fmt.Errorf("content: duplicate major id %q: %w", m.ID, apierr.ErrContentInvalid)
		}
		if !validTriggers[m.Shadow.Trigger] {
			return nil, fmt.Errorf("content: major %q has unknown shadow trigger %q: %w",
				m.ID, m.Shadow.Trigger, apierr.ErrContentInvalid)
		}
		if err := ValidateEffect(m.Shadow.Effect, fmt.Sprintf("majors[%s].shadow.effect", m.ID)); err != nil {
			return nil, fmt.Errorf("content: %w: %w", err, apierr.ErrContentInvalid)
		}
		if err := ValidateEffect(m.Gift.Effect, fmt.Sprintf("majors[%s].gift.effect", m.ID)); err != nil {
			return nil, fmt.Errorf("content: %w: %w", err, apierr.ErrContentInvalid)
		}

		for _, key := range []string{m.UI.NameKey, m.UI.FlavorKey, m.UI.IconKey} {
			if err := requireStringKey(strs, key, m.ID); err != nil {
				return nil, err
			}
		}
		for _, key := range CollectStringKeys(m.Shadow.Effect, nil) {
			if err := requireStringKey(strs, key, m.ID); err != nil {
				return nil, err
			}
		}
		for _, key := range CollectStringKeys(m.Gift.Effect, nil) {
			if err := requireStringKey(strs, key, m.ID); err != nil {
				return nil, err
			}
		}

		majors[m.ID] = m
		order = append(order, m.ID)
	}

	return &Bundle{
		ContentVersion: raw.ContentVersion,
		MajorOrder:     order,
		Majors:         majors,
		Strings:        strs,
	}, nil
}

func requireStringKey(strs StringsBundle, key, majorID string) error {
	if key == "" {
		return nil
	}
	if _, ok := strs[key]; !ok {
		return fmt.Errorf("content: major %q references unknown string key %q: %w",
			majorID, key, apierr.ErrContentInvalid)
	}
	return nil
}
