package content

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// majorsBundleSchema is the Draft 2020-12 JSON Schema for the
// top-level shape of a majors_bundle document. It catches missing or
// mistyped fields cheaply and with a precise path before the loader
// spends effort on the deeper referential checks (string-key
// existence, per-effect-kind required fields) that only Go code can
// express economically.
const majorsBundleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://foolsgambit.local/majors_bundle.schema.json",
  "type": "object",
  "required": ["content_version", "majors"],
  "properties": {
    "content_version": {"type": "string", "minLength": 1},
    "majors": {
      "type": "array",
      "minItems": 21,
      "maxItems": 21,
      "items": {
        "type": "object",
        "required": ["id", "ui", "shadow", "gift"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "ui": {
            "type": "object",
            "required": ["name_key", "flavor_key", "icon_key"],
            "properties": {
              "name_key": {"type": "string", "minLength": 1},
              "flavor_key": {"type": "string", "minLength": 1},
              "icon_key": {"type": "string", "minLength": 1}
            }
          },
          "shadow": {
            "type": "object",
            "required": ["trigger", "effect"],
            "properties": {
              "trigger": {
                "type": "string",
                "enum": [
                  "FLOOR_START", "ROOM_REVEALED", "ORDER_CONSTRAINT",
                  "BEFORE_FIRST_RESOLVE_ATTEMPT", "AFTER_FIRST_RESOLUTION"
                ]
              },
              "effect": {"$ref": "#/$defs/effect"}
            }
          },
          "gift": {
            "type": "object",
            "required": ["effect"],
            "properties": {
              "effect": {"$ref": "#/$defs/effect"}
            }
          }
        }
      }
    }
  },
  "$defs": {
    "effect": {
      "type": "object",
      "required": ["kind"],
      "properties": {
        "kind": {
          "type": "string",
          "enum": [
            "NOOP", "SEQUENCE", "CHOICE", "CONDITIONAL", "REROLL_REVEALED",
            "EXILE_REPLACE_REVEALED", "CLEANSE_REVEALED", "PEEK_TOP_N",
            "REORDER_TOP_N", "REORDER_ROOM_BY_VALUE", "REORDER_ROOM_ARBITRARY",
            "BARGAIN", "DISABLE_FATE_ACTION", "SET_WEAPON_RESTRICTION_MODE",
            "SET_ORDER_CONSTRAINT", "SET_FLOOR_PARAM",
            "FORCED_EXILE_FIRST_RESOLVE_ATTEMPT"
          ]
        }
      }
    }
  }
}`

var compiledMajorsSchema *jsonschema.Schema

func init() {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	const schemaURL = "https://foolsgambit.local/majors_bundle.schema.json"
	if err := c.AddResource(schemaURL, strings.NewReader(majorsBundleSchema)); err != nil {
		panic(fmt.Sprintf("content: embedded schema failed to load: %v", err))
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("content: embedded schema failed to compile: %v", err))
	}
	compiledMajorsSchema = compiled
}

// validateSchema checks doc (a decoded-via-encoding/json generic
// value: map[string]any, []any, string, float64, bool, nil) against
// the embedded majors_bundle schema.
func validateSchema(doc interface{}) error {
	return compiledMajorsSchema.Validate(doc)
}
