// Package content loads and validates the engine's content bundle: the
// 21 Major Arcana definitions and the opaque string table their UI
// descriptors reference.
//
// # Data as code
//
// Major shadows and gifts are authored as effect-primitive trees (see
// Effect) rather than hard-coded per-Major Go functions. This is a
// hard requirement, not a style preference: bespoke per-Major code
// paths would let independent engine ports diverge on a given Major's
// behavior and break cross-implementation hash parity. The interpreter
// that walks these trees lives in pkg/majors; this package only
// parses, schema-validates, and referentially-checks the bundle.
//
// # Loading
//
// LoadContent takes the raw bytes of a majors_bundle document and a
// strings_bundle document (either may be authored as YAML or JSON —
// YAML is a superset). It first validates the majors_bundle's JSON
// shape against an embedded JSON Schema (catching malformed or
// missing fields cheaply and with precise pointers), then decodes into
// typed Go structs and runs the referential-integrity checks from the
// specification: exactly 21 unique Major ids, every string key the
// Majors reference present in the strings bundle, and every effect
// node's kind-specific required fields present. Any failure is
// returned wrapped in apierr.ErrContentInvalid.
package content
