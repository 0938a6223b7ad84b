// Package saveio serializes and deserializes persisted run state
// per §6's SaveBlob format, including save_version migrations.
package saveio

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/foolsgambit/pkg/apierr"
	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/engine"
	"github.com/dshills/foolsgambit/pkg/hashstate"
	"github.com/dshills/foolsgambit/pkg/replay"
	"github.com/dshills/foolsgambit/pkg/rng"
)

const (
	engineVersion      = "1.0.0"
	specVersion        = "v1.1"
	currentSaveVersion = 1
)

// Header identifies the producer of a persisted blob.
type Header struct {
	EngineVersion  string `json:"engine_version"`
	ContentVersion string `json:"content_version"`
	SpecVersion    string `json:"spec_version"`
	SaveVersion    int    `json:"save_version"`
	CreatedAtUTC   string `json:"created_at_utc"`
	RunID          string `json:"run_id"`
}

// RunConfig is the subset of create_run's inputs a save must remember
// to support validation on load.
type RunConfig struct {
	RunLengthTarget int `json:"run_length_target"`
	FateCap         int `json:"fate_cap"`
}

// RNGState records the RNG algorithm identity alongside its raw
// state word, so a future engine revision can detect an algorithm it
// no longer implements instead of silently misinterpreting the bits.
type RNGState struct {
	Algo  string `json:"algo"`
	State uint32 `json:"state"`
}

// SaveBlob is the full persisted-save document shape from §6.
type SaveBlob struct {
	Header    Header             `json:"header"`
	Seed      uint32             `json:"seed"`
	RunConfig RunConfig          `json:"run_config"`
	RNGState  RNGState           `json:"rng_state"`
	State     engine.RunState    `json:"state"`
	ActionLog replay.ActionLog   `json:"action_log"`
	Checksum  string             `json:"checksum,omitempty"`
}

// migrations maps the save_version a blob was written with to a
// function that upgrades its raw JSON tree to the next version.
// There is exactly one save_version in circulation today, so this
// table is empty; it exists so a future format change has a single
// place to land its upgrade step instead of branching ad hoc in
// DeserializeSave.
var migrations = map[int]func(map[string]any) (map[string]any, error){}

// SerializeSave builds and encodes a SaveBlob for s, seed and
// runLengthTarget, embedding the full replayable action log and a
// checksum equal to hash_state(s) so a corrupted blob can be
// detected on load without re-running the reducer. createdAt is
// supplied by the caller rather than read from the clock here; the
// header's run_id is a fresh random UUID on every call.
func SerializeSave(s *engine.RunState, seed uint32, runLengthTarget int, log *replay.ActionLog, bundle *content.Bundle, createdAt time.Time) ([]byte, error) {
	checksum, err := hashstate.HashState(s)
	if err != nil {
		return nil, fmt.Errorf("saveio: checksum: %w", err)
	}

	contentVersion := ""
	if bundle != nil {
		contentVersion = bundle.ContentVersion
	}

	blob := SaveBlob{
		Header: Header{
			EngineVersion:  engineVersion,
			ContentVersion: contentVersion,
			SpecVersion:    specVersion,
			SaveVersion:    currentSaveVersion,
			CreatedAtUTC:   createdAt.UTC().Format(time.RFC3339),
			RunID:          uuid.New().String(),
		},
		Seed: seed,
		RunConfig: RunConfig{
			RunLengthTarget: runLengthTarget,
			FateCap:         10,
		},
		RNGState: RNGState{Algo: "xorshift32", State: s.RNG.State()},
		State:     *s,
		ActionLog: *log,
		Checksum:  checksum,
	}

	out, err := json.Marshal(blob)
	if err != nil {
		return nil, fmt.Errorf("saveio: marshal: %w", err)
	}
	return out, nil
}

// DeserializeSave decodes data into a SaveBlob, running it through
// any pending save_version migrations first, restores the state's RNG
// from rng_state (the RNG has no JSON form of its own), then verifies
// its checksum against the embedded state before returning it.
func DeserializeSave(data []byte) (*SaveBlob, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("saveio: decode: %w: %v", apierr.ErrContentInvalid, err)
	}

	version := currentSaveVersion
	if header, ok := raw["header"].(map[string]any); ok {
		if v, ok := header["save_version"].(float64); ok {
			version = int(v)
		}
	}

	for version < currentSaveVersion {
		migrate, ok := migrations[version]
		if !ok {
			return nil, fmt.Errorf("saveio: no migration registered from save_version %d: %w", version, apierr.ErrContentInvalid)
		}
		next, err := migrate(raw)
		if err != nil {
			return nil, fmt.Errorf("saveio: migrating save_version %d: %w", version, err)
		}
		raw = next
		version++
	}

	migrated, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("saveio: remarshal after migration: %w", err)
	}

	var blob SaveBlob
	if err := json.Unmarshal(migrated, &blob); err != nil {
		return nil, fmt.Errorf("saveio: decode save blob: %w: %v", apierr.ErrContentInvalid, err)
	}
	blob.State.RNG = rng.FromState(blob.RNGState.State)

	if blob.Checksum != "" {
		sum, err := hashstate.HashState(&blob.State)
		if err != nil {
			return nil, fmt.Errorf("saveio: recompute checksum: %w", err)
		}
		if sum != blob.Checksum {
			return nil, fmt.Errorf("saveio: checksum mismatch, save blob corrupt: %w", apierr.ErrContentInvalid)
		}
	}

	return &blob, nil
}
