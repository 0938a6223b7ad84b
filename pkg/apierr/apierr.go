// Package apierr defines the engine's error taxonomy. Each sentinel
// names one of the recoverable error kinds the public API can return;
// call sites wrap a sentinel with fmt.Errorf("...: %w", err) to attach
// detail, and callers recover the kind with errors.Is.
package apierr

import "errors"

var (
	// ErrContentInvalid signals a schema or referential-integrity
	// failure while loading a content bundle.
	ErrContentInvalid = errors.New("apierr: content invalid")

	// ErrContentNotLoaded signals an engine call before LoadContent.
	ErrContentNotLoaded = errors.New("apierr: content not loaded")

	// ErrIllegalAction signals an action outside legal_actions(state)
	// or one that fails a precondition: wrong phase, insufficient
	// Fate or gold, empty slot, spell not prepared, weapon
	// restricted, flee twice.
	ErrIllegalAction = errors.New("apierr: illegal action")

	// ErrDeckExhausted signals a draw requested from an empty active
	// deck. This can only happen if an engine invariant was already
	// broken; treat it as unrecoverable.
	ErrDeckExhausted = errors.New("apierr: deck exhausted")

	// ErrPromptMismatch signals an action that does not match the
	// kind of the currently pending prompt.
	ErrPromptMismatch = errors.New("apierr: prompt mismatch")
)
