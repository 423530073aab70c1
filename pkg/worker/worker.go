// Package worker implements the per-worker search cycle: draw, derive, test,
// increment. A worker owns its key-material cursor and draws randomness from
// the OS RNG; nothing here is shared, the coordinator owns all shared state.
package worker

import (
	"crypto/rand"
	"fmt"

	"github.com/nondejus/lisk-vanity/pkg/types"
)

// Matcher is the accept/reject predicate a worker applies to derived keys.
type Matcher interface {
	Matches(pub types.PublicKey) bool
}

// Worker holds the exclusively-owned state of one search thread.
type Worker struct {
	mode     types.DerivationMode
	matcher  Matcher
	material types.KeyMaterial
}

// New creates a worker. Call Reseed before the first Step.
func New(mode types.DerivationMode, m Matcher) *Worker {
	return &Worker{mode: mode, matcher: m}
}

// Reseed fills the cursor with fresh OS randomness. Used on start and after
// every found solution, so a worker never re-reports the same key.
func (w *Worker) Reseed() error {
	if _, err := rand.Read(w.material[:]); err != nil {
		return fmt.Errorf("seed key material: %w", err)
	}
	return nil
}

// Step performs one attempt: derive the current material and test it. On a
// match the solution is returned and the cursor is left untouched (the
// caller reseeds); on a miss the cursor advances by one.
func (w *Worker) Step() (types.Solution, bool, error) {
	pub, err := w.mode.Derive(w.material)
	if err != nil {
		return types.Solution{}, false, err
	}
	if w.matcher.Matches(pub) {
		return types.Solution{Material: w.material, PublicKey: pub, Mode: w.mode}, true, nil
	}
	w.material.Increment()
	return types.Solution{}, false, nil
}
