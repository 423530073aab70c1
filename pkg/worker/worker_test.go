package worker

import (
	"errors"
	"testing"

	"github.com/nondejus/lisk-vanity/pkg/types"
)

// echoMode derives a "public key" that mirrors the material, so tests can
// observe the cursor without reaching into the worker.
type echoMode struct {
	failOn types.KeyMaterial
	fail   bool
}

func (m echoMode) Derive(k types.KeyMaterial) (types.PublicKey, error) {
	if m.fail && k == m.failOn {
		return types.PublicKey{}, errors.New("scripted derivation failure")
	}
	return types.PublicKey(k), nil
}

func (echoMode) RenderSecret(types.KeyMaterial, types.PublicKey) string { return "" }
func (echoMode) Name() string                                           { return "echo" }

// nthMatcher accepts the Nth tested key only.
type nthMatcher struct {
	n     int
	calls int
}

func (m *nthMatcher) Matches(types.PublicKey) bool {
	m.calls++
	return m.calls == m.n
}

func TestStepMatchesOnNthCandidate(t *testing.T) {
	match := &nthMatcher{n: 5}
	w := New(echoMode{}, match)
	if err := w.Reseed(); err != nil {
		t.Fatal(err)
	}
	start := w.material

	for i := 1; i < 5; i++ {
		sol, found, err := w.Step()
		if err != nil {
			t.Fatal(err)
		}
		if found {
			t.Fatalf("Step() matched on attempt %d, want 5: %+v", i, sol)
		}
	}

	sol, found, err := w.Step()
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("Step() did not match on the fifth attempt")
	}

	// Four misses advanced the cursor four times.
	want := start
	for i := 0; i < 4; i++ {
		want.Increment()
	}
	if sol.Material != want {
		t.Errorf("solution material = %x, want %x", sol.Material, want)
	}
	if sol.PublicKey != (types.PublicKey(want)) {
		t.Errorf("solution public key = %x, want %x", sol.PublicKey, want)
	}
}

func TestStepPropagatesDerivationError(t *testing.T) {
	w := New(echoMode{fail: true}, &nthMatcher{n: 1})
	// Cursor stays zero-valued, which is the scripted failure input.
	_, found, err := w.Step()
	if err == nil {
		t.Fatal("Step() swallowed a derivation error")
	}
	if found {
		t.Fatal("Step() reported a match alongside an error")
	}
}

func TestReseedChangesCursor(t *testing.T) {
	w := New(echoMode{}, &nthMatcher{})
	if err := w.Reseed(); err != nil {
		t.Fatal(err)
	}
	a := w.material
	if err := w.Reseed(); err != nil {
		t.Fatal(err)
	}
	if a == w.material {
		t.Error("Reseed() produced identical material twice")
	}
}
