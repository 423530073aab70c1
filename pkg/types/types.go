package types

import "time"

// KeyMaterial is the 32-byte search cursor a worker owns exclusively.
// Depending on the derivation mode it is a raw private key, a wallet seed,
// or a base scalar for extended-key derivation.
type KeyMaterial [32]byte

// Increment advances the cursor by one, treating the bytes as a big-endian
// unsigned integer. The carry propagates leftward through zero wraps, so
// every value in the local range is visited once before wraparound.
func (m *KeyMaterial) Increment() {
	for i := len(m) - 1; i >= 0; i-- {
		m[i]++
		if m[i] != 0 {
			return
		}
	}
}

// PublicKey is a 32-byte compressed Edwards curve point.
type PublicKey [32]byte

// DerivationMode turns key material into a public key and knows how to
// render the secret for display. Modes are constructed once at startup and
// shared read-only across all workers.
type DerivationMode interface {
	// Derive computes the public key for the given key material.
	Derive(m KeyMaterial) (PublicKey, error)

	// RenderSecret returns the human-readable private form of a solution
	// (passphrase text, hex key pair, ...). Only called on found solutions.
	RenderSecret(m KeyMaterial, pub PublicKey) string

	// Name identifies the mode in logs.
	Name() string
}

// Solution is a found key: the material that produced a matching public key,
// together with the mode that derived it. Consumed immediately by the
// printer, never stored.
type Solution struct {
	Material  KeyMaterial
	PublicKey PublicKey
	Mode      DerivationMode
}

// Stats holds a point-in-time snapshot of search progress.
type Stats struct {
	Attempts uint64
	Found    uint64
	KeysPerS float64
	Elapsed  time.Duration
}
