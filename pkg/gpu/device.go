// Package gpu defines the accelerator contract the search coordinator
// drives. The coordinator never depends on a device's kernel language or
// dispatch machinery; it submits a batch base and gets back at most one
// candidate, which is always re-validated host-side before being trusted.
package gpu

import (
	"github.com/nondejus/lisk-vanity/pkg/types"
)

// Device is a batch key-testing accelerator. ComputeBatch blocks for the
// duration of one device batch.
type Device interface {
	// ComputeBatch tests BatchSize keys derived from the batch base and
	// returns the key material of at most one candidate, or nil when the
	// batch contained no match.
	ComputeBatch(base types.KeyMaterial) (*types.KeyMaterial, error)

	// BatchSize returns the number of keys one batch covers. Progress
	// accounting adds this per batch; individual device-side attempts are
	// not separately observable.
	BatchSize() uint64
}

// Options selects and parameterizes an accelerator.
type Options struct {
	Platform    int
	DeviceIndex int
	Threads     uint64

	// Threshold is the matcher's big-endian threshold bytes; a kernel
	// compares the big-endian address value lexicographically against it.
	Threshold [8]byte

	// Mode tells the device which derivation pipeline to run. Candidates
	// are still re-derived host-side through the same mode.
	Mode types.DerivationMode
}
