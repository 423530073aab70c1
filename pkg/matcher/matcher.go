// Package matcher turns a maximum decimal address length into a fast
// accept/reject predicate over public keys. The predicate must stay
// byte-for-byte consistent between the CPU path and any accelerator kernel,
// so the threshold is also exported as big-endian bytes for lexicographic
// device-side comparison.
package matcher

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nondejus/lisk-vanity/internal/crypto"
	"github.com/nondejus/lisk-vanity/pkg/types"
)

// MaxLength is the largest accepted length bound. 10^20 exceeds the uint64
// address range, so that bound accepts every key.
const MaxLength = 20

// Matcher accepts public keys whose numeric address value has at most
// maxLength decimal digits, i.e. value < 10^maxLength. Immutable and shared
// read-only across all workers.
type Matcher struct {
	maxLength int
	threshold uint64
	unbounded bool
}

// New builds a matcher for the given maximum decimal length (1..20).
func New(maxLength int) (*Matcher, error) {
	if maxLength < 1 || maxLength > MaxLength {
		return nil, fmt.Errorf("address length must be between 1 and %d, got %d", MaxLength, maxLength)
	}
	m := &Matcher{maxLength: maxLength}
	if maxLength == MaxLength {
		// Threshold 10^20 covers the whole value range.
		m.unbounded = true
		m.threshold = math.MaxUint64
		return m, nil
	}
	m.threshold = 1
	for i := 0; i < maxLength; i++ {
		m.threshold *= 10
	}
	return m, nil
}

// Matches reports whether the key's address value is below the threshold.
// A value below 10^N has at most N decimal digits.
func (m *Matcher) Matches(pub types.PublicKey) bool {
	return m.unbounded || crypto.AddressValue(pub) < m.threshold
}

// Threshold returns the numeric threshold, saturated to the uint64 range.
func (m *Matcher) Threshold() uint64 {
	return m.threshold
}

// ThresholdBytes returns the threshold as a big-endian byte array. A kernel
// comparing the big-endian form of the address value lexicographically
// against these bytes gets the same accept set as Matches; an unbounded
// matcher saturates to all-ones, in which case host-side re-validation
// applies the exact predicate.
func (m *Matcher) ThresholdBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], m.threshold)
	return b
}

// EstimatedAttempts returns the expected number of attempts until the first
// match, assuming address values uniform over the full range. Reporting aid
// only, never a termination bound.
func (m *Matcher) EstimatedAttempts() float64 {
	est := math.Pow(2, 64) / math.Pow(10, float64(m.maxLength))
	if est < 1 {
		return 1
	}
	return est
}
