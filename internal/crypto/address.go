package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/nondejus/lisk-vanity/pkg/types"
)

// AddressAlphabet is the 32-symbol alphabet of the checksummed encoding.
const AddressAlphabet = "13456789abcdefghijkmnopqrstuwxyz"

const (
	addressPrefix = "xrb_"
	checkLen      = 5
	addressDigits = 60
)

// AddressValue returns the numeric account form of a public key: the first
// eight bytes of SHA-256(pubkey), reversed, as an unsigned integer. This is
// the quantity the matcher bounds; keep it byte-for-byte in sync with any
// accelerator kernel.
func AddressValue(pub types.PublicKey) uint64 {
	digest := sha256.Sum256(pub[:])
	return binary.LittleEndian.Uint64(digest[:8])
}

// FullAddress renders the numeric account form the way the ledger prints it.
func FullAddress(value uint64) string {
	return strconv.FormatUint(value, 10) + "L"
}

// CheckAddress encodes a public key as the human-readable checksummed
// string. Runs once per found solution, so clarity wins over speed here.
func CheckAddress(pub types.PublicKey) string {
	h, err := blake2b.New(checkLen, nil)
	if err != nil {
		panic(err) // digest size is a constant in range
	}
	h.Write(pub[:])
	check := h.Sum(nil)

	ext := make([]byte, 0, len(pub)+checkLen)
	ext = append(ext, pub[:]...)
	for i := checkLen - 1; i >= 0; i-- {
		ext = append(ext, check[i])
	}

	n := new(big.Int).SetBytes(ext)
	low5 := big.NewInt(31)
	digit := new(big.Int)

	out := make([]byte, len(addressPrefix)+addressDigits)
	copy(out, addressPrefix)
	for i := addressDigits - 1; i >= 0; i-- {
		digit.And(n, low5)
		out[len(addressPrefix)+i] = AddressAlphabet[digit.Int64()]
		n.Rsh(n, 5)
	}
	return string(out)
}
