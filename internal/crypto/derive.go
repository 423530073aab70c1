// Package crypto implements the ledger's key derivation and address forms.
// The hot-path primitives (Derive, AddressValue) are allocation-light; the
// checksummed string encoding runs once per found solution only.
package crypto

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"

	"github.com/nondejus/lisk-vanity/pkg/types"
)

// The ledger derives public keys with the standard Ed25519 procedure but
// hashes the secret with Blake2b-512 instead of SHA-512, so the stdlib
// crypto/ed25519 signer cannot be used here.
func publicFromSecret(secret []byte) (types.PublicKey, error) {
	var pub types.PublicKey
	h := blake2b.Sum512(secret)
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return pub, fmt.Errorf("invalid key material: %w", err)
	}
	copy(pub[:], new(edwards25519.Point).ScalarBaseMult(s).Bytes())
	return pub, nil
}

// RawKeyMode treats the key material directly as an Ed25519 private key.
type RawKeyMode struct{}

func (RawKeyMode) Name() string { return "private key" }

func (RawKeyMode) Derive(m types.KeyMaterial) (types.PublicKey, error) {
	return publicFromSecret(m[:])
}

// RenderSecret prints the private and public key halves concatenated, the
// form wallet imports expect for a full keypair.
func (RawKeyMode) RenderSecret(m types.KeyMaterial, pub types.PublicKey) string {
	return strings.ToUpper(hex.EncodeToString(m[:]) + hex.EncodeToString(pub[:]))
}

// SeedMode derives account keys from a 32-byte wallet seed: the private key
// is Blake2b-256(seed ‖ big-endian account index). Account 0 matches wallets
// that derive multiple accounts from one seed.
type SeedMode struct {
	Account uint32
}

func (SeedMode) Name() string { return "passphrase" }

func (s SeedMode) Derive(m types.KeyMaterial) (types.PublicKey, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return types.PublicKey{}, err
	}
	h.Write(m[:])
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], s.Account)
	h.Write(idx[:])
	return publicFromSecret(h.Sum(nil))
}

// RenderSecret recovers the 12-word passphrase covering the entropy half of
// the material, as the wallet's word-list import expects.
func (SeedMode) RenderSecret(m types.KeyMaterial, _ types.PublicKey) string {
	mnemonic, err := bip39.NewMnemonic(m[:16])
	if err != nil {
		// 16 bytes is always valid entropy; fall back to hex regardless.
		return strings.ToUpper(hex.EncodeToString(m[:]))
	}
	return mnemonic
}

// ExtendedKeyMode derives sub-account keys without the offset's private
// counterpart: the material is reduced modulo the group order, multiplied by
// the base point, and the public offset point is added.
type ExtendedKeyMode struct {
	offset *edwards25519.Point
}

// NewExtendedKeyMode parses the 32-byte compressed public offset point. The
// offset is a public key, so only the canonical encoding is accepted;
// SetBytes alone would also admit unreduced field elements.
func NewExtendedKeyMode(offset []byte) (*ExtendedKeyMode, error) {
	p, err := new(edwards25519.Point).SetBytes(offset)
	if err != nil {
		return nil, fmt.Errorf("invalid offset point: %w", err)
	}
	if !bytes.Equal(p.Bytes(), offset) {
		return nil, fmt.Errorf("invalid offset point: non-canonical encoding")
	}
	return &ExtendedKeyMode{offset: p}, nil
}

func (*ExtendedKeyMode) Name() string { return "extended private key" }

func (e *ExtendedKeyMode) Derive(m types.KeyMaterial) (types.PublicKey, error) {
	var pub types.PublicKey
	// SetUniformBytes reduces a little-endian value mod the group order;
	// zero-extending the 32-byte material keeps its numeric value.
	var wide [64]byte
	copy(wide[:32], m[:])
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return pub, fmt.Errorf("invalid key material: %w", err)
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	p.Add(p, e.offset)
	copy(pub[:], p.Bytes())
	return pub, nil
}

func (*ExtendedKeyMode) RenderSecret(m types.KeyMaterial, _ types.PublicKey) string {
	return strings.ToUpper(hex.EncodeToString(m[:]))
}
