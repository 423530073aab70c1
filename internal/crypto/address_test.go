package crypto

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/nondejus/lisk-vanity/pkg/types"
)

func TestCheckAddressKnownVector(t *testing.T) {
	pub := mustPubkey(t, vectorPubkey)
	want := "xrb_3ot3ctc5dq6pm4ogcabcafzouuf9fuy6748c9z8ykr43k4n85zi9zec5bxnz"
	if got := CheckAddress(pub); got != want {
		t.Errorf("CheckAddress() = %q, want %q", got, want)
	}
}

func TestCheckAddressShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		var pub types.PublicKey
		if _, err := rand.Read(pub[:]); err != nil {
			t.Fatal(err)
		}
		addr := CheckAddress(pub)
		if len(addr) != 64 {
			t.Fatalf("CheckAddress() length = %d, want 64", len(addr))
		}
		if !strings.HasPrefix(addr, "xrb_") {
			t.Fatalf("CheckAddress() = %q, missing prefix", addr)
		}
		for _, c := range addr[4:] {
			if !strings.ContainsRune(AddressAlphabet, c) {
				t.Fatalf("CheckAddress() produced %q outside the alphabet", c)
			}
		}
	}
}

func TestFullAddress(t *testing.T) {
	tests := []struct {
		value uint64
		want  string
	}{
		{0, "0L"},
		{3931662, "3931662L"},
		{18446744073709551615, "18446744073709551615L"},
	}
	for _, tt := range tests {
		if got := FullAddress(tt.value); got != tt.want {
			t.Errorf("FullAddress(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestAddressValueDeterministic(t *testing.T) {
	pub := mustPubkey(t, vectorPubkey)
	if AddressValue(pub) != AddressValue(pub) {
		t.Error("AddressValue() not deterministic")
	}

	var other types.PublicKey
	other[0] = 1
	if AddressValue(pub) == AddressValue(other) {
		t.Error("AddressValue() collided on trivially different keys")
	}
}
