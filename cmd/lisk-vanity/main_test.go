package main

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/nondejus/lisk-vanity/internal/crypto"
	"github.com/nondejus/lisk-vanity/pkg/types"
)

func vectorSolution(t *testing.T) types.Solution {
	t.Helper()
	material, err := hex.DecodeString("847B0EC950A7F5B6AD6C3A1AA5A5B940608435B59F201662D13A6D11F65F7DA6")
	if err != nil {
		t.Fatal(err)
	}
	pubkey, err := hex.DecodeString("D741569435DC9698AAE5212A437F5DEDA76EFC4288CA3FCDE9604190A861FE07")
	if err != nil {
		t.Fatal(err)
	}
	sol := types.Solution{Mode: crypto.RawKeyMode{}}
	copy(sol.Material[:], material)
	copy(sol.PublicKey[:], pubkey)
	return sol
}

func TestFormatSolutionSimple(t *testing.T) {
	sol := vectorSolution(t)
	out := formatSolution(sol, true)

	fields := strings.Fields(out)
	if len(fields) != 2 {
		t.Fatalf("simple output has %d fields, want 2: %q", len(fields), out)
	}
	if fields[0] != "847B0EC950A7F5B6AD6C3A1AA5A5B940608435B59F201662D13A6D11F65F7DA6" {
		t.Errorf("simple output key = %q", fields[0])
	}
	// The address field is the bare numeric form, no "L" suffix.
	for _, c := range fields[1] {
		if c < '0' || c > '9' {
			t.Fatalf("simple output address %q is not bare decimal", fields[1])
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("simple output is not newline-terminated")
	}
}

func TestFormatSolutionBlock(t *testing.T) {
	sol := vectorSolution(t)
	out := formatSolution(sol, false)

	if !strings.HasPrefix(out, "Found matching account!\n") {
		t.Errorf("block output missing header: %q", out)
	}
	wantAddress := crypto.FullAddress(crypto.AddressValue(sol.PublicKey))
	if !strings.HasSuffix(wantAddress, "L") {
		t.Fatalf("FullAddress() = %q, want L suffix", wantAddress)
	}
	if !strings.Contains(out, "Address:     "+wantAddress+"\n") {
		t.Errorf("block output missing L-suffixed address %q: %q", wantAddress, out)
	}
	if !strings.Contains(out, "xrb_3ot3ctc5dq6pm4ogcabcafzouuf9fuy6748c9z8ykr43k4n85zi9zec5bxnz") {
		t.Errorf("block output missing checksummed address: %q", out)
	}
	if !strings.Contains(out, "Private Key: "+crypto.RawKeyMode{}.RenderSecret(sol.Material, sol.PublicKey)) {
		t.Errorf("block output missing rendered secret: %q", out)
	}
}
