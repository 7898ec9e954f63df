// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package understanding

import (
	"testing"
)

func TestCanonicalizeSortsKeys(t *testing.T) {
	in := []byte(`{"zebra":1,"alpha":{"y":true,"x":null},"mid":[3,1,2]}`)
	want := `{"alpha":{"x":null,"y":true},"mid":[3,1,2],"zebra":1}`

	got, err := Canonicalize(in)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	in := []byte(`{"b": 2.50, "a": {"d": "x", "c": [1, {"z": 0, "y": 9}]}}`)

	once, err := Canonicalize(in)
	if err != nil {
		t.Fatalf("first Canonicalize: %v", err)
	}
	twice, err := Canonicalize([]byte(once))
	if err != nil {
		t.Fatalf("second Canonicalize: %v", err)
	}
	if once != twice {
		t.Errorf("not idempotent:\nonce  %s\ntwice %s", once, twice)
	}
}

func TestCanonicalizePreservesNumbers(t *testing.T) {
	// Large ints and decimal literals must survive untouched; float64
	// round-tripping would corrupt them.
	in := []byte(`{"big":9007199254740993,"price":19.90}`)

	got, err := Canonicalize(in)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	want := `{"big":9007199254740993,"price":19.90}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCanonicalizeInvalidInput(t *testing.T) {
	if _, err := Canonicalize([]byte(`{"open":`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestDeterministicMarshalStable(t *testing.T) {
	profile := validProfile()

	first, err := DeterministicMarshal(profile)
	if err != nil {
		t.Fatalf("DeterministicMarshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := DeterministicMarshal(profile)
		if err != nil {
			t.Fatalf("DeterministicMarshal: %v", err)
		}
		if again != first {
			t.Fatalf("output changed between runs:\n%s\n%s", first, again)
		}
	}
}

func TestDeterministicMarshalMapOrderIndependent(t *testing.T) {
	a := map[string]any{"one": 1, "two": 2, "three": 3}
	b := map[string]any{"three": 3, "one": 1, "two": 2}

	ca, err := DeterministicMarshal(a)
	if err != nil {
		t.Fatalf("DeterministicMarshal: %v", err)
	}
	cb, err := DeterministicMarshal(b)
	if err != nil {
		t.Fatalf("DeterministicMarshal: %v", err)
	}
	if ca != cb {
		t.Errorf("equal maps canonicalized differently:\n%s\n%s", ca, cb)
	}
}
