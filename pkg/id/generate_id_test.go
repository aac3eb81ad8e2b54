package id

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if !IsHex32(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsHex32(t *testing.T) {
	if !IsHex32(strings.Repeat("a", 32)) {
		t.Fatal("32 lowercase hex should match")
	}
	for _, s := range []string{
		"",
		strings.Repeat("A", 32),                // uppercase
		strings.Repeat("a", 31),                // short
		strings.Repeat("a", 33),                // long
		strings.Repeat("g", 32),                // non-hex
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88", // uuid
	} {
		if IsHex32(s) {
			t.Fatalf("IsHex32(%q) = true", s)
		}
	}
}
