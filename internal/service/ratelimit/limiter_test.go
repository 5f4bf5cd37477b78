package ratelimit

import "testing"

func TestAllowConsumesTokens(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("k", 3, 0) {
			t.Fatalf("call %d should be allowed", i)
		}
	}
	if l.Allow("k", 3, 0) {
		t.Fatalf("bucket should be exhausted")
	}
}

func TestAllowIsPerKey(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0) {
		t.Fatalf("first a should pass")
	}
	if l.Allow("a", 1, 0) {
		t.Fatalf("second a should be limited")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatalf("b has its own bucket")
	}
}
