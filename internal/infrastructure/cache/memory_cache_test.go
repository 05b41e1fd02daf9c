package cache

import "testing"

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
	m.Set("k", "ls -la")
	got, ok := m.Get("k")
	if !ok || got != "ls -la" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	m.Set("k", "first")
	m.Set("k", "second")
	if got, _ := m.Get("k"); got != "second" {
		t.Fatalf("Get = %q, want second", got)
	}
}
