package history

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTripAndCap(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if store.db == nil {
		t.Skip("sqlite unavailable")
	}
	store.maxEntries = 3

	for i := 0; i < 5; i++ {
		if err := store.Append(fmt.Sprintf("prompt-%d", i), fmt.Sprintf("cmd-%d", i)); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}
	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Prompt != "prompt-2" || entries[2].Prompt != "prompt-4" {
		t.Errorf("entries = %+v, want oldest-first window prompt-2..prompt-4", entries)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	entries, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d after Clear, want 0", len(entries))
	}
}
