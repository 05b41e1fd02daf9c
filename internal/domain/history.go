package domain

// HistoryEntry is one persisted record of a natural-language prompt and the
// command it produced. Entries are immutable once written; the store drops the
// oldest entries when the log grows past MaxHistoryEntries.
type HistoryEntry struct {
	Timestamp int64  `json:"timestamp"`
	Prompt    string `json:"prompt"`
	Command   string `json:"command"`
}

// MaxHistoryEntries caps the persisted history log.
const MaxHistoryEntries = 1000

// LastN returns the most recent min(n, len(entries)) entries in their
// original oldest-first order.
func LastN(entries []HistoryEntry, n int) []HistoryEntry {
	if n <= 0 {
		return nil
	}
	if n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
