package event

// HistoryEntry records an emission that reached at least one listener
type HistoryEntry struct {
	Event         Event
	ListenerCount int
	ProcessedAt   int64 // Unix epoch milliseconds
}

// historyRing is a fixed-capacity ring buffer of history entries
// Overflow: oldest entries overwritten when full
type historyRing struct {
	entries []HistoryEntry
	head    int // Index of the oldest entry
	size    int
}

func newHistoryRing(capacity int) *historyRing {
	return &historyRing{entries: make([]HistoryEntry, capacity)}
}

// push appends an entry, dropping the oldest one once capacity is reached
func (r *historyRing) push(entry HistoryEntry) {
	capacity := len(r.entries)
	if capacity == 0 {
		return
	}
	tail := (r.head + r.size) % capacity
	r.entries[tail] = entry
	if r.size < capacity {
		r.size++
		return
	}
	r.head = (r.head + 1) % capacity
}

// newestFirst returns up to limit entries, most recent first; limit <= 0 returns all
func (r *historyRing) newestFirst(limit int) []HistoryEntry {
	n := r.size
	if limit > 0 && limit < n {
		n = limit
	}
	capacity := len(r.entries)
	result := make([]HistoryEntry, n)
	for i := 0; i < n; i++ {
		idx := (r.head + r.size - 1 - i) % capacity
		result[i] = r.entries[idx]
	}
	return result
}

func (r *historyRing) len() int { return r.size }

func (r *historyRing) capacity() int { return len(r.entries) }

func (r *historyRing) reset() {
	clear(r.entries)
	r.head = 0
	r.size = 0
}
