package events

import "sync"

const defaultKeepBlocks = 100

// Log keeps the events of recent finalized blocks in memory so RPC
// handlers can look a transaction's outcome up after the fact. It holds at
// most a fixed window of blocks; older entries are dropped as new blocks
// are logged. Readers race the finalization writer, hence the lock.
type Log struct {
	mtx  sync.RWMutex
	keep int

	// entries in ascending height order
	entries []logEntry
}

type logEntry struct {
	height uint64
	events []Event
}

// NewLog creates a log keeping the given number of most recent blocks.
// keep == 0 selects the default window.
func NewLog(keep int) *Log {
	if keep <= 0 {
		keep = defaultKeepBlocks
	}
	return &Log{keep: keep}
}

// Add records a finalized block's events, pruning blocks that fell out of
// the keep window. The caller hands the slice over and must not mutate it
// afterwards.
func (l *Log) Add(height uint64, events []Event) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.entries = append(l.entries, logEntry{height: height, events: events})
	if len(l.entries) > l.keep {
		l.entries = l.entries[len(l.entries)-l.keep:]
	}
}

// Find returns the first logged event matching the query, along with the
// height of the block that emitted it.
func (l *Log) Find(query TxEventQuery) (Event, uint64, bool) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	for _, entry := range l.entries {
		for _, event := range entry.events {
			if query.Matches(event) {
				return event, entry.height, true
			}
		}
	}
	return Event{}, 0, false
}

// Blocks returns the number of blocks currently held.
func (l *Log) Blocks() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return len(l.entries)
}
