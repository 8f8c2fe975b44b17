package callreg

import (
	"sync"
	"sync/atomic"
	"time"
)

// CallEvent is a single recorded invocation.
type CallEvent struct {
	Name string    `json:"name" yaml:"name"`
	Seq  uint64    `json:"seq" yaml:"seq"`
	At   time.Time `json:"at" yaml:"at"`
}

// Journal is a bounded call log with overwrite-oldest semantics.
//
// Writers never block on a full journal: the oldest event is discarded to make
// room. Readers get a copy via Events, so inspecting the journal does not
// consume it.
//
// # Example
//
//	j := callreg.NewJournal(3)
//	for _, name := range []string{"A", "B", "C", "D"} {
//	    j.add(callreg.CallEvent{Name: name})
//	}
//	j.Events() // B, C, D
type Journal struct {
	mu    sync.Mutex
	buf   []CallEvent
	head  int // index of the oldest event
	count int
	seq   uint64 // last assigned Seq; survives Clear

	metrics Metrics
}

// NewJournal creates a journal holding up to capacity events.
// A capacity <= 0 yields a disabled journal that drops everything.
func NewJournal(capacity int) *Journal {
	if capacity < 0 {
		capacity = 0
	}
	return &Journal{buf: make([]CallEvent, capacity)}
}

// Enabled reports whether the journal retains events.
func (j *Journal) Enabled() bool {
	return len(j.buf) > 0
}

// Cap returns the journal capacity.
func (j *Journal) Cap() int {
	return len(j.buf)
}

// Len returns the number of retained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

// add stores ev with the next Seq. Seq is assigned under the lock, so
// journal order and Seq order agree.
func (j *Journal) add(ev CallEvent) {
	if !j.Enabled() {
		return
	}

	j.mu.Lock()
	j.seq++
	ev.Seq = j.seq
	if j.count == len(j.buf) {
		// drop oldest
		j.buf[j.head] = ev
		j.head = (j.head + 1) % len(j.buf)
		j.metrics.addOverwritten(1)
	} else {
		j.buf[(j.head+j.count)%len(j.buf)] = ev
		j.count++
	}
	j.mu.Unlock()

	j.metrics.addWritten(1)
}

// Events returns a copy of the retained events, oldest first.
func (j *Journal) Events() []CallEvent {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]CallEvent, j.count)
	for i := 0; i < j.count; i++ {
		out[i] = j.buf[(j.head+i)%len(j.buf)]
	}
	return out
}

// Clear drops all retained events. Metrics are left untouched.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	clear(j.buf)
	j.head = 0
	j.count = 0
}

// Metrics returns a snapshot of current metrics values.
func (j *Journal) Metrics() Metrics {
	return Metrics{
		Written:     atomic.LoadInt64(&j.metrics.Written),
		Overwritten: atomic.LoadInt64(&j.metrics.Overwritten),
	}
}

// Metrics provides lock-free counters for a Journal.
//
// All fields use atomic operations for thread-safe access
type Metrics struct {
	Written     int64
	Overwritten int64
}

func (m *Metrics) addWritten(n int) {
	atomic.AddInt64(&m.Written, int64(n))
}

func (m *Metrics) addOverwritten(n int) {
	atomic.AddInt64(&m.Overwritten, int64(n))
}
