package callreg

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/srg/btmock/pkg/config"
)

// UnknownCall is the identifier used when a caller records an empty name.
const UnknownCall = "<unknown>"

// Registry counts stub invocations per call-site identifier.
//
// Record and Count may be called from any number of goroutines. Increments on
// the same identifier are never lost. ResetAll and Reset are exclusive with
// respect to Record, so a reset lands either entirely before or entirely
// after any single increment.
type Registry struct {
	// mu guards the keys of counts. Incrementing an existing counter needs
	// only the read side; inserting and resetting take the write side.
	mu      sync.RWMutex
	counts  map[string]*atomic.Uint64
	journal *Journal

	logger      *logrus.Logger
	unknownOnce sync.Once
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for reset and misuse diagnostics.
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithJournal keeps the last capacity calls in order. Zero or negative
// capacity disables the journal.
func WithJournal(capacity int) Option {
	return func(r *Registry) {
		r.journal = NewJournal(capacity)
	}
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		counts: make(map[string]*atomic.Uint64),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logrus.New()
		r.logger.SetLevel(logrus.PanicLevel)
	}
	if r.journal == nil {
		r.journal = NewJournal(0)
	}
	return r
}

// NewFromConfig creates a registry with the logger and journal size from cfg.
// A nil cfg uses config.DefaultConfig.
func NewFromConfig(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return New(
		WithLogger(cfg.NewLogger()),
		WithJournal(cfg.JournalCapacity),
	)
}

// Record increments the count for name, creating it at 1.
// An empty name is recorded under UnknownCall.
func (r *Registry) Record(name string) {
	if name == "" {
		r.unknownOnce.Do(func() {
			r.logger.WithField("recorded_as", UnknownCall).Warn("Stub recorded a call without an identifier")
		})
		name = UnknownCall
	}

	r.mu.RLock()
	c, ok := r.counts[name]
	if ok {
		c.Add(1)
		r.journal.add(CallEvent{Name: name, At: time.Now()})
		r.mu.RUnlock()
		return
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok = r.counts[name]
	if !ok {
		c = new(atomic.Uint64)
		r.counts[name] = c
	}
	c.Add(1)
	r.journal.add(CallEvent{Name: name, At: time.Now()})
}

// Count returns how many times name was recorded since the last reset.
func (r *Registry) Count(name string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.counts[name]; ok {
		return c.Load()
	}
	return 0
}

// ResetAll clears every count and the journal.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	cleared := len(r.counts)
	r.counts = make(map[string]*atomic.Uint64)
	r.journal.Clear()
	r.mu.Unlock()

	r.logger.WithField("identifiers", cleared).Debug("Call registry reset")
}

// Reset clears the count for a single identifier. Journal entries are kept.
func (r *Registry) Reset(name string) {
	r.mu.Lock()
	_, removed := r.counts[name]
	delete(r.counts, name)
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"identifier": name,
		"removed":    removed,
	}).Debug("Call count reset")
}

// Snapshot returns a consistent copy of all counts.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(Snapshot, len(r.counts))
	for name, c := range r.counts {
		snap[name] = c.Load()
	}
	return snap
}

// Names returns the recorded identifiers in sorted order.
func (r *Registry) Names() []string {
	return r.Snapshot().Names()
}

// Len returns the number of distinct identifiers recorded.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counts)
}

// Journal returns the most recent calls, oldest first.
func (r *Registry) Journal() []CallEvent {
	return r.journal.Events()
}

// JournalMetrics reports how many events the journal accepted and dropped.
func (r *Registry) JournalMetrics() Metrics {
	return r.journal.Metrics()
}

// Snapshot is an immutable copy of registry counts
type Snapshot map[string]uint64

// Count returns the count for name, 0 when absent.
func (s Snapshot) Count(name string) uint64 {
	return s[name]
}

// Names returns the identifiers in sorted order
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total returns the sum of all counts
func (s Snapshot) Total() uint64 {
	var total uint64
	for _, n := range s {
		total += n
	}
	return total
}
