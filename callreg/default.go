package callreg

import (
	"sync"

	"github.com/srg/btmock/pkg/config"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use from
// config.DefaultConfig. Stubs that are not handed an explicit registry report
// here.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewFromConfig(config.DefaultConfig())
	})
	return defaultRegistry
}

// Record increments name in the process-wide registry.
func Record(name string) { Default().Record(name) }

// Count reads name from the process-wide registry.
func Count(name string) uint64 { return Default().Count(name) }

// ResetAll clears the process-wide registry.
func ResetAll() { Default().ResetAll() }

// Reset clears name in the process-wide registry.
func Reset(name string) { Default().Reset(name) }

// TakeSnapshot copies the process-wide registry counts.
func TakeSnapshot() Snapshot { return Default().Snapshot() }
