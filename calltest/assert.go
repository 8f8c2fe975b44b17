package calltest

import (
	"fmt"
	"strings"

	"github.com/srg/btmock/callreg"
)

// TestingT is an interface that matches the methods we need from testing.T
type TestingT interface {
	Errorf(format string, args ...interface{})
}

type tHelper interface {
	Helper()
}

func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

func registryOrDefault(reg *callreg.Registry) *callreg.Registry {
	if reg == nil {
		return callreg.Default()
	}
	return reg
}

// AssertCalled asserts that name was recorded at least once.
// A nil reg checks the process-wide registry.
func AssertCalled(t TestingT, reg *callreg.Registry, name string) bool {
	helper(t)
	snap := registryOrDefault(reg).Snapshot()
	if snap.Count(name) == 0 {
		t.Errorf("expected %s to be called; recorded calls: %s", name, formatCounts(snap))
		return false
	}
	return true
}

// AssertCalledTimes asserts that name was recorded exactly n times.
func AssertCalledTimes(t TestingT, reg *callreg.Registry, name string, n uint64) bool {
	helper(t)
	snap := registryOrDefault(reg).Snapshot()
	if got := snap.Count(name); got != n {
		t.Errorf("expected %s to be called %d time(s), got %d; recorded calls: %s", name, n, got, formatCounts(snap))
		return false
	}
	return true
}

// AssertNotCalled asserts that name was never recorded since the last reset.
func AssertNotCalled(t TestingT, reg *callreg.Registry, name string) bool {
	helper(t)
	if got := registryOrDefault(reg).Count(name); got != 0 {
		t.Errorf("expected %s not to be called, got %d call(s)", name, got)
		return false
	}
	return true
}

// AssertOnlyCalled asserts that no identifier outside allowed was recorded.
// Use it to check that code under test stays within the subsystems it owns.
func AssertOnlyCalled(t TestingT, reg *callreg.Registry, allowed ...string) bool {
	helper(t)
	permitted := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		permitted[name] = struct{}{}
	}

	snap := registryOrDefault(reg).Snapshot()
	var unexpected []string
	for _, name := range snap.Names() {
		if _, ok := permitted[name]; !ok {
			unexpected = append(unexpected, fmt.Sprintf("%s=%d", name, snap[name]))
		}
	}
	if len(unexpected) > 0 {
		t.Errorf("unexpected stub calls: %s", strings.Join(unexpected, ", "))
		return false
	}
	return true
}

// AssertCallOrder asserts that names appear in the registry journal in the
// given order. Other calls may be interleaved between them.
func AssertCallOrder(t TestingT, reg *callreg.Registry, names ...string) bool {
	helper(t)
	reg = registryOrDefault(reg)
	events := reg.Journal()
	if len(events) == 0 && len(names) > 0 {
		t.Errorf("expected call order %v, but the journal is empty (is it enabled?)", names)
		return false
	}

	next := 0
	for _, ev := range events {
		if next < len(names) && ev.Name == names[next] {
			next++
		}
	}
	if next < len(names) {
		seen := make([]string, len(events))
		for i, ev := range events {
			seen[i] = ev.Name
		}
		t.Errorf("expected call order %v; %s not found after %v; journal: %v",
			names, names[next], names[:next], seen)
		return false
	}
	return true
}

func formatCounts(snap callreg.Snapshot) string {
	if len(snap) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(snap))
	for _, name := range snap.Names() {
		parts = append(parts, fmt.Sprintf("%s=%d", name, snap[name]))
	}
	return strings.Join(parts, ", ")
}
