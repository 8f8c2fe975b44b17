package callreg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(events []CallEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Name
	}
	return out
}

func TestJournal_OverwritesOldest(t *testing.T) {
	j := NewJournal(3)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		j.add(CallEvent{Name: name})
	}

	assert.Equal(t, []string{"C", "D", "E"}, names(j.Events()))
	assert.Equal(t, 3, j.Len())
	assert.Equal(t, 3, j.Cap())
	assert.Equal(t, Metrics{Written: 5, Overwritten: 2}, j.Metrics())
}

func TestJournal_EventsDoesNotConsume(t *testing.T) {
	j := NewJournal(4)
	j.add(CallEvent{Name: "A"})
	j.add(CallEvent{Name: "B"})

	assert.Equal(t, []string{"A", "B"}, names(j.Events()))
	assert.Equal(t, []string{"A", "B"}, names(j.Events()))
}

func TestJournal_Clear(t *testing.T) {
	j := NewJournal(2)
	j.add(CallEvent{Name: "A"})
	j.add(CallEvent{Name: "B"})
	j.add(CallEvent{Name: "C"})

	j.Clear()
	assert.Empty(t, j.Events())

	j.add(CallEvent{Name: "D"})
	assert.Equal(t, []string{"D"}, names(j.Events()))
	assert.Equal(t, int64(4), j.Metrics().Written, "clear MUST keep metrics")
}

func TestJournal_Disabled(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		j := NewJournal(capacity)
		j.add(CallEvent{Name: "A"})

		assert.False(t, j.Enabled())
		assert.Empty(t, j.Events())
		assert.Equal(t, int64(0), j.Metrics().Written)
	}
}

func TestJournal_ConcurrentAdd(t *testing.T) {
	j := NewJournal(64)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				j.add(CallEvent{Name: "x"})
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 64, j.Len())
	m := j.Metrics()
	assert.Equal(t, int64(800), m.Written)
	assert.Equal(t, int64(800-64), m.Overwritten)
}
