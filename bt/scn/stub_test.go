package scn_test

import (
	"sync"
	"testing"

	"github.com/srg/btmock/bt/scn"
	"github.com/srg/btmock/callreg"
	"github.com/srg/btmock/calltest"
	"github.com/stretchr/testify/assert"
)

func TestStub_Defaults(t *testing.T) {
	reg := callreg.New()
	stub := &scn.Stub{Registry: reg}

	assert.False(t, stub.FreeSCN(scn.MinSCN))
	assert.False(t, stub.TryAllocateSCN(scn.MaxSCN))
	assert.Equal(t, uint8(0), stub.AllocateSCN())

	assert.Equal(t, uint64(1), reg.Count(scn.FnFreeSCN))
	assert.Equal(t, uint64(1), reg.Count(scn.FnTryAllocateSCN))
	assert.Equal(t, uint64(1), reg.Count(scn.FnAllocateSCN))
}

func TestStub_ConcurrentCallers(t *testing.T) {
	const (
		workers = 8
		calls   = 250
	)
	reg := callreg.New()
	stub := &scn.Stub{Registry: reg}

	calltest.CallConcurrently(workers, func(int) {
		for i := 0; i < calls; i++ {
			ch := stub.AllocateSCN()
			stub.FreeSCN(ch)
		}
	})

	assert.Equal(t, uint64(workers*calls), reg.Count("BTM_AllocateSCN"))
	assert.Equal(t, uint64(workers*calls), reg.Count("BTM_FreeSCN"))
	assert.Equal(t, uint64(0), reg.Count("BTM_TryAllocateSCN"))
}

func TestStub_AllocatorOverride(t *testing.T) {
	reg := callreg.New()
	var mu sync.Mutex
	used := map[uint8]bool{}
	stub := &scn.Stub{
		Registry: reg,
		OnAllocateSCN: func() uint8 {
			mu.Lock()
			defer mu.Unlock()
			for ch := scn.MinSCN; ch <= scn.MaxSCN; ch++ {
				if !used[ch] {
					used[ch] = true
					return ch
				}
			}
			return 0
		},
	}

	assert.Equal(t, uint8(1), stub.AllocateSCN())
	assert.Equal(t, uint8(2), stub.AllocateSCN())
	assert.Equal(t, uint64(2), reg.Count(scn.FnAllocateSCN))
}
