package bleadv_test

import (
	"testing"

	"github.com/srg/btmock/bt/bleadv"
	"github.com/srg/btmock/callreg"
	"github.com/srg/btmock/calltest"
	"github.com/stretchr/testify/assert"
)

type fakeManager struct{ registered int }

func (m *fakeManager) RegisterAdvertiser(cb bleadv.RegisterCallback) {
	m.registered++
	cb(uint8(m.registered), 0)
}

func (m *fakeManager) Unregister(advertiserID uint8) {}

func TestStub_Defaults(t *testing.T) {
	reg := callreg.New()
	stub := &bleadv.Stub{Registry: reg}

	stub.AdvInit()
	stub.Initialize(nil)
	assert.False(t, stub.IsInitialized())
	assert.Nil(t, stub.Get())
	stub.TimeoutCallback(0)
	stub.RecomputeTimeout1()
	stub.RecomputeTimeout2()
	stub.RecomputeTimeout3()
	stub.CleanUp()
	stub.MultiAdvCleanup()

	calltest.AssertCalledTimes(t, reg, "BleAdvertisingManager::Initialize", 1)
	calltest.AssertCalledTimes(t, reg, "BleAdvertisingManager::IsInitialized", 1)
	calltest.AssertCalledTimes(t, reg, "btm_ble_adv_init", 1)
	calltest.AssertCalledTimes(t, reg, "testRecomputeTimeout3", 1)
	assert.Equal(t, 10, reg.Len())
}

func TestStub_ManagerOverride(t *testing.T) {
	reg := callreg.New()
	mgr := &fakeManager{}
	stub := &bleadv.Stub{
		Registry:        reg,
		OnGet:           func() bleadv.Manager { return mgr },
		OnIsInitialized: func() bool { return true },
	}

	assert.True(t, stub.IsInitialized())

	var advID uint8
	stub.Get().RegisterAdvertiser(func(id, status uint8) { advID = id })

	assert.Equal(t, uint8(1), advID)
	calltest.AssertCalledTimes(t, reg, bleadv.FnGet, 1)
	calltest.AssertNotCalled(t, reg, bleadv.FnInitialize)
}
