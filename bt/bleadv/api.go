// Package bleadv declares the BLE multi-advertising manager API and a
// recording Stub for it.
package bleadv

//go:generate go run github.com/srg/btmock/cmd/stubgen generate -m stubs.yaml -o stub_gen.go

// RegisterCallback reports the advertiser id and status of a registration.
type RegisterCallback func(advertiserID uint8, status uint8)

// Manager is the advertising set manager handed out by API.Get.
type Manager interface {
	RegisterAdvertiser(cb RegisterCallback)
	Unregister(advertiserID uint8)
}

// HCIInterface issues advertising commands to the controller.
type HCIInterface interface {
	ReadInstanceCount(cb func(count uint8))
}

// API covers the advertising manager lifecycle and the module-level
// init/cleanup hooks, plus the timeout helpers exercised by its tests.
type API interface {
	CleanUp()
	Get() Manager
	IsInitialized() bool
	Initialize(hci HCIInterface)
	AdvInit()
	MultiAdvCleanup()
	TimeoutCallback(status uint8)
	RecomputeTimeout1()
	RecomputeTimeout2()
	RecomputeTimeout3()
}
