// Package avrc declares the AVRC SDP record and service discovery API and a
// recording Stub for it.
package avrc

import "github.com/srg/btmock/bt"

//go:generate go run github.com/srg/btmock/cmd/stubgen generate -m stubs.yaml -o stub_gen.go

// Result is an AVRC result code.
type Result uint16

const (
	ResultSuccess         Result = 0
	ResultNoResources     Result = 1
	ResultBadHandle       Result = 2
	ResultPidInUse        Result = 3
	ResultNotOpen         Result = 4
	ResultBadParam        Result = 0x0B
	ResultServiceNotFound Result = 0x0D
)

// Supported categories advertised in an AVRC SDP record.
const (
	CategoryPlayer  uint16 = 0x0001
	CategoryMonitor uint16 = 0x0002
	CategoryTuner   uint16 = 0x0004
	CategoryMenu    uint16 = 0x0008
)

// DBParams bounds an SDP discovery database.
type DBParams struct {
	DBLen    uint32
	Attrs    []uint16
	NumAttrs uint16
}

// FindCallback reports the outcome of FindService.
type FindCallback func(status Result)

// API is the AVRC SDP surface used by the stack.
type API interface {
	AddRecord(serviceUUID bt.UUID, serviceName, providerName string, categories uint16, sdpHandle uint32, browseSupported bool, profileVersion, coverArtPSM uint16) Result
	FindService(serviceUUID bt.UUID, addr bt.RawAddress, db *DBParams, cback FindCallback) Result
	RemoveRecord(sdpHandle uint32) Result
	SetTraceLevel(level uint8) uint8
	Init()
}
