// Package sdp declares the BTA SDP record and search API and a recording
// Stub for it.
package sdp

import "github.com/srg/btmock/bt"

//go:generate go run github.com/srg/btmock/cmd/stubgen generate -m stubs.yaml -o stub_gen.go

// Status is the result of an SDP request.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Event is an SDP callback event.
type Event uint16

const (
	EventEnable Event = iota
	EventSearch
	EventSearchComplete
	EventCreateRecord
	EventRemoveRecord
)

// Callback receives SDP events. userData is whatever the caller attached to
// a create/remove record request.
type Callback func(event Event, status Status, userData any)

// API is the SDP surface used by the stack.
type API interface {
	CreateRecordByUser(userData any) Status
	Enable(cback Callback) Status
	RemoveRecordByUser(userData any) Status
	Search(addr bt.RawAddress, uuid bt.UUID) Status
}
