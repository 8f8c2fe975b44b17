// Package avct declares the AV control transport API (AVCT) and a recording
// Stub for it.
package avct

import "github.com/srg/btmock/bt"

//go:generate go run github.com/srg/btmock/cmd/stubgen generate -m stubs.yaml -o stub_gen.go

// Result is an AVCT result code.
type Result uint16

const (
	ResultSuccess     Result = 0
	ResultNoResources Result = 1
	ResultBadHandle   Result = 2
	ResultPidInUse    Result = 3
	ResultNotOpen     Result = 4
)

// Role of the local device on a connection.
type Role uint8

const (
	RoleInitiator Role = iota
	RoleAcceptor
)

// Control flags select the channels a connection carries.
const (
	ControlTarget     uint8 = 0x01
	ControlController uint8 = 0x02
	ControlBrowse     uint8 = 0x04
)

// Command/response flag passed to MsgReq.
const (
	Command  uint8 = 0
	Response uint8 = 2
)

// ControlCallback receives connection events for a handle.
type ControlCallback func(handle uint8, event uint8, result Result, peer bt.RawAddress)

// MessageCallback receives inbound AVCT messages for a handle.
type MessageCallback func(handle uint8, label uint8, cr uint8, msg *bt.Hdr)

// ConnConfig configures a new AVCT connection.
type ConnConfig struct {
	OnControl ControlCallback
	OnMessage MessageCallback
	PID       uint16
	Role      Role
	Control   uint8
}

// API is the AVCT surface used by the stack.
type API interface {
	CreateBrowse(handle uint8, role Role) Result
	CreateConn(cc *ConnConfig, peer bt.RawAddress) (uint8, Result)
	GetBrowseMtu(handle uint8) uint16
	GetPeerMtu(handle uint8) uint16
	MsgReq(handle, label, cr uint8, msg *bt.Hdr) Result
	RemoveBrowse(handle uint8) Result
	RemoveConn(handle uint8) Result
	Deregister()
	Register()
	SetTraceLevel(level uint8) uint8
}
