// Package av declares the audio/video session control API (BTA AV) and a
// recording Stub for it.
package av

import "github.com/srg/btmock/bt"

//go:generate go run github.com/srg/btmock/cmd/stubgen generate -m stubs.yaml -o stub_gen.go

// Handle identifies a registered AV stream.
type Handle uint8

// Features is a bitmask of AV features requested at enable time.
type Features uint32

const (
	FeatRemoteCtrl Features = 1 << iota // remote control target
	FeatProtect                         // content protection
	FeatVendor                          // vendor dependent commands
	FeatMetadata                        // metadata transfer
	FeatBrowse                          // browsing channel
	FeatDelayReport                     // delay reporting
)

// Channel selects the stream type.
type Channel uint8

const (
	ChannelAudio Channel = iota
	ChannelVideo
)

// Status is a completion status reported by the AV layer.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusFailure
)

// CmdCode is an AV/C command type.
type CmdCode uint8

// Code is an AV/C response code.
type Code uint8

// RCID is a remote control operation id (pass-through key).
type RCID uint8

// KeyState is the pressed/released state of a pass-through key.
type KeyState uint8

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// Event is an AV callback event.
type Event uint8

// Callback receives AV events.
type Callback func(event Event, data any)

// SinkDataCallback receives decoded media packets for a sink stream.
type SinkDataCallback func(event Event, pkt *bt.Hdr)

// API is the AV session control surface used by the stack.
type API interface {
	Enable(features Features, cback Callback)
	Close(handle Handle)
	CloseRc(rcHandle uint8)
	Deregister(handle Handle)
	Disable()
	Disconnect(addr bt.RawAddress)
	MetaCmd(rcHandle, label uint8, cmd CmdCode, pkt *bt.Hdr)
	MetaRsp(rcHandle, label uint8, rsp Code, pkt *bt.Hdr)
	OffloadStart(handle Handle)
	OffloadStartRsp(handle Handle, status Status)
	Open(addr bt.RawAddress, handle Handle, useRc bool, uuid bt.UUID)
	OpenRc(handle Handle)
	ProtectReq(handle Handle, data []byte)
	ProtectRsp(handle Handle, errorCode uint8, data []byte)
	Reconfig(handle Handle, suspend bool, sepInfoIdx uint8, codecInfo []byte, numProtect uint8, protectInfo []byte)
	Register(channel Channel, serviceName string, appID uint8, sinkData SinkDataCallback, serviceUUID bt.UUID)
	RemoteCmd(rcHandle, label uint8, rcID RCID, keyState KeyState)
	RemoteVendorUniqueCmd(rcHandle, label uint8, keyState KeyState, msg []byte)
	Start(handle Handle, useLatencyMode bool)
	Stop(handle Handle, suspend bool)
	VendorCmd(rcHandle, label uint8, cmd Code, data []byte)
	VendorRsp(rcHandle, label uint8, rsp Code, data []byte, companyID uint32)
	SetLatency(handle Handle, lowLatency bool)
}
