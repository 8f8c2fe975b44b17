// Package bt holds the value types shared by the Bluetooth stack API
// interfaces under bt/: device addresses, UUIDs and packet buffers.
package bt

import (
	"fmt"

	"github.com/go-ble/ble"
)

// RawAddress identifies a remote device (BD_ADDR).
type RawAddress = ble.Addr

// UUID is a Bluetooth service or profile UUID in go-ble byte order.
type UUID = ble.UUID

// Well-known profile UUIDs used by the AV and AVRC APIs.
var (
	UUIDAudioSource           = ble.UUID16(0x110A)
	UUIDAudioSink             = ble.UUID16(0x110B)
	UUIDAVRemoteControl       = ble.UUID16(0x110E)
	UUIDAVRemoteControlTarget = ble.UUID16(0x110C)
)

// ParseAddress converts "AA:BB:CC:DD:EE:FF" into a RawAddress.
func ParseAddress(s string) (RawAddress, error) {
	if len(s) != 17 {
		return nil, fmt.Errorf("invalid device address %q: expected 17 characters", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i%3 == 2 {
			if c != ':' {
				return nil, fmt.Errorf("invalid device address %q: expected ':' at offset %d", s, i)
			}
			continue
		}
		if !isHex(c) {
			return nil, fmt.Errorf("invalid device address %q: non-hex digit at offset %d", s, i)
		}
	}
	return ble.NewAddr(s), nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
func MustParseAddress(s string) RawAddress {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Hdr is a stack packet buffer: a payload plus the routing fields carried
// alongside it between layers.
type Hdr struct {
	Event         uint16
	Offset        uint16
	LayerSpecific uint16
	Data          []byte
}

// Len returns the payload length past Offset.
func (h *Hdr) Len() int {
	if h == nil || int(h.Offset) >= len(h.Data) {
		return 0
	}
	return len(h.Data) - int(h.Offset)
}

// Payload returns the bytes past Offset.
func (h *Hdr) Payload() []byte {
	if h.Len() == 0 {
		return nil
	}
	return h.Data[h.Offset:]
}
