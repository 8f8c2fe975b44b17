// Package scn declares the server channel number (SCN) allocation API and a
// recording Stub for it.
package scn

//go:generate go run github.com/srg/btmock/cmd/stubgen generate -m stubs.yaml -o stub_gen.go

// Valid RFCOMM server channel numbers.
const (
	MinSCN uint8 = 1
	MaxSCN uint8 = 30
)

// API allocates and frees RFCOMM server channel numbers.
type API interface {
	FreeSCN(scn uint8) bool
	TryAllocateSCN(scn uint8) bool
	AllocateSCN() uint8
}
