// Package crc catalogues the CRC-16 and CRC-32 checksum engines implemented
// by the crc16 and crc32 packages, so they can be selected by name.
package crc

import (
	"errors"
	"fmt"

	"github.com/pd0mz/go-crc/crc16"
	"github.com/pd0mz/go-crc/crc32"
)

// CheckString is the message used to publish check values of CRC profiles.
const CheckString = "123456789"

// Check values over CheckString.
const (
	Check16 = 0x4b37     // CRC-16/MODBUS
	Check32 = 0xcbf43926 // CRC-32/IEEE-802.3
)

// ErrUnknownEngine is returned by Lookup for names not in Engines.
var ErrUnknownEngine = errors.New("crc: unknown engine")

// Engine is a named checksum computation.
type Engine struct {
	Name  string
	Width int    // in bits, 16 or 32
	Check uint32 // expected checksum of CheckString
	Sum   func([]byte) uint32
}

// Format returns sum as zero padded hexadecimal, one digit per nibble of the
// engine width.
func (e *Engine) Format(sum uint32) string {
	return fmt.Sprintf("%0*x", e.Width/4, sum)
}

func (e *Engine) String() string {
	return fmt.Sprintf("%s (%d bit)", e.Name, e.Width)
}

func sum16(f func([]byte) uint16) func([]byte) uint32 {
	return func(data []byte) uint32 {
		return uint32(f(data))
	}
}

// Engines lists all engines. Engines of the same width return the same
// checksum for the same input; crc32/nul only does so for input without
// zero bytes.
var Engines = []*Engine{
	{Name: "crc16/bit", Width: 16, Check: Check16, Sum: sum16(crc16.ChecksumBits)},
	{Name: "crc16/table", Width: 16, Check: Check16, Sum: sum16(crc16.Checksum)},
	{Name: "crc32/standard", Width: 32, Check: Check32, Sum: crc32.Standard},
	{Name: "crc32/reflected", Width: 32, Check: Check32, Sum: crc32.Reflected},
	{Name: "crc32/table", Width: 32, Check: Check32, Sum: crc32.Checksum},
	{Name: "crc32/nul", Width: 32, Check: Check32, Sum: crc32.NullTerminated},
}

// Lookup returns the engine by name.
func Lookup(name string) (*Engine, error) {
	for _, e := range Engines {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
}

// ByWidth returns all engines of the given width, in catalogue order.
func ByWidth(width int) []*Engine {
	var o []*Engine
	for _, e := range Engines {
		if e.Width == width {
			o = append(o, e)
		}
	}
	return o
}

// SelfTest runs every engine over CheckString and returns an error for the
// first one that does not produce its check value.
func SelfTest() error {
	for _, e := range Engines {
		if sum := e.Sum([]byte(CheckString)); sum != e.Check {
			return fmt.Errorf("crc: %s check failed (%s != %s)", e.Name, e.Format(sum), e.Format(e.Check))
		}
	}
	return nil
}
