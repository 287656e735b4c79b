// Package crc32 implements the 32-bit cyclic redundancy check CRC-32 as used
// by IEEE 802.3 (Ethernet), zip and png.
//
//	Width  : 32
//	Poly   : 04C11DB7
//	Init   : FFFFFFFF
//	RefIn  : true
//	RefOut : true
//	XorOut : FFFFFFFF
//	Check  : CBF43926
//
// The checksum is computed by four equivalent engines: a transcription of
// the shift register circuit working on NUL terminated messages, a bit
// engine in standard (MSB first) form, a bit engine in reflected (LSB first)
// form and a table driven engine in standard form. All of them produce the
// same checksum.
//
// Description of the "Standard CRC":
// http://www.repairfaq.org/filipg/LINK/F_crc_v33.html
package crc32

import (
	"sync"

	"github.com/pd0mz/go-crc/bit"
)

// Size of a CRC-32 checksum in bytes.
const Size = 4

// Predefined polynomials.
const (
	// IEEE is the polynomial in standard (MSB first) form.
	IEEE = 0x04c11db7

	// IEEEReflected is IEEE with its bit order reversed, for LSB first
	// processing.
	IEEEReflected = 0xedb88320
)

// Init is the register value loaded before the first byte.
const Init = 0xffffffff

// Table is a 256-word table representing the polynomial for efficient processing.
type Table [256]uint32

var (
	ieeeTable *Table
	ieeeOnce  sync.Once
)

// MakeTable returns the Table constructed from the specified polynomial in
// standard form. Entry i holds the register after shifting byte i, placed in
// the high order bits, through eight rounds.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	for i := 0; i < 256; i++ {
		t[i] = shift(uint32(i)<<24, poly)
	}
	return t
}

// IEEETable returns the Table for the IEEE polynomial. It is built on first
// use and shared afterwards; callers must not modify it.
func IEEETable() *Table {
	ieeeOnce.Do(func() {
		ieeeTable = MakeTable(IEEE)
	})
	return ieeeTable
}

// shift runs eight rounds of the standard, left shifting register.
func shift(crc, poly uint32) uint32 {
	for j := 0; j < 8; j++ {
		if crc&0x80000000 != 0 {
			crc = (crc << 1) ^ poly
		} else {
			crc <<= 1
		}
	}
	return crc
}

// reflectedShift runs eight rounds of the reflected, right shifting register.
func reflectedShift(crc, poly uint32) uint32 {
	for j := 0; j < 8; j++ {
		if crc&1 == 1 {
			crc = (crc >> 1) ^ poly
		} else {
			crc >>= 1
		}
	}
	return crc
}

// NullTerminated returns the CRC-32 checksum of the message in data that ends
// at the first zero byte, or at the end of data if there is none. It follows
// the logic circuit as closely as possible and exists to cross check the
// other engines.
//
// A zero byte can not be part of the message: anything from the first zero
// byte onwards is ignored. Use Standard for binary data.
func NullTerminated(data []byte) uint32 {
	var crc uint32 = Init
	for _, v := range data {
		if v == 0 {
			break
		}
		b := bit.Reverse32(uint32(v))
		for j := 0; j < 8; j++ {
			if int32(crc^b) < 0 {
				crc = (crc << 1) ^ IEEE
			} else {
				crc <<= 1
			}
			b <<= 1
		}
	}
	return bit.Reverse32(^crc)
}

// Standard returns the CRC-32 checksum of data, computed one bit at a time
// in standard form. Input bytes are reflected before they enter the
// register and the register is reflected on output.
func Standard(data []byte) uint32 {
	var crc uint32 = Init
	for _, v := range data {
		// Placing the byte in the high order bits before the XOR is the
		// same as padding the message with 32 zero bits.
		crc = shift(crc^uint32(bit.Reverse8(v))<<24, IEEE)
	}
	return bit.Reverse32(^crc)
}

// Reflected returns the CRC-32 checksum of data, computed one bit at a time
// in reflected form. No bit reversal is needed on input or output.
func Reflected(data []byte) uint32 {
	var crc uint32 = Init
	for _, v := range data {
		crc = reflectedShift(crc^uint32(v), IEEEReflected)
	}
	return ^crc
}

// update feeds the bytes in p through the standard form register, one byte
// at a time.
func update(crc uint32, tab *Table, p []byte) uint32 {
	for _, v := range p {
		b := uint32(bit.Reverse8(v)) << 24
		crc = (crc << 8) ^ tab[(crc^b)>>24]
	}
	return crc
}

// Checksum returns the CRC-32 checksum of data using the lookup table.
func Checksum(data []byte) uint32 {
	return bit.Reverse32(^update(Init, IEEETable(), data))
}
