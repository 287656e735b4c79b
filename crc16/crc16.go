// Package crc16 implements the 16-bit cyclic redundancy check CRC-16/MODBUS
// (also known as CRC-16/ARC with an all-ones initial value). See
// http://en.wikipedia.org/wiki/Cyclic_redundancy_check for information.
//
// The profile is fully reflected: bits are processed least significant bit
// first, so neither the input bytes nor the result need to be bit reversed.
//
//	Width  : 16
//	Poly   : 8005 (reflected A001)
//	Init   : FFFF
//	RefIn  : true
//	RefOut : true
//	XorOut : 0000
//	Check  : 4B37
package crc16

import "sync"

// Size of a CRC-16 checksum in bytes.
const Size = 2

// Predefined polynomials, in reflected (LSB first) form.
const (
	// Used by Modbus RTU, USB, ANSI X3.28, ...
	Modbus = 0xa001
)

// Init is the register value loaded before the first byte.
const Init = 0xffff

// Table is a 256-word table representing the polynomial for efficient processing.
type Table [256]uint16

var (
	modbusTable *Table
	modbusOnce  sync.Once
)

// MakeTable returns the Table constructed from the specified reflected polynomial.
func MakeTable(poly uint16) *Table {
	t := new(Table)
	for i := 0; i < 256; i++ {
		t[i] = shift(uint16(i), poly)
	}
	return t
}

// ModbusTable returns the Table for the Modbus polynomial. It is built on
// first use and shared afterwards; callers must not modify it.
func ModbusTable() *Table {
	modbusOnce.Do(func() {
		modbusTable = MakeTable(Modbus)
	})
	return modbusTable
}

// shift runs eight rounds of the reflected shift register.
func shift(crc, poly uint16) uint16 {
	for j := 0; j < 8; j++ {
		if crc&1 == 1 {
			crc = (crc >> 1) ^ poly
		} else {
			crc >>= 1
		}
	}
	return crc
}

// ChecksumBits returns the CRC-16/MODBUS checksum of data, computed one bit
// at a time.
func ChecksumBits(data []byte) uint16 {
	var crc uint16 = Init
	for _, v := range data {
		crc = shift(crc^uint16(v), Modbus)
	}
	return crc
}

// update feeds the bytes in p through the register one byte at a time.
func update(crc uint16, tab *Table, p []byte) uint16 {
	for _, v := range p {
		crc = (crc >> 8) ^ tab[byte(crc)^v]
	}
	return crc
}

// Checksum returns the CRC-16/MODBUS checksum of data using the lookup table.
func Checksum(data []byte) uint16 {
	return update(Init, ModbusTable(), data)
}
