package bit

// Reverse8 reverses the bit order in a byte, so bit 0 becomes bit 7.
//
// The byte is fanned out into five copies with a 64-bit multiply, the
// reversed bits are selected with a mask and gathered again by a second
// multiply. See http://graphics.stanford.edu/~seander/bithacks.html
func Reverse8(b uint8) uint8 {
	return uint8(((uint64(b) * 0x80200802) & 0x0884422110) * 0x0101010101 >> 32)
}

// Reverse32 reverses the bit order in a 32-bit word, so bit 0 becomes bit 31.
// See http://www.hackersdelight.org/hdcodetxt/crc.c.txt
func Reverse32(x uint32) uint32 {
	x = ((x & 0x55555555) << 1) | ((x >> 1) & 0x55555555)
	x = ((x & 0x33333333) << 2) | ((x >> 2) & 0x33333333)
	x = ((x & 0x0f0f0f0f) << 4) | ((x >> 4) & 0x0f0f0f0f)
	x = (x << 24) | ((x & 0xff00) << 8) |
		((x >> 8) & 0xff00) | (x >> 24)
	return x
}
