// Package bit implements helpers for working with individual bits of a
// message: bit slices and bit order reversal.
package bit

// Bit is a single bit, either 0 or 1.
type Bit byte

// Flip inverts the bit.
func (b *Bit) Flip() {
	(*b) ^= 0x01
}

// Bits is a sequence of bits, most significant bit of each byte first.
type Bits []Bit

func toBits(b byte) Bits {
	var o = make(Bits, 8)
	for bit, mask := 0, byte(128); bit < 8; bit, mask = bit+1, mask>>1 {
		if b&mask != 0 {
			o[bit] = 1
		}
	}
	return o
}

// NewBits expands bytes into Bits.
func NewBits(bytes []byte) Bits {
	var o = make(Bits, 0, len(bytes)*8)
	for _, b := range bytes {
		o = append(o, toBits(b)...)
	}
	return o
}

// Bytes packs the bits back into bytes. A trailing partial byte is padded
// with zero bits on the right.
func (bits Bits) Bytes() []byte {
	var o = make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b == 0x01 {
			o[i/8] |= (1 << byte(7-(i%8)))
		}
	}
	return o
}

// Equal reports whether both bit sequences are identical.
func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for i, b := range bits {
		if other[i] != b {
			return false
		}
	}
	return true
}

func (bits Bits) String() string {
	var s = make([]byte, len(bits))
	for i, b := range bits {
		if b == 0x01 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}
