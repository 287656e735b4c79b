package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pd0mz/go-crc/bit"
)

// ReadHex reads whitespace separated hexadecimal tokens from r, each with an
// optional 0x prefix, and stores the low 8 bits of each as a byte. Reading
// stops at the end of r or once capacity bytes have been read.
func ReadHex(r io.Reader, capacity int) ([]byte, error) {
	var (
		data    = make([]byte, 0, capacity)
		scanner = bufio.NewScanner(r)
	)
	scanner.Split(bufio.ScanWords)
	for len(data) < capacity && scanner.Scan() {
		token := scanner.Text()
		digits := strings.TrimPrefix(strings.ToLower(token), "0x")
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("crc/input: invalid hex token %q at byte %d", token, len(data))
		}
		if v > 0xff {
			log.Debugf("token %q exceeds a byte, keeping %#02x", token, byte(v))
		}
		data = append(data, byte(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(data) == capacity {
		log.Debugf("read %d bytes, buffer full", capacity)
	}
	return data, nil
}

// ParseBits packs a string of 0 and 1 characters into bytes, most
// significant bit first. White space is ignored; a trailing partial byte is
// padded with zero bits.
func ParseBits(s string) ([]byte, error) {
	var bits = make(bit.Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		case ' ', '\t', '\r', '\n':
		default:
			return nil, fmt.Errorf("crc/input: invalid bit %q at offset %d", c, i)
		}
	}
	if len(bits)%8 != 0 {
		log.Debugf("%d bits is not a whole number of bytes, padding", len(bits))
	}
	return bits.Bytes(), nil
}
