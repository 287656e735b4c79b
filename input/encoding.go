package input

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charsets
const (
	CharsetBinary  = "binary"
	CharsetUTF8    = "utf-8"
	CharsetISO8Bit = "iso-8859-1"
	CharsetUTF16BE = "utf-16be"
	CharsetUTF16LE = "utf-16le"
)

// ErrUnknownCharset is returned by Encode for unsupported charsets.
var ErrUnknownCharset = errors.New("crc/input: unknown charset")

var charsets = map[string]encoding.Encoding{
	CharsetBinary:  binaryEncoding{},
	CharsetUTF8:    unicode.UTF8,
	CharsetISO8Bit: charmap.ISO8859_1,
	CharsetUTF16BE: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	CharsetUTF16LE: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
}

// Encode returns s encoded in charset. The binary charset passes the bytes
// of s through unchanged.
func Encode(s string, charset string) ([]byte, error) {
	enc, ok := charsets[strings.ToLower(charset)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCharset, charset)
	}
	data, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("crc/input: %s: %v", charset, err)
	}
	return data, nil
}

type binaryCoder struct{ transform.NopResetter }

func (e binaryCoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if len(dst) < n {
		err = transform.ErrShortDst
		n = len(dst)
	}
	copy(dst[:n], src[:n])
	return n, n, err
}

type binaryEncoding struct{}

func (e binaryEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: binaryCoder{}}
}

func (e binaryEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: binaryCoder{}}
}
