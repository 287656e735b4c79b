package input

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadHex(t *testing.T) {
	var tests = []struct {
		Test     string
		Capacity int
		Want     []byte
	}{
		{"", DefaultCapacity, []byte{}},
		{"01 03 00 00 00 0a", DefaultCapacity, []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x0a}},
		{"0x11\n0X03\t0x00 6B", DefaultCapacity, []byte{0x11, 0x03, 0x00, 0x6b}},
		{"1ff 100", DefaultCapacity, []byte{0xff, 0x00}},
		{"de ad be ef", 2, []byte{0xde, 0xad}},
	}

	for _, test := range tests {
		got, err := ReadHex(strings.NewReader(test.Test), test.Capacity)
		if err != nil {
			t.Fatalf("read %q failed: %v", test.Test, err)
		}
		if !bytes.Equal(got, test.Want) {
			t.Fatalf("read %q: %x != %x", test.Test, got, test.Want)
		}
	}
}

func TestReadHexInvalid(t *testing.T) {
	for _, test := range []string{"zz", "01 0x", "12 -3", "100000000"} {
		if _, err := ReadHex(strings.NewReader(test), DefaultCapacity); err == nil {
			t.Fatalf("expected error reading %q", test)
		}
	}
}

func TestParseBits(t *testing.T) {
	var tests = []struct {
		Test string
		Want []byte
	}{
		{"", []byte{}},
		{"00101010", []byte{0x2a}},
		{"1011 1110\n1110 1111", []byte{0xbe, 0xef}},
		{"101", []byte{0xa0}},
	}

	for _, test := range tests {
		got, err := ParseBits(test.Test)
		if err != nil {
			t.Fatalf("parse %q failed: %v", test.Test, err)
		}
		if !bytes.Equal(got, test.Want) {
			t.Fatalf("parse %q: %x != %x", test.Test, got, test.Want)
		}
	}

	if _, err := ParseBits("0102"); err == nil {
		t.Fatal("expected error parsing non-bits")
	}
}
