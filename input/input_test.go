package input

import (
	"bytes"
	"strings"
	"testing"

	crc "github.com/pd0mz/go-crc"
)

func TestRead(t *testing.T) {
	var tests = []struct {
		Source  string
		Charset string
		Test    string
		Want    []byte
	}{
		{SourceHex, "", "31 32 33 34 35 36 37 38 39", []byte(crc.CheckString)},
		{SourceBits, "", "00110001 00110010", []byte("12")},
		{SourceText, CharsetBinary, crc.CheckString, []byte(crc.CheckString)},
		{SourceText, CharsetUTF16LE, "1", []byte{'1', 0x00}},
	}

	for _, test := range tests {
		cfg := NewConfig("crc16/table")
		cfg.Source = test.Source
		if test.Charset != "" {
			cfg.Charset = test.Charset
		}

		got, err := Read(cfg, strings.NewReader(test.Test))
		if err != nil {
			t.Fatalf("read %s failed: %v", test.Source, err)
		}
		if len(got) != 1 {
			t.Fatalf("read %s: expected 1 message, got %d", test.Source, len(got))
		}
		if !bytes.Equal(got[0], test.Want) {
			t.Fatalf("read %s: %x != %x", test.Source, got[0], test.Want)
		}
	}
}

func TestReadTruncates(t *testing.T) {
	cfg := NewConfig("crc32/table")
	cfg.Capacity = 4

	for _, source := range []string{SourceHex, SourceText} {
		cfg.Source = source
		test := "00 01 02 03 04 05"
		if source == SourceText {
			test = crc.CheckString
		}
		got, err := Read(cfg, strings.NewReader(test))
		if err != nil {
			t.Fatalf("read %s failed: %v", source, err)
		}
		if len(got[0]) != 4 {
			t.Fatalf("read %s: expected 4 bytes, got %d", source, len(got[0]))
		}
	}
}

func TestReadPCAPSource(t *testing.T) {
	cfg := NewConfig("crc32/table")
	cfg.Source = SourcePCAP
	cfg.Capacity = 20

	got, err := Read(cfg, testCapture(t, bytes.Repeat([]byte{0x01}, 32)))
	if err != nil {
		t.Fatalf("read pcap failed: %v", err)
	}
	if len(got) != 1 || len(got[0]) != 20 {
		t.Fatalf("expected one payload of 20 bytes, got %v", got)
	}
}

func TestReadUnknownSource(t *testing.T) {
	cfg := NewConfig("crc32/table")
	cfg.Source = "serial"
	if _, err := Read(cfg, strings.NewReader("")); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
