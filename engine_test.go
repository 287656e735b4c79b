package crc

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatal(err)
	}
}

func TestLookup(t *testing.T) {
	for _, want := range Engines {
		e, err := Lookup(want.Name)
		if err != nil {
			t.Fatalf("lookup %q failed: %v", want.Name, err)
		}
		if e != want {
			t.Fatalf("lookup %q returned %s", want.Name, e)
		}
	}

	if _, err := Lookup("crc8/bit"); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestByWidth(t *testing.T) {
	var tests = []struct {
		Width int
		Want  int
	}{
		{16, 2},
		{32, 4},
		{8, 0},
	}
	for _, test := range tests {
		if got := len(ByWidth(test.Width)); got != test.Want {
			t.Fatalf("expected %d engines of width %d, got %d", test.Want, test.Width, got)
		}
	}
}

func TestFormat(t *testing.T) {
	var tests = []struct {
		Name string
		Sum  uint32
		Want string
	}{
		{"crc16/table", 0x4b37, "4b37"},
		{"crc16/bit", 0x000f, "000f"},
		{"crc32/table", 0xcbf43926, "cbf43926"},
		{"crc32/reflected", 0x00000000, "00000000"},
	}
	for _, test := range tests {
		e, err := Lookup(test.Name)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Format(test.Sum); got != test.Want {
			t.Fatalf("format %#x as %s: %q != %q", test.Sum, e, got, test.Want)
		}
	}
}

func TestEnginesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 128; i++ {
		data := make([]byte, r.Intn(128))
		r.Read(data)
		for _, width := range []int{16, 32} {
			engines := ByWidth(width)
			want := engines[0].Sum(data)
			for _, e := range engines[1:] {
				if e.Name == "crc32/nul" {
					continue
				}
				if got := e.Sum(data); got != want {
					t.Fatalf("%s %x: %s != %s", e.Name, data, e.Format(got), e.Format(want))
				}
			}
		}
	}
}

func TestEmptyInput(t *testing.T) {
	var tests = map[string]uint32{
		"crc16/bit":       0xffff,
		"crc16/table":     0xffff,
		"crc32/standard":  0x00000000,
		"crc32/reflected": 0x00000000,
		"crc32/table":     0x00000000,
		"crc32/nul":       0x00000000,
	}
	for name, want := range tests {
		e, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Sum(nil); got != want {
			t.Fatalf("%s on empty input: %s != %s", name, e.Format(got), e.Format(want))
		}
	}
}
