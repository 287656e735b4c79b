// Package input turns the supported message sources into byte slices that
// can be checksummed: hex token streams, bit strings, encoded text and the
// payloads of offline packet captures.
package input

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("crc/input")

// DefaultCapacity is the largest message read from a source, in bytes.
// Longer messages are truncated.
const DefaultCapacity = 1024

// Sources
const (
	SourceHex  = "hex"
	SourceBits = "bits"
	SourceText = "text"
	SourcePCAP = "pcap"
)

// SourceName is a map of source to a short description.
var SourceName = map[string]string{
	SourceHex:  "whitespace separated hex bytes",
	SourceBits: "string of 0 and 1 bits, most significant bit first",
	SourceText: "text, encoded with the configured charset",
	SourcePCAP: "application payloads of a pcap capture",
}

// Read returns the messages in r, interpreted according to cfg.Source. All
// sources but pcap yield a single message.
func Read(cfg *Config, r io.Reader) ([][]byte, error) {
	switch cfg.Source {
	case SourceHex:
		data, err := ReadHex(r, cfg.Capacity)
		if err != nil {
			return nil, err
		}
		return [][]byte{data}, nil

	case SourceBits:
		raw, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, err
		}
		data, err := ParseBits(string(raw))
		if err != nil {
			return nil, err
		}
		return [][]byte{truncate(data, cfg.Capacity)}, nil

	case SourceText:
		raw, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, err
		}
		data, err := Encode(string(raw), cfg.Charset)
		if err != nil {
			return nil, err
		}
		return [][]byte{truncate(data, cfg.Capacity)}, nil

	case SourcePCAP:
		payloads, err := ReadPCAP(r)
		if err != nil {
			return nil, err
		}
		for i, payload := range payloads {
			payloads[i] = truncate(payload, cfg.Capacity)
		}
		return payloads, nil

	default:
		return nil, fmt.Errorf("crc/input: unknown source %q", cfg.Source)
	}
}

func truncate(data []byte, capacity int) []byte {
	if len(data) > capacity {
		log.Warningf("message of %d bytes truncated to %d", len(data), capacity)
		return data[:capacity]
	}
	return data
}

// Open returns the named file for reading, or standard input if name is
// empty or "-".
func Open(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
