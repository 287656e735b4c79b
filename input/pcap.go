package input

import (
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
)

// ReadPCAP returns the application layer payload of every packet in the
// pcap capture read from r. Packets without an application layer are
// skipped.
func ReadPCAP(r io.Reader) ([][]byte, error) {
	handle, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("crc/input: pcap: %v", err)
	}

	var (
		payloads [][]byte
		source   = gopacket.NewPacketSource(handle, handle.LinkType())
	)
	for n := 0; ; n++ {
		packet, err := source.NextPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			return payloads, fmt.Errorf("crc/input: pcap packet #%d: %v", n, err)
		}

		app := packet.ApplicationLayer()
		if app == nil {
			log.Debugf("pcap packet #%d has no application layer, skipping", n)
			continue
		}
		payloads = append(payloads, app.Payload())
	}

	log.Debugf("read %d payloads from pcap", len(payloads))
	return payloads, nil
}
