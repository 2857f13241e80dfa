package packet

import (
	"encoding/binary"
	"fmt"
	"net"
)

const (
	ipv4MinHeaderLen = 20
	protocolICMPv4   = 1
)

// Payload is the decoded IPv4 payload. Protocols other than ICMPv4 decode
// to Unimplemented.
type Payload interface {
	payload()
}

// Unimplemented marks a payload protocol the parser does not decode.
type Unimplemented struct{}

func (Unimplemented) payload() {}

// IPv4Packet is the parse view of a captured IPv4 frame.
type IPv4Packet struct {
	TTL                uint8
	SourceAddress      net.IP
	DestinationAddress net.IP
	Payload            Payload
}

// ParseIPv4 decodes the IPv4 header of data and, for ICMPv4, the payload
// behind it. The header length comes from the low nibble of byte 0 in
// units of 4 bytes.
func ParseIPv4(data []byte) (*IPv4Packet, error) {
	if len(data) < ipv4MinHeaderLen {
		return nil, fmt.Errorf("ipv4 packet too short: %d bytes", len(data))
	}
	headerLen := int(data[0]&0x0F) * 4
	if headerLen < ipv4MinHeaderLen || headerLen > len(data) {
		return nil, fmt.Errorf("ipv4 header length %d out of range for %d-byte packet", headerLen, len(data))
	}

	pkt := &IPv4Packet{
		TTL:                data[8],
		SourceAddress:      Uint32ToAddr(binary.BigEndian.Uint32(data[12:16])),
		DestinationAddress: Uint32ToAddr(binary.BigEndian.Uint32(data[16:20])),
	}

	switch data[9] {
	case protocolICMPv4:
		icmp, err := parseICMPv4(data[headerLen:])
		if err != nil {
			return nil, err
		}
		pkt.Payload = icmp
	default:
		pkt.Payload = Unimplemented{}
	}
	return pkt, nil
}
