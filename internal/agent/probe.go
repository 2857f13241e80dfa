package agent

import (
	"encoding/binary"
	"time"
)

// probeBody is the echo-request payload the outbound handler stamps on
// every probe and the inbound handler recovers from echo replies. All
// fields are network-endian on the wire.
type probeBody struct {
	TaskID             uint32
	TransmitTime       time.Time
	SourceAddress      uint32
	DestinationAddress uint32
}

const probeBodyLen = 20

func (p probeBody) marshal() []byte {
	b := make([]byte, probeBodyLen)
	binary.BigEndian.PutUint32(b[0:], p.TaskID)
	binary.BigEndian.PutUint64(b[4:], uint64(p.TransmitTime.UnixNano()))
	binary.BigEndian.PutUint32(b[12:], p.SourceAddress)
	binary.BigEndian.PutUint32(b[16:], p.DestinationAddress)
	return b
}

// parseProbeBody recovers the probe fields from an echo-reply body. Bodies
// shorter than the fixed layout are not ours.
func parseProbeBody(b []byte) (probeBody, bool) {
	if len(b) < probeBodyLen {
		return probeBody{}, false
	}
	return probeBody{
		TaskID:             binary.BigEndian.Uint32(b[0:]),
		TransmitTime:       time.Unix(0, int64(binary.BigEndian.Uint64(b[4:]))),
		SourceAddress:      binary.BigEndian.Uint32(b[12:]),
		DestinationAddress: binary.BigEndian.Uint32(b[16:]),
	}, true
}
