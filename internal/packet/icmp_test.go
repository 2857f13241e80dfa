package packet

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foldSum is the plain one's-complement fold (no final complement), used to
// revalidate frames independently of Checksum.
func foldSum(b []byte) uint32 {
	var sum uint32
	i := 0
	for ; i+1 < len(b); i += 2 {
		sum += uint32(binary.LittleEndian.Uint16(b[i:]))
	}
	if i < len(b) {
		sum += uint32(b[i])
	}
	for sum>>16 != 0 {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}
	return sum
}

func withSuffix(frame []byte) []byte {
	return append(append([]byte{}, frame...), InfoURL...)
}

func TestEchoRequest_EmptyBody(t *testing.T) {
	t.Parallel()

	frame := EchoRequest(0x1234, 0x0001, nil)
	require.Len(t, frame, 8)
	assert.Equal(t, uint8(8), frame[0])
	assert.Equal(t, uint8(0), frame[1])
	assert.Equal(t, uint16(0x1234), binary.BigEndian.Uint16(frame[4:]))
	assert.Equal(t, uint16(0x0001), binary.BigEndian.Uint16(frame[6:]))

	// The emitted checksum must cancel the rest of the frame plus the
	// signature suffix.
	assert.Equal(t, uint32(0xFFFF), foldSum(withSuffix(frame)))
}

func TestEchoRequest_ChecksumLittleEndian(t *testing.T) {
	t.Parallel()

	frame := EchoRequest(0x1234, 0x0001, nil)

	// Recompute the checksum over the frame with the checksum field zeroed
	// and the suffix appended; the stored bytes must match in little-endian
	// order at offsets 2-3.
	zeroed := withSuffix(frame)
	zeroed[2], zeroed[3] = 0, 0
	want := Checksum(zeroed)
	assert.Equal(t, want, binary.LittleEndian.Uint16(frame[2:]))
}

func TestEchoRequest_OddBody(t *testing.T) {
	t.Parallel()

	// InfoURL has even length, so an odd body exercises the trailing-byte
	// fold inside the checksum input.
	require.Equal(t, 0, len(InfoURL)%2)

	a := EchoRequest(7, 9, []byte{0xAA, 0xBB, 0x01})
	b := EchoRequest(7, 9, []byte{0xAA, 0xBB, 0x02})
	assert.NotEqual(t, binary.LittleEndian.Uint16(a[2:]), binary.LittleEndian.Uint16(b[2:]),
		"final odd byte must participate in the checksum")

	assert.Equal(t, uint32(0xFFFF), foldSum(withSuffix(a)))
	assert.Equal(t, uint32(0xFFFF), foldSum(withSuffix(b)))
}

func TestEchoRequest_RoundTrip(t *testing.T) {
	t.Parallel()

	body := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42}
	frame := EchoRequest(0xBEEF, 0x00FF, body)

	pkt, err := parseICMPv4(frame)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), pkt.Type)
	assert.Equal(t, uint8(0), pkt.Code)
	assert.Equal(t, uint16(0xBEEF), pkt.Identifier)
	assert.Equal(t, uint16(0x00FF), pkt.SequenceNumber)
	assert.Equal(t, body, pkt.Body)
}

func TestChecksum_OddTrailingByte(t *testing.T) {
	t.Parallel()

	even := Checksum([]byte{0x01, 0x02})
	odd := Checksum([]byte{0x01, 0x02, 0x03})
	assert.NotEqual(t, even, odd)

	// A lone byte folds in as a low-order byte.
	assert.Equal(t, ^uint16(0x0003), Checksum([]byte{0x03}))
}

func FuzzEchoRequest(f *testing.F) {
	f.Add(uint16(0), uint16(0), []byte{})
	f.Add(uint16(0x1234), uint16(1), []byte("payload"))
	f.Add(uint16(0xFFFF), uint16(0xFFFF), []byte{0x00})
	f.Fuzz(func(t *testing.T, id, seq uint16, body []byte) {
		frame := EchoRequest(id, seq, body)
		if len(frame) != 8+len(body) {
			t.Fatalf("frame length %d, want %d", len(frame), 8+len(body))
		}
		if got := foldSum(withSuffix(frame)); got != 0xFFFF {
			t.Fatalf("checksum does not validate: fold %#x", got)
		}
		pkt, err := parseICMPv4(frame)
		if err != nil {
			t.Fatal(err)
		}
		if pkt.Identifier != id || pkt.SequenceNumber != seq {
			t.Fatalf("roundtrip mismatch: id %#x seq %#x", pkt.Identifier, pkt.SequenceNumber)
		}
	})
}
