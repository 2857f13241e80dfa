package agent

import (
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LMBertholdo/verfploeter/internal/packet"
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

type sentFrame struct {
	dst   net.IP
	frame []byte
}

type fakeFrameSender struct {
	mu     sync.Mutex
	frames []sentFrame
}

func (f *fakeFrameSender) Send(dst net.IP, frame []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, sentFrame{dst: dst, frame: frame})
	return nil
}

func (f *fakeFrameSender) sent() []sentFrame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentFrame{}, f.frames...)
}

func TestPingOutbound_ChannelTakenOnce(t *testing.T) {
	t.Parallel()

	h := NewPingOutbound(slog.Default(), &fakeFrameSender{})
	_, ok := h.Channel()
	require.True(t, ok)
	_, ok = h.Channel()
	assert.False(t, ok, "the task sender can only be taken once")
}

func TestPingOutbound_ExpandsTaskToProbes(t *testing.T) {
	t.Parallel()

	sender := &fakeFrameSender{}
	h := NewPingOutbound(slog.Default(), sender)

	tasks, ok := h.Channel()
	require.True(t, ok)
	h.Start()
	defer h.Exit()

	dsts := []uint32{0x0A000001, 0x0A000002}
	tasks <- &pb.Task{
		TaskId: 7,
		Ping: &pb.PingV4{
			SourceAddress:        0xC0000201, // 192.0.2.1
			DestinationAddresses: dsts,
		},
	}

	require.Eventually(t, func() bool {
		return len(sender.sent()) == len(dsts)
	}, 5*time.Second, 10*time.Millisecond)

	for i, sent := range sender.sent() {
		assert.True(t, sent.dst.Equal(packet.Uint32ToAddr(dsts[i])))

		pkt, err := packet.ParseIPv4(wrapIPv4(sent.frame, 0x0A000001, 0xC0000201))
		require.NoError(t, err)
		icmp, ok := pkt.Payload.(*packet.ICMPv4Packet)
		require.True(t, ok)

		assert.Equal(t, uint8(8), icmp.Type)
		assert.Equal(t, uint16(7), icmp.Identifier, "identifier is the task id")
		assert.Equal(t, uint16(i), icmp.SequenceNumber, "sequence is the destination index")

		body, ok := parseProbeBody(icmp.Body)
		require.True(t, ok)
		assert.Equal(t, uint32(7), body.TaskID)
		assert.Equal(t, uint32(0xC0000201), body.SourceAddress)
		assert.Equal(t, dsts[i], body.DestinationAddress)
		assert.WithinDuration(t, time.Now(), body.TransmitTime, time.Minute)
	}
}

func TestPingOutbound_ExitIsIdempotent(t *testing.T) {
	t.Parallel()

	h := NewPingOutbound(slog.Default(), &fakeFrameSender{})
	h.Start()
	h.Exit()
	h.Exit()
}

// wrapIPv4 frames an ICMP message in a minimal 20-byte IPv4 header, the
// shape the capture path hands to the parser.
func wrapIPv4(icmp []byte, src, dst uint32) []byte {
	frame := make([]byte, 20, 20+len(icmp))
	frame[0] = 0x45
	frame[8] = 64
	frame[9] = 1
	frame[12] = byte(src >> 24)
	frame[13] = byte(src >> 16)
	frame[14] = byte(src >> 8)
	frame[15] = byte(src)
	frame[16] = byte(dst >> 24)
	frame[17] = byte(dst >> 16)
	frame[18] = byte(dst >> 8)
	frame[19] = byte(dst)
	return append(frame, icmp...)
}
