package agent

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LMBertholdo/verfploeter/internal/packet"
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

type fakeFrameSource struct {
	frames chan []byte
}

func (f *fakeFrameSource) Frames() <-chan []byte {
	return f.frames
}

// echoReplyFrame builds a captured echo reply carrying our probe body for
// taskID, wrapped in an IPv4 header from src to dst.
func echoReplyFrame(taskID uint32, identifier uint16, src, dst uint32) []byte {
	body := probeBody{
		TaskID:             taskID,
		TransmitTime:       time.Unix(0, 0),
		SourceAddress:      dst,
		DestinationAddress: src,
	}
	reply := &packet.ICMPv4Packet{
		Type:           0,
		Code:           0,
		Identifier:     identifier,
		SequenceNumber: 0,
		Body:           body.marshal(),
	}
	return wrapIPv4(reply.Marshal(), src, dst)
}

func newTestInbound(t *testing.T) (*PingInbound, *fakeCoordinator, *fakeFrameSource, *clockwork.FakeClock) {
	t.Helper()

	coordinator := newFakeCoordinator()
	source := &fakeFrameSource{frames: make(chan []byte)}
	clock := clockwork.NewFakeClock()
	metadata := &pb.Metadata{Hostname: "a1", Version: "0.1"}
	h := NewPingInbound(slog.Default(), coordinator, metadata, source, clock)
	return h, coordinator, source, clock
}

// waitForTicker blocks until the handler's flush ticker is armed.
func waitForTicker(t *testing.T, clock *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
}

func TestPingInbound_IsSelfDriven(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newTestInbound(t)
	_, ok := h.Channel()
	assert.False(t, ok)
}

func TestPingInbound_SubmitsMatchedReplies(t *testing.T) {
	t.Parallel()

	h, coordinator, source, clock := newTestInbound(t)
	h.Start()
	defer h.Exit()

	// A matched reply: echo identifier equals the task id in the body.
	source.frames <- echoReplyFrame(9, 9, 0x0A000001, 0x0A000002)

	waitForTicker(t, clock)
	clock.Advance(flushInterval)

	require.Eventually(t, func() bool {
		return len(coordinator.submitted()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	result := coordinator.submitted()[0]
	assert.Equal(t, uint32(9), result.GetTaskId())
	assert.Equal(t, "a1", result.GetClient().GetMetadata().GetHostname())
	require.Len(t, result.GetResultList(), 1)

	reply := result.GetResultList()[0]
	assert.Equal(t, uint32(0x0A000001), reply.GetSourceAddress())
	assert.Equal(t, uint32(0x0A000002), reply.GetDestinationAddress())

	body, ok := parseProbeBody(reply.GetPayload())
	require.True(t, ok)
	assert.Equal(t, uint32(9), body.TaskID)
}

func TestPingInbound_FiltersForeignReplies(t *testing.T) {
	t.Parallel()

	h, coordinator, source, clock := newTestInbound(t)
	h.Start()
	defer h.Exit()

	// Identifier does not match the embedded task id: someone else's ping.
	source.frames <- echoReplyFrame(9, 1234, 0x0A000001, 0x0A000002)
	// Echo request rather than reply.
	request := packet.EchoRequest(9, 0, probeBody{TaskID: 9}.marshal())
	source.frames <- wrapIPv4(request, 0x0A000001, 0x0A000002)
	// Body too short to be ours.
	short := &packet.ICMPv4Packet{Type: 0, Identifier: 9, Body: []byte{1, 2, 3}}
	source.frames <- wrapIPv4(short.Marshal(), 0x0A000001, 0x0A000002)
	// Garbage that does not parse at all.
	source.frames <- []byte{0x45, 0x00}

	waitForTicker(t, clock)
	clock.Advance(flushInterval)

	// Give the flush a moment; nothing may be submitted.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, coordinator.submitted())
}

func TestPingInbound_BatchesPerTask(t *testing.T) {
	t.Parallel()

	h, coordinator, source, clock := newTestInbound(t)
	h.Start()
	defer h.Exit()

	source.frames <- echoReplyFrame(1, 1, 0x0A000001, 0x0A000002)
	source.frames <- echoReplyFrame(1, 1, 0x0A000003, 0x0A000002)
	source.frames <- echoReplyFrame(2, 2, 0x0A000004, 0x0A000002)

	waitForTicker(t, clock)
	clock.Advance(flushInterval)

	require.Eventually(t, func() bool {
		return len(coordinator.submitted()) == 2
	}, 5*time.Second, 10*time.Millisecond)

	byTask := make(map[uint32]int)
	for _, result := range coordinator.submitted() {
		byTask[result.GetTaskId()] = len(result.GetResultList())
	}
	assert.Equal(t, map[uint32]int{1: 2, 2: 1}, byTask)
}

func TestPingInbound_FlushesOnExit(t *testing.T) {
	t.Parallel()

	h, coordinator, source, _ := newTestInbound(t)
	h.Start()

	source.frames <- echoReplyFrame(5, 5, 0x0A000001, 0x0A000002)
	h.Exit()
	h.Exit()

	require.Len(t, coordinator.submitted(), 1)
	assert.Equal(t, uint32(5), coordinator.submitted()[0].GetTaskId())
}

func TestPingInbound_StopsWhenSourceCloses(t *testing.T) {
	t.Parallel()

	h, coordinator, source, _ := newTestInbound(t)
	h.Start()

	source.frames <- echoReplyFrame(6, 6, 0x0A000001, 0x0A000002)
	close(source.frames)

	require.Eventually(t, func() bool {
		return len(coordinator.submitted()) == 1
	}, 5*time.Second, 10*time.Millisecond)
}
