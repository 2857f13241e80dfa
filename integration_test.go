package verfploeter_test

import (
	"context"
	"encoding/binary"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/LMBertholdo/verfploeter/internal/agent"
	"github.com/LMBertholdo/verfploeter/internal/coordinator"
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// loopbackNetwork reflects every transmitted echo request straight back as
// an echo reply, standing in for the raw-socket path.
type loopbackNetwork struct {
	frames chan []byte
}

func newLoopbackNetwork() *loopbackNetwork {
	return &loopbackNetwork{frames: make(chan []byte, 64)}
}

func (n *loopbackNetwork) Send(dst net.IP, frame []byte) error {
	reply := append([]byte{}, frame...)
	reply[0] = 0 // echo request becomes echo reply

	// Wrap in a minimal IPv4 header with the probed host as source.
	pkt := make([]byte, 20, 20+len(reply))
	pkt[0] = 0x45
	pkt[8] = 64
	pkt[9] = 1
	copy(pkt[12:16], dst.To4())
	binary.BigEndian.PutUint32(pkt[16:20], binary.BigEndian.Uint32(frame[20:24]))
	n.frames <- append(pkt, reply...)
	return nil
}

func (n *loopbackNetwork) Frames() <-chan []byte {
	return n.frames
}

// TestIntegration_TaskFanThrough runs the full path: an agent connects, a
// task is scheduled, probes go out, replies come back in, and a subscriber
// receives the batched result.
func TestIntegration_TaskFanThrough(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping control-plane integration test in short mode")
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv, err := coordinator.New(
		coordinator.WithLogger(slog.Default()),
		coordinator.WithListener(lis),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = srv.Run(ctx)
	}()

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()
	client := pb.NewVerfploeterClient(conn)

	network := newLoopbackNetwork()
	metadata := &pb.Metadata{Hostname: "a1", Version: "0.1"}

	session, err := agent.New(&agent.Config{
		Logger:   slog.Default(),
		Client:   client,
		Hostname: "a1",
		Version:  "0.1",
		Handlers: map[string]agent.TaskHandler{
			agent.HandlerPingOutbound: agent.NewPingOutbound(slog.Default(), network),
			agent.HandlerPingInbound:  agent.NewPingInbound(slog.Default(), client, metadata, network, nil),
		},
	})
	require.NoError(t, err)

	sessionCtx, sessionCancel := context.WithCancel(context.Background())
	defer sessionCancel()
	sessionDone := make(chan struct{})
	go func() {
		defer close(sessionDone)
		_ = session.Run(sessionCtx)
	}()

	// Wait until the agent is registered.
	require.Eventually(t, func() bool {
		list, err := client.ListClients(context.Background(), &pb.Empty{})
		return err == nil && len(list.GetClients()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Subscribe before scheduling so the first result cannot be missed.
	// The first task id handed out is 0.
	subCtx, subCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer subCancel()
	results, err := client.SubscribeResult(subCtx, &pb.TaskId{TaskId: 0})
	require.NoError(t, err)

	dsts := []uint32{0x0A000001, 0x0A000002}
	ack, err := client.DoTask(context.Background(), &pb.ScheduleTask{
		Client: &pb.Client{Index: 1},
		Ping: &pb.PingV4{
			SourceAddress:        0xC0000201,
			DestinationAddresses: dsts,
		},
	})
	require.NoError(t, err)
	require.Equal(t, uint32(0), ack.GetTaskId())

	// Replies may arrive across flush batches; collect until both probes
	// are accounted for.
	sources := make(map[uint32]bool)
	for len(sources) < len(dsts) {
		result, err := results.Recv()
		require.NoError(t, err)
		assert.Equal(t, uint32(0), result.GetTaskId())
		assert.Equal(t, "a1", result.GetClient().GetMetadata().GetHostname())
		for _, reply := range result.GetResultList() {
			sources[reply.GetSourceAddress()] = true
		}
	}
	for _, dst := range dsts {
		assert.True(t, sources[dst], "missing reply from %#x", dst)
	}

	sessionCancel()
	select {
	case <-sessionDone:
	case <-time.After(5 * time.Second):
		t.Fatal("agent session did not shut down")
	}
}
