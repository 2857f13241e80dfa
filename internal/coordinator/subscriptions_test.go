package coordinator

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

func TestSubscriptionRegistry_FanoutDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	r := newSubscriptionRegistry(slog.Default())
	never := make(chan struct{})

	first := make(chan *pb.TaskResult, 1)
	second := make(chan *pb.TaskResult, 1)
	r.subscribe(7, first, never)
	r.subscribe(7, second, never)

	result := &pb.TaskResult{TaskId: 7, ResultList: []*pb.Ping{{Payload: []byte("R")}}}
	assert.Equal(t, 2, r.fanout(result))

	for _, ch := range []chan *pb.TaskResult{first, second} {
		select {
		case got := <-ch:
			assert.Equal(t, uint32(7), got.GetTaskId())
			require.Len(t, got.GetResultList(), 1)
			assert.Equal(t, []byte("R"), got.GetResultList()[0].GetPayload())
		default:
			t.Fatal("subscriber did not receive the result")
		}
	}
}

func TestSubscriptionRegistry_FanoutWithoutSubscribers(t *testing.T) {
	t.Parallel()

	r := newSubscriptionRegistry(slog.Default())
	assert.Equal(t, 0, r.fanout(&pb.TaskResult{TaskId: 42}))
}

func TestSubscriptionRegistry_FanoutIsScopedToTaskID(t *testing.T) {
	t.Parallel()

	r := newSubscriptionRegistry(slog.Default())
	never := make(chan struct{})

	other := make(chan *pb.TaskResult, 1)
	r.subscribe(8, other, never)

	assert.Equal(t, 0, r.fanout(&pb.TaskResult{TaskId: 7}))
	select {
	case <-other:
		t.Fatal("subscriber for task 8 must not see task 7 results")
	default:
	}
}

func TestSubscriptionRegistry_DropsForFullSubscribers(t *testing.T) {
	t.Parallel()

	r := newSubscriptionRegistry(slog.Default())

	// A slow-but-live subscriber whose 1-slot channel is already full: the
	// result is dropped for it without blocking and it stays registered.
	slow := make(chan *pb.TaskResult, 1)
	slow <- &pb.TaskResult{TaskId: 7}
	r.subscribe(7, slow, make(chan struct{}))

	live := make(chan *pb.TaskResult, 1)
	r.subscribe(7, live, make(chan struct{}))

	assert.Equal(t, 2, r.fanout(&pb.TaskResult{TaskId: 7, ResultList: []*pb.Ping{{Payload: []byte("R")}}}))
	assert.Len(t, r.subs[7], 2)

	select {
	case got := <-live:
		require.Len(t, got.GetResultList(), 1)
	default:
		t.Fatal("live subscriber did not receive the result")
	}
}

func TestSubscriptionRegistry_PrunesClosedSubscribers(t *testing.T) {
	t.Parallel()

	r := newSubscriptionRegistry(slog.Default())

	gone := make(chan struct{})
	close(gone)
	dead := make(chan *pb.TaskResult) // unbuffered and never read
	r.subscribe(7, dead, gone)

	live := make(chan *pb.TaskResult, 1)
	r.subscribe(7, live, make(chan struct{}))

	// Both sinks are attempted; the dead one is pruned.
	assert.Equal(t, 2, r.fanout(&pb.TaskResult{TaskId: 7}))
	assert.Len(t, r.subs[7], 1)
	<-live

	assert.Equal(t, 1, r.fanout(&pb.TaskResult{TaskId: 7}))
}
