package coordinator

import (
	"log/slog"
	"sync"

	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// resultSink is one subscriber's delivery channel. done signals that the
// subscriber's stream has ended and the sink can be pruned.
type resultSink struct {
	results chan<- *pb.TaskResult
	done    <-chan struct{}
}

// subscriptionRegistry fans task results out to the subscribers of each
// task id. subscribe takes the write lock; fanout snapshots under the read
// lock so it never holds up new subscribers while delivering.
type subscriptionRegistry struct {
	log *slog.Logger

	mu   sync.RWMutex
	subs map[uint32][]resultSink
}

func newSubscriptionRegistry(log *slog.Logger) *subscriptionRegistry {
	return &subscriptionRegistry{
		log:  log,
		subs: make(map[uint32][]resultSink),
	}
}

func (r *subscriptionRegistry) subscribe(taskID uint32, results chan<- *pb.TaskResult, done <-chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[taskID] = append(r.subs[taskID], resultSink{results: results, done: done})
	r.log.Debug("registered subscriber", "task_id", taskID, "subscribers", len(r.subs[taskID]))
}

// fanout attempts a non-blocking send of result to every sink registered
// for its task id and returns the number of sinks attempted. A full sink
// drops the item for that subscriber only; sinks whose stream has ended
// are pruned. A result with no subscribers is dropped.
func (r *subscriptionRegistry) fanout(result *pb.TaskResult) int {
	taskID := result.GetTaskId()

	r.mu.RLock()
	sinks := make([]resultSink, len(r.subs[taskID]))
	copy(sinks, r.subs[taskID])
	r.mu.RUnlock()

	var dead []resultSink
	for _, sink := range sinks {
		select {
		case <-sink.done:
			r.log.Debug("dropping result for closed subscriber", "task_id", taskID)
			dead = append(dead, sink)
			continue
		default:
		}
		select {
		case sink.results <- result:
		default:
			r.log.Debug("dropping result for slow subscriber", "task_id", taskID)
		}
	}
	if len(dead) > 0 {
		r.prune(taskID, dead)
	}
	return len(sinks)
}

// prune removes dead sinks from the task's subscriber list. Sinks are
// compared by channel identity.
func (r *subscriptionRegistry) prune(taskID uint32, dead []resultSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := r.subs[taskID][:0]
	for _, sink := range r.subs[taskID] {
		alive := true
		for _, d := range dead {
			if sink.results == d.results {
				alive = false
				break
			}
		}
		if alive {
			live = append(live, sink)
		}
	}
	if len(live) == 0 {
		delete(r.subs, taskID)
		return
	}
	r.subs[taskID] = live
}
