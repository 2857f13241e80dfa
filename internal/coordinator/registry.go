package coordinator

import (
	"log/slog"
	"sync"

	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// connection is one live agent session. tasks is the 1-slot channel the
// connect stream drains; done is closed on unregister so blocked senders
// can bail out.
type connection struct {
	metadata *pb.Metadata
	tasks    chan *pb.Task
	done     chan struct{}
}

func newConnection(metadata *pb.Metadata) *connection {
	return &connection{
		metadata: metadata,
		tasks:    make(chan *pb.Task, 1),
		done:     make(chan struct{}),
	}
}

// connectionRegistry tracks live agent sessions keyed by connection id.
// Ids are assigned from a monotonic counter starting at 1 and are never
// reused within a coordinator lifetime.
type connectionRegistry struct {
	log *slog.Logger

	mu          sync.Mutex
	connections map[uint32]*connection
	lastID      uint32
}

func newConnectionRegistry(log *slog.Logger) *connectionRegistry {
	return &connectionRegistry{
		log:         log,
		connections: make(map[uint32]*connection),
	}
}

func (r *connectionRegistry) generateID() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return r.lastID
}

func (r *connectionRegistry) register(id uint32, conn *connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[id] = conn
	r.log.Debug("registered connection", "connection_id", id, "connections", len(r.connections))
}

// unregister removes the connection and releases anyone blocked on its
// task channel. No-op for unknown ids.
func (r *connectionRegistry) unregister(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.connections[id]
	if !ok {
		return
	}
	delete(r.connections, id)
	close(conn.done)
	r.log.Debug("unregistered connection", "connection_id", id, "connections", len(r.connections))
}

// get returns the live connection for id, if any.
func (r *connectionRegistry) get(id uint32) (*connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.connections[id]
	return conn, ok
}

// snapshot returns a point-in-time listing of connected agents in
// unspecified order.
func (r *connectionRegistry) snapshot() []*pb.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	clients := make([]*pb.Client, 0, len(r.connections))
	for id, conn := range r.connections {
		clients = append(clients, &pb.Client{Index: id, Metadata: conn.metadata})
	}
	return clients
}
