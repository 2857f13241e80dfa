// Package coordinator implements the verfploeter control-plane service:
// it multiplexes long-lived agent sessions, fans tasks out to agents, and
// fans task results out to subscribers.
package coordinator

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

const (
	// DefaultListenAddr is where the coordinator binds when no listener is
	// provided.
	DefaultListenAddr = "0.0.0.0:50001"

	// MaxMessageSize caps gRPC messages in both directions. Result batches
	// for large hitlists can run to tens of megabytes.
	MaxMessageSize = 100 * 1024 * 1024

	// keepaliveInterval is how often an Empty task is enqueued on each
	// agent's stream to surface dead sessions.
	keepaliveInterval = 5 * time.Second
)

var ErrLoggerRequired = errors.New("logger is required")

// Server is the coordinator gRPC service.
type Server struct {
	pb.UnimplementedVerfploeterServer

	log       *slog.Logger
	clock     clockwork.Clock
	listener  net.Listener
	tlsConfig *tls.Config

	connections   *connectionRegistry
	subscriptions *subscriptionRegistry

	// nextTaskID holds the next task id to hand out; the first task gets 0.
	nextTaskID atomic.Uint32
}

type Option func(*Server)

func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithListener provides a custom listener for the gRPC server. Without it
// the coordinator binds DefaultListenAddr.
func WithListener(listener net.Listener) Option {
	return func(s *Server) {
		s.listener = listener
	}
}

// WithTLSConfig enables TLS on the gRPC server.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(s *Server) {
		s.tlsConfig = tlsConfig
	}
}

// WithClock overrides the clock driving keepalives. This is used for
// testing.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

func New(options ...Option) (*Server, error) {
	s := &Server{}
	for _, o := range options {
		o(s)
	}
	if s.log == nil {
		return nil, ErrLoggerRequired
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.listener == nil {
		lis, err := net.Listen("tcp", DefaultListenAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to listen: %w", err)
		}
		s.listener = lis
	}
	s.connections = newConnectionRegistry(s.log)
	s.subscriptions = newSubscriptionRegistry(s.log)
	return s, nil
}

// Run serves gRPC on the configured listener until ctx is done, then
// drains in-flight RPCs with a graceful stop.
func (s *Server) Run(ctx context.Context) error {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(MaxMessageSize),
		grpc.MaxSendMsgSize(MaxMessageSize),
		// Agents ping every 180 s; the default enforcement minimum of 5
		// minutes would close their sessions.
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             time.Minute,
			PermitWithoutStream: true,
		}),
		grpc.UnaryInterceptor(srvMetrics.UnaryServerInterceptor()),
		grpc.StreamInterceptor(srvMetrics.StreamServerInterceptor()),
	}
	if s.tlsConfig != nil {
		opts = append(opts, grpc.Creds(credentials.NewTLS(s.tlsConfig)))
	}
	server := grpc.NewServer(opts...)
	pb.RegisterVerfploeterServer(server, s)

	s.log.Info("listening", "address", s.listener.Addr().String())

	errChan := make(chan error)
	go func() {
		if err := server.Serve(s.listener); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		server.GracefulStop()
		return nil
	case err := <-errChan:
		return err
	}
}

// Addr returns the address the coordinator is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Connect registers the agent and forwards tasks from its channel onto
// the stream until the stream breaks or the agent goes away. A keepalive
// goroutine enqueues Empty tasks so dead TCP sessions surface within the
// socket buffer window rather than on the next real task.
func (s *Server) Connect(metadata *pb.Metadata, stream pb.Verfploeter_ConnectServer) error {
	ctx := stream.Context()

	id := s.connections.generateID()
	conn := newConnection(metadata)
	s.connections.register(id, conn)
	defer s.connections.unregister(id)

	connectedAgents.Inc()
	defer connectedAgents.Dec()

	s.log.Info("agent connected", "connection_id", id, "hostname", metadata.GetHostname(), "version", metadata.GetVersion())

	go s.keepalive(ctx, conn)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("agent disconnected", "connection_id", id, "error", ctx.Err())
			return nil
		case task := <-conn.tasks:
			if err := stream.Send(task); err != nil {
				s.log.Info("agent stream broke", "connection_id", id, "error", err)
				return err
			}
		}
	}
}

// keepalive enqueues an Empty task on every tick. Keepalives carry no task
// id; they exist only to exercise the stream.
func (s *Server) keepalive(ctx context.Context, conn *connection) {
	ticker := s.clock.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-conn.done:
			return
		case <-ticker.Chan():
			select {
			case conn.tasks <- &pb.Task{Empty: &pb.Empty{}}:
				keepalivesSent.Inc()
			case <-ctx.Done():
				return
			case <-conn.done:
				return
			}
		}
	}
}

// DoTask schedules a ping task on the agent at client.index and replies
// with the assigned task id. The id is allocated before the target lookup,
// so a request for an unknown agent burns an id.
func (s *Server) DoTask(ctx context.Context, req *pb.ScheduleTask) (*pb.Ack, error) {
	if req.GetPing() == nil {
		return nil, status.Error(codes.InvalidArgument, "schedule request carries no supported task variant")
	}

	taskID := s.nextTaskID.Add(1) - 1

	index := req.GetClient().GetIndex()
	conn, ok := s.connections.get(index)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "client %d not connected", index)
	}

	task := &pb.Task{TaskId: taskID, Ping: req.GetPing()}
	select {
	case conn.tasks <- task:
	case <-conn.done:
		return nil, status.Errorf(codes.Unavailable, "client %d disconnected", index)
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	}

	tasksScheduled.Inc()
	s.log.Debug("scheduled task", "task_id", taskID, "connection_id", index, "destinations", len(req.GetPing().GetDestinationAddresses()))
	return &pb.Ack{TaskId: taskID}, nil
}

// ListClients returns the currently connected agents in unspecified order.
func (s *Server) ListClients(ctx context.Context, _ *pb.Empty) (*pb.ClientList, error) {
	return &pb.ClientList{Clients: s.connections.snapshot()}, nil
}

// SendResult fans the result out to the task's subscribers. Delivery is
// best-effort and never reported back to the submitting agent.
func (s *Server) SendResult(ctx context.Context, result *pb.TaskResult) (*pb.Ack, error) {
	resultsReceived.Inc()
	attempted := s.subscriptions.fanout(result)
	resultsFannedOut.Add(float64(attempted))
	s.log.Debug("received result", "task_id", result.GetTaskId(), "replies", len(result.GetResultList()), "subscribers", attempted)
	return &pb.Ack{}, nil
}

// SubscribeResult streams every result submitted for the requested task id
// until the subscriber goes away.
func (s *Server) SubscribeResult(req *pb.TaskId, stream pb.Verfploeter_SubscribeResultServer) error {
	ctx := stream.Context()

	results := make(chan *pb.TaskResult, 1)
	s.subscriptions.subscribe(req.GetTaskId(), results, ctx.Done())

	for {
		select {
		case <-ctx.Done():
			return nil
		case result := <-results:
			if err := stream.Send(result); err != nil {
				s.log.Debug("result stream closed", "task_id", req.GetTaskId(), "error", err)
				return err
			}
		}
	}
}
