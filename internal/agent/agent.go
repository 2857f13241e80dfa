package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// Handler names the session knows how to route to.
const (
	HandlerPingOutbound = "ping_outbound"
	HandlerPingInbound  = "ping_inbound"
)

var (
	ErrLoggerRequired = errors.New("logger is required")
	ErrClientRequired = errors.New("coordinator client is required")
)

// Config configures a Session.
type Config struct {
	Logger   *slog.Logger
	Client   pb.VerfploeterClient
	Hostname string
	Version  string
	Handlers map[string]TaskHandler
}

func (cfg *Config) Validate() error {
	if cfg.Logger == nil {
		return ErrLoggerRequired
	}
	if cfg.Client == nil {
		return ErrClientRequired
	}
	return nil
}

// Session is one agent's long-lived connection to the coordinator. It
// receives tasks over the connect stream, routes them by variant to the
// matching handler, and tears the handlers down when the stream ends.
type Session struct {
	log      *slog.Logger
	client   pb.VerfploeterClient
	metadata *pb.Metadata
	handlers map[string]TaskHandler
}

func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		log:      cfg.Logger,
		client:   cfg.Client,
		metadata: &pb.Metadata{Hostname: cfg.Hostname, Version: cfg.Version},
		handlers: cfg.Handlers,
	}, nil
}

// Run connects to the coordinator and processes tasks until the stream
// ends or ctx is canceled. Handlers are started before the first task is
// routed and drained before Run returns.
func (s *Session) Run(ctx context.Context) error {
	stream, err := s.client.Connect(ctx, s.metadata)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.log.Info("connected to coordinator", "hostname", s.metadata.GetHostname(), "version", s.metadata.GetVersion())

	pings, ok := s.takeChannel(HandlerPingOutbound)
	if !ok {
		s.log.Warn("no ping_outbound handler registered; ping tasks will be dropped")
	}

	for name, h := range s.handlers {
		h.Start()
		s.log.Debug("started task handler", "handler", name)
	}
	defer func() {
		for name, h := range s.handlers {
			h.Exit()
			s.log.Debug("exited task handler", "handler", name)
		}
	}()

	for {
		task, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				s.log.Info("coordinator stream ended")
				return nil
			}
			return fmt.Errorf("task stream: %w", err)
		}
		s.route(ctx, task, pings)
	}
}

// route dispatches one task by variant. Keepalives are dropped; unknown
// variants are logged and dropped, keeping the session up.
func (s *Session) route(ctx context.Context, task *pb.Task, pings chan<- *pb.Task) {
	switch {
	case task.GetPing() != nil:
		tasksReceived.Inc()
		if pings == nil {
			s.log.Warn("dropping ping task: no outbound handler", "task_id", task.GetTaskId())
			return
		}
		select {
		case pings <- task:
			s.log.Debug("routed ping task", "task_id", task.GetTaskId())
		case <-ctx.Done():
		}
	case task.GetEmpty() != nil:
		s.log.Debug("keepalive")
	default:
		s.log.Warn("unknown task variant", "task_id", task.GetTaskId())
	}
}

func (s *Session) takeChannel(name string) (chan<- *pb.Task, bool) {
	h, ok := s.handlers[name]
	if !ok {
		return nil, false
	}
	return h.Channel()
}
