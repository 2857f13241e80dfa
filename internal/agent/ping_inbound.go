package agent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/LMBertholdo/verfploeter/internal/packet"
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// FrameSource delivers captured IPv4 frames. The rawsock package provides
// the production implementation.
type FrameSource interface {
	Frames() <-chan []byte
}

const (
	// flushInterval bounds how long a matched reply sits in the batch
	// buffer before it is submitted upstream.
	flushInterval = 1 * time.Second

	// flushTimeout caps a single send_result call so a stalled coordinator
	// cannot wedge the capture loop.
	flushTimeout = 10 * time.Second
)

// PingInbound is a self-driven handler: it consumes captured frames,
// keeps the ICMPv4 echo replies that carry our probe payload, and submits
// them upstream in per-task batches.
type PingInbound struct {
	log      *slog.Logger
	client   pb.VerfploeterClient
	metadata *pb.Metadata
	source   FrameSource
	clock    clockwork.Clock
	quit     chan struct{}
	wg       sync.WaitGroup

	// pending batches matched replies per task id between flushes. Owned by
	// the run goroutine.
	pending map[uint32][]*pb.Ping

	mu     sync.Mutex
	exited bool
}

func NewPingInbound(log *slog.Logger, client pb.VerfploeterClient, metadata *pb.Metadata, source FrameSource, clock clockwork.Clock) *PingInbound {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PingInbound{
		log:      log,
		client:   client,
		metadata: metadata,
		source:   source,
		clock:    clock,
		quit:     make(chan struct{}),
		pending:  make(map[uint32][]*pb.Ping),
	}
}

func (p *PingInbound) Start() {
	p.wg.Add(1)
	go p.run()
}

func (p *PingInbound) Exit() {
	p.mu.Lock()
	if p.exited {
		p.mu.Unlock()
		return
	}
	p.exited = true
	p.mu.Unlock()

	close(p.quit)
	p.wg.Wait()
}

// Channel returns false: the handler is driven by its frame source, not
// by the session.
func (p *PingInbound) Channel() (chan<- *pb.Task, bool) {
	return nil, false
}

func (p *PingInbound) run() {
	defer p.wg.Done()

	ticker := p.clock.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.quit:
			// Push out whatever is still buffered before going down.
			p.flush()
			return
		case frame, ok := <-p.source.Frames():
			if !ok {
				p.flush()
				return
			}
			p.collect(frame)
		case <-ticker.Chan():
			p.flush()
		}
	}
}

// collect keeps frame if it is an ICMPv4 echo reply carrying one of our
// probe bodies. The identifier convention (echo identifier == low 16 bits
// of the embedded task id) filters out replies to other pingers.
func (p *PingInbound) collect(frame []byte) {
	pkt, err := packet.ParseIPv4(frame)
	if err != nil {
		p.log.Debug("discarding unparseable frame", "error", err)
		return
	}
	icmp, ok := pkt.Payload.(*packet.ICMPv4Packet)
	if !ok || !icmp.IsEchoReply() {
		return
	}
	body, ok := parseProbeBody(icmp.Body)
	if !ok || icmp.Identifier != uint16(body.TaskID) {
		return
	}

	repliesMatched.Inc()
	p.pending[body.TaskID] = append(p.pending[body.TaskID], &pb.Ping{
		SourceAddress:      packet.AddrToUint32(pkt.SourceAddress),
		DestinationAddress: packet.AddrToUint32(pkt.DestinationAddress),
		Payload:            icmp.Body,
	})
}

// flush submits one TaskResult per task id with pending replies. Failed
// batches are dropped; the coordinator does not acknowledge per-reply
// delivery anyway.
func (p *PingInbound) flush() {
	for taskID, replies := range p.pending {
		result := &pb.TaskResult{
			TaskId:     taskID,
			Client:     &pb.Client{Metadata: p.metadata},
			ResultList: replies,
		}
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		_, err := p.client.SendResult(ctx, result)
		cancel()
		if err != nil {
			p.log.Error("failed to submit results", "task_id", taskID, "replies", len(replies), "error", err)
		} else {
			resultsSubmitted.Add(float64(len(replies)))
			p.log.Debug("submitted results", "task_id", taskID, "replies", len(replies))
		}
		delete(p.pending, taskID)
	}
}
