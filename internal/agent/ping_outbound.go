package agent

import (
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/LMBertholdo/verfploeter/internal/packet"
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// FrameSender transmits a ready-made ICMPv4 frame to an IPv4 destination.
// The rawsock package provides the production implementation.
type FrameSender interface {
	Send(dst net.IP, frame []byte) error
}

// PingOutbound consumes ping tasks and emits one ICMPv4 echo request per
// destination. The echo identifier is the low 16 bits of the task id and
// the sequence number is the destination's index, so replies can be
// matched back to their task.
type PingOutbound struct {
	log    *slog.Logger
	sender FrameSender
	tasks  chan *pb.Task
	quit   chan struct{}
	wg     sync.WaitGroup

	mu        sync.Mutex
	chanTaken bool
	exited    bool
}

func NewPingOutbound(log *slog.Logger, sender FrameSender) *PingOutbound {
	return &PingOutbound{
		log:    log,
		sender: sender,
		tasks:  make(chan *pb.Task, 1),
		quit:   make(chan struct{}),
	}
}

func (p *PingOutbound) Start() {
	p.wg.Add(1)
	go p.run()
}

func (p *PingOutbound) Exit() {
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

func (p *PingOutbound) Channel() (chan<- *pb.Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.chanTaken {
		return nil, false
	}
	p.chanTaken = true
	return p.tasks, true
}

func (p *PingOutbound) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case task := <-p.tasks:
			p.handle(task)
		}
	}
}

func (p *PingOutbound) handle(task *pb.Task) {
	ping := task.GetPing()
	if ping == nil {
		p.log.Warn("outbound handler got a task without a ping", "task_id", task.GetTaskId())
		return
	}

	taskID := task.GetTaskId()
	src := ping.GetSourceAddress()
	for i, dst := range ping.GetDestinationAddresses() {
		body := probeBody{
			TaskID:             taskID,
			TransmitTime:       time.Now(),
			SourceAddress:      src,
			DestinationAddress: dst,
		}
		frame := packet.EchoRequest(uint16(taskID), uint16(i), body.marshal())
		if err := p.sender.Send(packet.Uint32ToAddr(dst), frame); err != nil {
			p.log.Error("failed to send probe", "task_id", taskID, "destination", packet.Uint32ToAddr(dst), "error", err)
			continue
		}
		probesSent.Inc()
	}
	p.log.Debug("finished ping task", "task_id", taskID, "destinations", len(ping.GetDestinationAddresses()))
}
