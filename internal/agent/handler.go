// Package agent implements the measurement-agent side of the control
// plane: the long-lived session that receives tasks from the coordinator
// and the handlers that execute them.
package agent

import (
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

// TaskHandler is one per-task-kind worker. The session starts every
// handler once, feeds task-ingress handlers through the channel returned
// by Channel, and signals Exit when the coordinator stream ends.
type TaskHandler interface {
	// Start begins the handler's background work. It must be called exactly
	// once.
	Start()

	// Exit requests shutdown, causes blocking workers to return promptly,
	// and waits for them to drain. Calling it again is a no-op.
	Exit()

	// Channel returns the handler's task-ingress sender. Taking the sender
	// invalidates further takes; self-driven handlers return false.
	Channel() (chan<- *pb.Task, bool)
}
