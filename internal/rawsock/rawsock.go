// Package rawsock owns the raw ICMPv4 sockets behind the agent's task
// handlers: a sender that writes echo-request frames and a capturer that
// delivers inbound IPv4 frames on a channel. Both require CAP_NET_RAW and
// are only implemented on linux.
package rawsock

import "errors"

// ErrUnsupported is returned on platforms without raw ICMPv4 sockets.
var ErrUnsupported = errors.New("raw icmp sockets are only supported on linux")

const (
	// defaultTTL is set on outgoing probes.
	defaultTTL = 64

	// recvBufferLen fits any IPv4 frame (header + ICMP + payload).
	recvBufferLen = 65535
)
