//go:build linux

package rawsock

import (
	"fmt"
	"log/slog"
	"net"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SenderConfig configures the raw-ICMP sender. Source is optional; when
// set it must be an IPv4 address and is stamped on every outgoing packet
// via IP_PKTINFO.
type SenderConfig struct {
	Logger *slog.Logger
	Source net.IP
}

func (cfg *SenderConfig) Validate() error {
	if cfg.Source != nil && cfg.Source.To4() == nil {
		return fmt.Errorf("source must be a valid IPv4 address")
	}
	return nil
}

// Sender owns a raw IPv4 ICMP socket. A mutex serializes Send and Close
// to the single FD.
type Sender struct {
	log *slog.Logger
	fd  int
	sip net.IP
	mu  sync.Mutex
}

// NewSender opens a raw ICMP socket, sets the default TTL, and enables
// IP_PKTINFO when a source address is configured.
func NewSender(cfg SenderConfig) (*Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW, unix.IPPROTO_ICMP)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}

	// Kernel builds the IPv4 header for raw ICMP sockets.
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_IP, unix.IP_TTL, defaultTTL)

	var sip net.IP
	if cfg.Source != nil {
		sip = cfg.Source.To4()
		if err := unix.SetsockoptInt(fd, unix.IPPROTO_IP, unix.IP_PKTINFO, 1); err != nil {
			_ = unix.Close(fd)
			return nil, fmt.Errorf("enable IP_PKTINFO: %w", err)
		}
	}

	return &Sender{log: cfg.Logger, fd: fd, sip: sip}, nil
}

// Send transmits frame to dst. frame must be a complete ICMPv4 message.
func (s *Sender) Send(dst net.IP, frame []byte) error {
	dip := dst.To4()
	if dip == nil {
		return fmt.Errorf("invalid destination IP: %s", dst)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var sa unix.SockaddrInet4
	copy(sa.Addr[:], dip)
	if err := unix.Sendmsg(s.fd, frame, s.buildPktinfoOOB(), &sa, 0); err != nil {
		return fmt.Errorf("sendmsg: %w", err)
	}
	return nil
}

func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return unix.Close(s.fd)
}

// buildPktinfoOOB constructs a single IP_PKTINFO control message carrying
// the configured source address, or nil when no source is set.
func (s *Sender) buildPktinfoOOB() []byte {
	if s.sip == nil {
		return nil
	}

	oob := make([]byte, unix.CmsgSpace(unix.SizeofInet4Pktinfo))

	cm := (*unix.Cmsghdr)(unsafe.Pointer(&oob[0]))
	cm.Level = unix.IPPROTO_IP
	cm.Type = unix.IP_PKTINFO

	cm.SetLen(unix.CmsgLen(unix.SizeofInet4Pktinfo))

	data := oob[unix.CmsgLen(0):unix.CmsgLen(unix.SizeofInet4Pktinfo)]

	var pi unix.Inet4Pktinfo
	copy(pi.Spec_dst[:], s.sip)

	*(*unix.Inet4Pktinfo)(unsafe.Pointer(&data[0])) = pi
	return oob
}
