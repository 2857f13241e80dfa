//go:build linux

package rawsock

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// pollSlice caps how long a blocking read can outlive a Close request.
const pollSlice = 200 * time.Millisecond

// CapturerConfig configures the inbound raw-ICMP capture loop.
type CapturerConfig struct {
	Logger *slog.Logger

	// ChannelBuffer is the capacity of the frame delivery channel; frames
	// arriving while it is full are dropped.
	ChannelBuffer int
}

// Capturer reads raw IPv4 frames off an ICMP socket and delivers copies
// on its channel until closed.
type Capturer struct {
	log    *slog.Logger
	fd     int
	frames chan []byte
	quit   chan struct{}
	wg     sync.WaitGroup
}

func NewCapturer(cfg CapturerConfig) (*Capturer, error) {
	if cfg.ChannelBuffer <= 0 {
		cfg.ChannelBuffer = 256
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW, unix.IPPROTO_ICMP)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}

	// Bound each read so Close is honored promptly.
	tv := unix.NsecToTimeval(pollSlice.Nanoseconds())
	_ = unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)

	c := &Capturer{
		log:    cfg.Logger,
		fd:     fd,
		frames: make(chan []byte, cfg.ChannelBuffer),
		quit:   make(chan struct{}),
	}
	c.wg.Add(1)
	go c.run()
	return c, nil
}

// Frames is the capture output. The channel is closed when the capturer
// shuts down.
func (c *Capturer) Frames() <-chan []byte {
	return c.frames
}

func (c *Capturer) run() {
	defer c.wg.Done()

	buf := make([]byte, recvBufferLen)
	for {
		select {
		case <-c.quit:
			return
		default:
		}

		n, _, err := unix.Recvfrom(c.fd, buf, 0)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
				continue
			}
			if c.log != nil {
				c.log.Error("capture read failed", "error", err)
			}
			return
		}

		frame := make([]byte, n)
		copy(frame, buf[:n])
		select {
		case c.frames <- frame:
		default:
			if c.log != nil {
				c.log.Debug("dropping captured frame: channel full")
			}
		}
	}
}

// Close stops the capture loop, closes the socket, and closes the frame
// channel.
func (c *Capturer) Close() error {
	close(c.quit)
	c.wg.Wait()
	err := unix.Close(c.fd)
	close(c.frames)
	return err
}
