//go:build !linux

package rawsock

import (
	"log/slog"
	"net"
)

type SenderConfig struct {
	Logger *slog.Logger
	Source net.IP
}

type Sender struct{}

func NewSender(cfg SenderConfig) (*Sender, error) {
	return nil, ErrUnsupported
}

func (s *Sender) Send(dst net.IP, frame []byte) error {
	return ErrUnsupported
}

func (s *Sender) Close() error {
	return ErrUnsupported
}

type CapturerConfig struct {
	Logger        *slog.Logger
	ChannelBuffer int
}

type Capturer struct{}

func NewCapturer(cfg CapturerConfig) (*Capturer, error) {
	return nil, ErrUnsupported
}

func (c *Capturer) Frames() <-chan []byte {
	return nil
}

func (c *Capturer) Close() error {
	return ErrUnsupported
}
