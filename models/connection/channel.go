package connection

import "time"

//go:generate mockery -name=DuelChannel -output=automock -outpkg=automock -case=underscore

// DuelChannel is the byte stream shared by the two peers, seen as discrete
// text and byte units. Every call blocks; Receive calls are the only points
// where a peer waits on the other. Failures come back as cerr transport
// errors or, for a wrongly shaped unit, protocol violations.
type DuelChannel interface {
	SendText(text string) error
	ReceiveText() (string, error)
	SendByte(b uint8) error
	ReceiveByte() (uint8, error)
	Close() error
}

type channelConfig struct {
	readTimeout time.Duration
}

type ChannelOption func(*channelConfig)

// WithReadTimeout bounds every receive. Zero, the default, waits forever.
func WithReadTimeout(d time.Duration) ChannelOption {
	return func(c *channelConfig) {
		c.readTimeout = d
	}
}

func newChannelConfig(opts []ChannelOption) channelConfig {
	var cfg channelConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// readDeadline returns the deadline for the next receive, or the zero time
// for none.
func (c channelConfig) readDeadline() time.Time {
	if c.readTimeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.readTimeout)
}
