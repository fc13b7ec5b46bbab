package connection

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net"
	"sync"
	"time"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
)

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

// Stream is a DuelChannel over a raw byte stream such as a tcp connection.
// A text unit is a big endian uint16 length followed by its utf-8 bytes; a
// byte unit is sent as is.
type Stream struct {
	conn      io.ReadWriteCloser
	reader    *bufio.Reader
	cfg       channelConfig
	closeOnce sync.Once
	closeErr  error
}

func NewStream(conn io.ReadWriteCloser, opts ...ChannelOption) *Stream {
	return &Stream{
		conn:   conn,
		reader: bufio.NewReader(conn),
		cfg:    newChannelConfig(opts),
	}
}

func (s *Stream) SendText(text string) error {
	if len(text) > math.MaxUint16 {
		return fmt.Errorf("text unit too long: %d bytes", len(text))
	}

	frame := make([]byte, 2+len(text))
	binary.BigEndian.PutUint16(frame, uint16(len(text)))
	copy(frame[2:], text)

	if _, err := s.conn.Write(frame); err != nil {
		return s.onStreamErr("send text", err)
	}
	return nil
}

func (s *Stream) ReceiveText() (string, error) {
	if err := s.setReadDeadline(); err != nil {
		return "", s.onStreamErr("receive text", err)
	}

	var header [2]byte
	if _, err := io.ReadFull(s.reader, header[:]); err != nil {
		return "", s.onStreamErr("receive text", err)
	}

	body := make([]byte, binary.BigEndian.Uint16(header[:]))
	if _, err := io.ReadFull(s.reader, body); err != nil {
		return "", s.onStreamErr("receive text", err)
	}
	return string(body), nil
}

func (s *Stream) SendByte(b uint8) error {
	if _, err := s.conn.Write([]byte{b}); err != nil {
		return s.onStreamErr("send byte", err)
	}
	return nil
}

func (s *Stream) ReceiveByte() (uint8, error) {
	if err := s.setReadDeadline(); err != nil {
		return 0, s.onStreamErr("receive byte", err)
	}

	b, err := s.reader.ReadByte()
	if err != nil {
		return 0, s.onStreamErr("receive byte", err)
	}
	return b, nil
}

func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func (s *Stream) setReadDeadline() error {
	if d, ok := s.conn.(readDeadliner); ok && s.cfg.readTimeout > 0 {
		return d.SetReadDeadline(s.cfg.readDeadline())
	}
	return nil
}

func (s *Stream) onStreamErr(op string, err error) error {
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return cerr.ErrChannelClosed()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		op += ": timed out"
	}

	log.Printf("stream %s: %s\n", op, err)
	return cerr.ErrTransportFailed(op, err)
}

var _ DuelChannel = (*Stream)(nil)
