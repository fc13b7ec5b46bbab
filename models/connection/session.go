package connection

import (
	"errors"
	"log"
	"net"
	"sync"
	"time"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

// Session is a DuelChannel over a websocket connection. Text units travel
// as text frames, byte units as one byte binary frames.
type Session struct {
	id        string
	conn      *websocket.Conn
	cfg       channelConfig
	createdAt time.Time
	closeOnce sync.Once
	closeErr  error
}

func NewSession(id string, conn *websocket.Conn, opts ...ChannelOption) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		cfg:       newChannelConfig(opts),
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) SendText(text string) error {
	if err := s.conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		return s.onConnErr("send text", err)
	}
	return nil
}

func (s *Session) ReceiveText() (string, error) {
	msgType, payload, err := s.readFrame()
	if err != nil {
		return "", s.onConnErr("receive text", err)
	}
	if msgType != websocket.TextMessage {
		return "", cerr.ErrWrongFrameType(websocket.TextMessage, msgType)
	}
	return string(payload), nil
}

func (s *Session) SendByte(b uint8) error {
	if err := s.conn.WriteMessage(websocket.BinaryMessage, []byte{b}); err != nil {
		return s.onConnErr("send byte", err)
	}
	return nil
}

func (s *Session) ReceiveByte() (uint8, error) {
	msgType, payload, err := s.readFrame()
	if err != nil {
		return 0, s.onConnErr("receive byte", err)
	}
	if msgType != websocket.BinaryMessage {
		return 0, cerr.ErrWrongFrameType(websocket.BinaryMessage, msgType)
	}
	if len(payload) != 1 {
		return 0, cerr.ErrWrongFrameLength(1, len(payload))
	}
	return payload[0], nil
}

// Close sends a normal closure frame and closes the connection. It is safe
// to call more than once, and from another goroutine to unblock a receive.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "duel over")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func (s *Session) readFrame() (int, []byte, error) {
	if err := s.conn.SetReadDeadline(s.cfg.readDeadline()); err != nil {
		return 0, nil, err
	}
	return s.conn.ReadMessage()
}

// onConnErr classifies a websocket failure. There is no retry or
// reconnection; every failure ends the session as a transport error.
func (s *Session) onConnErr(op string, err error) error {
	var desc string

	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		desc = op + ": timed out"

	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		desc = op + ": peer closed the session"

	// Happens when the peer process dies without a closing handshake
	case websocket.IsCloseError(err, websocket.CloseAbnormalClosure):
		desc = op + ": abnormal closure"

	case websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension):
		desc = op + ": critical close"

	case websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseTryAgainLater, websocket.CloseNoStatusReceived):
		desc = op + ": non-critical close"

	case errors.Is(err, net.ErrClosed), errors.Is(err, websocket.ErrCloseSent):
		return cerr.ErrChannelClosed()

	default:
		desc = op
	}

	log.Printf("ws session [%s] %s: %s\n", s.id, desc, err)
	return cerr.ErrTransportFailed(desc, err)
}

var _ DuelChannel = (*Session)(nil)
