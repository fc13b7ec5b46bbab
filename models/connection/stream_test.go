package connection

import (
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
	mb "github.com/AndyF-42/BattleshipOnline/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamPair(t *testing.T, opts ...ChannelOption) (*Stream, *Stream) {
	t.Helper()
	a, b := net.Pipe()
	left, right := NewStream(a, opts...), NewStream(b, opts...)
	t.Cleanup(func() {
		left.Close()
		right.Close()
	})
	return left, right
}

func TestStream_ProtocolRoundTrip(t *testing.T) {
	left, right := newStreamPair(t)
	sender, receiver := NewProtocol(left), NewProtocol(right)

	board := mb.NewBoard()
	for i := 0; i < 5; i++ {
		board[i] = mb.CellShipUnknown
	}

	messages := []Message{
		NewNameMessage("ally"),
		NewNameMessage(""),
		NewReadyMessage(),
		NewBoardMessage(board.Encode()),
		NewMoveMessage(0),
		NewMoveMessage(99),
		NewGameOverMessage(42),
		NewRematchVoteMessage(true),
		NewRematchVoteMessage(false),
	}

	errs := make(chan error, 1)
	go func() {
		for _, msg := range messages {
			if err := sender.Send(msg); err != nil {
				errs <- err
				return
			}
		}
		errs <- nil
	}()

	for _, expected := range messages {
		got, err := receiver.Receive()
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
	require.NoError(t, <-errs)
}

func TestStream_TextFraming(t *testing.T) {
	left, right := newStreamPair(t)
	long := strings.Repeat("é", 300)

	go func() {
		left.SendText(long)
		left.SendByte(7)
	}()

	text, err := right.ReceiveText()
	require.NoError(t, err)
	assert.Equal(t, long, text)

	b, err := right.ReceiveByte()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), b)
}

func TestStream_PeerClosed(t *testing.T) {
	left, right := newStreamPair(t)
	require.NoError(t, left.Close())
	require.NoError(t, left.Close(), "close is idempotent")

	_, err := right.ReceiveByte()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerr.ErrTransport))

	_, err = left.ReceiveText()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerr.ErrTransport))
}

func TestStream_ReadTimeout(t *testing.T) {
	_, right := newStreamPair(t, WithReadTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := right.ReceiveByte()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerr.ErrTransport))
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 5*time.Second)
}
