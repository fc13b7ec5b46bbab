package connection

import (
	"errors"
	"strings"
	"testing"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
	"github.com/AndyF-42/BattleshipOnline/models/connection/automock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProtocol_Send(t *testing.T) {
	t.Run("text kind sends code then text", func(t *testing.T) {
		ch := &automock.DuelChannel{}
		ch.On("SendByte", CodeName).Return(nil).Once()
		ch.On("SendText", "ally").Return(nil).Once()

		require.NoError(t, NewProtocol(ch).Send(NewNameMessage("ally")))
		ch.AssertExpectations(t)
	})

	t.Run("byte kind sends code then value", func(t *testing.T) {
		ch := &automock.DuelChannel{}
		ch.On("SendByte", CodeGameOver).Return(nil).Once()
		ch.On("SendByte", uint8(42)).Return(nil).Once()

		require.NoError(t, NewProtocol(ch).Send(NewGameOverMessage(42)))
		ch.AssertExpectations(t)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		ch := &automock.DuelChannel{}
		failure := cerr.ErrChannelClosed()
		ch.On("SendByte", CodeBoard).Return(failure).Once()

		err := NewProtocol(ch).Send(NewBoardMessage(strings.Repeat("0", 100)))
		assert.Equal(t, failure, err)
		ch.AssertNotCalled(t, "SendText", mock.Anything)
	})
}

func TestProtocol_ReceiveRejectsMalformedUnits(t *testing.T) {
	testCases := []struct {
		Name  string
		Setup func(ch *automock.DuelChannel)
	}{
		{
			Name: "unknown kind",
			Setup: func(ch *automock.DuelChannel) {
				ch.On("ReceiveByte").Return(uint8(7), nil).Once()
			},
		},
		{
			Name: "ready with wrong marker",
			Setup: func(ch *automock.DuelChannel) {
				ch.On("ReceiveByte").Return(CodeReady, nil).Once()
				ch.On("ReceiveText").Return("READ", nil).Once()
			},
		},
		{
			Name: "short board",
			Setup: func(ch *automock.DuelChannel) {
				ch.On("ReceiveByte").Return(CodeBoard, nil).Once()
				ch.On("ReceiveText").Return(strings.Repeat("1", 99), nil).Once()
			},
		},
		{
			Name: "move out of range",
			Setup: func(ch *automock.DuelChannel) {
				ch.On("ReceiveByte").Return(CodeMove, nil).Once()
				ch.On("ReceiveByte").Return(uint8(100), nil).Once()
			},
		},
		{
			Name: "game over out of range",
			Setup: func(ch *automock.DuelChannel) {
				ch.On("ReceiveByte").Return(CodeGameOver, nil).Once()
				ch.On("ReceiveByte").Return(uint8(255), nil).Once()
			},
		},
		{
			Name: "vote not 0 or 1",
			Setup: func(ch *automock.DuelChannel) {
				ch.On("ReceiveByte").Return(CodeRematchVote, nil).Once()
				ch.On("ReceiveByte").Return(uint8(2), nil).Once()
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			ch := &automock.DuelChannel{}
			testCase.Setup(ch)

			_, err := NewProtocol(ch).Receive()
			require.Error(t, err)
			assert.True(t, errors.Is(err, cerr.ErrProtocolViolation), "got %v", err)
			assert.True(t, cerr.IsFatal(err))
			ch.AssertExpectations(t)
		})
	}
}

func TestProtocol_Expect(t *testing.T) {
	t.Run("accepts any of the listed kinds", func(t *testing.T) {
		ch := &automock.DuelChannel{}
		ch.On("ReceiveByte").Return(CodeGameOver, nil).Once()
		ch.On("ReceiveByte").Return(uint8(9), nil).Once()

		msg, err := NewProtocol(ch).Expect(CodeMove, CodeGameOver)
		require.NoError(t, err)
		assert.Equal(t, CodeGameOver, msg.Code)
		assert.Equal(t, 9, msg.Index())
	})

	t.Run("sentinel out of sequence", func(t *testing.T) {
		ch := &automock.DuelChannel{}
		ch.On("ReceiveByte").Return(CodeGameOver, nil).Once()
		ch.On("ReceiveByte").Return(uint8(9), nil).Once()

		_, err := NewProtocol(ch).Expect(CodeReady)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cerr.ErrProtocolViolation))
		assert.Contains(t, err.Error(), "ready signal")
	})

	t.Run("transport failure passes through", func(t *testing.T) {
		ch := &automock.DuelChannel{}
		ch.On("ReceiveByte").Return(uint8(0), cerr.ErrChannelClosed()).Once()

		_, err := NewProtocol(ch).ExpectBoard()
		require.Error(t, err)
		assert.True(t, errors.Is(err, cerr.ErrTransport))
	})
}

func TestMessage_Vote(t *testing.T) {
	assert.True(t, NewRematchVoteMessage(true).Vote())
	assert.False(t, NewRematchVoteMessage(false).Vote())
	assert.Equal(t, VoteYes, NewRematchVoteMessage(true).Value)
	assert.Equal(t, uint8(101), GameOverSentinel)
	assert.Equal(t, "unknown", KindString(3))
}
