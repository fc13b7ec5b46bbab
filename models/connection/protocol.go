package connection

import (
	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
	mb "github.com/AndyF-42/BattleshipOnline/models/battleship"
)

// Protocol reads and writes duel messages on a DuelChannel and rejects
// units that do not have the shape their kind requires.
type Protocol struct {
	ch DuelChannel
}

func NewProtocol(ch DuelChannel) *Protocol {
	return &Protocol{ch: ch}
}

func (p *Protocol) Channel() DuelChannel {
	return p.ch
}

func (p *Protocol) Send(msg Message) error {
	if err := p.ch.SendByte(msg.Code); err != nil {
		return err
	}
	if carriesText(msg.Code) {
		return p.ch.SendText(msg.Text)
	}
	return p.ch.SendByte(msg.Value)
}

func (p *Protocol) Receive() (Message, error) {
	code, err := p.ch.ReceiveByte()
	if err != nil {
		return Message{}, err
	}
	if !isKnownKind(code) {
		return Message{}, cerr.ErrUnknownMessageKind(code)
	}

	msg := Message{Code: code}
	if carriesText(code) {
		if msg.Text, err = p.ch.ReceiveText(); err != nil {
			return Message{}, err
		}
	} else {
		if msg.Value, err = p.ch.ReceiveByte(); err != nil {
			return Message{}, err
		}
	}

	if err := checkShape(msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Expect receives the next message and fails with a protocol violation if
// its kind is not one of codes.
func (p *Protocol) Expect(codes ...uint8) (Message, error) {
	msg, err := p.Receive()
	if err != nil {
		return Message{}, err
	}
	for _, code := range codes {
		if msg.Code == code {
			return msg, nil
		}
	}

	expected := ""
	for i, code := range codes {
		if i > 0 {
			expected += " or "
		}
		expected += KindString(code)
	}
	return Message{}, cerr.ErrUnexpectedMessage(expected, msg.Code)
}

func (p *Protocol) ExpectBoard() (mb.Board, error) {
	msg, err := p.Expect(CodeBoard)
	if err != nil {
		return mb.Board{}, err
	}
	return mb.DecodeBoard(msg.Text)
}

func (p *Protocol) Close() error {
	return p.ch.Close()
}

func checkShape(msg Message) error {
	switch msg.Code {
	case CodeReady:
		if msg.Text != ReadyMarker {
			return cerr.ErrMalformedReady(msg.Text)
		}

	case CodeBoard:
		if _, err := mb.DecodeBoard(msg.Text); err != nil {
			return err
		}

	case CodeMove, CodeGameOver:
		if !mb.IsValidIndex(int(msg.Value)) {
			return cerr.ErrMoveOutOfRange(msg.Value)
		}

	case CodeRematchVote:
		if msg.Value != VoteNo && msg.Value != VoteYes {
			return cerr.ErrMalformedVote(msg.Value)
		}
	}
	return nil
}
