package error

import (
	"errors"
	"fmt"
)

const (
	CodeValidation uint8 = iota
	CodeProtocolViolation
	CodeTransport
	CodeInvalidMove
)

var codeNames = map[uint8]string{
	CodeValidation:        "validation error",
	CodeProtocolViolation: "protocol violation",
	CodeTransport:         "transport error",
	CodeInvalidMove:       "invalid move",
}

// Sentinels for errors.Is. Any DuelErr or ValidationErr with the
// same code matches, regardless of description or cause.
var (
	ErrValidation        = NewDuelErr(CodeValidation)
	ErrProtocolViolation = NewDuelErr(CodeProtocolViolation)
	ErrTransport         = NewDuelErr(CodeTransport)
	ErrInvalidMove       = NewDuelErr(CodeInvalidMove)
)

type DuelErr struct {
	code  uint8
	desc  string
	cause error
}

func NewDuelErr(code uint8) DuelErr {
	return DuelErr{code: code}
}

func (d DuelErr) AddDesc(desc string) DuelErr {
	d.desc = desc
	return d
}

func (d DuelErr) Wrap(err error) DuelErr {
	d.cause = err
	return d
}

func (d DuelErr) Code() uint8 {
	return d.code
}

func (d DuelErr) Error() string {
	msg := codeNames[d.code]
	if d.desc != "" {
		msg += ": " + d.desc
	}
	if d.cause != nil {
		msg += ": " + d.cause.Error()
	}
	return msg
}

func (d DuelErr) Unwrap() error {
	return d.cause
}

func (d DuelErr) Is(target error) bool {
	var t DuelErr
	if !errors.As(target, &t) {
		return false
	}
	return t.code == d.code
}

// IsFatal reports whether err must end the duel session.
func IsFatal(err error) bool {
	return errors.Is(err, ErrProtocolViolation) || errors.Is(err, ErrTransport)
}

/*
Invalid moves (caller errors against the combat resolver)
*/

func ErrCellOutOfBounds(idx int) error {
	return NewDuelErr(CodeInvalidMove).AddDesc(fmt.Sprintf("cell index out of board bound\tidx: %d", idx))
}

func ErrCellAlreadyResolved(idx int) error {
	return NewDuelErr(CodeInvalidMove).AddDesc(fmt.Sprintf("cell already resolved in previous rounds\tidx: %d", idx))
}

func ErrMatchFinished() error {
	return NewDuelErr(CodeInvalidMove).AddDesc("the match is already over")
}

func ErrInconsistentShip(idx, horizontal, vertical int) error {
	return fmt.Errorf("ship orientation at %d is ambiguous\thorizontal: %d\tvertical: %d", idx, horizontal, vertical)
}

/*
Protocol violations (peer sent something the protocol forbids)
*/

func ErrUnexpectedMessage(expected string, got uint8) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("expected %s, got message kind %d", expected, got))
}

func ErrUnknownMessageKind(got uint8) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("unknown message kind: %d", got))
}

func ErrMalformedBoard(reason string) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc("malformed board payload: " + reason)
}

func ErrMalformedReady(got string) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("malformed ready signal: %q", got))
}

func ErrMoveOutOfRange(v uint8) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("move index out of range: %d", v))
}

func ErrMalformedVote(v uint8) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("rematch vote must be 0 or 1, got: %d", v))
}

func ErrPeerBoardRejected(err error) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc("peer board fails placement rules").Wrap(err)
}

func ErrPeerMoveRejected(idx int, err error) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("peer move rejected\tidx: %d", idx)).Wrap(err)
}

func ErrMissingGameOver(idx int) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("move %d sank the last ship but came without game over signal", idx))
}

func ErrPrematureGameOver(idx int) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("game over signal with final move %d while ships remain afloat", idx))
}

func ErrWrongFrameType(expected, got int) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("expected frame type %d, got %d", expected, got))
}

func ErrWrongFrameLength(expected, got int) error {
	return NewDuelErr(CodeProtocolViolation).AddDesc(fmt.Sprintf("expected frame of %d byte(s), got %d", expected, got))
}

/*
Transport errors
*/

func ErrTransportFailed(op string, err error) error {
	return NewDuelErr(CodeTransport).AddDesc(op).Wrap(err)
}

func ErrChannelClosed() error {
	return NewDuelErr(CodeTransport).AddDesc("duel channel closed")
}

/*
Session bookkeeping
*/

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrNoActiveGame() error {
	return fmt.Errorf("no active game in this duel session")
}
