package connection

// Message is one application level unit of the duel protocol. Text kinds use
// Text, byte kinds use Value.
type Message struct {
	Code  uint8
	Text  string
	Value uint8
}

func NewNameMessage(name string) Message {
	return Message{Code: CodeName, Text: name}
}

func NewReadyMessage() Message {
	return Message{Code: CodeReady, Text: ReadyMarker}
}

func NewBoardMessage(payload string) Message {
	return Message{Code: CodeBoard, Text: payload}
}

func NewMoveMessage(idx int) Message {
	return Message{Code: CodeMove, Value: uint8(idx)}
}

// The final move travels with the game over kind so the loser can render it.
func NewGameOverMessage(idx int) Message {
	return Message{Code: CodeGameOver, Value: uint8(idx)}
}

func NewRematchVoteMessage(yes bool) Message {
	msg := Message{Code: CodeRematchVote, Value: VoteNo}
	if yes {
		msg.Value = VoteYes
	}
	return msg
}

func (m Message) Index() int {
	return int(m.Value)
}

func (m Message) Vote() bool {
	return m.Value == VoteYes
}

func (m Message) String() string {
	if carriesText(m.Code) {
		return KindString(m.Code) + " " + m.Text
	}
	return KindString(m.Code)
}
