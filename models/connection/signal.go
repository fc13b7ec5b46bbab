package connection

// Message kinds. Each message on the wire starts with one kind byte. All
// kinds sit outside the 0-99 cell index range; CodeGameOver keeps 101, the
// reserved game over sentinel of the duel protocol.
const (
	CodeMove uint8 = 100 + iota
	CodeGameOver
	CodeName
	CodeReady
	CodeBoard
	CodeRematchVote
)

const GameOverSentinel = CodeGameOver

const ReadyMarker = "READY"

const (
	VoteNo  uint8 = 0
	VoteYes uint8 = 1
)

var kindNames = map[uint8]string{
	CodeMove:        "move",
	CodeGameOver:    "game over",
	CodeName:        "name",
	CodeReady:       "ready signal",
	CodeBoard:       "board payload",
	CodeRematchVote: "rematch vote",
}

func KindString(code uint8) string {
	if name, ok := kindNames[code]; ok {
		return name
	}
	return "unknown"
}

// carriesText reports whether the body of the kind is a text unit. The rest
// carry a single byte.
func carriesText(code uint8) bool {
	return code == CodeName || code == CodeReady || code == CodeBoard
}

func isKnownKind(code uint8) bool {
	_, ok := kindNames[code]
	return ok
}
