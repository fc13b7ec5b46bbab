package battleship

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Player is one side of the duel. It outlives single matches so the win
// count survives rematches.
type Player struct {
	name         string
	isFirstMover bool
	wins         int
}

func NewPlayer(name string, isFirstMover bool) *Player {
	return &Player{
		name:         name,
		isFirstMover: isFirstMover,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) SetName(name string) {
	p.name = name
}

func (p *Player) IsFirstMover() bool {
	return p.isFirstMover
}

func (p *Player) Wins() int {
	return p.wins
}

func (p *Player) AddWin() {
	p.wins++
}
