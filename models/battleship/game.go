package battleship

import (
	"errors"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"

	"github.com/google/uuid"
)

// ShotReport is the outcome of one shot, from either side of it.
type ShotReport struct {
	Index    int       `json:"index"`
	Result   Cell      `json:"result"`
	Sunk     *SunkShip `json:"sunk,omitempty"`
	Sunken   int       `json:"sunken"`
	GameOver bool      `json:"game_over"`
}

func (r ShotReport) IsHit() bool {
	return r.Result == CellHit
}

// Game is one match as seen by the local peer. The own board is ground
// truth plus the opponent's hit markers, the opponent board is the truth
// received from the peer, and the tracking board is what the local player
// has learned about it.
type Game struct {
	uuid          string
	isFinished    bool
	matchStatus   int
	ownBoard      Board
	opponentBoard Board
	trackingBoard Board
	sunkenShips   int
	lostShips     int
	rounds        int
}

func newGame(gameUuid string) *Game {
	return &Game{
		uuid:        gameUuid,
		matchStatus: PlayerMatchStatusUndefined,
	}
}

func NewGame() *Game {
	return newGame(uuid.NewString()[:6])
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) MatchStatus() int {
	return g.matchStatus
}

func (g *Game) Rounds() int {
	return g.rounds
}

func (g *Game) SunkenShips() int {
	return g.sunkenShips
}

func (g *Game) LostShips() int {
	return g.lostShips
}

// Boards are returned by value so callers cannot bypass the write-once rules.
func (g *Game) OwnBoard() Board {
	return g.ownBoard
}

func (g *Game) TrackingBoard() Board {
	return g.trackingBoard
}

// SetOwnBoard installs the local layout once it passes placement validation.
func (g *Game) SetOwnBoard(board Board) error {
	if err := ValidatePlacement(board); err != nil {
		return err
	}
	g.ownBoard = board
	return nil
}

// SetOpponentBoard installs the peer's layout. A peer layout that fails
// placement rules means the peers are out of sync.
func (g *Game) SetOpponentBoard(board Board) error {
	if err := ValidatePlacement(board); err != nil {
		return cerr.ErrPeerBoardRejected(err)
	}
	g.opponentBoard = board
	return nil
}

// CanAttack checks a target before it is fired so the resolver never sees an
// invalid move.
func (g *Game) CanAttack(idx int) error {
	if g.isFinished {
		return cerr.ErrMatchFinished()
	}
	if !IsValidIndex(idx) {
		return cerr.ErrCellOutOfBounds(idx)
	}
	if g.trackingBoard.IsResolved(idx) {
		return cerr.ErrCellAlreadyResolved(idx)
	}
	return nil
}

// Attack fires at the opponent board and finishes the game as won on the
// fifth sink.
func (g *Game) Attack(idx int) (ShotReport, error) {
	if err := g.CanAttack(idx); err != nil {
		return ShotReport{}, err
	}

	result, err := ResolveAttack(&g.opponentBoard, &g.trackingBoard, idx)
	if err != nil {
		return ShotReport{}, err
	}
	g.rounds++

	report := ShotReport{Index: idx, Result: result}
	if result == CellHit {
		sunk, ok, err := DetectSunk(&g.opponentBoard, &g.trackingBoard, idx)
		if err != nil {
			return report, err
		}
		if ok {
			g.sunkenShips++
			report.Sunk = &sunk
		}
	}

	report.Sunken = g.sunkenShips
	if IsGameOver(g.sunkenShips) {
		g.finish(PlayerMatchStatusWon)
		report.GameOver = true
	}
	return report, nil
}

// ReceiveAttack records the opponent's shot on the own board and finishes
// the game as lost when it sinks the last ship.
func (g *Game) ReceiveAttack(idx int) (ShotReport, error) {
	if g.isFinished {
		return ShotReport{}, cerr.ErrMatchFinished()
	}

	result, err := ResolveAttack(&g.ownBoard, &g.ownBoard, idx)
	if err != nil {
		return ShotReport{}, err
	}

	report := ShotReport{Index: idx, Result: result}
	if result == CellHit {
		ship, ok, err := SunkShipAt(&g.ownBoard, &g.ownBoard, idx)
		if err != nil {
			return report, err
		}
		if ok {
			g.lostShips++
			report.Sunk = &SunkShip{Ship: ship}
		}
	}

	report.Sunken = g.lostShips
	if IsGameOver(g.lostShips) {
		g.finish(PlayerMatchStatusLost)
		report.GameOver = true
	}
	return report, nil
}

// IsInvalidMove reports whether err came from firing at a bad target.
func IsInvalidMove(err error) bool {
	return errors.Is(err, cerr.ErrInvalidMove)
}

func (g *Game) finish(status int) {
	g.isFinished = true
	g.matchStatus = status
}
