package api

import (
	"errors"
	"testing"

	mb "github.com/AndyF-42/BattleshipOnline/models/battleship"
)

// Ships on rows 0, 2, 4, 6 and 8, all starting at column 0.
const rowFleetLayout = `
#####.....
..........
####......
..........
###.......
..........
###.......
..........
##........
..........
`

const mixedFleetLayout = `
#####.....
..........
#.....#...
#.....#...
#.....#...
#.........
..........
..###...##
..........
..........
`

func mustLayout(t *testing.T, layout string) mb.Board {
	t.Helper()
	board, err := mb.ParseLayout(layout)
	if err != nil {
		t.Fatalf("bad test layout: %v", err)
	}
	return board
}

func cellsOf(board mb.Board, cell mb.Cell) []int {
	cells := []int{}
	for idx, c := range board {
		if c == cell {
			cells = append(cells, idx)
		}
	}
	return cells
}

// scriptedFrontend plays from fixed lists and records what it is shown.
// The last board repeats once the list runs out.
type scriptedFrontend struct {
	boards  []mb.Board
	targets []int
	votes   []bool

	opponentName       string
	rejectedPlacements int
	rejectedMoves      []int
	resolved           []mb.ShotReport
	received           []mb.ShotReport
	results            []bool
	scoreboards        []mb.Scoreboard
	rematches          []bool
}

var _ Frontend = (*scriptedFrontend)(nil)

func (f *scriptedFrontend) OpponentJoined(name string) {
	f.opponentName = name
}

func (f *scriptedFrontend) PlaceFleet() (mb.Board, error) {
	if len(f.boards) == 0 {
		return mb.Board{}, errors.New("no board to place")
	}
	board := f.boards[0]
	if len(f.boards) > 1 {
		f.boards = f.boards[1:]
	}
	return board, nil
}

func (f *scriptedFrontend) PlacementRejected(err error) {
	f.rejectedPlacements++
}

func (f *scriptedFrontend) AwaitingPeer() {}

func (f *scriptedFrontend) ChooseTarget(tracking mb.Board) (int, error) {
	if len(f.targets) == 0 {
		return 0, errors.New("out of targets")
	}
	idx := f.targets[0]
	f.targets = f.targets[1:]
	return idx, nil
}

func (f *scriptedFrontend) MoveRejected(idx int, err error) {
	f.rejectedMoves = append(f.rejectedMoves, idx)
}

func (f *scriptedFrontend) ShotResolved(report mb.ShotReport, tracking mb.Board) {
	f.resolved = append(f.resolved, report)
}

func (f *scriptedFrontend) ShotReceived(report mb.ShotReport, own mb.Board) {
	f.received = append(f.received, report)
}

func (f *scriptedFrontend) MatchOver(won bool, scoreboard mb.Scoreboard) {
	f.results = append(f.results, won)
	f.scoreboards = append(f.scoreboards, scoreboard)
}

func (f *scriptedFrontend) VoteRematch() (bool, error) {
	if len(f.votes) == 0 {
		return false, nil
	}
	vote := f.votes[0]
	f.votes = f.votes[1:]
	return vote, nil
}

func (f *scriptedFrontend) RematchDecided(accepted bool) {
	f.rematches = append(f.rematches, accepted)
}

func countSinks(reports []mb.ShotReport) int {
	sinks := 0
	for _, report := range reports {
		if report.Sunk != nil {
			sinks++
		}
	}
	return sinks
}
