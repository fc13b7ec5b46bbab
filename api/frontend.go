package api

import (
	mb "github.com/AndyF-42/BattleshipOnline/models/battleship"
)

// Frontend is the local player's side of a duel: it supplies placements,
// targets and votes, and renders what the coordinator resolves. Methods
// returning an error abort the session with that error.
type Frontend interface {
	OpponentJoined(name string)
	PlaceFleet() (mb.Board, error)
	PlacementRejected(err error)
	AwaitingPeer()
	ChooseTarget(tracking mb.Board) (int, error)
	MoveRejected(idx int, err error)
	ShotResolved(report mb.ShotReport, tracking mb.Board)
	ShotReceived(report mb.ShotReport, own mb.Board)
	MatchOver(won bool, scoreboard mb.Scoreboard)
	VoteRematch() (bool, error)
	RematchDecided(accepted bool)
}
