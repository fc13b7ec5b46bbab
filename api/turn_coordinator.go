package api

import (
	"context"
	"log"

	"github.com/AndyF-42/BattleshipOnline/db/sqlc"
	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
	mb "github.com/AndyF-42/BattleshipOnline/models/battleship"
	mc "github.com/AndyF-42/BattleshipOnline/models/connection"
	"github.com/sqlc-dev/pqtype"
)

type State uint8

const (
	StatePlacing State = iota
	StateAwaitingPeerReady
	StateAttacking
	StateDefending
	StateGameOver
	StateRematchPending
	StateTerminated
)

var stateNames = map[State]string{
	StatePlacing:           "placing",
	StateAwaitingPeerReady: "awaiting peer ready",
	StateAttacking:         "attacking",
	StateDefending:         "defending",
	StateGameOver:          "game over",
	StateRematchPending:    "rematch pending",
	StateTerminated:        "terminated",
}

func (s State) String() string {
	return stateNames[s]
}

// TurnCoordinator drives one duel session for the local peer: placement,
// the board exchange, alternating attack and defense, game over and the
// rematch vote. It owns both boards and is not safe for concurrent use.
type TurnCoordinator struct {
	state       State
	protocol    *mc.Protocol
	frontend    Frontend
	local       *mb.Player
	opponent    *mb.Player
	gameManager mb.GameManager
	game        *mb.Game
	candidate   mb.Board
	analytics   *sqlc.AnalyticsManager
	peerIp      pqtype.Inet
}

type CoordinatorOption func(*TurnCoordinator)

// WithAnalytics records finished duels and rematches against the peer's
// address.
func WithAnalytics(analytics *sqlc.AnalyticsManager, peerIp pqtype.Inet) CoordinatorOption {
	return func(tc *TurnCoordinator) {
		tc.analytics = analytics
		tc.peerIp = peerIp
	}
}

func NewTurnCoordinator(ch mc.DuelChannel, frontend Frontend, localName string, isFirstMover bool, opts ...CoordinatorOption) *TurnCoordinator {
	local := mb.NewPlayer(localName, isFirstMover)
	opponent := mb.NewPlayer("", !isFirstMover)

	tc := &TurnCoordinator{
		state:       StatePlacing,
		protocol:    mc.NewProtocol(ch),
		frontend:    frontend,
		local:       local,
		opponent:    opponent,
		gameManager: mb.NewBattleshipGameManager(local, opponent),
	}
	for _, opt := range opts {
		opt(tc)
	}
	tc.game = tc.gameManager.CreateGame()
	return tc
}

func (tc *TurnCoordinator) State() State {
	return tc.state
}

func (tc *TurnCoordinator) Scoreboard() mb.Scoreboard {
	return tc.gameManager.Scoreboard()
}

// Run plays matches until a rematch is declined or the session fails.
// Transport failures and protocol violations are returned as is; the
// channel is closed either way.
func (tc *TurnCoordinator) Run() error {
	defer tc.protocol.Close()

	if err := tc.exchangeNames(); err != nil {
		return tc.fail(err)
	}

sessionLoop:
	for {
		var err error

		switch tc.state {
		case StatePlacing:
			err = tc.place()
		case StateAwaitingPeerReady:
			err = tc.exchangeBoards()
		case StateAttacking:
			err = tc.attack()
		case StateDefending:
			err = tc.defend()
		case StateGameOver:
			err = tc.finishMatch()
		case StateRematchPending:
			err = tc.voteRematch()
		case StateTerminated:
			break sessionLoop
		}

		if err != nil {
			return tc.fail(err)
		}
	}
	return nil
}

func (tc *TurnCoordinator) transition(next State) {
	log.Printf("game [%s] %s -> %s\n", tc.game.Uuid(), tc.state, next)
	tc.state = next
}

func (tc *TurnCoordinator) fail(err error) error {
	log.Printf("game [%s] session failed in state %s: %s\n", tc.game.Uuid(), tc.state, err)
	tc.transition(StateTerminated)
	return err
}

// exchange sends out and runs receive for the peer's half of the same
// step. The first-mover always sends first so a synchronous channel cannot
// deadlock.
func (tc *TurnCoordinator) exchange(out []mc.Message, receive func() error) error {
	send := func() error {
		for _, msg := range out {
			if err := tc.protocol.Send(msg); err != nil {
				return err
			}
		}
		return nil
	}

	if tc.local.IsFirstMover() {
		if err := send(); err != nil {
			return err
		}
		return receive()
	}

	if err := receive(); err != nil {
		return err
	}
	return send()
}

func (tc *TurnCoordinator) exchangeNames() error {
	err := tc.exchange([]mc.Message{mc.NewNameMessage(tc.local.Name())}, func() error {
		msg, err := tc.protocol.Expect(mc.CodeName)
		if err != nil {
			return err
		}
		tc.opponent.SetName(msg.Text)
		return nil
	})
	if err != nil {
		return err
	}

	tc.frontend.OpponentJoined(tc.opponent.Name())
	return nil
}

// place asks for candidate boards until one passes validation. Nothing is
// sent for a rejected candidate.
func (tc *TurnCoordinator) place() error {
	candidate, err := tc.frontend.PlaceFleet()
	if err != nil {
		return err
	}

	if err := tc.game.SetOwnBoard(candidate); err != nil {
		tc.frontend.PlacementRejected(err)
		return nil
	}

	tc.candidate = candidate
	tc.transition(StateAwaitingPeerReady)
	return nil
}

func (tc *TurnCoordinator) exchangeBoards() error {
	tc.frontend.AwaitingPeer()

	out := []mc.Message{
		mc.NewReadyMessage(),
		mc.NewBoardMessage(tc.candidate.Encode()),
	}

	var peerBoard mb.Board
	err := tc.exchange(out, func() error {
		if _, err := tc.protocol.Expect(mc.CodeReady); err != nil {
			return err
		}

		var err error
		peerBoard, err = tc.protocol.ExpectBoard()
		return err
	})
	if err != nil {
		return err
	}

	if err := tc.game.SetOpponentBoard(peerBoard); err != nil {
		return err
	}

	if tc.local.IsFirstMover() {
		tc.transition(StateAttacking)
	} else {
		tc.transition(StateDefending)
	}
	return nil
}

func (tc *TurnCoordinator) attack() error {
	idx, err := tc.frontend.ChooseTarget(tc.game.TrackingBoard())
	if err != nil {
		return err
	}

	if err := tc.game.CanAttack(idx); err != nil {
		tc.frontend.MoveRejected(idx, err)
		return nil
	}

	report, err := tc.game.Attack(idx)
	if err != nil {
		if mb.IsInvalidMove(err) {
			tc.frontend.MoveRejected(idx, err)
			return nil
		}
		return err
	}

	msg := mc.NewMoveMessage(idx)
	if report.GameOver {
		msg = mc.NewGameOverMessage(idx)
	}
	if err := tc.protocol.Send(msg); err != nil {
		return err
	}

	tc.frontend.ShotResolved(report, tc.game.TrackingBoard())

	if report.GameOver {
		tc.transition(StateGameOver)
	} else {
		tc.transition(StateDefending)
	}
	return nil
}

// defend applies the peer's move to the own board. A move the rules do not
// allow, or a game over claim that does not match the own board, means the
// peers disagree and the session cannot go on.
func (tc *TurnCoordinator) defend() error {
	msg, err := tc.protocol.Expect(mc.CodeMove, mc.CodeGameOver)
	if err != nil {
		return err
	}
	idx := msg.Index()

	report, err := tc.game.ReceiveAttack(idx)
	if err != nil {
		if mb.IsInvalidMove(err) {
			return cerr.ErrPeerMoveRejected(idx, err)
		}
		return err
	}

	claimsGameOver := msg.Code == mc.CodeGameOver
	if report.GameOver && !claimsGameOver {
		return cerr.ErrMissingGameOver(idx)
	}
	if claimsGameOver && !report.GameOver {
		return cerr.ErrPrematureGameOver(idx)
	}

	tc.frontend.ShotReceived(report, tc.game.OwnBoard())

	if report.GameOver {
		tc.transition(StateGameOver)
	} else {
		tc.transition(StateAttacking)
	}
	return nil
}

func (tc *TurnCoordinator) finishMatch() error {
	won := tc.game.MatchStatus() == mb.PlayerMatchStatusWon
	tc.gameManager.RecordResult(tc.game)

	if tc.analytics.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
		if err := tc.analytics.RecordDuel(ctx, tc.peerIp, won); err != nil {
			// analytics never end a duel
			log.Println(err)
		}
		cancel()
	}

	log.Printf("game [%s] finished after %d rounds\twon: %t\n", tc.game.Uuid(), tc.game.Rounds(), won)
	tc.frontend.MatchOver(won, tc.gameManager.Scoreboard())
	tc.transition(StateRematchPending)
	return nil
}

func (tc *TurnCoordinator) voteRematch() error {
	vote, err := tc.frontend.VoteRematch()
	if err != nil {
		return err
	}

	var peerVote bool
	err = tc.exchange([]mc.Message{mc.NewRematchVoteMessage(vote)}, func() error {
		msg, err := tc.protocol.Expect(mc.CodeRematchVote)
		if err != nil {
			return err
		}
		peerVote = msg.Vote()
		return nil
	})
	if err != nil {
		return err
	}

	accepted := vote && peerVote
	tc.frontend.RematchDecided(accepted)
	if !accepted {
		tc.transition(StateTerminated)
		return nil
	}

	if tc.analytics.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
		if err := tc.analytics.IncrementRematchCalledCount(ctx, tc.peerIp); err != nil {
			log.Println(err)
		}
		cancel()
	}

	tc.game = tc.gameManager.CreateGame()
	tc.candidate = mb.Board{}
	tc.transition(StatePlacing)
	return nil
}
