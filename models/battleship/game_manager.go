package battleship

import (
	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
)

type GameManager interface {
	CreateGame() *Game
	GetGame(gameUuid string) (*Game, error)
	CurrentGame() (*Game, error)
	RecordResult(game *Game)
	Scoreboard() Scoreboard
}

type Scoreboard struct {
	LocalName     string `json:"local_name"`
	LocalWins     int    `json:"local_wins"`
	OpponentName  string `json:"opponent_name"`
	OpponentWins  int    `json:"opponent_wins"`
	MatchesPlayed int    `json:"matches_played"`
}

// BattleshipGameManager owns the matches of one duel session: a new Game per
// rematch, plus the running score of both players.
type BattleshipGameManager struct {
	games    map[string]*Game
	current  *Game
	local    *Player
	opponent *Player
	played   int
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(local, opponent *Player) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:    make(map[string]*Game, 4),
		local:    local,
		opponent: opponent,
	}
}

func (bgm *BattleshipGameManager) CreateGame() *Game {
	game := NewGame()
	bgm.games[game.Uuid()] = game
	bgm.current = game
	return game
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	game, prs := bgm.games[gameUuid]
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	return game, nil
}

func (bgm *BattleshipGameManager) CurrentGame() (*Game, error) {
	if bgm.current == nil {
		return nil, cerr.ErrNoActiveGame()
	}
	return bgm.current, nil
}

// RecordResult credits the winner of a finished game. Unfinished games and
// games already recorded are ignored.
func (bgm *BattleshipGameManager) RecordResult(game *Game) {
	if game == nil || !game.IsFinished() {
		return
	}
	if _, prs := bgm.games[game.Uuid()]; !prs {
		return
	}

	switch game.MatchStatus() {
	case PlayerMatchStatusWon:
		bgm.local.AddWin()
	case PlayerMatchStatusLost:
		bgm.opponent.AddWin()
	}
	bgm.played++
	delete(bgm.games, game.Uuid())
	if bgm.current == game {
		bgm.current = nil
	}
}

func (bgm *BattleshipGameManager) Scoreboard() Scoreboard {
	return Scoreboard{
		LocalName:     bgm.local.Name(),
		LocalWins:     bgm.local.Wins(),
		OpponentName:  bgm.opponent.Name(),
		OpponentWins:  bgm.opponent.Wins(),
		MatchesPlayed: bgm.played,
	}
}
