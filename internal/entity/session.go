package entity

import "time"

// SessionResult is the outcome of a best-of-N session.
// Winner is PlayerNone when the session was quit.
type SessionResult struct {
	Winner            Player `json:"winner"`
	GameCount         int    `json:"game_count"`
	GamesPlayed       int    `json:"games_played"`
	GamesWonByPlayer1 int    `json:"games_won_by_player1"`
	Quit              bool   `json:"quit"`
}

// GamesWonByPlayer2 - returns the number of played games player 2 won.
func (that SessionResult) GamesWonByPlayer2() int {
	return that.GamesPlayed - that.GamesWonByPlayer1
}

// Score - returns the running tally of the session.
func (that SessionResult) Score() Score {
	return Score{
		GamesPlayed: that.GamesPlayed,
		GameCount:   that.GameCount,
		Player1Wins: that.GamesWonByPlayer1,
		Player2Wins: that.GamesWonByPlayer2(),
	}
}

// OverallWinner - returns player 1 on a strict majority of the configured games, player 2 otherwise.
func (that SessionResult) OverallWinner() Player {
	if that.GamesWonByPlayer1 > that.GameCount-that.GamesWonByPlayer1 {
		return Player1
	}

	return Player2
}

// GameRecord describes one finished game.
type GameRecord struct {
	SessionID  string    `json:"session_id"`
	Number     int       `json:"number"`
	Server     Player    `json:"server"`
	Winner     Player    `json:"winner"`
	Blocks     int       `json:"blocks"`
	FinishedAt time.Time `json:"finished_at"`
}

// SessionRecord describes a finished or aborted session.
type SessionRecord struct {
	SessionID   string        `json:"session_id"`
	PlayerCount int           `json:"player_count"`
	Result      SessionResult `json:"result"`
	FinishedAt  time.Time     `json:"finished_at"`
}
