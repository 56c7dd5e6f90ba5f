package entity

// Frame is one rendered snapshot of the table.
type Frame struct {
	Striker1Row int   `json:"striker1_row"`
	Striker2Row int   `json:"striker2_row"`
	PuckX       int   `json:"puck_x"`
	PuckY       int   `json:"puck_y"`
	Zone        int   `json:"zone"`
	TableWidth  int   `json:"table_width"`
	Score       Score `json:"score"`
}

// Score is the running tally of a session.
type Score struct {
	GamesPlayed int `json:"games_played"`
	GameCount   int `json:"game_count"`
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
}

type MenuKind string

const (
	MenuPlayerCount MenuKind = "player-count"
	MenuGameCount   MenuKind = "game-count"
)

// Menu is one rendered step of the setup selection.
type Menu struct {
	Kind  MenuKind `json:"kind"`
	Value int      `json:"value"`
}
