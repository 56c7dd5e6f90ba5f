package apperror

import "errors"

var (
	ErrInvalidTableWidth  = errors.New("table width must be at least 5")
	ErrInvalidSkillLevel  = errors.New("skill level must be between 0 and 100")
	ErrInvalidGameCount   = errors.New("game count must be at least 1")
	ErrInvalidPlayerCount = errors.New("player count must be 1 or 2")
	ErrInvalidSpeed       = errors.New("speeds must be positive")
	ErrMatchResolved      = errors.New("match is already resolved")
	ErrBotRequired        = errors.New("single-player games need a bot")
)
