package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/airhockey/internal/apperror"
	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	MinSkillLevel = 0
	MaxSkillLevel = 100
)

type random interface {
	IntN(n int) int
}

// BotService picks the computer striker's row in single-player games.
type BotService interface {
	TargetRow(puck *entity.Puck) int
}

type botService struct {
	logger     *slog.Logger
	random     random
	skillLevel int
}

// NewBotService - creates the computer opponent. skillLevel is the percent chance it blocks.
func NewBotService(logger *slog.Logger, random random, skillLevel int) (BotService, error) {
	if skillLevel < MinSkillLevel || skillLevel > MaxSkillLevel {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSkillLevel, skillLevel)
	}

	return &botService{
		logger:     logger.With("component", "bot"),
		random:     random,
		skillLevel: skillLevel,
	}, nil
}

// TargetRow - rolls against the skill level and returns the row the computer striker moves to.
// A successful roll lands on the puck's next row; a failed one lands one row off.
func (that *botService) TargetRow(puck *entity.Puck) int {
	predicted := puck.PredictNextY()

	roll := that.random.IntN(MaxSkillLevel)
	if roll < that.skillLevel {
		that.logger.Debug("bot blocks", "roll", roll, "row", predicted)
		return predicted
	}

	row := missRow(predicted)
	that.logger.Debug("bot misses", "roll", roll, "row", row)

	return row
}

func missRow(predicted int) int {
	if predicted == entity.TopRow {
		return entity.TopRow + 1
	}

	return predicted - 1
}
