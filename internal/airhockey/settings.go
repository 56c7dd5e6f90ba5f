package airhockey

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/airhockey/internal/apperror"
	"github.com/rocketscienceinc/airhockey/internal/entity"
	"github.com/rocketscienceinc/airhockey/internal/service"
)

// Settings are fixed for the whole session.
type Settings struct {
	TableWidth     int
	PlayerCount    int
	ConstantSpeed  bool
	MinSpeed       time.Duration
	MaxSpeed       time.Duration
	SpeedIncrement time.Duration
	SkillLevel     int
	GameCount      int
}

// DefaultSettings - returns the settings of a standard single-player best-of-three.
func DefaultSettings() Settings {
	return Settings{
		TableWidth:     entity.DefaultTableWidth,
		PlayerCount:    1,
		MinSpeed:       300 * time.Millisecond,
		MaxSpeed:       100 * time.Millisecond,
		SpeedIncrement: 25 * time.Millisecond,
		SkillLevel:     90,
		GameCount:      3,
	}
}

// Validate - rejects settings that break the table or session contract.
func (that Settings) Validate() error {
	if that.TableWidth < entity.MinTableWidth {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidTableWidth, that.TableWidth)
	}

	if that.PlayerCount != 1 && that.PlayerCount != 2 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayerCount, that.PlayerCount)
	}

	if that.SkillLevel < service.MinSkillLevel || that.SkillLevel > service.MaxSkillLevel {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidSkillLevel, that.SkillLevel)
	}

	if that.GameCount < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidGameCount, that.GameCount)
	}

	if that.MinSpeed <= 0 || that.MaxSpeed <= 0 || that.SpeedIncrement <= 0 {
		return fmt.Errorf("%w: min %s, max %s, increment %s",
			apperror.ErrInvalidSpeed, that.MinSpeed, that.MaxSpeed, that.SpeedIncrement)
	}

	// a lower delay is faster, so the ramp runs from MinSpeed down to MaxSpeed
	if that.MinSpeed < that.MaxSpeed {
		return fmt.Errorf("%w: min %s is faster than max %s", apperror.ErrInvalidSpeed, that.MinSpeed, that.MaxSpeed)
	}

	return nil
}

// VersusComputer - reports whether player 2 is driven by the bot.
func (that Settings) VersusComputer() bool {
	return that.PlayerCount == 1
}
