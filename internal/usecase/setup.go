package usecase

import (
	"context"
	"time"

	"github.com/rocketscienceinc/airhockey/internal/airhockey"
	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	menuPollInterval = 50 * time.Millisecond
	menuSettle       = time.Second
)

// selectSettings - lets player 1 pick the player count and then the game count with the striker knob.
// It returns false when quit is pressed during either selection.
func (that *SessionManager) selectSettings(ctx context.Context, settings airhockey.Settings) (airhockey.Settings, bool, error) {
	playerCount, ok, err := that.selectValue(ctx, entity.MenuPlayerCount, playerCountForRow)
	if err != nil || !ok {
		return settings, ok, err
	}

	gameCount, ok, err := that.selectValue(ctx, entity.MenuGameCount, gameCountForRow)
	if err != nil || !ok {
		return settings, ok, err
	}

	settings.PlayerCount = playerCount
	settings.GameCount = gameCount

	that.logger.Info("setup selected", "players", playerCount, "games", gameCount)

	return settings, true, nil
}

// selectValue - shows the value under player 1's striker until the strike button confirms it.
func (that *SessionManager) selectValue(ctx context.Context, kind entity.MenuKind, valueForRow func(int) int) (int, bool, error) {
	for {
		if that.input.IsQuitPressed() {
			return 0, false, nil
		}

		row := that.strikers[0].Track(that.input.StrikerAngle(entity.Player1))
		value := valueForRow(row)

		that.renderer.RenderMenu(entity.Menu{Kind: kind, Value: value})

		if that.input.IsStrikePressed() {
			that.tones.PlayTone(entity.ConfirmTone)

			if err := that.clock.Sleep(ctx, menuSettle); err != nil {
				return 0, false, err
			}

			return value, true, nil
		}

		if err := that.clock.Sleep(ctx, menuPollInterval); err != nil {
			return 0, false, err
		}
	}
}

// playerCountForRow - the upper two rows select a game against the computer.
func playerCountForRow(row int) int {
	if row < entity.CenterRow {
		return 1
	}

	return 2
}

// gameCountForRow - each row selects an odd best-of count: 1, 3, 5, 7 or 9.
func gameCountForRow(row int) int {
	return row*2 + 1
}
