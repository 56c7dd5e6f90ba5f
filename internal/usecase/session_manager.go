package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/airhockey/internal/airhockey"
	"github.com/rocketscienceinc/airhockey/internal/entity"
	"github.com/rocketscienceinc/airhockey/internal/pkg"
	"github.com/rocketscienceinc/airhockey/internal/service"
)

const publishTimeout = 2 * time.Second

type inputSource interface {
	StrikerAngle(player entity.Player) int
	IsQuitPressed() bool
	IsStrikePressed() bool
}

type renderer interface {
	RenderFrame(frame entity.Frame)
	RenderMenu(menu entity.Menu)
}

type tonePlayer interface {
	PlayTone(tone entity.Tone)
}

type clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type random interface {
	IntN(n int) int
}

type scoreboard interface {
	SaveGame(ctx context.Context, record entity.GameRecord) error
	SaveSession(ctx context.Context, record entity.SessionRecord) error
}

// SessionManager plays a best-of-N series of games.
type SessionManager struct {
	logger   *slog.Logger
	settings airhockey.Settings

	input    inputSource
	renderer renderer
	tones    tonePlayer
	clock    clock
	random   random

	scoreboard       scoreboard
	interactiveSetup bool

	sessionID string
	strikers  [2]*entity.Striker
}

func NewSessionManager(
	logger *slog.Logger,
	settings airhockey.Settings,
	input inputSource,
	renderer renderer,
	tones tonePlayer,
	clock clock,
	random random,
) (*SessionManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session settings: %w", err)
	}

	sessionID := pkg.GenerateSessionID()
	table := entity.NewTable(settings.TableWidth)

	return &SessionManager{
		logger:   logger.With("component", "session", "session_id", sessionID),
		settings: settings,

		input:    input,
		renderer: renderer,
		tones:    tones,
		clock:    clock,
		random:   random,

		sessionID: sessionID,
		strikers: [2]*entity.Striker{
			entity.NewStriker(table, entity.Player1),
			entity.NewStriker(table, entity.Player2),
		},
	}, nil
}

// WithScoreboard - publishes every finished game and the session result to the scoreboard.
func (that *SessionManager) WithScoreboard(scoreboard scoreboard) *SessionManager {
	that.scoreboard = scoreboard
	return that
}

// WithInteractiveSetup - lets player 1 choose the player and game counts before the first game.
func (that *SessionManager) WithInteractiveSetup(enabled bool) *SessionManager {
	that.interactiveSetup = enabled
	return that
}

func (that *SessionManager) SessionID() string {
	return that.sessionID
}

// Run - plays the session to completion. A quit ends it early with Quit set and no winner.
// When ctx is canceled the partial result is returned with ctx's error.
func (that *SessionManager) Run(ctx context.Context) (entity.SessionResult, error) {
	log := that.logger.With("method", "Run")

	settings := that.settings
	if that.interactiveSetup {
		selected, ok, err := that.selectSettings(ctx, settings)
		if err != nil {
			return that.abort(ctx, settings, entity.SessionResult{GameCount: settings.GameCount}, err)
		}

		if !ok {
			return that.quit(ctx, settings, entity.SessionResult{GameCount: settings.GameCount})
		}

		settings = selected
	}

	var bot service.BotService
	if settings.VersusComputer() {
		var err error
		if bot, err = service.NewBotService(that.logger, that.random, settings.SkillLevel); err != nil {
			return entity.SessionResult{}, fmt.Errorf("failed to create bot: %w", err)
		}
	}

	result := entity.SessionResult{GameCount: settings.GameCount}
	lastWinner := entity.PlayerNone

	log.Info("session started", "players", settings.PlayerCount, "games", settings.GameCount)

	for result.GamesPlayed < settings.GameCount {
		// quit takes precedence over choosing the next server
		if that.input.IsQuitPressed() {
			return that.quit(ctx, settings, result)
		}

		server := nextServer(lastWinner)

		match, err := airhockey.NewMatchController(
			that.logger, settings, that.strikers[0], that.strikers[1], bot, that.random, server,
		)
		if err != nil {
			return result, fmt.Errorf("failed to create match: %w", err)
		}

		log.Info("game started", "game", result.GamesPlayed+1, "server", match.Server().String())

		outcome, err := that.playGame(ctx, match, result.Score())
		if err != nil {
			return that.abort(ctx, settings, result, err)
		}

		if outcome.Quit {
			return that.quit(ctx, settings, result)
		}

		lastWinner = outcome.Winner
		if outcome.Winner == entity.Player1 {
			result.GamesWonByPlayer1++
		}
		result.GamesPlayed++

		log.Info("game finished", "game", result.GamesPlayed, "winner", outcome.Winner.String())

		that.publishGame(ctx, entity.GameRecord{
			SessionID:  that.sessionID,
			Number:     result.GamesPlayed,
			Server:     match.Server(),
			Winner:     outcome.Winner,
			Blocks:     match.Blocks(),
			FinishedAt: time.Now(),
		})
	}

	result.Winner = result.OverallWinner()
	log.Info("session finished", "winner", result.Winner.String(),
		"player1_wins", result.GamesWonByPlayer1, "player2_wins", result.GamesWonByPlayer2())

	that.publishSession(ctx, settings, result)

	return result, nil
}

// playGame - runs the tick loop of one game until it resolves.
func (that *SessionManager) playGame(ctx context.Context, match *airhockey.MatchController, score entity.Score) (airhockey.Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return airhockey.Outcome{}, err
		}

		report, err := match.Tick(that.readInput())
		if err != nil {
			return airhockey.Outcome{}, fmt.Errorf("failed to tick match: %w", err)
		}

		frame := match.Frame()
		frame.Score = score
		that.renderer.RenderFrame(frame)

		if err = that.playTones(ctx, report.Tones); err != nil {
			return airhockey.Outcome{}, err
		}

		if outcome, done := match.Outcome(); done {
			return outcome, nil
		}

		if err = that.clock.Sleep(ctx, match.Speed()); err != nil {
			return airhockey.Outcome{}, err
		}
	}
}

// readInput - takes one snapshot of the inputs, quit first.
func (that *SessionManager) readInput() airhockey.TickInput {
	quit := that.input.IsQuitPressed()

	return airhockey.TickInput{
		Quit:         quit,
		Player1Angle: that.input.StrikerAngle(entity.Player1),
		Player2Angle: that.input.StrikerAngle(entity.Player2),
		Strike:       that.input.IsStrikePressed(),
	}
}

func (that *SessionManager) playTones(ctx context.Context, tones []entity.Tone) error {
	for _, tone := range tones {
		that.tones.PlayTone(tone)

		if tone.Pause > 0 {
			if err := that.clock.Sleep(ctx, tone.Pause); err != nil {
				return err
			}
		}
	}

	return nil
}

func (that *SessionManager) quit(ctx context.Context, settings airhockey.Settings, result entity.SessionResult) (entity.SessionResult, error) {
	result.Quit = true
	result.Winner = entity.PlayerNone

	that.logger.Info("session quit", "games_played", result.GamesPlayed)
	that.publishSession(ctx, settings, result)

	return result, nil
}

func (that *SessionManager) abort(ctx context.Context, settings airhockey.Settings, result entity.SessionResult, cause error) (entity.SessionResult, error) {
	result.Quit = true
	result.Winner = entity.PlayerNone

	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		that.logger.Info("session aborted", "reason", cause.Error())
	} else {
		that.logger.Error("session failed", "error", cause)
	}

	that.publishSession(ctx, settings, result)

	return result, cause
}

func (that *SessionManager) publishGame(ctx context.Context, record entity.GameRecord) {
	if that.scoreboard == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := that.scoreboard.SaveGame(ctx, record); err != nil {
		that.logger.Error("could not publish game", "game", record.Number, "error", err)
	}
}

func (that *SessionManager) publishSession(ctx context.Context, settings airhockey.Settings, result entity.SessionResult) {
	if that.scoreboard == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	record := entity.SessionRecord{
		SessionID:   that.sessionID,
		PlayerCount: settings.PlayerCount,
		Result:      result,
		FinishedAt:  time.Now(),
	}

	if err := that.scoreboard.SaveSession(ctx, record); err != nil {
		that.logger.Error("could not publish session", "error", err)
	}
}

// nextServer - the loser of the previous game serves; player 1 serves the first game.
func nextServer(lastWinner entity.Player) entity.Player {
	if lastWinner == entity.Player1 {
		return entity.Player2
	}

	return entity.Player1
}
