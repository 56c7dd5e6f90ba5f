package airhockey

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/airhockey/internal/apperror"
	"github.com/rocketscienceinc/airhockey/internal/entity"
)

// State is the phase of one game.
type State uint8

const (
	// Serving - the puck is docked to a striker.
	Serving State = iota
	// InFlight - the puck travels freely.
	InFlight
	// GoalCheck - a free puck is being tested against the goal columns; held only inside a tick.
	GoalCheck
	// Resolved - the game has a winner or was quit.
	Resolved
)

func (that State) String() string {
	switch that {
	case Serving:
		return "serving"
	case InFlight:
		return "in-flight"
	case GoalCheck:
		return "goal-check"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("state(%d)", uint8(that))
	}
}

type random interface {
	IntN(n int) int
}

type bot interface {
	TargetRow(puck *entity.Puck) int
}

// TickInput is the snapshot of the inputs read at the top of a tick.
type TickInput struct {
	Player1Angle int
	Player2Angle int
	Strike       bool
	Quit         bool
}

// Outcome is the terminal result of a game.
type Outcome struct {
	Winner entity.Player
	Quit   bool
}

// Report describes what happened during one tick.
type Report struct {
	State State
	Tones []entity.Tone
}

// MatchController runs a single game: one puck between two strikers.
type MatchController struct {
	logger   *slog.Logger
	settings Settings
	table    entity.Table
	random   random
	bot      bot

	puck     *entity.Puck
	strikers [2]*entity.Striker
	server   entity.Player

	state        State
	outcome      Outcome
	currentSpeed time.Duration
	computerRow  int
	blocks       int
}

// NewMatchController - creates a game with the puck docked to the server's striker.
// bot is required only when player 2 is the computer.
func NewMatchController(
	logger *slog.Logger,
	settings Settings,
	striker1, striker2 *entity.Striker,
	bot bot,
	random random,
	server entity.Player,
) (*MatchController, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match settings: %w", err)
	}

	if server != entity.Player1 && server != entity.Player2 {
		return nil, fmt.Errorf("%w: server %s", apperror.ErrInvalidPlayerCount, server)
	}

	if settings.VersusComputer() && bot == nil {
		return nil, apperror.ErrBotRequired
	}

	table := entity.NewTable(settings.TableWidth)

	return &MatchController{
		logger:   logger.With("component", "match", "server", server.String()),
		settings: settings,
		table:    table,
		random:   random,
		bot:      bot,

		puck:     entity.NewServedPuck(table, server),
		strikers: [2]*entity.Striker{striker1, striker2},
		server:   server,

		state:        Serving,
		currentSpeed: settings.MinSpeed,
		computerRow:  entity.CenterRow,
	}, nil
}

// Tick - advances the game by one frame.
func (that *MatchController) Tick(in TickInput) (Report, error) {
	if that.state == Resolved {
		return Report{State: Resolved}, apperror.ErrMatchResolved
	}

	if in.Quit {
		that.resolve(Outcome{Quit: true})
		return Report{State: that.state}, nil
	}

	var report Report

	that.puck.Move()
	that.trackStrikers(in)
	that.puck.Follow(that.RowOf)

	if in.Strike {
		if holder, attached := that.puck.Attachment.Player(); attached {
			that.puck.Release(that.outwardDirection(holder))
			report.Tones = append(report.Tones, entity.StrikeTone)
			that.logger.Debug("puck struck", "player", holder.String(), "direction", that.puck.Direction.String())
		}
	}

	if that.puck.IsAttached() {
		that.state = Serving
	} else {
		that.state = GoalCheck
		report.Tones = append(report.Tones, that.checkGoal()...)
	}

	that.logger.Debug("tick",
		"x", that.puck.X, "y", that.puck.Y,
		"direction", that.puck.Direction.String(),
		"state", that.state.String(),
		"speed", that.currentSpeed,
	)

	report.State = that.state

	return report, nil
}

// checkGoal - resolves a free puck that has reached a goal column and primes the bot one column early.
func (that *MatchController) checkGoal() []entity.Tone {
	that.state = InFlight

	switch x := that.puck.X; {
	case x == that.table.GoalColumn(entity.Player1):
		return that.defend(entity.Player1)
	case x == that.table.GoalColumn(entity.Player2):
		return that.defend(entity.Player2)
	case that.settings.VersusComputer() && x == that.table.ServeColumn(entity.Player2):
		that.computerRow = that.bot.TargetRow(that.puck)
	}

	return nil
}

// defend - the defender either loses the game or turns the puck around.
func (that *MatchController) defend(defender entity.Player) []entity.Tone {
	if that.RowOf(defender) != that.puck.Y {
		winner := defender.Opponent()
		that.resolve(Outcome{Winner: winner})
		that.logger.Info("goal", "winner", winner.String(), "row", that.puck.Y)

		return entity.LossTones
	}

	that.blocks++
	that.puck.Release(that.outwardDirection(defender))
	that.advanceSpeed()

	return []entity.Tone{entity.BlockTone(defender)}
}

func (that *MatchController) trackStrikers(in TickInput) {
	that.strikers[0].Track(in.Player1Angle)

	if !that.settings.VersusComputer() {
		that.strikers[1].Track(in.Player2Angle)
	}
}

// outwardDirection - draws one of the player's three shot directions uniformly.
func (that *MatchController) outwardDirection(player entity.Player) entity.Direction {
	directions := entity.OutwardDirections(player)

	return directions[that.random.IntN(len(directions))]
}

// advanceSpeed - shortens the tick delay by one increment, never past the maximum speed.
func (that *MatchController) advanceSpeed() {
	if that.settings.ConstantSpeed {
		that.currentSpeed = that.settings.MinSpeed
		return
	}

	that.currentSpeed -= that.settings.SpeedIncrement
	if that.currentSpeed < that.settings.MaxSpeed {
		that.currentSpeed = that.settings.MaxSpeed
	}
}

func (that *MatchController) resolve(outcome Outcome) {
	that.state = Resolved
	that.outcome = outcome
}

// RowOf - returns the row the player defends with; in single-player games the computer uses its target row.
func (that *MatchController) RowOf(player entity.Player) int {
	if player == entity.Player1 {
		return that.strikers[0].Row()
	}

	if that.settings.VersusComputer() {
		return that.computerRow
	}

	return that.strikers[1].Row()
}

// Frame - returns the renderable snapshot of the table.
func (that *MatchController) Frame() entity.Frame {
	return entity.Frame{
		Striker1Row: that.RowOf(entity.Player1),
		Striker2Row: that.RowOf(entity.Player2),
		PuckX:       that.puck.X,
		PuckY:       that.puck.Y,
		Zone:        that.table.Zone(that.puck.X),
		TableWidth:  that.table.Width,
	}
}

func (that *MatchController) State() State {
	return that.state
}

// Outcome - returns the result once the game is resolved.
func (that *MatchController) Outcome() (Outcome, bool) {
	return that.outcome, that.state == Resolved
}

// Speed - returns the current delay between ticks.
func (that *MatchController) Speed() time.Duration {
	return that.currentSpeed
}

func (that *MatchController) Puck() entity.Puck {
	return *that.puck
}

func (that *MatchController) ComputerRow() int {
	return that.computerRow
}

func (that *MatchController) Blocks() int {
	return that.blocks
}

func (that *MatchController) Server() entity.Player {
	return that.server
}
