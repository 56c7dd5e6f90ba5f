package entity

// Attachment records which striker, if any, the puck is docked to.
// The zero value is a free puck.
type Attachment struct {
	to Player
}

// Detached - returns the attachment of a free puck.
func Detached() Attachment {
	return Attachment{}
}

// AttachedTo - returns an attachment docking the puck to the player's striker.
func AttachedTo(player Player) Attachment {
	return Attachment{to: player}
}

// Player - returns the holding player and true, or PlayerNone and false for a free puck.
func (that Attachment) Player() (Player, bool) {
	return that.to, that.to != PlayerNone
}

func (that Attachment) IsDetached() bool {
	return that.to == PlayerNone
}

func (that Attachment) String() string {
	if that.IsDetached() {
		return "none"
	}

	return that.to.String()
}

// Puck is the single moving object on the table.
type Puck struct {
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Direction  Direction  `json:"direction"`
	Attachment Attachment `json:"-"`
}

// NewServedPuck - creates a puck docked to the server's striker, one column in from its goal, on the center row.
func NewServedPuck(table Table, server Player) *Puck {
	return &Puck{
		X:          table.ServeColumn(server),
		Y:          CenterRow,
		Direction:  Neutral,
		Attachment: AttachedTo(server),
	}
}

// Move - advances the puck one unit step and bounces it off the rails.
// The column is never clamped; leaving the table is detected by the caller as a goal.
func (that *Puck) Move() {
	if that.Direction == Neutral {
		return
	}

	step := that.Direction.Vector()
	that.X += step.DX
	that.Y = ClampRow(that.Y + step.DY)
	that.Direction = that.Direction.Reflect(that.Y)
}

// PredictNextY - returns the row the puck will occupy after the next Move, without moving it.
func (that *Puck) PredictNextY() int {
	return ClampRow(that.Y + that.Direction.Vector().DY)
}

// Follow - keeps an attached puck on its striker: the row tracks the striker and the puck is held still.
// A free puck is left untouched.
func (that *Puck) Follow(rowOf func(Player) int) {
	player, attached := that.Attachment.Player()
	if !attached {
		return
	}

	that.Y = rowOf(player)
	that.Direction = Neutral
}

// Release - frees the puck in the given direction.
func (that *Puck) Release(direction Direction) {
	that.Attachment = Detached()
	that.Direction = direction
}

func (that *Puck) IsAttached() bool {
	return !that.Attachment.IsDetached()
}
