package dominoes

import (
	"fmt"
	"strings"

	"gametools"
)

// Train is a line of dominoes that have been played.
//
// Player should be an empty string or other chosen token for a public
// train, or the owner's name. For owned trains, open refers to whether
// other players are currently allowed to extend it. Head is the
// starting value for the round, fixed for the train's lifetime; Tail
// is the open end the next tile must match.
type Train struct {
	player string
	open   bool
	head   int
	tail   int
	tiles  []Domino
}

// NewTrain creates an empty train anchored at start.
func NewTrain(player string, open bool, start int) *Train {
	return &Train{player: player, open: open, head: start, tail: start}
}

// Player returns the train owner's token.
func (t *Train) Player() string { return t.player }

// IsOpen reports whether other players may extend the train.
func (t *Train) IsOpen() bool { return t.open }

// Close marks the train as not extendable by other players.
func (t *Train) Close() { t.open = false }

// Open marks the train as extendable.
func (t *Train) Open() { t.open = true }

// Head returns the anchor pip value.
func (t *Train) Head() int { return t.head }

// Tail returns the current open end.
func (t *Train) Tail() int { return t.tail }

// Len returns the number of tiles played on the train.
func (t *Train) Len() int { return len(t.tiles) }

// Tiles returns the played tiles in order, each already oriented so
// that its left end touches the previous tile (or the head).
func (t *Train) Tiles() []Domino {
	out := make([]Domino, len(t.tiles))
	copy(out, t.tiles)
	return out
}

// Play places a tile on the tail of the train, flipping it first if
// needed. The tile must match the current tail.
func (t *Train) Play(d Domino) error {
	if !t.open {
		return fmt.Errorf("play %s: %w", d, gametools.ErrTrainClosed)
	}
	oriented, ok := d.Oriented(t.tail)
	if !ok {
		return fmt.Errorf("play %s on tail %d: %w", d, t.tail, gametools.ErrTileUnconnected)
	}
	t.tail = oriented.Right()
	t.tiles = append(t.tiles, oriented)
	return nil
}

func (t *Train) String() string {
	var b strings.Builder
	if t.open {
		b.WriteString("[O]-")
	} else {
		b.WriteString("[X]-")
	}
	b.WriteString(t.player)
	fmt.Fprintf(&b, "-(%d)", t.head)
	for _, d := range t.tiles {
		b.WriteString(d.String())
	}
	return b.String()
}
