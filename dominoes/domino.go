// Package dominoes implements devices for working with a game of
// dominoes: individual tiles, the bone pile, player hands, trains of
// played tiles, and a longest-train solver.
package dominoes

import (
	"fmt"

	"gametools"
)

// MaxPips is the largest pip value a tile end may carry.
const MaxPips = 12

// Domino is a single tile. Tiles are value-equal when their pip pairs
// match, so each tile also carries a stable instance id to tell
// duplicates in a hand apart.
type Domino struct {
	left  int
	right int
	id    int
}

// New creates a tile. Pip values must be in 0..MaxPips.
func New(left, right, id int) (Domino, error) {
	if left < 0 || left > MaxPips || right < 0 || right > MaxPips {
		return Domino{}, fmt.Errorf("new domino [%d:%d]: %w", left, right, gametools.ErrInvalidTile)
	}
	return Domino{left: left, right: right, id: id}, nil
}

// Left returns the left pip value.
func (d Domino) Left() int { return d.left }

// Right returns the right pip value.
func (d Domino) Right() int { return d.right }

// ID returns the tile's instance id.
func (d Domino) ID() int { return d.id }

// IsDouble reports whether both ends carry the same pip value.
func (d Domino) IsDouble() bool { return d.left == d.right }

// Flipped returns a copy with left and right reversed, same id.
func (d Domino) Flipped() Domino {
	return Domino{left: d.right, right: d.left, id: d.id}
}

// Matches reports whether either end of the tile equals open.
func (d Domino) Matches(open int) bool {
	return d.left == open || d.right == open
}

// Oriented returns the tile turned so that its left end touches open,
// and true, when the tile matches; the right end of the result is the
// new open end. Doubles come back unchanged. Returns false when
// neither end matches.
func (d Domino) Oriented(open int) (Domino, bool) {
	switch open {
	case d.left:
		return d, true
	case d.right:
		return d.Flipped(), true
	default:
		return Domino{}, false
	}
}

// Points returns the number of points the tile is worth. 0-0 is worth
// 50.
func (d Domino) Points() int {
	if total := d.left + d.right; total > 0 {
		return total
	}
	return 50
}

func (d Domino) String() string {
	return fmt.Sprintf("[%d:%d]", d.left, d.right)
}
