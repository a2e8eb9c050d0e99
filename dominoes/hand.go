package dominoes

import (
	"fmt"
	"slices"
	"strings"

	"gametools"
)

// Hand is a player's pool of tiles. Ordering carries no meaning for
// play, but it is preserved so that candidate enumeration in the
// solver stays reproducible.
type Hand struct {
	player string
	tiles  []Domino
}

// NewHand creates a new empty hand.
func NewHand(player string) *Hand {
	return &Hand{player: player}
}

// NewHandWithDraw creates a hand and draws its starting tiles from the
// pile in one step.
func NewHandWithDraw(player string, count int, pile *BonePile) (*Hand, error) {
	tiles, err := pile.DrawTiles(count)
	if err != nil {
		return nil, err
	}
	return &Hand{player: player, tiles: tiles}, nil
}

// Player returns the hand owner's name.
func (h *Hand) Player() string { return h.player }

// Len returns the number of tiles in the hand.
func (h *Hand) Len() int { return len(h.tiles) }

// Tiles returns a copy of the tiles in their current order.
func (h *Hand) Tiles() []Domino {
	out := make([]Domino, len(h.tiles))
	copy(out, h.tiles)
	return out
}

// Add puts a tile into the hand, e.g. after drawing from the pile.
func (h *Hand) Add(d Domino) {
	h.tiles = append(h.tiles, d)
}

// RemoveAt removes and returns the tile at index i, shrinking the hand
// by one.
func (h *Hand) RemoveAt(i int) (Domino, error) {
	if i < 0 || i >= len(h.tiles) {
		return Domino{}, fmt.Errorf("remove tile %d of %d: %w", i, len(h.tiles), gametools.ErrIndexOutOfRange)
	}
	d := h.tiles[i]
	h.tiles = slices.Delete(h.tiles, i, i+1)
	return d, nil
}

// Restore reinserts a previously removed tile. Position within the
// hand is not specified.
func (h *Hand) Restore(d Domino) {
	h.tiles = append(h.tiles, d)
}

// restoreAt reinserts a tile at the index it was removed from. The
// solver uses this instead of Restore so backtracking leaves the
// hand's ordering untouched.
func (h *Hand) restoreAt(i int, d Domino) {
	h.tiles = slices.Insert(h.tiles, i, d)
}

func (h *Hand) String() string {
	var b strings.Builder
	b.WriteString(h.player)
	b.WriteString("->")
	for _, d := range h.tiles {
		b.WriteString(d.String())
	}
	return b.String()
}
