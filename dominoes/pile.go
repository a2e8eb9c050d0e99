package dominoes

import (
	"fmt"
	"math/rand/v2"

	"gametools"
)

// BonePile is the pile of all dominoes used for a game.
type BonePile struct {
	tiles []Domino
}

// NewBonePile creates a randomized set of dominoes with up to mostPips
// pips per side (capped at MaxPips). The set holds one tile for every
// ordered (left, right) pair, matching a physical double set laid out
// both ways.
func NewBonePile(mostPips int) *BonePile {
	max := min(mostPips, MaxPips)
	tiles := make([]Domino, 0, (max+1)*(max+1))
	id := 0
	for left := 0; left <= max; left++ {
		for right := 0; right <= max; right++ {
			tiles = append(tiles, Domino{left: left, right: right, id: id})
			id++
		}
	}
	rand.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &BonePile{tiles: tiles}
}

// NewBonePileFrom rebuilds a pile from previously drawn-down contents,
// e.g. when restoring a persisted table. Tiles are kept in the given
// order.
func NewBonePileFrom(tiles []Domino) *BonePile {
	p := &BonePile{tiles: make([]Domino, len(tiles))}
	copy(p.tiles, tiles)
	return p
}

// Len returns the number of tiles left in the pile.
func (p *BonePile) Len() int { return len(p.tiles) }

// Tiles returns a copy of the remaining tiles.
func (p *BonePile) Tiles() []Domino {
	out := make([]Domino, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// DrawTile draws a single tile from the pile. Returns false when the
// pile is empty.
func (p *BonePile) DrawTile() (Domino, bool) {
	if len(p.tiles) == 0 {
		return Domino{}, false
	}
	d := p.tiles[len(p.tiles)-1]
	p.tiles = p.tiles[:len(p.tiles)-1]
	return d, true
}

// DrawTiles draws count tiles from the pile, usually only used when
// creating a new hand.
func (p *BonePile) DrawTiles(count int) ([]Domino, error) {
	if count > len(p.tiles) {
		return nil, fmt.Errorf("draw %d of %d tiles: %w", count, len(p.tiles), gametools.ErrInsufficientTiles)
	}
	drawn := make([]Domino, count)
	copy(drawn, p.tiles[len(p.tiles)-count:])
	p.tiles = p.tiles[:len(p.tiles)-count]
	return drawn, nil
}
