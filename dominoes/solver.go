package dominoes

import "fmt"

// LongestTrainFrom computes the longest train that can be built from
// the hand starting at the anchor pip value. The anchor need not be
// present on any tile; it is the starting open end. Returns false when
// no tile in the hand matches the anchor.
//
// The search is a depth-first backtrack over the hand: tiles are
// removed while a branch is explored and put back at the same index on
// the way out, so the hand's contents and ordering are unchanged when
// the call returns. Ties in length go to the first chain found in hand
// order, which makes repeated calls on the same hand return the same
// train.
//
// The hand is mutated in place during the search and must not be used
// concurrently with the call.
func (h *Hand) LongestTrainFrom(anchor int) (*Train, bool) {
	line := h.longestLine(anchor)
	if len(line) == 0 {
		return nil, false
	}
	t := NewTrain(h.player, true, anchor)
	t.tiles = line
	t.tail = line[len(line)-1].Right()
	return t, true
}

// longestLine returns the longest chain extendable from the open end,
// as tiles already oriented left-end-first. Worst case is exponential
// in hand size, which is fine for hand-sized inputs; termination is
// guaranteed because the hand shrinks by one tile per level, even for
// doubles, which match without changing the open end.
func (h *Hand) longestLine(open int) []Domino {
	var best []Domino
	for i := 0; i < len(h.tiles); i++ {
		oriented, ok := h.tiles[i].Oriented(open)
		if !ok {
			continue
		}
		tile, _ := h.RemoveAt(i)
		rest := h.longestLine(oriented.Right())
		h.restoreAt(i, tile)

		if len(rest)+1 > len(best) {
			best = append([]Domino{oriented}, rest...)
		}
	}
	return best
}

// PlayLine removes the tiles with the given ids from the hand, in
// order, and plays each on the train. Typically fed with the tile ids
// of a train returned by LongestTrainFrom.
func (h *Hand) PlayLine(ids []int, t *Train) error {
	for _, id := range ids {
		pos := -1
		for i, tile := range h.tiles {
			if tile.ID() == id {
				pos = i
				break
			}
		}
		if pos == -1 {
			return fmt.Errorf("play line: domino id %d not in hand", id)
		}
		tile, _ := h.RemoveAt(pos)
		if err := t.Play(tile); err != nil {
			h.restoreAt(pos, tile)
			return fmt.Errorf("play line: %w", err)
		}
	}
	return nil
}
