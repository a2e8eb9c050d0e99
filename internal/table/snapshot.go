package table

import (
	"encoding/json"
	"fmt"

	"gametools/dominoes"
)

// tileSnap is a tile serialized as [left, right, id].
type tileSnap [3]int

func snapTile(d dominoes.Domino) tileSnap {
	return tileSnap{d.Left(), d.Right(), d.ID()}
}

func (s tileSnap) tile() (dominoes.Domino, error) {
	return dominoes.New(s[0], s[1], s[2])
}

func snapTiles(tiles []dominoes.Domino) []tileSnap {
	out := make([]tileSnap, len(tiles))
	for i, d := range tiles {
		out[i] = snapTile(d)
	}
	return out
}

type trainSnap struct {
	Head  int        `json:"head"`
	Tiles []tileSnap `json:"tiles"` // already oriented
}

type snapshot struct {
	Status  Status                `json:"status"`
	HostID  string                `json:"hostId"`
	Pile    []tileSnap            `json:"pile"`
	Hands   map[string][]tileSnap `json:"hands"`
	DealIDs map[string]string     `json:"dealIds"`
	Trains  map[string]trainSnap  `json:"trains"`
}

// MarshalState serializes the table's apparatus state for persistence.
// Watchers are connection state and are not included.
func (t *Table) MarshalState() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := snapshot{
		Status:  t.Status,
		HostID:  t.HostID,
		Pile:    snapTiles(t.pile.Tiles()),
		Hands:   make(map[string][]tileSnap, len(t.hands)),
		DealIDs: make(map[string]string, len(t.dealIDs)),
		Trains:  make(map[string]trainSnap, len(t.trains)),
	}
	for player, h := range t.hands {
		snap.Hands[player] = snapTiles(h.Tiles())
	}
	for player, id := range t.dealIDs {
		snap.DealIDs[player] = id
	}
	for player, tr := range t.trains {
		snap.Trains[player] = trainSnap{Head: tr.Head(), Tiles: snapTiles(tr.Tiles())}
	}
	return json.Marshal(snap)
}

// RestoreState rebuilds the table's apparatus state from a snapshot.
func (t *Table) RestoreState(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal table state: %w", err)
	}

	pileTiles := make([]dominoes.Domino, len(snap.Pile))
	for i, s := range snap.Pile {
		d, err := s.tile()
		if err != nil {
			return fmt.Errorf("restore pile: %w", err)
		}
		pileTiles[i] = d
	}

	hands := make(map[string]*dominoes.Hand, len(snap.Hands))
	for player, tiles := range snap.Hands {
		h := dominoes.NewHand(player)
		for _, s := range tiles {
			d, err := s.tile()
			if err != nil {
				return fmt.Errorf("restore hand for %s: %w", player, err)
			}
			h.Add(d)
		}
		hands[player] = h
	}

	trains := make(map[string]*dominoes.Train, len(snap.Trains))
	for player, ts := range snap.Trains {
		tr := dominoes.NewTrain(player, true, ts.Head)
		for _, s := range ts.Tiles {
			d, err := s.tile()
			if err != nil {
				return fmt.Errorf("restore train for %s: %w", player, err)
			}
			if err := tr.Play(d); err != nil {
				return fmt.Errorf("restore train for %s: %w", player, err)
			}
		}
		trains[player] = tr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if snap.Status != "" {
		t.Status = snap.Status
	}
	t.HostID = snap.HostID
	t.pile = dominoes.NewBonePileFrom(pileTiles)
	t.hands = hands
	t.trains = trains
	t.dealIDs = make(map[string]string, len(snap.DealIDs))
	for player, id := range snap.DealIDs {
		t.dealIDs[player] = id
	}
	return nil
}
