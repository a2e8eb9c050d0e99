package table

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gametools/dominoes"
)

// Status represents the table lifecycle.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Watcher represents a connected client.
type Watcher struct {
	ID   string
	Send chan []byte // outbound messages
}

// Table is one live demo table: a bone pile, dealt hands, and the
// trains solved from them, with connected watchers.
type Table struct {
	mu       sync.RWMutex
	Code     string
	Preset   Preset
	Status   Status
	HostID   string
	Watchers map[string]*Watcher

	pile    *dominoes.BonePile
	hands   map[string]*dominoes.Hand
	dealIDs map[string]string
	trains  map[string]*dominoes.Train
}

// NewTable creates an open table with a freshly shuffled bone pile.
func NewTable(code string, p Preset) *Table {
	return &Table{
		Code:     code,
		Preset:   p,
		Status:   StatusOpen,
		Watchers: make(map[string]*Watcher),
		pile:     dominoes.NewBonePile(p.MaxPips),
		hands:    make(map[string]*dominoes.Hand),
		dealIDs:  make(map[string]string),
		trains:   make(map[string]*dominoes.Train),
	}
}

// AddWatcher adds a watcher to the table. Returns an error if the
// table is closed or the id is taken.
func (t *Table) AddWatcher(watcherID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Status != StatusOpen {
		return fmt.Errorf("table is closed")
	}
	if _, exists := t.Watchers[watcherID]; exists {
		return fmt.Errorf("watcher %s already at table", watcherID)
	}
	t.Watchers[watcherID] = &Watcher{
		ID:   watcherID,
		Send: make(chan []byte, 64),
	}
	if t.HostID == "" {
		t.HostID = watcherID
	}
	return nil
}

// RemoveWatcher removes a watcher from the table.
func (t *Table) RemoveWatcher(watcherID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if w, ok := t.Watchers[watcherID]; ok {
		close(w.Send)
		delete(t.Watchers, watcherID)
	}
}

// ConnectWatcher replaces the Send channel for a reconnecting watcher.
func (t *Table) ConnectWatcher(watcherID string, send chan []byte) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.Watchers[watcherID]
	if !ok {
		return false
	}
	w.Send = send
	return true
}

// Deal draws a fresh hand for the player from the table's bone pile
// and returns the deal's id. A player holds at most one hand.
func (t *Table) Deal(player string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Status != StatusOpen {
		return "", fmt.Errorf("table is closed")
	}
	if _, exists := t.hands[player]; exists {
		return "", fmt.Errorf("player %s already holds a hand", player)
	}
	hand, err := dominoes.NewHandWithDraw(player, t.Preset.HandSize, t.pile)
	if err != nil {
		return "", err
	}
	dealID := uuid.NewString()
	t.hands[player] = hand
	t.dealIDs[player] = dealID
	return dealID, nil
}

// Hand returns the player's hand tiles, or false if none was dealt.
func (t *Table) Hand(player string) ([]dominoes.Domino, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.hands[player]
	if !ok {
		return nil, false
	}
	return h.Tiles(), true
}

// Solve computes the longest train from the player's hand anchored at
// the given pip value and records it as the player's current train.
// The second return is false when no tile matches the anchor.
func (t *Table) Solve(player string, anchor int) (*dominoes.Train, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.hands[player]
	if !ok {
		return nil, false, fmt.Errorf("player %s has no hand", player)
	}
	train, found := h.LongestTrainFrom(anchor)
	if !found {
		delete(t.trains, player)
		return nil, false, nil
	}
	t.trains[player] = train
	return train, true, nil
}

// Train returns the player's last solved train.
func (t *Table) Train(player string) (*dominoes.Train, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tr, ok := t.trains[player]
	return tr, ok
}

// PileLen returns the number of tiles left in the bone pile.
func (t *Table) PileLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pile.Len()
}

// Close marks the table closed.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Status = StatusClosed
}

// Broadcast sends a message to all connected watchers.
func (t *Table) Broadcast(msg []byte) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, w := range t.Watchers {
		select {
		case w.Send <- msg:
		default:
			// drop message if buffer full
		}
	}
}

// GetWatcher returns a watcher, or nil if not found.
func (t *Table) GetWatcher(watcherID string) *Watcher {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.Watchers[watcherID]
}

// Info returns table info for the API.
type Info struct {
	Code     string   `json:"code"`
	Preset   Preset   `json:"preset"`
	Status   Status   `json:"status"`
	Watchers []string `json:"watchers"`
	HostID   string   `json:"hostId"`
	Players  []string `json:"players"` // players holding dealt hands
	PileLeft int      `json:"pileLeft"`
}

func (t *Table) Info() Info {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.infoLocked()
}

func (t *Table) infoLocked() Info {
	watchers := make([]string, 0, len(t.Watchers))
	for id := range t.Watchers {
		watchers = append(watchers, id)
	}
	players := make([]string, 0, len(t.hands))
	for p := range t.hands {
		players = append(players, p)
	}
	return Info{
		Code:     t.Code,
		Preset:   t.Preset,
		Status:   t.Status,
		Watchers: watchers,
		HostID:   t.HostID,
		Players:  players,
		PileLeft: t.pile.Len(),
	}
}
