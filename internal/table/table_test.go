package table

import (
	"errors"
	"testing"

	"gametools"
)

func testPreset() Preset {
	return Preset{Name: "double-six", MaxPips: 6, HandSize: 7}
}

func TestNewTable(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	if tbl.Status != StatusOpen {
		t.Fatalf("expected open table, got %s", tbl.Status)
	}
	if tbl.PileLen() != 49 {
		t.Fatalf("expected 49 tiles in a double-six pile, got %d", tbl.PileLen())
	}
}

func TestAddWatcher(t *testing.T) {
	tbl := NewTable("abc123", testPreset())

	if err := tbl.AddWatcher("alice"); err != nil {
		t.Fatalf("add alice: %v", err)
	}
	if tbl.HostID != "alice" {
		t.Fatalf("expected alice as host, got %s", tbl.HostID)
	}
	if err := tbl.AddWatcher("alice"); err == nil {
		t.Fatal("expected error on duplicate watcher")
	}
	if err := tbl.AddWatcher("bob"); err != nil {
		t.Fatalf("add bob: %v", err)
	}
	if tbl.HostID != "alice" {
		t.Fatal("host must not change when more watchers join")
	}
}

func TestAddWatcherClosedTable(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.Close()
	if err := tbl.AddWatcher("alice"); err == nil {
		t.Fatal("expected error joining a closed table")
	}
}

func TestRemoveWatcher(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.AddWatcher("alice")
	tbl.RemoveWatcher("alice")
	if tbl.GetWatcher("alice") != nil {
		t.Fatal("expected alice removed")
	}
	// removing twice is a no-op
	tbl.RemoveWatcher("alice")
}

func TestConnectWatcher(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.AddWatcher("alice")

	send := make(chan []byte, 1)
	if !tbl.ConnectWatcher("alice", send) {
		t.Fatal("expected reconnect to succeed")
	}
	if tbl.ConnectWatcher("ghost", send) {
		t.Fatal("expected reconnect of unknown watcher to fail")
	}
}

func TestDeal(t *testing.T) {
	tbl := NewTable("abc123", testPreset())

	dealID, err := tbl.Deal("alice")
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if dealID == "" {
		t.Fatal("expected a deal id")
	}
	tiles, ok := tbl.Hand("alice")
	if !ok || len(tiles) != 7 {
		t.Fatalf("expected 7 tiles for alice, got %d (%v)", len(tiles), ok)
	}
	if tbl.PileLen() != 49-7 {
		t.Fatalf("expected 42 tiles left in pile, got %d", tbl.PileLen())
	}

	if _, err := tbl.Deal("alice"); err == nil {
		t.Fatal("expected error on second deal to same player")
	}
}

func TestDealExhaustsPile(t *testing.T) {
	tbl := NewTable("abc123", Preset{Name: "tiny", MaxPips: 1, HandSize: 3})
	// 4-tile pile, 3 per hand: second deal must fail
	if _, err := tbl.Deal("alice"); err != nil {
		t.Fatalf("first deal: %v", err)
	}
	_, err := tbl.Deal("bob")
	if !errors.Is(err, gametools.ErrInsufficientTiles) {
		t.Fatalf("expected ErrInsufficientTiles, got %v", err)
	}
}

func TestSolve(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.Deal("alice")

	tiles, _ := tbl.Hand("alice")
	anchor := tiles[0].Left() // guaranteed to match at least one tile

	train, found, err := tbl.Solve("alice", anchor)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !found {
		t.Fatal("expected a train for an anchor taken from the hand")
	}
	if train.Head() != anchor || train.Len() == 0 {
		t.Fatalf("unexpected train: %s", train)
	}

	recorded, ok := tbl.Train("alice")
	if !ok || recorded.Len() != train.Len() {
		t.Fatal("expected the solved train to be recorded")
	}

	// hand is untouched by solving
	after, _ := tbl.Hand("alice")
	if len(after) != len(tiles) {
		t.Fatalf("hand size changed: %d -> %d", len(tiles), len(after))
	}
}

func TestSolveNoHand(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	if _, _, err := tbl.Solve("ghost", 3); err == nil {
		t.Fatal("expected error solving without a hand")
	}
}

func TestInfo(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.AddWatcher("alice")
	tbl.Deal("bob")

	info := tbl.Info()
	if info.Code != "abc123" || info.Preset.Name != "double-six" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(info.Watchers) != 1 || info.Watchers[0] != "alice" {
		t.Fatalf("expected watcher alice, got %v", info.Watchers)
	}
	if len(info.Players) != 1 || info.Players[0] != "bob" {
		t.Fatalf("expected player bob, got %v", info.Players)
	}
	if info.PileLeft != 42 {
		t.Fatalf("expected 42 tiles left, got %d", info.PileLeft)
	}
}

func TestBroadcast(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.AddWatcher("alice")
	tbl.AddWatcher("bob")

	tbl.Broadcast([]byte("hello"))

	for _, id := range []string{"alice", "bob"} {
		w := tbl.GetWatcher(id)
		select {
		case msg := <-w.Send:
			if string(msg) != "hello" {
				t.Fatalf("unexpected message for %s: %s", id, msg)
			}
		default:
			t.Fatalf("no message delivered to %s", id)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tbl := NewTable("abc123", testPreset())
	tbl.AddWatcher("alice")
	tbl.Deal("alice")
	tiles, _ := tbl.Hand("alice")
	tbl.Solve("alice", tiles[0].Left())

	data, err := tbl.MarshalState()
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}

	restored := NewTable("abc123", testPreset())
	if err := restored.RestoreState(data); err != nil {
		t.Fatalf("restore state: %v", err)
	}

	if restored.PileLen() != tbl.PileLen() {
		t.Fatalf("pile size mismatch: %d != %d", restored.PileLen(), tbl.PileLen())
	}
	gotTiles, ok := restored.Hand("alice")
	if !ok || len(gotTiles) != len(tiles) {
		t.Fatalf("hand not restored: %v (%v)", gotTiles, ok)
	}
	for i := range tiles {
		if gotTiles[i] != tiles[i] {
			t.Fatalf("tile %d mismatch: %s != %s", i, gotTiles[i], tiles[i])
		}
	}

	origTrain, _ := tbl.Train("alice")
	gotTrain, ok := restored.Train("alice")
	if !ok || gotTrain.Len() != origTrain.Len() || gotTrain.Tail() != origTrain.Tail() {
		t.Fatal("train not restored")
	}
}
