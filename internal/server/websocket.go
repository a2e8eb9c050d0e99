package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"nhooyr.io/websocket"

	"gametools/internal/table"
)

// WSMessage is the JSON envelope for WebSocket messages.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type watchPayload struct {
	WatcherID string `json:"watcherId"`
}

type wsDealPayload struct {
	Player string `json:"player"`
}

type wsSolvePayload struct {
	Player string `json:"player"`
	Anchor int    `json:"anchor"`
}

// tablePayload is the full table view broadcast to watchers.
type tablePayload struct {
	Info   table.Info            `json:"info"`
	Hands  map[string][]tileJSON `json:"hands"`
	Trains map[string]trainJSON  `json:"trains"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	tbl, ok := s.manager.Get(code)
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow any origin for dev
	})
	if err != nil {
		log.Printf("websocket accept: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()

	// First message must be a watch
	_, data, err := conn.Read(ctx)
	if err != nil {
		return
	}
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "watch" {
		sendWSError(ctx, conn, "first message must be a watch")
		return
	}
	var watch watchPayload
	if err := json.Unmarshal(msg.Payload, &watch); err != nil || watch.WatcherID == "" {
		sendWSError(ctx, conn, "invalid watch payload")
		return
	}

	watcherID := watch.WatcherID
	send := make(chan []byte, 64)

	// Try to reconnect existing watcher, or add a new one
	if !tbl.ConnectWatcher(watcherID, send) {
		if err := tbl.AddWatcher(watcherID); err != nil {
			sendWSError(ctx, conn, err.Error())
			return
		}
		tbl.ConnectWatcher(watcherID, send)
	}

	// Notify all watchers about the roster change
	s.broadcastTable(tbl)

	// Writer goroutine: send messages from the channel to the websocket
	go func() {
		for msg := range send {
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}()

	// Reader loop: handle incoming messages
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			break
		}
		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sendWSMsg(send, "error", errorPayload{Message: "invalid message"})
			continue
		}
		s.handleMessage(tbl, send, msg)
	}

	// Watcher disconnected; keep them registered so they can reconnect
	log.Printf("watcher %s disconnected from table %s", watcherID, code)
}

func (s *Server) handleMessage(tbl *table.Table, send chan []byte, msg WSMessage) {
	switch msg.Type {
	case "deal":
		var dp wsDealPayload
		if err := json.Unmarshal(msg.Payload, &dp); err != nil || dp.Player == "" {
			sendWSMsg(send, "error", errorPayload{Message: "invalid deal payload"})
			return
		}
		if _, err := tbl.Deal(dp.Player); err != nil {
			sendWSMsg(send, "error", errorPayload{Message: err.Error()})
			return
		}
		s.saveAndBroadcast(tbl)

	case "solve":
		var sp wsSolvePayload
		if err := json.Unmarshal(msg.Payload, &sp); err != nil || sp.Player == "" {
			sendWSMsg(send, "error", errorPayload{Message: "invalid solve payload"})
			return
		}
		if _, _, err := tbl.Solve(sp.Player, sp.Anchor); err != nil {
			sendWSMsg(send, "error", errorPayload{Message: err.Error()})
			return
		}
		s.saveAndBroadcast(tbl)

	default:
		sendWSMsg(send, "error", errorPayload{Message: "unknown message type: " + msg.Type})
	}
}

// saveAndBroadcast persists the table state and pushes the new table
// view to all watchers.
func (s *Server) saveAndBroadcast(tbl *table.Table) {
	if err := s.manager.SaveState(tbl); err != nil {
		log.Printf("save table state: %v", err)
	}
	s.broadcastTable(tbl)
}

func (s *Server) broadcastTable(tbl *table.Table) {
	info := tbl.Info()

	tp := tablePayload{
		Info:   info,
		Hands:  make(map[string][]tileJSON, len(info.Players)),
		Trains: make(map[string]trainJSON),
	}
	for _, player := range info.Players {
		if tiles, ok := tbl.Hand(player); ok {
			tp.Hands[player] = tilesJSON(tiles)
		}
		if train, ok := tbl.Train(player); ok {
			tp.Trains[player] = toTrainJSON(train)
		}
	}

	p, _ := json.Marshal(tp)
	msg, _ := json.Marshal(WSMessage{Type: "table", Payload: p})
	tbl.Broadcast(msg)
}

func sendWSMsg(send chan []byte, msgType string, payload any) {
	p, _ := json.Marshal(payload)
	msg, _ := json.Marshal(WSMessage{Type: msgType, Payload: p})
	select {
	case send <- msg:
	default:
	}
}

func sendWSError(ctx context.Context, conn *websocket.Conn, message string) {
	p, _ := json.Marshal(errorPayload{Message: message})
	msg, _ := json.Marshal(WSMessage{Type: "error", Payload: p})
	conn.Write(ctx, websocket.MessageText, msg)
}
