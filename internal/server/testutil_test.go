package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"

	"gametools/internal/storage"
	"gametools/internal/table"
)

// --- Test environment ---

type testEnv struct {
	ts  *httptest.Server
	mgr *table.Manager
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	reg := table.NewRegistry()
	for _, p := range table.DefaultPresets() {
		reg.Register(p)
	}
	mgr := table.NewManager(reg, store)

	srv := New(reg, mgr)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, mgr: mgr}
}

// --- REST API helpers ---

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func createTableViaAPI(t *testing.T, ts *httptest.Server, preset, watcherID string) string {
	t.Helper()
	body := fmt.Sprintf(`{"preset":%q,"watcherId":%q}`, preset, watcherID)
	resp := postJSON(t, ts.URL+"/api/tables", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	result := decodeBody[createTableResponse](t, resp)
	return result.Code
}

// --- WebSocket helpers ---

func wsURL(ts *httptest.Server, code string) string {
	return strings.Replace(ts.URL, "http://", "ws://", 1) + "/api/tables/" + code + "/ws"
}

// wsConnect dials a WebSocket, sends a watch message, and returns the
// connection. The caller is responsible for closing it.
func wsConnect(t *testing.T, ts *httptest.Server, code, watcherID string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, wsURL(ts, code), nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	wsSend(ctx, t, conn, "watch", watchPayload{WatcherID: watcherID})
	return conn
}

// wsSend marshals and sends a typed WebSocket message.
func wsSend(ctx context.Context, t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	p, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	msg, err := json.Marshal(WSMessage{Type: msgType, Payload: p})
	if err != nil {
		t.Fatalf("marshal ws message: %v", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
		t.Fatalf("ws write: %v", err)
	}
}

// wsRead reads and unmarshals a single WebSocket message.
func wsRead(ctx context.Context, t *testing.T, conn *websocket.Conn) WSMessage {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("ws read: %v", err)
	}
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal ws message: %v", err)
	}
	return msg
}

// readTable reads a WebSocket message and expects it to be a "table"
// broadcast.
func readTable(ctx context.Context, t *testing.T, conn *websocket.Conn) tablePayload {
	t.Helper()
	msg := wsRead(ctx, t, conn)
	if msg.Type != "table" {
		t.Fatalf("expected table message, got %q: %s", msg.Type, string(msg.Payload))
	}
	var tp tablePayload
	if err := json.Unmarshal(msg.Payload, &tp); err != nil {
		t.Fatalf("unmarshal table payload: %v", err)
	}
	return tp
}
