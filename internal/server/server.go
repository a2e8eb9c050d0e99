package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"gametools/dice"
	"gametools/dominoes"
	"gametools/internal/table"
	"gametools/spinner"
)

// Server is the HTTP server.
type Server struct {
	mux     *http.ServeMux
	presets *table.Registry
	manager *table.Manager
}

// New creates a server with all routes.
func New(presets *table.Registry, manager *table.Manager) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		presets: presets,
		manager: manager,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Table API
	s.mux.HandleFunc("GET /api/presets", s.handleListPresets)
	s.mux.HandleFunc("GET /api/tables", s.handleListTables)
	s.mux.HandleFunc("POST /api/tables", s.handleCreateTable)
	s.mux.HandleFunc("GET /api/tables/{code}", s.handleGetTable)
	s.mux.HandleFunc("POST /api/tables/{code}/deal", s.handleDeal)
	s.mux.HandleFunc("POST /api/tables/{code}/solve", s.handleSolve)
	s.mux.HandleFunc("GET /api/tables/{code}/ws", s.handleWebSocket)

	// Stateless apparatus endpoints
	s.mux.HandleFunc("POST /api/roll", s.handleRoll)
	s.mux.HandleFunc("POST /api/spin", s.handleSpin)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// tileJSON is a domino tile in API responses.
type tileJSON struct {
	Left  int `json:"left"`
	Right int `json:"right"`
	ID    int `json:"id"`
}

func tilesJSON(tiles []dominoes.Domino) []tileJSON {
	out := make([]tileJSON, len(tiles))
	for i, d := range tiles {
		out[i] = tileJSON{Left: d.Left(), Right: d.Right(), ID: d.ID()}
	}
	return out
}

// trainJSON is a solved train in API responses. Tiles are listed in
// play order, already oriented.
type trainJSON struct {
	Head  int        `json:"head"`
	Tail  int        `json:"tail"`
	Tiles []tileJSON `json:"tiles"`
}

func toTrainJSON(t *dominoes.Train) trainJSON {
	return trainJSON{Head: t.Head(), Tail: t.Tail(), Tiles: tilesJSON(t.Tiles())}
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.presets.List())
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.List())
}

type createTableRequest struct {
	Preset    string `json:"preset"`
	WatcherID string `json:"watcherId"`
}

type createTableResponse struct {
	Code string `json:"code"`
}

func (s *Server) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var req createTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	req.Preset = strings.TrimSpace(req.Preset)
	req.WatcherID = strings.TrimSpace(req.WatcherID)
	if req.Preset == "" || req.WatcherID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "preset and watcherId required"})
		return
	}

	tbl, err := s.manager.Create(req.Preset)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := tbl.AddWatcher(req.WatcherID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, createTableResponse{Code: tbl.Code})
}

func (s *Server) handleGetTable(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	tbl, ok := s.manager.Get(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}
	writeJSON(w, http.StatusOK, tbl.Info())
}

type dealRequest struct {
	Player string `json:"player"`
}

type dealResponse struct {
	DealID string     `json:"dealId"`
	Tiles  []tileJSON `json:"tiles"`
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	tbl, ok := s.manager.Get(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}
	var req dealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Player) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "player required"})
		return
	}

	dealID, err := tbl.Deal(req.Player)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.saveAndBroadcast(tbl)

	tiles, _ := tbl.Hand(req.Player)
	writeJSON(w, http.StatusOK, dealResponse{DealID: dealID, Tiles: tilesJSON(tiles)})
}

type solveRequest struct {
	Player string `json:"player"`
	Anchor int    `json:"anchor"`
}

type solveResponse struct {
	Found bool       `json:"found"`
	Train *trainJSON `json:"train,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	tbl, ok := s.manager.Get(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Player) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "player required"})
		return
	}
	if req.Anchor < 0 || req.Anchor > dominoes.MaxPips {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "anchor out of range"})
		return
	}

	train, found, err := tbl.Solve(req.Player, req.Anchor)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.saveAndBroadcast(tbl)

	resp := solveResponse{Found: found}
	if found {
		tj := toTrainJSON(train)
		resp.Train = &tj
	}
	writeJSON(w, http.StatusOK, resp)
}

type rollRequest struct {
	Sides   int  `json:"sides"`
	Count   int  `json:"count"`
	Explode bool `json:"explode"`
}

type rollResponse struct {
	Rolls []int `json:"rolls"`
	Sum   int   `json:"sum"`
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	var req rollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Sides < 1 || req.Sides > 255 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "sides must be 1-255"})
		return
	}
	if req.Count < 1 || req.Count > 100 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "count must be 1-100"})
		return
	}

	d := dice.NewDie(req.Sides)
	pool := dice.NewDicePool()
	for i := 0; i < req.Count; i++ {
		if req.Explode {
			pool.AddRoll(d.RollExploding())
		} else {
			pool.AddRoll(d.Roll())
		}
	}
	writeJSON(w, http.StatusOK, rollResponse{Rolls: pool.Results(), Sum: pool.Sum()})
}

type spinRequest struct {
	Wedges []spinner.WeightedValue[string] `json:"wedges"`
}

type spinResponse struct {
	Value string `json:"value"`
}

func (s *Server) handleSpin(w http.ResponseWriter, r *http.Request) {
	var req spinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.Wedges) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "at least one wedge required"})
		return
	}

	sp := spinner.New(spinner.WedgesFromWeights(req.Wedges))
	value, ok := sp.Spin()
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "spinner cannot land on a value"})
		return
	}
	writeJSON(w, http.StatusOK, spinResponse{Value: value})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
