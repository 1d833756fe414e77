/*
Package api
File: handlers.go
Description:
    HTTP handlers for the REST API. Each mutating handler resolves the
    caller's session from its token, takes the session lock, invokes one
    engine operation, and returns the uniform {success, message, newState}
    envelope. The newState payload always carries the derived presentation
    views (available destinations, current market prices); those are
    computed fresh per request and never stored on the Player State.
*/

package api

import (
	"encoding/json"
	"net/http"

	"github.com/starborn/traders-server/internal/auth"
	"github.com/starborn/traders-server/internal/game"
)

// Request DTOs. These structs define exactly what we expect the client to
// send us.

type CreateSessionRequest struct {
	CharacterName string `json:"character_name"`
}

type TravelRequest struct {
	Destination string `json:"destination"`
}

type TradeRequest struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

type MissionRequest struct {
	MissionID string `json:"mission_id"`
}

type CraftRequest struct {
	Recipe string `json:"recipe"`
}

type BuyShipRequest struct {
	ShipName string `json:"ship_name"`
}

type BuildRequest struct {
	StructureID string `json:"structure_id"`
}

type ResolveEncounterRequest struct {
	Choice string `json:"choice"`
}

// actionResponse is the uniform envelope for every engine-backed endpoint.
type actionResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	NewState *stateView  `json:"newState"`
	Report   interface{} `json:"report,omitempty"` // Richer per-op payloads (crafting)
}

// stateView is the Player State plus the per-request derived presentation
// fields.
type stateView struct {
	*game.Player
	AvailableDestinations []string       `json:"available_destinations"`
	MarketPrices          map[string]int `json:"market_prices"`
}

// Server wires the engine, the session registry, token signing and the
// real-time hub together.
type Server struct {
	Engine *game.Engine
	Store  *SessionStore
	Tokens *auth.Config
	Hub    *Hub
}

// NewServer assembles the API server.
func NewServer(engine *game.Engine, store *SessionStore, tokens *auth.Config, hub *Hub) *Server {
	return &Server{Engine: engine, Store: store, Tokens: tokens, Hub: hub}
}

// view builds the presentation state for a player. Caller holds the session
// lock.
func (s *Server) view(p *game.Player) *stateView {
	cat := s.Engine.Catalog()

	destinations := []string{}
	if loc, ok := cat.LocationByName(p.Location); ok {
		destinations = append(destinations, loc.Connections...)
	}

	prices := map[string]int{}
	if market := cat.MarketView(p.Location); len(market) > 0 {
		prices = s.Engine.DynamicPrices(market, p.Location)
	}

	return &stateView{
		Player:                p,
		AvailableDestinations: destinations,
		MarketPrices:          prices,
	}
}

// HandleCreateSession starts a new game from a character template and
// returns a signed session token. Not behind the auth middleware.
func (s *Server) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	player := game.NewPlayer(s.Engine.Catalog(), req.CharacterName)
	sess := s.Store.Create(player)

	token, err := s.Tokens.Issue(sess.ID, player.Name)
	if err != nil {
		http.Error(w, "Failed to issue session token", http.StatusInternalServerError)
		return
	}

	sess.Lock()
	defer sess.Unlock()
	writeJSON(w, map[string]interface{}{
		"token":    token,
		"session":  sess.ID,
		"newState": s.view(player),
	})
}

// session resolves the caller's session from the request context.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	sess := s.Store.Get(auth.SessionID(r.Context()))
	if sess == nil {
		http.Error(w, "Unknown session", http.StatusUnauthorized)
		return nil
	}
	return sess
}

// HandleGetState returns the caller's current state with derived views.
func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	writeJSON(w, s.view(sess.Player))
}

// HandleTravel moves the player. A successful jump immediately runs the
// encounter check; any triggered encounter rides back on the state's
// pending_encounter field.
func (s *Server) HandleTravel(w http.ResponseWriter, r *http.Request) {
	var req TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Destination == "" {
		http.Error(w, "Missing 'destination'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.Travel(sess.Player, req.Destination)
	if ok {
		if enc := s.Engine.CheckEncounter(sess.Player); enc != nil {
			s.Hub.Publish(Event{Type: "encounter", Session: sess.ID, Payload: enc})
		}
		s.Hub.Publish(Event{Type: "player_event", Session: sess.ID, Payload: msg})
	}
	s.respond(w, sess, ok, msg, nil)
}

// HandleBuy purchases goods at the local market.
func (s *Server) HandleBuy(w http.ResponseWriter, r *http.Request) {
	s.handleTrade(w, r, s.Engine.Buy)
}

// HandleSell sells goods at the local market.
func (s *Server) HandleSell(w http.ResponseWriter, r *http.Request) {
	s.handleTrade(w, r, s.Engine.Sell)
}

func (s *Server) handleTrade(w http.ResponseWriter, r *http.Request, op func(*game.Player, string, int) (bool, string)) {
	var req TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemName == "" {
		http.Error(w, "Missing 'item_name' or 'quantity'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := op(sess.Player, req.ItemName, req.Quantity)
	if ok {
		s.Hub.Publish(Event{Type: "player_event", Session: sess.ID, Payload: msg})
	}
	s.respond(w, sess, ok, msg, nil)
}

// HandleMissions rolls a fresh set of offers from the mission board.
func (s *Server) HandleMissions(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	offers := s.Engine.GenerateMissions(sess.Player)
	writeJSON(w, map[string]interface{}{
		"missions": offers,
		"newState": s.view(sess.Player),
	})
}

// HandleAcceptMission accepts one of the current offers by ID.
func (s *Server) HandleAcceptMission(w http.ResponseWriter, r *http.Request) {
	var req MissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MissionID == "" {
		http.Error(w, "Missing 'mission_id'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.AcceptMission(sess.Player, req.MissionID)
	s.respond(w, sess, ok, msg, nil)
}

// HandleAbandonMission drops the active mission, forfeiting quest goods.
func (s *Server) HandleAbandonMission(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.AbandonMission(sess.Player)
	s.respond(w, sess, ok, msg, nil)
}

// HandleRecipes returns the crafting recipe catalog.
func (s *Server) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Catalog().Recipes)
}

// HandleCraft attempts a recipe and returns the structured crafting report
// alongside the usual envelope.
func (s *Server) HandleCraft(w http.ResponseWriter, r *http.Request) {
	var req CraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Recipe == "" {
		http.Error(w, "Missing 'recipe'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	report := s.Engine.AttemptCraft(sess.Player, req.Recipe)
	if report.Success {
		s.Hub.Publish(Event{Type: "player_event", Session: sess.ID, Payload: report.Message})
	}
	s.respond(w, sess, report.Success, report.Message, report)
}

// HandleBuyShip swaps hulls at a shipyard.
func (s *Server) HandleBuyShip(w http.ResponseWriter, r *http.Request) {
	var req BuyShipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ShipName == "" {
		http.Error(w, "Missing 'ship_name'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.BuyShip(sess.Player, req.ShipName)
	s.respond(w, sess, ok, msg, nil)
}

// HandleEstablishHub founds an empire hub at the current location.
func (s *Server) HandleEstablishHub(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.EstablishHub(sess.Player)
	s.respond(w, sess, ok, msg, nil)
}

// HandleDeposit moves cargo into the local hub's planetary assets.
func (s *Server) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemName == "" {
		http.Error(w, "Missing 'item_name' or 'quantity'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.DepositResources(sess.Player, req.ItemName, req.Quantity)
	s.respond(w, sess, ok, msg, nil)
}

// HandleBuild queues a structure at the local hub.
func (s *Server) HandleBuild(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StructureID == "" {
		http.Error(w, "Missing 'structure_id'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.InitiateConstruction(sess.Player, req.StructureID)
	s.respond(w, sess, ok, msg, nil)
}

// HandleGetHub returns the hub at the player's current location.
func (s *Server) HandleGetHub(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	hub, ok := sess.Player.Hubs[sess.Player.Location]
	if !ok {
		http.Error(w, "No hub at this location", http.StatusNotFound)
		return
	}
	writeJSON(w, hub)
}

// HandleResolveEncounter applies the player's choice to a pending encounter.
func (s *Server) HandleResolveEncounter(w http.ResponseWriter, r *http.Request) {
	var req ResolveEncounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Choice == "" {
		http.Error(w, "Missing 'choice'", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	ok, msg := s.Engine.ResolveEncounter(sess.Player, req.Choice)
	if enc := sess.Player.PendingEncounter; enc != nil {
		// An ambush re-armed the encounter; surface it to listeners.
		s.Hub.Publish(Event{Type: "encounter", Session: sess.ID, Payload: enc})
	}
	s.respond(w, sess, ok, msg, nil)
}

// HandleEndTurn advances the caller's game clock one turn.
func (s *Server) HandleEndTurn(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	msg := s.Engine.EndTurn(sess.Player)
	s.Hub.Publish(Event{Type: "turn_pulse", Session: sess.ID, Payload: sess.Player.GameTime})
	s.respond(w, sess, true, msg, nil)
}

// respond writes the uniform action envelope. Caller holds the session lock.
func (s *Server) respond(w http.ResponseWriter, sess *Session, ok bool, msg string, report interface{}) {
	writeJSON(w, actionResponse{
		Success:  ok,
		Message:  msg,
		NewState: s.view(sess.Player),
		Report:   report,
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
