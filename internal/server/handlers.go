package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/game"
)

type handlers struct {
	world *api.Fake
}

type loginRequest struct {
	Identifier string `json:"identificator"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Player  *game.Player `json:"player,omitempty"`
	Message string       `json:"message,omitempty"`
}

type submitResponse struct {
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type caravanRequest struct {
	CountryID int64              `json:"country_id"`
	Sells     []game.ResourceLot `json:"res_pl_sells"`
	Buys      []game.ResourceLot `json:"res_pl_buys"`
}

type caravanResponse struct {
	ToPlayer []game.Resource `json:"res_to_player"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	player, err := h.world.Login(r.Context(), req.Identifier)
	if err != nil {
		writeJSON(w, http.StatusOK, loginResponse{Success: false, Message: "unknown identifier"})
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Player: &player})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, submitResponse{Success: true})
}

func (h *handlers) playerResources(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	ledger, err := h.world.PlayerResources(r.Context(), id)
	if err != nil {
		http.Error(w, "player not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

func (h *handlers) foreignCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.world.ForeignCountries(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

func (h *handlers) marketPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.world.MarketPrices(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *handlers) calculateCaravan(w http.ResponseWriter, r *http.Request) {
	var req caravanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	deltas, err := h.world.CalculateCaravan(r.Context(), game.CountryID(req.CountryID), req.Sells, req.Buys)
	if err != nil {
		if errors.Is(err, api.ErrUnknownCountry) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, caravanResponse{ToPlayer: deltas})
}

func (h *handlers) exchange(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req api.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	if err := h.world.ExchangeResources(r.Context(), id, req); err != nil {
		writeJSON(w, http.StatusOK, submitResponse{Success: false, Error: err.Error()})
		return
	}
	txID := uuid.New().String()
	log.Printf("exchange %s: player %d -> %s (%d lots)", txID, id, req.WithWhom, len(req.Resources))
	writeJSON(w, http.StatusOK, submitResponse{Success: true, TransactionID: txID})
}

func (h *handlers) marketTrade(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req api.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	if err := h.world.MarketTrade(r.Context(), id, req); err != nil {
		writeJSON(w, http.StatusOK, submitResponse{Success: false, Error: err.Error()})
		return
	}
	txID := uuid.New().String()
	log.Printf("trade %s: player %d with country %d (%d sells, %d buys)",
		txID, id, req.CountryID, len(req.Sells), len(req.Buys))
	writeJSON(w, http.StatusOK, submitResponse{Success: true, TransactionID: txID})
}

func playerID(w http.ResponseWriter, r *http.Request) (game.PlayerID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		http.Error(w, "bad player id", http.StatusBadRequest)
		return 0, false
	}
	return game.PlayerID(id), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
