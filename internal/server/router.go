// Package server exposes the game API over HTTP for offline demos. It
// serves the same contract the real game server does, backed by the
// in-memory fake world.
package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eragame/erachange/internal/api"
)

// NewRouter builds the demo server's route table over the given world.
func NewRouter(world *api.Fake) *mux.Router {
	h := &handlers{world: world}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK\n"))
	}).Methods("GET")

	r.HandleFunc("/auth/login", h.login).Methods("POST")
	r.HandleFunc("/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/players/{id}/resources", h.playerResources).Methods("GET")
	r.HandleFunc("/foreign_countries", h.foreignCountries).Methods("GET")
	r.HandleFunc("/market_prices", h.marketPrices).Methods("GET")
	r.HandleFunc("/caravan/calculate", h.calculateCaravan).Methods("POST")
	r.HandleFunc("/players/{id}/exchange", h.exchange).Methods("POST")
	r.HandleFunc("/players/{id}/market_trade", h.marketTrade).Methods("POST")
	return r
}
