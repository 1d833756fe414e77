/*
Package main
File: main.go
Description: Server entry point. Loads the universe catalog, wires the rule
engine, session store and real-time WebSocket hub together, and runs the
background market heartbeat.
*/

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/starborn/traders-server/internal/api"
	"github.com/starborn/traders-server/internal/auth"
	"github.com/starborn/traders-server/internal/game"
)

func main() {
	// Local overrides live in .env; absence is not an error.
	godotenv.Load()

	port := envOr("PORT", "8081")
	catalogDir := envOr("CATALOG_DIR", "catalog")
	secret := envOr("SESSION_SECRET", "starborn-dev-secret")
	ttl := 24 * time.Hour

	// 1. Load the static universe catalog from YAML
	catalog, err := game.LoadCatalog(catalogDir)
	if err != nil {
		log.Fatalf("CATALOG: %v", err)
	}
	log.Printf("CATALOG: %d locations, %d tradeable goods, %d recipes",
		len(catalog.Locations), len(catalog.TradeableNames()), len(catalog.Recipes))

	engine := game.NewEngine(catalog)
	store := api.NewSessionStore()
	tokens := auth.New(secret, ttl)

	// 2. Initialize and start the real-time WebSocket hub
	hub := api.NewHub()
	go hub.Run()

	server := api.NewServer(engine, store, tokens, hub)

	// 3. THE MARKET HEARTBEAT
	// Every 60 seconds, reroll market prices across the galaxy and push them
	// to all connected clients.
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		for range ticker.C {
			cat := engine.Catalog()
			pulse := map[string]map[string]int{}
			for name := range cat.Locations {
				market := cat.MarketView(name)
				if len(market) == 0 {
					continue
				}
				pulse[name] = engine.DynamicPrices(market, name)
			}
			if len(pulse) == 0 {
				continue
			}
			live := 0
			store.Each(func(*api.Session) { live++ })
			hub.Publish(api.Event{Type: "market_pulse", Payload: pulse})
			log.Printf("Market Pulse: Updated %d markets (%d live sessions)", len(pulse), live)
		}
	}()

	// 4. Hot-reload: SIGHUP re-reads the catalog without a restart.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for {
			<-sigChan
			log.Println("SIGNAL: Reloading universe catalog...")
			fresh, err := game.LoadCatalog(catalogDir)
			if err != nil {
				log.Printf("SIGNAL: Reload failed, keeping current catalog: %v", err)
				continue
			}
			engine.ReloadCatalog(fresh)
		}
	}()

	// 5. Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Session creation is the only unauthenticated API call.
	r.HandleFunc("/api/session", server.HandleCreateSession).Methods(http.MethodPost, http.MethodOptions)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(tokens.Middleware)

	// Information endpoints
	protected.HandleFunc("/state", server.HandleGetState).Methods(http.MethodGet)
	protected.HandleFunc("/recipes", server.HandleRecipes).Methods(http.MethodGet)
	protected.HandleFunc("/missions", server.HandleMissions).Methods(http.MethodGet)
	protected.HandleFunc("/hub", server.HandleGetHub).Methods(http.MethodGet)

	// Action endpoints
	protected.HandleFunc("/travel", server.HandleTravel).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/buy", server.HandleBuy).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/sell", server.HandleSell).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/missions/accept", server.HandleAcceptMission).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/missions/abandon", server.HandleAbandonMission).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/craft", server.HandleCraft).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/shipyard/buy", server.HandleBuyShip).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/hub/establish", server.HandleEstablishHub).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/hub/deposit", server.HandleDeposit).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/hub/build", server.HandleBuild).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/encounter/resolve", server.HandleResolveEncounter).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/turn/end", server.HandleEndTurn).Methods(http.MethodPost, http.MethodOptions)

	// Real-time WebSocket endpoint
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		api.ServeWs(hub, w, req)
	})

	// 6. Start the server
	addr := ":" + port
	log.Printf("STARBORN TRADERS: Server live on %s", addr)
	log.Printf("Real-time Hub: Online")

	if err := http.ListenAndServe(addr, corsMiddleware(r)); err != nil {
		log.Fatal(err)
	}
}

// corsMiddleware lets browser clients talk to the server across origins.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
