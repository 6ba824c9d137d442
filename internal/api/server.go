// Package api provides the HTTP surface for observing the realm and
// playing diplomacy actions. GET endpoints are public (read-only);
// POST endpoints require a bearer token.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/talgya/crowncourt/internal/diplomacy"
	"github.com/talgya/crowncourt/internal/engine"
	"github.com/talgya/crowncourt/internal/persistence"
	"github.com/talgya/crowncourt/internal/royals"
	"github.com/talgya/crowncourt/internal/worldmap"
)

// Server serves the diplomacy state over HTTP.
type Server struct {
	Core     *diplomacy.Core
	Eng      *engine.Engine
	Store    *persistence.Store
	Map      *worldmap.Map
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	// SeekerID identifies the player's reigning head for proposals.
	SeekerID string
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// Proposals mutate shared state; keep outsiders from hammering them.
	proposeLimiter := NewRateLimiter(30, time.Hour)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/kingdoms", s.handleKingdoms)
	mux.HandleFunc("/api/v1/kingdom/", s.handleKingdomDetail)
	mux.HandleFunc("/api/v1/relations", s.handleRelations)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/candidates", s.handleCandidates)
	mux.HandleFunc("/api/v1/map", s.handleMap)

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/propose", s.adminOnly(RateLimitMiddleware(proposeLimiter, s.handlePropose)))
	mux.HandleFunc("/api/v1/gift", s.adminOnly(s.handleGift))
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no CROWNCOURT_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Core.StatsSnapshot()
	writeJSON(w, map[string]any{
		"name":             "Crowncourt",
		"day":              stats.Day,
		"sim_date":         engine.SimDate(stats.Day),
		"speed":            s.Eng.Speed(),
		"running":          s.Eng.Running(),
		"active_kingdoms":  stats.ActiveKingdoms,
		"total_kingdoms":   stats.TotalKingdoms,
		"living_royals":    stats.LivingRoyals,
		"average_relation": stats.AverageRelation,
	})
}

func (s *Server) handleKingdoms(w http.ResponseWriter, r *http.Request) {
	type kingdomSummary struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Dynasty  string  `json:"dynasty"`
		Ruler    string  `json:"ruler"`
		Heirs    int     `json:"heirs"`
		Strength int     `json:"strength"`
		Wealth   int     `json:"wealth"`
		Relation float64 `json:"relation"`
		Terrain  string  `json:"terrain"`
		Active   bool    `json:"active"`
	}

	kingdoms := s.Core.Kingdoms()
	out := make([]kingdomSummary, 0, len(kingdoms))
	for _, k := range kingdoms {
		out = append(out, kingdomSummary{
			ID:       k.ID,
			Name:     k.Name,
			Dynasty:  k.Dynasty,
			Ruler:    k.Ruler.Name,
			Heirs:    len(k.Heirs),
			Strength: k.Strength,
			Wealth:   k.Wealth,
			Relation: s.Core.Relation(k.ID),
			Terrain:  worldmap.TerrainName(k.Terrain),
			Active:   k.Active(),
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleKingdomDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/kingdom/")
	k, err := s.Core.Kingdom(id)
	if err != nil {
		http.Error(w, "kingdom not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"kingdom":  k,
		"relation": s.Core.Relation(k.ID),
	})
}

func (s *Server) handleRelations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Core.Relations())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	// ?source=log reads the persisted event log instead of the in-memory ring.
	if r.URL.Query().Get("source") == "log" && s.Store != nil {
		records, err := s.Store.RecentEvents(limit)
		if err != nil {
			http.Error(w, "event log unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, records)
		return
	}
	writeJSON(w, s.Core.RecentEvents(limit))
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	gender := royals.GenderMale
	if g := r.URL.Query().Get("seeker_gender"); g == "female" {
		gender = royals.GenderFemale
	}
	bonus := 0.0
	if b := r.URL.Query().Get("bonus"); b != "" {
		if f, err := strconv.ParseFloat(b, 64); err == nil {
			bonus = f
		}
	}
	writeJSON(w, s.Core.GetCandidates(gender, bonus))
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	if s.Map == nil {
		http.Error(w, "no realm map", http.StatusNotFound)
		return
	}

	type hexEntry struct {
		Q       int   `json:"q"`
		R       int   `json:"r"`
		Terrain uint8 `json:"terrain"`
	}
	hexes := make([]hexEntry, 0, len(s.Map.Hexes))
	for _, h := range s.Map.Hexes {
		hexes = append(hexes, hexEntry{Q: h.Coord.Q, R: h.Coord.R, Terrain: uint8(h.Terrain)})
	}
	writeJSON(w, map[string]any{
		"radius": s.Map.Radius,
		"hexes":  hexes,
	})
}

func (s *Server) handlePropose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		CandidateID    string  `json:"candidate_id"`
		DiplomacyBonus float64 `json:"diplomacy_bonus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	result, err := s.Core.ProposeMarriage(req.CandidateID, s.SeekerID, req.DiplomacyBonus)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleGift(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		KingdomID string `json:"kingdom_id"`
		Gold      int    `json:"gold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := s.Core.SendGift(req.KingdomID, req.Gold); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{
		"kingdom_id": req.KingdomID,
		"relation":   s.Core.Relation(req.KingdomID),
	})
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var req struct {
			Speed float64 `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Speed < 0 || req.Speed > 1000 {
			http.Error(w, "speed must be 0-1000", http.StatusBadRequest)
			return
		}
		s.Eng.SetSpeed(req.Speed)
		slog.Info("speed changed", "speed", req.Speed)
	}

	writeJSON(w, map[string]float64{"speed": s.Eng.Speed()})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
