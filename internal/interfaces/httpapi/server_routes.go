package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler == nil {
		return
	}

	mux.Handle("GET /metrics", metricsHandler)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /matches", handler.ListMatches)
	mux.HandleFunc("GET /match_summary", handler.GetMatchSummary)
	mux.HandleFunc("GET /match_score", handler.GetMatchScore)
	mux.HandleFunc("GET /team_stats", handler.GetTeamStats)
	mux.HandleFunc("GET /player_stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /players_stats", handler.ListPlayersStats)
	mux.HandleFunc("GET /lineups", handler.GetLineups)
}

func registerChatRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /chat", handler.Chat)
	mux.HandleFunc("GET /chat/{sessionID}/history", handler.GetChatHistory)
	mux.HandleFunc("DELETE /chat/{sessionID}", handler.ClearChat)
}
