package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/championships", handler.ListChampionships)
	mux.HandleFunc("GET /v1/championships/{championshipID}/seasons/{season}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/championships/{championshipID}/seasons/{season}/progress", handler.GetProgress)
	mux.HandleFunc("GET /v1/championships/{championshipID}/champions", handler.ListChampions)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/stats", handler.GetStats)
	mux.HandleFunc("GET /v1/pantheon", handler.GetPantheon)
	mux.HandleFunc("GET /v1/managers", handler.ListManagers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/managers/{managerID}", RequireAdmin(verifier, http.HandlerFunc(handler.RenameManager)))
	mux.Handle("POST /v1/import/matches", RequireAdmin(verifier, http.HandlerFunc(handler.ImportMatches)))
	mux.Handle("POST /v1/import/seasons", RequireAdmin(verifier, http.HandlerFunc(handler.ImportSeasons)))
	mux.Handle("GET /v1/export", RequireAuth(verifier, http.HandlerFunc(handler.ExportSnapshot)))
	mux.Handle("POST /v1/rebuild", RequireAuth(verifier, http.HandlerFunc(handler.Rebuild)))
}
