package server

import (
	"net/http"

	"github.com/bagdasarian/member-search/internal/handler"
	"github.com/bagdasarian/member-search/internal/metrics"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /v1/members", h.SearchMembers)
	mux.HandleFunc("GET /v2/members", h.SearchMembersPageSimple)
	mux.HandleFunc("GET /v3/members", h.SearchMembersPageOptimized)
	mux.HandleFunc("GET /members/{id}", h.GetMember)
	mux.HandleFunc("POST /team/add", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
	mux.HandleFunc("GET /stats/teams", h.GetTeamStats)
	mux.HandleFunc("GET /stats/ages", h.GetAgeSummary)
	mux.Handle("GET /metrics", metrics.Handler())
}
