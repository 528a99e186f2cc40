package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, badRequest("invalid request body: %v", err))
		return
	}
	if req.TeamName == "" {
		h.handleError(w, r, badRequest("team_name is required"))
		return
	}

	team := httpTeamToDomain(req)
	createdTeam, err := h.teamService.CreateTeam(r.Context(), team)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTeamResponse{
		Team: domainTeamToHTTP(createdTeam),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		h.handleError(w, r, &domain.DomainError{
			Code:    domain.CodeBadRequest,
			Message: "team_name parameter is required",
		})
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
