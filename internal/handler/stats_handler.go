package handler

import (
	"net/http"
)

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.TeamAgeStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := TeamStatsResponse{
		Teams: make([]TeamAgeStatResponse, len(stats)),
	}
	for i, stat := range stats {
		response.Teams[i] = TeamAgeStatResponse{
			TeamName: stat.TeamName,
			Count:    stat.Count,
			Sum:      stat.Sum,
			Avg:      stat.Avg,
			Max:      stat.Max,
			Min:      stat.Min,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetAgeSummary(w http.ResponseWriter, r *http.Request) {
	cond, err := parseCondition(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	summary, err := h.statsService.AgeSummary(r.Context(), cond)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AgeSummaryResponse{
		Count: summary.Count,
		Sum:   summary.Sum,
		Avg:   summary.Avg,
		Max:   summary.Max,
		Min:   summary.Min,
	})
}
