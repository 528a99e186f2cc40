package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/member-search/internal/pagination"
)

// SearchMembers - GET /v1/members
func (h *Handler) SearchMembers(w http.ResponseWriter, r *http.Request) {
	cond, err := parseCondition(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	dtos, err := h.memberService.Search(r.Context(), cond)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{Members: dtosToHTTP(dtos)})
}

// SearchMembersPageSimple - GET /v2/members, total всегда считается отдельным запросом
func (h *Handler) SearchMembersPageSimple(w http.ResponseWriter, r *http.Request) {
	h.searchPage(w, r, pagination.StrategySimple)
}

// SearchMembersPageOptimized - GET /v3/members, count пропускается, когда total выводится из страницы
func (h *Handler) SearchMembersPageOptimized(w http.ResponseWriter, r *http.Request) {
	h.searchPage(w, r, pagination.StrategyOptimized)
}

func (h *Handler) searchPage(w http.ResponseWriter, r *http.Request, strategy pagination.Strategy) {
	values := r.URL.Query()
	cond, err := parseCondition(values)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	params, err := parsePageParams(values)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.memberService.SearchPage(r.Context(), cond, params, strategy)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToHTTP(page))
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.handleError(w, r, badRequest("id must be a positive integer"))
		return
	}

	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}
