package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/member-search/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode >= http.StatusInternalServerError {
			h.logger.Errorw("request failed", "request_id", RequestIDFrom(r.Context()), "code", domainErr.Code, "error", err)
		} else {
			h.logger.Warnw("request rejected", "request_id", RequestIDFrom(r.Context()), "code", domainErr.Code, "error", err)
		}
		writeJSON(w, statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.logger.Errorw("unexpected error", "request_id", RequestIDFrom(r.Context()), "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeTeamExists, domain.CodeBadRequest, domain.CodeInvalidQuery, domain.CodeInvalidPageRequest:
		return http.StatusBadRequest
	case domain.CodeAmbiguousResult:
		return http.StatusConflict
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(format string, args ...any) *domain.DomainError {
	err := domain.NewInvalidQueryError(format, args...)
	err.Code = domain.CodeBadRequest
	return err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
