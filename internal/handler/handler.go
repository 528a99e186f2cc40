package handler

import (
	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/service"
)

type Handler struct {
	memberService service.MemberService
	teamService   service.TeamService
	statsService  service.StatsService
	logger        *zap.SugaredLogger
}

func NewHandler(
	memberService service.MemberService,
	teamService service.TeamService,
	statsService service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		memberService: memberService,
		teamService:   teamService,
		statsService:  statsService,
		logger:        logger.Sugar(),
	}
}
