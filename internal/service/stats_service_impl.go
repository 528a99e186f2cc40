package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) TeamAgeStats(ctx context.Context) ([]domain.TeamAgeStat, error) {
	return s.statsRepo.TeamAgeStats(ctx)
}

func (s *statsService) AgeSummary(ctx context.Context, cond domain.MemberSearchCondition) (domain.AgeSummary, error) {
	return s.statsRepo.AgeSummary(ctx, cond)
}
