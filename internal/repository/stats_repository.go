package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type StatsRepository interface {
	TeamAgeStats(ctx context.Context) ([]domain.TeamAgeStat, error)
	AgeSummary(ctx context.Context, cond domain.MemberSearchCondition) (domain.AgeSummary, error)
}
