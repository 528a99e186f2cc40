package postgres

import (
	"context"
	"time"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/metrics"
	"github.com/bagdasarian/member-search/internal/query"
)

type statsRepository struct {
	engine *Engine
}

func NewStatsRepository(engine *Engine) *statsRepository {
	return &statsRepository{engine: engine}
}

// TeamAgeStats - агрегаты по возрасту в разрезе команд, участники без команды не учитываются
func (r *statsRepository) TeamAgeStats(ctx context.Context) (stats []domain.TeamAgeStat, err error) {
	defer func(start time.Time) { metrics.ObserveOp("team_age_stats", start, err) }(time.Now())

	m, t := query.Member, query.Team
	q := query.Select(t.Name, query.CountAll(), m.Age.Sum(), m.Age.Avg(), m.Age.Max(), m.Age.Min()).
		From(m).
		Join(m.Team(t)).
		GroupBy(t.Name).
		OrderBy(t.Name.Asc())

	return Fetch(ctx, r.engine, q, func(row query.Tuple) (domain.TeamAgeStat, error) {
		return domain.TeamAgeStat{
			TeamName: row.String(0),
			Count:    row.Int64(1),
			Sum:      row.Int64(2),
			Avg:      row.Float64(3),
			Max:      int(row.Int64(4)),
			Min:      int(row.Int64(5)),
		}, nil
	})
}

// AgeSummary считает агрегаты по тому же отфильтрованному набору, что и поиск
func (r *statsRepository) AgeSummary(ctx context.Context, cond domain.MemberSearchCondition) (summary domain.AgeSummary, err error) {
	defer func(start time.Time) { metrics.ObserveOp("age_summary", start, err) }(time.Now())

	m, t := query.Member, query.Team
	q := query.Select(query.CountAll(), m.Age.Sum(), m.Age.Avg(), m.Age.Max(), m.Age.Min()).
		From(m).
		LeftJoin(m.Team(t)).
		Where(query.MemberConditions(m, t, cond)...)

	summary, _, err = FetchOne(ctx, r.engine, q, func(row query.Tuple) (domain.AgeSummary, error) {
		return domain.AgeSummary{
			Count: row.Int64(0),
			Sum:   row.Int64(1),
			Avg:   row.Float64(2),
			Max:   int(row.Int64(3)),
			Min:   int(row.Int64(4)),
		}, nil
	})
	return summary, err
}
