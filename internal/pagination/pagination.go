package pagination

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/metrics"
)

// CountFunc runs the total-count query. It is called at most once per page.
type CountFunc func(ctx context.Context) (int64, error)

type Strategy string

const (
	StrategySimple    Strategy = "simple"
	StrategyOptimized Strategy = "optimized"
)

func (s Strategy) Valid() bool {
	return s == StrategySimple || s == StrategyOptimized
}

// Simple всегда выполняет запрос количества
func Simple[T any](ctx context.Context, content []T, req domain.PageRequest, count CountFunc) (domain.Page[T], error) {
	metrics.ObserveCountQuery(string(StrategySimple), true)
	total, err := count(ctx)
	if err != nil {
		return domain.Page[T]{}, err
	}
	return domain.NewPage(content, req, atLeastSeen(total, req, len(content))), nil
}

// Optimized выводит total из содержимого страницы, когда это однозначно:
// первая неполная страница или непустая неполная страница дальше по списку.
func Optimized[T any](ctx context.Context, content []T, req domain.PageRequest, count CountFunc) (domain.Page[T], error) {
	if total, ok := inferTotal(req, len(content)); ok {
		metrics.ObserveCountQuery(string(StrategyOptimized), false)
		return domain.NewPage(content, req, total), nil
	}

	metrics.ObserveCountQuery(string(StrategyOptimized), true)
	total, err := count(ctx)
	if err != nil {
		return domain.Page[T]{}, err
	}
	return domain.NewPage(content, req, atLeastSeen(total, req, len(content))), nil
}

// Resolve dispatches on the strategy; an unknown strategy falls back to Simple.
func Resolve[T any](ctx context.Context, strategy Strategy, content []T, req domain.PageRequest, count CountFunc) (domain.Page[T], error) {
	if strategy == StrategyOptimized {
		return Optimized(ctx, content, req, count)
	}
	return Simple(ctx, content, req, count)
}

func inferTotal(req domain.PageRequest, n int) (int64, bool) {
	if n >= req.Size {
		return 0, false
	}
	if req.Offset == 0 {
		return int64(n), true
	}
	if n > 0 {
		return int64(req.Offset + n), true
	}
	// пустая страница за пределами: число строк неизвестно
	return 0, false
}

// atLeastSeen keeps the total consistent with rows that were actually returned
// when the store changed between the content and count queries.
func atLeastSeen(total int64, req domain.PageRequest, n int) int64 {
	if n > 0 && total < int64(req.Offset+n) {
		return int64(req.Offset + n)
	}
	return total
}
