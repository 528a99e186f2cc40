package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
)

// Engine выполняет запросы, собранные пакетом query, на DBExecutor.
type Engine struct {
	executor DBExecutor
	dialect  query.Dialect
	logger   *zap.SugaredLogger
}

func NewEngine(executor DBExecutor, dialect query.Dialect, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		executor: executor,
		dialect:  dialect,
		logger:   logger.Sugar(),
	}
}

// WithTx returns an engine bound to the transaction with the same dialect and logger.
func (e *Engine) WithTx(tx *sql.Tx) *Engine {
	return &Engine{executor: tx, dialect: e.dialect, logger: e.logger}
}

func (e *Engine) Dialect() query.Dialect {
	return e.dialect
}

// RowMapper строит результат из одной строки проекции
type RowMapper[T any] func(row query.Tuple) (T, error)

// Fetch returns every row; an empty result is an empty slice.
func Fetch[T any](ctx context.Context, e *Engine, q *query.Query, mapRow RowMapper[T]) ([]T, error) {
	statement, args, err := q.ToSQL(e.dialect)
	if err != nil {
		return nil, err
	}
	e.logger.Debugw("fetch", "sql", statement, "args", len(args))

	rows, err := e.executor.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, domain.NewStoreFailure("fetch", err)
	}
	defer rows.Close()

	width := q.Width()
	result := make([]T, 0)
	for rows.Next() {
		values := make([]any, width)
		dest := make([]any, width)
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.NewStoreFailure("scan", err)
		}
		item, err := mapRow(query.NewTuple(values...))
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreFailure("fetch", err)
	}

	return result, nil
}

// FetchOne reads at most two rows: none is found=false, two is AMBIGUOUS_RESULT.
// The query's own limit is replaced.
func FetchOne[T any](ctx context.Context, e *Engine, q *query.Query, mapRow RowMapper[T]) (T, bool, error) {
	var zero T
	items, err := Fetch(ctx, e, q.Clone().Limit(2), mapRow)
	if err != nil {
		return zero, false, err
	}
	switch len(items) {
	case 0:
		return zero, false, nil
	case 1:
		return items[0], true, nil
	default:
		return zero, false, domain.ErrAmbiguousResult
	}
}

// FetchFirst is FetchOne with limit 1; it is never ambiguous.
func FetchFirst[T any](ctx context.Context, e *Engine, q *query.Query, mapRow RowMapper[T]) (T, bool, error) {
	var zero T
	items, err := Fetch(ctx, e, q.Clone().Limit(1), mapRow)
	if err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	return items[0], true, nil
}

// FetchResults runs the count query first and skips the content query when it is zero.
func FetchResults[T any](ctx context.Context, e *Engine, q *query.Query, mapRow RowMapper[T]) (domain.QueryResults[T], error) {
	total, err := e.FetchCount(ctx, q)
	if err != nil {
		return domain.QueryResults[T]{}, err
	}

	results := domain.QueryResults[T]{
		Results: make([]T, 0),
		Total:   total,
		Offset:  q.OffsetValue(),
		Limit:   q.LimitValue(),
	}
	if total == 0 {
		return results, nil
	}

	results.Results, err = Fetch(ctx, e, q, mapRow)
	if err != nil {
		return domain.QueryResults[T]{}, err
	}
	return results, nil
}

func (e *Engine) FetchCount(ctx context.Context, q *query.Query) (int64, error) {
	statement, args, err := q.CountSQL(e.dialect)
	if err != nil {
		return 0, err
	}
	e.logger.Debugw("count", "sql", statement, "args", len(args))

	var total int64
	if err := e.executor.QueryRowContext(ctx, statement, args...).Scan(&total); err != nil {
		return 0, domain.NewStoreFailure("count", err)
	}
	return total, nil
}

// FetchTuples is Fetch without mapping.
func FetchTuples(ctx context.Context, e *Engine, q *query.Query) ([]query.Tuple, error) {
	return Fetch(ctx, e, q, func(row query.Tuple) (query.Tuple, error) {
		return row, nil
	})
}

// exec и queryRow принимают операторы с $n и переписывают их под диалект
func (e *Engine) exec(ctx context.Context, statement string, args ...any) (sql.Result, error) {
	return e.executor.ExecContext(ctx, e.dialect.Rebind(statement), args...)
}

func (e *Engine) queryRow(ctx context.Context, statement string, args ...any) *sql.Row {
	return e.executor.QueryRowContext(ctx, e.dialect.Rebind(statement), args...)
}
