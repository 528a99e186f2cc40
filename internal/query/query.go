package query

import (
	"github.com/bagdasarian/member-search/internal/domain"
)

type joinKind int

const (
	innerJoin joinKind = iota
	leftJoin
)

type joinClause struct {
	kind   joinKind
	target Source
	rel    *Relation
	on     Predicate
	fetch  bool
}

// Query собирается из закрытого набора клауз и проверяется до рендеринга SQL.
// Значение принадлежит одному вызову.
type Query struct {
	selects  []Expression
	owner    Source
	from     []Source
	joins    []joinClause
	where    Predicate
	groupBy  []Expression
	having   Predicate
	orderBy  []OrderSpec
	offset   int
	limit    int
	limited  bool
	distinct bool
	err      error
}

func Select(exprs ...Expression) *Query {
	return &Query{selects: exprs}
}

// SelectFrom selects every column of the entity and uses it as the first source.
func SelectFrom(s Source) *Query {
	return &Query{owner: s, from: []Source{s}}
}

func (q *Query) fail(err error) {
	if q.err == nil {
		q.err = err
	}
}

// From adds sources; more than one source is a cross join.
func (q *Query) From(sources ...Source) *Query {
	q.from = append(q.from, sources...)
	return q
}

func (q *Query) Join(r Relation) *Query {
	q.joins = append(q.joins, joinClause{kind: innerJoin, target: r.target, rel: &r})
	return q
}

func (q *Query) LeftJoin(r Relation) *Query {
	q.joins = append(q.joins, joinClause{kind: leftJoin, target: r.target, rel: &r})
	return q
}

// JoinEntity is an inner join without a declared relation; conditions go to On or Where.
func (q *Query) JoinEntity(s Source) *Query {
	q.joins = append(q.joins, joinClause{kind: innerJoin, target: s})
	return q
}

// LeftJoinEntity is never valid: outer joins need a declared relation.
func (q *Query) LeftJoinEntity(s Source) *Query {
	q.joins = append(q.joins, joinClause{kind: leftJoin, target: s})
	return q
}

// On adds conditions to the last join.
func (q *Query) On(preds ...Predicate) *Query {
	if len(q.joins) == 0 {
		q.fail(domain.NewInvalidQueryError("on clause without a join"))
		return q
	}
	last := &q.joins[len(q.joins)-1]
	last.on = AllOf(append([]Predicate{last.on}, preds...)...)
	return q
}

// FetchJoin loads the target of the last join together with the owner entity.
func (q *Query) FetchJoin() *Query {
	if len(q.joins) == 0 {
		q.fail(domain.NewInvalidQueryError("fetch join without a join"))
		return q
	}
	q.joins[len(q.joins)-1].fetch = true
	return q
}

func (q *Query) Where(preds ...Predicate) *Query {
	q.where = AllOf(append([]Predicate{q.where}, preds...)...)
	return q
}

func (q *Query) GroupBy(exprs ...Expression) *Query {
	q.groupBy = append(q.groupBy, exprs...)
	return q
}

func (q *Query) Having(preds ...Predicate) *Query {
	q.having = AllOf(append([]Predicate{q.having}, preds...)...)
	return q
}

func (q *Query) OrderBy(specs ...OrderSpec) *Query {
	q.orderBy = append(q.orderBy, specs...)
	return q
}

func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	q.limited = true
	return q
}

func (q *Query) Distinct() *Query {
	q.distinct = true
	return q
}

// Clone copies the clauses so the copy can be narrowed independently.
func (q *Query) Clone() *Query {
	c := *q
	c.selects = append([]Expression(nil), q.selects...)
	c.from = append([]Source(nil), q.from...)
	c.joins = append([]joinClause(nil), q.joins...)
	c.groupBy = append([]Expression(nil), q.groupBy...)
	c.orderBy = append([]OrderSpec(nil), q.orderBy...)
	return &c
}

func (q *Query) HasOrder() bool { return len(q.orderBy) > 0 }

func (q *Query) OffsetValue() int { return q.offset }

func (q *Query) LimitValue() int {
	if !q.limited {
		return 0
	}
	return q.limit
}

// HasFetchJoin reports whether the select list carries fetch-joined columns.
func (q *Query) HasFetchJoin() bool {
	for _, j := range q.joins {
		if j.fetch {
			return true
		}
	}
	return false
}

func (q *Query) projection() []Expression {
	var cols []Expression
	if q.owner != nil && len(q.selects) == 0 {
		cols = append(cols, q.owner.columns()...)
	} else {
		cols = append(cols, q.selects...)
	}
	for _, j := range q.joins {
		if j.fetch {
			cols = append(cols, j.target.columns()...)
		}
	}
	return cols
}

// Width is the number of columns in a result row.
func (q *Query) Width() int {
	return len(q.projection())
}

func (q *Query) Validate() error {
	if q.err != nil {
		return q.err
	}
	if len(q.from) == 0 {
		return domain.NewInvalidQueryError("query has no source")
	}
	if len(q.projection()) == 0 {
		return domain.NewInvalidQueryError("query selects nothing")
	}

	scope := make(map[string]bool)
	for _, s := range q.from {
		if scope[s.Alias()] {
			return domain.NewInvalidQueryError("alias %q is used twice", s.Alias())
		}
		scope[s.Alias()] = true
	}

	for _, j := range q.joins {
		if j.rel == nil {
			if j.kind == leftJoin {
				return domain.NewUnsupportedJoinShapeError(j.target.Table())
			}
			if j.fetch {
				return domain.NewInvalidQueryError("fetch join on %s requires a declared relation", j.target.Table())
			}
		} else {
			if !scope[j.rel.owner.Alias()] {
				return domain.NewInvalidQueryError("relation owner %q is not in scope", j.rel.owner.Alias())
			}
			if j.fetch && (q.owner == nil || len(q.selects) > 0 || q.owner.Alias() != j.rel.owner.Alias()) {
				return domain.NewInvalidQueryError("fetch join requires selecting %q", j.rel.owner.Alias())
			}
		}
		if scope[j.target.Alias()] {
			return domain.NewInvalidQueryError("alias %q is used twice", j.target.Alias())
		}
		scope[j.target.Alias()] = true
	}

	if q.having.IsPresent() && len(q.groupBy) == 0 {
		return domain.NewInvalidQueryError("having without group by")
	}
	if q.offset < 0 {
		return domain.NewInvalidQueryError("offset must not be negative, got %d", q.offset)
	}
	if q.limited && q.limit < 0 {
		return domain.NewInvalidQueryError("limit must not be negative, got %d", q.limit)
	}
	return nil
}

// ToSQL validates the query and renders it with bound arguments.
func (q *Query) ToSQL(d Dialect) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}
	b := newSQLBuilder(d)
	q.renderSelect(b, true)
	return b.result()
}

// CountSQL renders SELECT COUNT(*) over the same sources and filter,
// without order, limit and offset.
func (q *Query) CountSQL(d Dialect) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}
	b := newSQLBuilder(d)
	if len(q.groupBy) > 0 || q.distinct {
		b.write("SELECT COUNT(*) FROM (")
		q.renderSelect(b, false)
		b.write(") cnt")
		return b.result()
	}
	b.write("SELECT COUNT(*)")
	q.renderFrom(b)
	q.renderWhere(b)
	return b.result()
}

// render allows a query to be used as a scalar or IN operand.
func (q *Query) render(b *sqlBuilder) {
	if err := q.Validate(); err != nil {
		b.fail(err)
		return
	}
	b.write("(")
	q.renderSelect(b, true)
	b.write(")")
}

func (q *Query) renderSelect(b *sqlBuilder, withPaging bool) {
	b.write("SELECT ")
	if q.distinct {
		b.write("DISTINCT ")
	}
	b.renderList(q.projection(), ", ")
	q.renderFrom(b)
	q.renderWhere(b)
	if len(q.groupBy) > 0 {
		b.write(" GROUP BY ")
		b.renderList(q.groupBy, ", ")
	}
	if q.having.IsPresent() {
		b.write(" HAVING ")
		q.having.render(b)
	}
	if !withPaging {
		return
	}
	if len(q.orderBy) > 0 {
		b.write(" ORDER BY ")
		for i, o := range q.orderBy {
			if i > 0 {
				b.write(", ")
			}
			o.render(b)
		}
	}
	switch {
	case q.limited:
		b.write(" LIMIT ", b.addArg(q.limit))
	case q.offset > 0 && b.dialect.offsetNeedsLimit:
		b.write(" LIMIT -1")
	}
	if q.offset > 0 {
		b.write(" OFFSET ", b.addArg(q.offset))
	}
}

func (q *Query) renderFrom(b *sqlBuilder) {
	b.write(" FROM ")
	for i, s := range q.from {
		if i > 0 {
			b.write(", ")
		}
		b.write(s.Table(), " ", s.Alias())
	}
	for _, j := range q.joins {
		cond := j.on
		if j.rel != nil {
			cond = AllOf(j.rel.cond, j.on)
		}
		switch {
		case j.kind == leftJoin:
			b.write(" LEFT OUTER JOIN ")
		case cond.IsPresent():
			b.write(" INNER JOIN ")
		default:
			b.write(" CROSS JOIN ")
		}
		b.write(j.target.Table(), " ", j.target.Alias())
		if cond.IsPresent() {
			b.write(" ON ")
			cond.render(b)
		}
	}
}

func (q *Query) renderWhere(b *sqlBuilder) {
	if q.where.IsPresent() {
		b.write(" WHERE ")
		q.where.render(b)
	}
}
