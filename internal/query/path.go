package query

import "github.com/bagdasarian/member-search/internal/domain"

func compare(left Expression, op string, v any) Predicate {
	return newPredicate(binary{left: left, op: op, right: operand(v)})
}

func in(left Expression, values []any) Predicate {
	if len(values) == 0 {
		return newPredicate(raw("1 = 0"))
	}
	return newPredicate(inList{inner: left, values: operands(values)})
}

// NumberExpr is a numeric column, aggregate or computed value.
type NumberExpr struct {
	expr Expression
}

func (n NumberExpr) render(b *sqlBuilder) { n.expr.render(b) }

func (n NumberExpr) Eq(v any) Predicate  { return compare(n, "=", v) }
func (n NumberExpr) Ne(v any) Predicate  { return compare(n, "<>", v) }
func (n NumberExpr) Gt(v any) Predicate  { return compare(n, ">", v) }
func (n NumberExpr) Goe(v any) Predicate { return compare(n, ">=", v) }
func (n NumberExpr) Lt(v any) Predicate  { return compare(n, "<", v) }
func (n NumberExpr) Loe(v any) Predicate { return compare(n, "<=", v) }

func (n NumberExpr) Between(lo, hi any) Predicate {
	return newPredicate(between{inner: n, lo: operand(lo), hi: operand(hi)})
}

// In accepts literal values or a single *Query.
func (n NumberExpr) In(values ...any) Predicate { return in(n, values) }

func (n NumberExpr) IsNull() Predicate    { return newPredicate(postfix{inner: n, op: "IS NULL"}) }
func (n NumberExpr) IsNotNull() Predicate { return newPredicate(postfix{inner: n, op: "IS NOT NULL"}) }

func (n NumberExpr) Count() NumberExpr { return aggregate("COUNT", n) }
func (n NumberExpr) Sum() NumberExpr   { return aggregate("SUM", n) }
func (n NumberExpr) Avg() NumberExpr   { return aggregate("AVG", n) }
func (n NumberExpr) Max() NumberExpr   { return aggregate("MAX", n) }
func (n NumberExpr) Min() NumberExpr   { return aggregate("MIN", n) }

func (n NumberExpr) StringValue() StringExpr {
	return StringExpr{expr: cast{inner: n, to: "TEXT"}}
}

func (n NumberExpr) Asc() OrderSpec  { return OrderSpec{expr: n} }
func (n NumberExpr) Desc() OrderSpec { return OrderSpec{expr: n, desc: true} }

func aggregate(name string, e Expression) NumberExpr {
	return NumberExpr{expr: function{name: name, args: []Expression{e}}}
}

// CountAll is COUNT(*).
func CountAll() NumberExpr {
	return NumberExpr{expr: function{name: "COUNT", args: []Expression{raw("*")}}}
}

type StringExpr struct {
	expr Expression
}

func (s StringExpr) render(b *sqlBuilder) { s.expr.render(b) }

func (s StringExpr) Eq(v any) Predicate   { return compare(s, "=", v) }
func (s StringExpr) Ne(v any) Predicate   { return compare(s, "<>", v) }
func (s StringExpr) Like(v any) Predicate { return compare(s, "LIKE", v) }

func (s StringExpr) In(values ...any) Predicate { return in(s, values) }

func (s StringExpr) IsNull() Predicate    { return newPredicate(postfix{inner: s, op: "IS NULL"}) }
func (s StringExpr) IsNotNull() Predicate { return newPredicate(postfix{inner: s, op: "IS NOT NULL"}) }

func (s StringExpr) Concat(v any) StringExpr {
	parts := []Expression{s.expr}
	if c, ok := s.expr.(concat); ok {
		parts = append([]Expression{}, c.parts...)
	}
	return StringExpr{expr: concat{parts: append(parts, operand(v))}}
}

func (s StringExpr) Count() NumberExpr { return aggregate("COUNT", s) }
func (s StringExpr) Max() StringExpr {
	return StringExpr{expr: function{name: "MAX", args: []Expression{s}}}
}
func (s StringExpr) Min() StringExpr {
	return StringExpr{expr: function{name: "MIN", args: []Expression{s}}}
}

func (s StringExpr) Asc() OrderSpec  { return OrderSpec{expr: s} }
func (s StringExpr) Desc() OrderSpec { return OrderSpec{expr: s, desc: true} }

// Expr is an untyped value: a constant or a CASE expression.
type Expr struct {
	expr Expression
}

func (e Expr) render(b *sqlBuilder) { e.expr.render(b) }

func (e Expr) Asc() OrderSpec  { return OrderSpec{expr: e} }
func (e Expr) Desc() OrderSpec { return OrderSpec{expr: e, desc: true} }

// Constant selects a bound value as a column.
func Constant(v any) Expr {
	return Expr{expr: param{value: v}}
}

type CaseBuilder struct {
	whens []caseWhen
}

func Case() *CaseBuilder {
	return &CaseBuilder{}
}

func (c *CaseBuilder) When(cond Predicate, then any) *CaseBuilder {
	c.whens = append(c.whens, caseWhen{cond: cond, then: operand(then)})
	return c
}

func (c *CaseBuilder) Otherwise(v any) Expr {
	return Expr{expr: caseExpr{whens: c.whens, otherwise: operand(v)}}
}

type OrderSpec struct {
	expr  Expression
	desc  bool
	nulls domain.NullHandling
}

func (o OrderSpec) NullsLast() OrderSpec {
	o.nulls = domain.NullsLast
	return o
}

func (o OrderSpec) NullsFirst() OrderSpec {
	o.nulls = domain.NullsFirst
	return o
}

func (o OrderSpec) render(b *sqlBuilder) {
	o.expr.render(b)
	if o.desc {
		b.write(" DESC")
	} else {
		b.write(" ASC")
	}
	switch o.nulls {
	case domain.NullsFirst:
		b.write(" NULLS FIRST")
	case domain.NullsLast:
		b.write(" NULLS LAST")
	}
}
