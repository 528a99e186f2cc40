package query

import "github.com/bagdasarian/member-search/internal/domain"

// Predicate is either absent (the zero value) or a boolean expression.
// A query treats an absent filter as "match everything".
type Predicate struct {
	expr Expression
}

func newPredicate(e Expression) Predicate {
	return Predicate{expr: e}
}

func (p Predicate) IsPresent() bool {
	return p.expr != nil
}

func (p Predicate) render(b *sqlBuilder) {
	if p.expr == nil {
		b.fail(domain.NewInvalidQueryError("absent predicate used as an expression"))
		return
	}
	p.expr.render(b)
}

// And is strict: the result is absent if either side is absent.
func (p Predicate) And(other Predicate) Predicate {
	if !p.IsPresent() || !other.IsPresent() {
		return Predicate{}
	}
	return newPredicate(junction{op: "AND", parts: []Expression{p.expr, other.expr}})
}

// Or is strict in the same way as And.
func (p Predicate) Or(other Predicate) Predicate {
	if !p.IsPresent() || !other.IsPresent() {
		return Predicate{}
	}
	return newPredicate(junction{op: "OR", parts: []Expression{p.expr, other.expr}})
}

func (p Predicate) Not() Predicate {
	if !p.IsPresent() {
		return Predicate{}
	}
	return newPredicate(negation{inner: p.expr})
}

// AllOf conjoins the present predicates and skips absent ones.
func AllOf(preds ...Predicate) Predicate {
	return fold("AND", preds)
}

// AnyOf disjoins the present predicates and skips absent ones.
func AnyOf(preds ...Predicate) Predicate {
	return fold("OR", preds)
}

func fold(op string, preds []Predicate) Predicate {
	parts := make([]Expression, 0, len(preds))
	for _, p := range preds {
		if p.IsPresent() {
			parts = append(parts, p.expr)
		}
	}
	switch len(parts) {
	case 0:
		return Predicate{}
	case 1:
		return newPredicate(parts[0])
	default:
		return newPredicate(junction{op: op, parts: parts})
	}
}

// PredicateBuilder накапливает условие пошагово. Не для совместного использования.
type PredicateBuilder struct {
	value Predicate
}

func NewPredicateBuilder(initial ...Predicate) *PredicateBuilder {
	return &PredicateBuilder{value: AllOf(initial...)}
}

// And ignores absent predicates.
func (b *PredicateBuilder) And(p Predicate) *PredicateBuilder {
	if !p.IsPresent() {
		return b
	}
	if !b.value.IsPresent() {
		b.value = p
		return b
	}
	b.value = b.value.And(p)
	return b
}

func (b *PredicateBuilder) Or(p Predicate) *PredicateBuilder {
	if !p.IsPresent() {
		return b
	}
	if !b.value.IsPresent() {
		b.value = p
		return b
	}
	b.value = b.value.Or(p)
	return b
}

func (b *PredicateBuilder) HasValue() bool {
	return b.value.IsPresent()
}

func (b *PredicateBuilder) Build() Predicate {
	return b.value
}
