package query

// Expression is a node of the query tree. Only this package can implement it,
// so every query is built from a closed set of shapes.
type Expression interface {
	render(b *sqlBuilder)
}

type column struct {
	alias string
	name  string
}

func (c column) render(b *sqlBuilder) {
	b.write(c.alias, ".", c.name)
}

type param struct {
	value any
}

func (p param) render(b *sqlBuilder) {
	b.write(b.addArg(p.value))
}

type raw string

func (r raw) render(b *sqlBuilder) {
	b.write(string(r))
}

type binary struct {
	left  Expression
	op    string
	right Expression
}

func (e binary) render(b *sqlBuilder) {
	e.left.render(b)
	b.write(" ", e.op, " ")
	e.right.render(b)
}

type junction struct {
	op    string
	parts []Expression
}

func (j junction) render(b *sqlBuilder) {
	b.write("(")
	b.renderList(j.parts, " "+j.op+" ")
	b.write(")")
}

type negation struct {
	inner Expression
}

func (n negation) render(b *sqlBuilder) {
	b.write("NOT (")
	n.inner.render(b)
	b.write(")")
}

type postfix struct {
	inner Expression
	op    string
}

func (p postfix) render(b *sqlBuilder) {
	p.inner.render(b)
	b.write(" ", p.op)
}

type between struct {
	inner Expression
	lo    Expression
	hi    Expression
}

func (e between) render(b *sqlBuilder) {
	e.inner.render(b)
	b.write(" BETWEEN ")
	e.lo.render(b)
	b.write(" AND ")
	e.hi.render(b)
}

type inList struct {
	inner  Expression
	values []Expression
}

func (e inList) render(b *sqlBuilder) {
	e.inner.render(b)
	b.write(" IN ")
	if len(e.values) == 1 {
		if sub, ok := e.values[0].(*Query); ok {
			sub.render(b)
			return
		}
	}
	b.write("(")
	b.renderList(e.values, ", ")
	b.write(")")
}

type function struct {
	name string
	args []Expression
}

func (f function) render(b *sqlBuilder) {
	b.write(f.name, "(")
	b.renderList(f.args, ", ")
	b.write(")")
}

type cast struct {
	inner Expression
	to    string
}

func (c cast) render(b *sqlBuilder) {
	b.write("CAST(")
	c.inner.render(b)
	b.write(" AS ", c.to, ")")
}

type concat struct {
	parts []Expression
}

func (c concat) render(b *sqlBuilder) {
	b.write("(")
	b.renderList(c.parts, " || ")
	b.write(")")
}

type caseWhen struct {
	cond Predicate
	then Expression
}

type caseExpr struct {
	whens     []caseWhen
	otherwise Expression
}

func (c caseExpr) render(b *sqlBuilder) {
	b.write("CASE")
	for _, w := range c.whens {
		b.write(" WHEN ")
		w.cond.render(b)
		b.write(" THEN ")
		w.then.render(b)
	}
	if c.otherwise != nil {
		b.write(" ELSE ")
		c.otherwise.render(b)
	}
	b.write(" END")
}

// operand превращает литерал в связанный параметр, выражения оставляет как есть
func operand(v any) Expression {
	if e, ok := v.(Expression); ok {
		return e
	}
	return param{value: v}
}

func operands(values []any) []Expression {
	out := make([]Expression, 0, len(values))
	for _, v := range values {
		out = append(out, operand(v))
	}
	return out
}
