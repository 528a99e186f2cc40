package query

import "strings"

type sqlBuilder struct {
	dialect Dialect
	sb      strings.Builder
	args    []any
	err     error
}

func newSQLBuilder(d Dialect) *sqlBuilder {
	return &sqlBuilder{dialect: d, args: make([]any, 0)}
}

func (b *sqlBuilder) write(parts ...string) {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
}

func (b *sqlBuilder) addArg(value any) string {
	b.args = append(b.args, value)
	return b.dialect.placeholder(len(b.args))
}

func (b *sqlBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *sqlBuilder) renderList(exprs []Expression, sep string) {
	for i, e := range exprs {
		if i > 0 {
			b.write(sep)
		}
		e.render(b)
	}
}

func (b *sqlBuilder) result() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	return b.sb.String(), b.args, nil
}
