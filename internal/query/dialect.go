package query

import (
	"regexp"
	"strconv"
)

// Dialect describes the few places where the rendered SQL differs between stores.
type Dialect struct {
	name             string
	numbered         bool
	offsetNeedsLimit bool
}

var (
	Postgres = Dialect{name: "postgres", numbered: true}
	SQLite   = Dialect{name: "sqlite", offsetNeedsLimit: true}
)

var numberedPlaceholder = regexp.MustCompile(`\$\d+`)

func (d Dialect) Name() string {
	return d.name
}

func (d Dialect) placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Rebind rewrites a hand-written statement that uses $1..$n for the dialect.
// Placeholders must appear in ascending order, each exactly once.
func (d Dialect) Rebind(statement string) string {
	if d.numbered {
		return statement
	}
	return numberedPlaceholder.ReplaceAllString(statement, "?")
}
