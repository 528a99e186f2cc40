package query

// Source is a table with an alias that can appear in FROM or JOIN.
type Source interface {
	Table() string
	Alias() string
	columns() []Expression
}

type entity struct {
	table string
	alias string
}

func (e entity) Table() string { return e.table }
func (e entity) Alias() string { return e.alias }

func (e entity) col(name string) column {
	return column{alias: e.alias, name: name}
}

type MemberEntity struct {
	entity
	ID       NumberExpr
	Username StringExpr
	Age      NumberExpr
	TeamID   NumberExpr
}

// NewMember создает путь к таблице members под заданным алиасом (для подзапросов)
func NewMember(alias string) *MemberEntity {
	e := entity{table: "members", alias: alias}
	return &MemberEntity{
		entity:   e,
		ID:       NumberExpr{expr: e.col("id")},
		Username: StringExpr{expr: e.col("username")},
		Age:      NumberExpr{expr: e.col("age")},
		TeamID:   NumberExpr{expr: e.col("team_id")},
	}
}

func (m *MemberEntity) columns() []Expression {
	return []Expression{m.ID, m.Username, m.Age, m.TeamID}
}

// Team is the declared member -> team relation (m.team_id = t.id).
func (m *MemberEntity) Team(t *TeamEntity) Relation {
	return Relation{owner: m, target: t, cond: m.TeamID.Eq(t.ID)}
}

type TeamEntity struct {
	entity
	ID   NumberExpr
	Name StringExpr
}

func NewTeam(alias string) *TeamEntity {
	e := entity{table: "teams", alias: alias}
	return &TeamEntity{
		entity: e,
		ID:     NumberExpr{expr: e.col("id")},
		Name:   StringExpr{expr: e.col("name")},
	}
}

func (t *TeamEntity) columns() []Expression {
	return []Expression{t.ID, t.Name}
}

// Relation is a foreign key declared on the owner entity.
type Relation struct {
	owner  Source
	target Source
	cond   Predicate
}

var (
	Member = NewMember("m")
	Team   = NewTeam("t")
)

// MemberColumns and TeamColumns are the widths of an entity row in a select list.
const (
	MemberColumns = 4
	TeamColumns   = 2
)
