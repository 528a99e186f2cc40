package query

import (
	"errors"
	"testing"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchCondition(username, teamName string, goe, loe *int) domain.MemberSearchCondition {
	return domain.MemberSearchCondition{Username: username, TeamName: teamName, AgeGoe: goe, AgeLoe: loe}
}

const memberCols = "m.id, m.username, m.age, m.team_id"

func TestQuery_ToSQL(t *testing.T) {
	m, tm := Member, Team

	tests := []struct {
		name     string
		query    *Query
		dialect  Dialect
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "поиск с проекцией и left join",
			query: Select(m.ID, m.Username, m.Age, tm.ID, tm.Name).
				From(m).
				LeftJoin(m.Team(tm)).
				Where(MemberConditions(m, tm, searchCondition("", "teamB", intPtr(35), intPtr(40)))...).
				OrderBy(m.ID.Asc()),
			dialect:  Postgres,
			wantSQL:  "SELECT m.id, m.username, m.age, t.id, t.name FROM members m LEFT OUTER JOIN teams t ON m.team_id = t.id WHERE (t.name = $1 AND m.age >= $2 AND m.age <= $3) ORDER BY m.id ASC",
			wantArgs: []any{"teamB", 35, 40},
		},
		{
			name: "без условий нет where",
			query: SelectFrom(m).
				LeftJoin(m.Team(tm)).
				Where(MemberConditions(m, tm, domain.MemberSearchCondition{})...),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m LEFT OUTER JOIN teams t ON m.team_id = t.id",
			wantArgs: []any{},
		},
		{
			name:     "limit и offset",
			query:    SelectFrom(m).OrderBy(m.ID.Asc()).Offset(3).Limit(3),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m ORDER BY m.id ASC LIMIT $1 OFFSET $2",
			wantArgs: []any{3, 3},
		},
		{
			name:     "offset без limit в postgres",
			query:    SelectFrom(m).Offset(3),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m OFFSET $1",
			wantArgs: []any{3},
		},
		{
			name:     "offset без limit в sqlite",
			query:    SelectFrom(m).Where(m.Username.Eq("member1")).Offset(3),
			dialect:  SQLite,
			wantSQL:  "SELECT " + memberCols + " FROM members m WHERE m.username = ? LIMIT -1 OFFSET ?",
			wantArgs: []any{"member1", 3},
		},
		{
			name:     "fetch join добавляет колонки команды",
			query:    SelectFrom(m).LeftJoin(m.Team(tm)).FetchJoin(),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + ", t.id, t.name FROM members m LEFT OUTER JOIN teams t ON m.team_id = t.id",
			wantArgs: []any{},
		},
		{
			name:     "left join с дополнительным on",
			query:    Select(m.ID, tm.Name).From(m).LeftJoin(m.Team(tm)).On(tm.Name.Eq("teamA")),
			dialect:  Postgres,
			wantSQL:  "SELECT m.id, t.name FROM members m LEFT OUTER JOIN teams t ON (m.team_id = t.id AND t.name = $1)",
			wantArgs: []any{"teamA"},
		},
		{
			name:     "theta join через несколько источников",
			query:    Select(m.ID).From(m, tm).Where(m.Username.Eq(tm.Name)),
			dialect:  Postgres,
			wantSQL:  "SELECT m.id FROM members m, teams t WHERE m.username = t.name",
			wantArgs: []any{},
		},
		{
			name:     "inner join без связи с on",
			query:    SelectFrom(m).JoinEntity(tm).On(m.Username.Eq(tm.Name)),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m INNER JOIN teams t ON m.username = t.name",
			wantArgs: []any{},
		},
		{
			name:     "inner join без связи и без on",
			query:    Select(m.ID, tm.ID).From(m).JoinEntity(tm),
			dialect:  Postgres,
			wantSQL:  "SELECT m.id, t.id FROM members m CROSS JOIN teams t",
			wantArgs: []any{},
		},
		{
			name: "группировка и having",
			query: Select(tm.Name, m.Age.Avg()).
				From(m).
				Join(m.Team(tm)).
				GroupBy(tm.Name).
				Having(m.Age.Avg().Gt(20)),
			dialect:  Postgres,
			wantSQL:  "SELECT t.name, AVG(m.age) FROM members m INNER JOIN teams t ON m.team_id = t.id GROUP BY t.name HAVING AVG(m.age) > $1",
			wantArgs: []any{20},
		},
		{
			name:     "агрегаты",
			query:    Select(CountAll(), m.Age.Sum(), m.Age.Avg(), m.Age.Max(), m.Age.Min()).From(m),
			dialect:  Postgres,
			wantSQL:  "SELECT COUNT(*), SUM(m.age), AVG(m.age), MAX(m.age), MIN(m.age) FROM members m",
			wantArgs: []any{},
		},
		{
			name:     "сортировка с nulls last",
			query:    SelectFrom(m).OrderBy(m.Age.Desc(), m.Username.Asc().NullsLast()),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m ORDER BY m.age DESC, m.username ASC NULLS LAST",
			wantArgs: []any{},
		},
		{
			name:     "скалярный подзапрос",
			query:    SelectFrom(m).Where(m.Age.Eq(Select(NewMember("ms").Age.Max()).From(NewMember("ms")))),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m WHERE m.age = (SELECT MAX(ms.age) FROM members ms)",
			wantArgs: []any{},
		},
		{
			name: "подзапрос в списке выборки нумерует параметры раньше where",
			query: Select(m.Username, Select(NewMember("ms").Age.Avg()).From(NewMember("ms")).Where(NewMember("ms").Age.Gt(10))).
				From(m).
				Where(m.Age.Goe(30)),
			dialect:  Postgres,
			wantSQL:  "SELECT m.username, (SELECT AVG(ms.age) FROM members ms WHERE ms.age > $1) FROM members m WHERE m.age >= $2",
			wantArgs: []any{10, 30},
		},
		{
			name: "подзапрос в in нумерует параметры по порядку",
			query: SelectFrom(m).Where(
				m.Username.Eq("member1"),
				m.Age.In(Select(NewMember("ms").Age).From(NewMember("ms")).Where(NewMember("ms").Age.Gt(10))),
			),
			dialect:  Postgres,
			wantSQL:  "SELECT " + memberCols + " FROM members m WHERE (m.username = $1 AND m.age IN (SELECT ms.age FROM members ms WHERE ms.age > $2))",
			wantArgs: []any{"member1", 10},
		},
		{
			name:     "in со списком",
			query:    Select(m.ID).From(m).Where(m.Age.In(10, 20)),
			dialect:  SQLite,
			wantSQL:  "SELECT m.id FROM members m WHERE m.age IN (?, ?)",
			wantArgs: []any{10, 20},
		},
		{
			name:     "пустой in ничего не находит",
			query:    Select(m.ID).From(m).Where(m.Age.In()),
			dialect:  Postgres,
			wantSQL:  "SELECT m.id FROM members m WHERE 1 = 0",
			wantArgs: []any{},
		},
		{
			name: "case в select",
			query: Select(
				m.Username,
				Case().When(m.Age.Eq(10), "ten").When(m.Age.Eq(20), "twenty").Otherwise("other"),
			).From(m),
			dialect:  Postgres,
			wantSQL:  "SELECT m.username, CASE WHEN m.age = $1 THEN $2 WHEN m.age = $3 THEN $4 ELSE $5 END FROM members m",
			wantArgs: []any{10, "ten", 20, "twenty", "other"},
		},
		{
			name:     "константа и конкатенация",
			query:    Select(m.Username.Concat("_").Concat(m.Age.StringValue()), Constant("A")).From(m),
			dialect:  Postgres,
			wantSQL:  "SELECT (m.username || $1 || CAST(m.age AS TEXT)), $2 FROM members m",
			wantArgs: []any{"_", "A"},
		},
		{
			name:     "distinct",
			query:    Select(m.Username).Distinct().From(m),
			dialect:  Postgres,
			wantSQL:  "SELECT DISTINCT m.username FROM members m",
			wantArgs: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.query.ToSQL(tt.dialect)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestQuery_CountSQL(t *testing.T) {
	m, tm := Member, Team

	t.Run("тот же фильтр без сортировки и пагинации", func(t *testing.T) {
		q := Select(m.ID, m.Username).
			From(m).
			LeftJoin(m.Team(tm)).
			Where(m.Username.Eq("member1")).
			OrderBy(m.ID.Asc()).
			Offset(10).
			Limit(5)

		sql, args, err := q.CountSQL(Postgres)

		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM members m LEFT OUTER JOIN teams t ON m.team_id = t.id WHERE m.username = $1", sql)
		assert.Equal(t, []any{"member1"}, args)
	})

	t.Run("группировка оборачивается в подзапрос", func(t *testing.T) {
		q := Select(tm.Name, m.Age.Avg()).From(m).Join(m.Team(tm)).GroupBy(tm.Name)

		sql, _, err := q.CountSQL(Postgres)

		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM (SELECT t.name, AVG(m.age) FROM members m INNER JOIN teams t ON m.team_id = t.id GROUP BY t.name) cnt", sql)
	})

	t.Run("distinct оборачивается в подзапрос", func(t *testing.T) {
		sql, _, err := Select(m.Username).Distinct().From(m).CountSQL(SQLite)

		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM (SELECT DISTINCT m.username FROM members m) cnt", sql)
	})
}

func TestQuery_Validate(t *testing.T) {
	m, tm := Member, Team

	t.Run("left join без связи отклоняется", func(t *testing.T) {
		_, _, err := Select(m.ID, tm.Name).From(m).LeftJoinEntity(tm).On(m.Username.Eq(tm.Name)).ToSQL(Postgres)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedJoinShape))
	})

	invalid := []struct {
		name  string
		query *Query
	}{
		{name: "нет источника", query: Select(m.ID)},
		{name: "пустой select", query: Select().From(m)},
		{name: "повтор алиаса", query: Select(m.ID).From(m, NewMember("m"))},
		{name: "on без join", query: SelectFrom(m).On(m.Age.Eq(1))},
		{name: "fetch join без join", query: SelectFrom(m).FetchJoin()},
		{name: "fetch join без выбора владельца", query: Select(m.ID).From(m).Join(m.Team(tm)).FetchJoin()},
		{name: "fetch join без связи", query: SelectFrom(m).JoinEntity(tm).On(m.TeamID.Eq(tm.ID)).FetchJoin()},
		{name: "владелец связи вне области", query: SelectFrom(tm).Join(m.Team(NewTeam("t2")))},
		{name: "having без group by", query: Select(CountAll()).From(m).Having(CountAll().Gt(1))},
		{name: "отрицательный offset", query: SelectFrom(m).Offset(-1)},
		{name: "отрицательный limit", query: SelectFrom(m).Limit(-1)},
		{name: "невалидный подзапрос", query: SelectFrom(m).Where(m.Age.Eq(Select(m.Age.Max())))},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.query.ToSQL(Postgres)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidQuery), "ожидался INVALID_QUERY, получено %v", err)
		})
	}

	t.Run("корректный запрос", func(t *testing.T) {
		assert.NoError(t, SelectFrom(m).LeftJoin(m.Team(tm)).FetchJoin().Validate())
	})
}

func TestQuery_Clone(t *testing.T) {
	m := Member
	base := SelectFrom(m).Where(m.Age.Gt(10))

	narrowed := base.Clone().OrderBy(m.ID.Desc()).Limit(1)

	sql, _, err := base.ToSQL(Postgres)
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+memberCols+" FROM members m WHERE m.age > $1", sql)

	sql, _, err = narrowed.ToSQL(Postgres)
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+memberCols+" FROM members m WHERE m.age > $1 ORDER BY m.id DESC LIMIT $2", sql)
	assert.Equal(t, 1, narrowed.LimitValue())
	assert.Equal(t, 0, base.LimitValue())
}

func TestDialect_Rebind(t *testing.T) {
	stmt := "INSERT INTO members (username, age, team_id) VALUES ($1, $2, $3)"

	assert.Equal(t, stmt, Postgres.Rebind(stmt))
	assert.Equal(t, "INSERT INTO members (username, age, team_id) VALUES (?, ?, ?)", SQLite.Rebind(stmt))
}

func TestTuple(t *testing.T) {
	tuple := NewTuple(int64(3), "15.5000000000000000", nil, []byte("teamA"))

	assert.Equal(t, 4, tuple.Len())
	assert.Equal(t, int64(3), tuple.Int64(0))
	assert.InDelta(t, 15.5, tuple.Float64(1), 0.0001)
	assert.True(t, tuple.IsNull(2))
	assert.Nil(t, tuple.StringPtr(2))
	assert.Nil(t, tuple.Int64Ptr(2))
	assert.Equal(t, "teamA", tuple.String(3))
	assert.Nil(t, tuple.Get(10))
}
