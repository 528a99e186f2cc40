package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
)

const sqliteSchema = `
	CREATE TABLE teams (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);
	CREATE TABLE members (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NULL,
		age      INTEGER NOT NULL,
		team_id  INTEGER NULL REFERENCES teams (id) ON DELETE SET NULL
	);
`

// setupMockDB создает мок БД с точным сравнением SQL
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func setupMockEngine(t *testing.T) (*Engine, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewEngine(db, query.Postgres, zap.NewNop()), mock
}

// setupSQLiteDB поднимает sqlite в памяти с той же схемой, что и миграции
func setupSQLiteDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "не удалось открыть sqlite")
	// каждое соединение :memory: - отдельная база
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err, "не удалось создать схему")
	return db
}

func setupSQLiteEngine(t *testing.T) *Engine {
	return NewEngine(setupSQLiteDB(t), query.SQLite, zap.NewNop())
}

type fixture struct {
	teamA   *domain.Team
	teamB   *domain.Team
	members []*domain.Member
}

// seedFixture: member1..member4 с возрастом 10..40, первые двое в teamA, остальные в teamB
func seedFixture(t *testing.T, engine *Engine) fixture {
	ctx := context.Background()
	teams := NewTeamRepository(engine)
	members := NewMemberRepository(engine)

	f := fixture{teamA: domain.NewTeam("teamA"), teamB: domain.NewTeam("teamB")}
	require.NoError(t, teams.Create(ctx, f.teamA))
	require.NoError(t, teams.Create(ctx, f.teamB))

	for i, team := range []*domain.Team{f.teamA, f.teamA, f.teamB, f.teamB} {
		member := domain.NewMember(usernameOf(i+1), (i+1)*10, team)
		require.NoError(t, members.Save(ctx, member))
		f.members = append(f.members, member)
	}
	return f
}

func usernameOf(n int) string {
	return "member" + strconv.Itoa(n)
}

func intPtr(v int) *int {
	return &v
}

func usernames[T any](items []T, get func(T) *string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if name := get(item); name != nil {
			out = append(out, *name)
		} else {
			out = append(out, "")
		}
	}
	return out
}

func dtoUsername(d domain.MemberTeamDto) *string { return d.Username }

func memberUsername(m *domain.Member) *string { return m.Username }
