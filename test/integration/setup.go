//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/config"
	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
	"github.com/bagdasarian/member-search/internal/repository/postgres"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:           host,
			Port:           port.Port(),
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			MigrationsPath: filepath.Join("..", "..", "migrations"),
		},
	}

	// Накатываем миграции тем же путём, что и приложение
	require.NoError(t, db.RunMigrations(cfg.Database), "не удалось применить миграции")

	database, err := db.NewPostgres(cfg)
	require.NoError(t, err)

	// Автоматическая очистка после теста
	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

func setupTestEngine(t *testing.T) (*sql.DB, *postgres.Engine) {
	database := setupTestDB(t)
	return database, postgres.NewEngine(database, query.Postgres, zap.NewNop())
}

// seedFixture: member1..member4 с возрастом 10..40, первые двое в teamA, остальные в teamB
func seedFixture(t *testing.T, engine *postgres.Engine) {
	ctx := context.Background()
	teams := postgres.NewTeamRepository(engine)
	members := postgres.NewMemberRepository(engine)

	teamA, teamB := domain.NewTeam("teamA"), domain.NewTeam("teamB")
	require.NoError(t, teams.Create(ctx, teamA))
	require.NoError(t, teams.Create(ctx, teamB))

	for i, team := range []*domain.Team{teamA, teamA, teamB, teamB} {
		member := domain.NewMember("member"+strconv.Itoa(i+1), (i+1)*10, team)
		require.NoError(t, members.Save(ctx, member))
	}
}

func intPtr(v int) *int {
	return &v
}
