package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/member-search/internal/domain"
)

// setupTeamRepo создает мок БД и репозиторий для Team
func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	engine, mock := setupMockEngine(t)
	return NewTeamRepository(engine), mock
}

const insertTeamSQL = `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id
	`

func TestTeamRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное создание команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		team := domain.NewTeam("teamA")
		member := &domain.Member{Age: 10}
		team.Members = append(team.Members, member)

		// Ожидание
		mock.ExpectQuery(insertTeamSQL).
			WithArgs("teamA").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		// Выполнение
		err := repo.Create(ctx, team)

		// Проверки
		require.NoError(t, err)
		assert.Equal(t, int64(7), team.ID)
		require.NotNil(t, member.TeamID)
		assert.Equal(t, int64(7), *member.TeamID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нарушение уникальности в postgres", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery(insertTeamSQL).
			WithArgs("teamA").
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(ctx, domain.NewTeam("teamA"))

		assert.True(t, errors.Is(err, domain.ErrTeamExists))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("прочие ошибки БД", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery(insertTeamSQL).
			WithArgs("teamA").
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(ctx, domain.NewTeam("teamA"))

		assert.True(t, errors.Is(err, domain.ErrStoreFailure))
		assert.False(t, errors.Is(err, domain.ErrTeamExists))
	})

	t.Run("повторное имя в sqlite", func(t *testing.T) {
		repo := NewTeamRepository(setupSQLiteEngine(t))
		require.NoError(t, repo.Create(ctx, domain.NewTeam("teamA")))

		err := repo.Create(ctx, domain.NewTeam("teamA"))

		assert.True(t, errors.Is(err, domain.ErrTeamExists))
	})
}

func TestTeamRepository_Get(t *testing.T) {
	ctx := context.Background()
	engine := setupSQLiteEngine(t)
	f := seedFixture(t, engine)
	repo := NewTeamRepository(engine)

	t.Run("по имени вместе с участниками", func(t *testing.T) {
		team, err := repo.GetByName(ctx, "teamB")

		require.NoError(t, err)
		assert.Equal(t, f.teamB.ID, team.ID)
		require.Len(t, team.Members, 2)
		assert.Equal(t, "member3", *team.Members[0].Username)
		assert.Equal(t, "member4", *team.Members[1].Username)
		assert.Same(t, team, team.Members[0].Team)
	})

	t.Run("по id", func(t *testing.T) {
		team, err := repo.GetByID(ctx, f.teamA.ID)

		require.NoError(t, err)
		assert.Equal(t, "teamA", team.Name)
		assert.Len(t, team.Members, 2)
	})

	t.Run("команда не найдена", func(t *testing.T) {
		_, err := repo.GetByName(ctx, "teamZ")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
