package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
)

const uniqueViolation = "23505"

type teamRepository struct {
	engine *Engine
}

func NewTeamRepository(engine *Engine) *teamRepository {
	return &teamRepository{engine: engine}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.engine.queryRow(ctx, query, team.Name).Scan(&team.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamExists
		}
		return domain.NewStoreFailure("insert team", err)
	}

	// участники, созданные до сохранения команды, получают ее id
	for _, member := range team.Members {
		id := team.ID
		member.TeamID = &id
	}
	return nil
}

// GetByName загружает команду вместе с участниками в порядке id
func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	t := query.Team
	return r.getOne(ctx, t.Name.Eq(name))
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	t := query.Team
	return r.getOne(ctx, t.ID.Eq(id))
}

func (r *teamRepository) getOne(ctx context.Context, pred query.Predicate) (*domain.Team, error) {
	t, m := query.Team, query.Member

	team, found, err := FetchOne(ctx, r.engine, query.SelectFrom(t).Where(pred), func(row query.Tuple) (*domain.Team, error) {
		return teamFromRow(row, 0), nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NewNotFoundError("team")
	}

	members, err := Fetch(ctx, r.engine, query.SelectFrom(m).Where(m.TeamID.Eq(team.ID)).OrderBy(m.ID.Asc()), newMemberMapper(false).mapRow)
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		member.ChangeTeam(team)
	}
	return team, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	// sqlite не экспортирует код через database/sql
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
