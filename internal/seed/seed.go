package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository/postgres"
)

const (
	TeamA       = "teamA"
	TeamB       = "teamB"
	MemberCount = 100
)

// Run заполняет локальную базу: teamA, teamB и member0..member99 (age = i, четные в teamA).
// Если teamA уже есть, ничего не делает.
func Run(ctx context.Context, db *sql.DB, engine *postgres.Engine, logger *zap.Logger) (err error) {
	log := logger.Sugar()

	_, err = postgres.NewTeamRepository(engine).GetByName(ctx, TeamA)
	if err == nil {
		log.Infow("seed skipped, teams already exist", "team", TeamA)
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStoreFailure("begin seed transaction", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	txEngine := engine.WithTx(tx)
	teams := postgres.NewTeamRepository(txEngine)
	members := postgres.NewMemberRepository(txEngine)

	teamA := domain.NewTeam(TeamA)
	teamB := domain.NewTeam(TeamB)
	for _, team := range []*domain.Team{teamA, teamB} {
		if err = teams.Create(ctx, team); err != nil {
			return err
		}
	}

	for i := 0; i < MemberCount; i++ {
		team := teamB
		if i%2 == 0 {
			team = teamA
		}
		member := domain.NewMember(fmt.Sprintf("member%d", i), i, team)
		if err = members.Save(ctx, member); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.NewStoreFailure("commit seed transaction", err)
	}

	log.Infow("seed completed", "teams", 2, "members", MemberCount)
	return nil
}
