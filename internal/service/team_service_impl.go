package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type teamService struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.MemberRepository
	logger     *zap.SugaredLogger
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, memberRepo repository.MemberRepository, logger *zap.Logger) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		logger:     logger.Sugar(),
	}
}

// CreateTeam создает команду и сохраняет ее участников
func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	existingTeam, err := s.teamRepo.GetByName(ctx, team.Name)
	if err == nil && existingTeam != nil {
		return nil, domain.ErrTeamExists
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	for _, member := range team.Members {
		if err := s.memberRepo.Save(ctx, member); err != nil {
			s.logger.Errorw("member of new team not saved", "team", team.Name, "error", err)
			return nil, err
		}
	}

	s.logger.Infow("team created", "team", team.Name, "members", len(team.Members))
	return s.teamRepo.GetByName(ctx, team.Name)
}

// GetTeam получает команду с участниками по имени
func (s *teamService) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, err
	}

	return team, nil
}
