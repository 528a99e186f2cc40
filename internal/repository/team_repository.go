package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
}
