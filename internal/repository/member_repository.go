package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
)

// SearchOptions управляет загрузкой связанной команды при поиске сущностей
type SearchOptions struct {
	FetchTeam bool
}

type MemberRepository interface {
	Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchUsernames(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error)
	SearchMember(ctx context.Context, cond domain.MemberSearchCondition, opts SearchOptions) ([]*domain.Member, error)
	SearchPageSimple(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (domain.Page[domain.MemberTeamDto], error)
	SearchPageComplex(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (domain.Page[domain.MemberTeamDto], error)
	FindAllByPredicate(ctx context.Context, pred query.Predicate, orders ...query.OrderSpec) ([]*domain.Member, error)
	FindAll(ctx context.Context) ([]*domain.Member, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Member, error)
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	Save(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, member *domain.Member) error
	LoadTeam(ctx context.Context, member *domain.Member) error
}
