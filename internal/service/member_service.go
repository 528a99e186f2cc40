package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/pagination"
)

type MemberService interface {
	Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error)
	SearchMembers(ctx context.Context, cond domain.MemberSearchCondition, withTeam bool) ([]*domain.Member, error)
	SearchPage(ctx context.Context, cond domain.MemberSearchCondition, params domain.PageParams, strategy pagination.Strategy) (domain.Page[domain.MemberTeamDto], error)
	GetMember(ctx context.Context, id int64) (*domain.Member, error)
}
