package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/config"
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/pagination"
	"github.com/bagdasarian/member-search/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	paging     config.PagingConfig
	logger     *zap.SugaredLogger
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(memberRepo repository.MemberRepository, paging config.PagingConfig, logger *zap.Logger) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		paging:     paging,
		logger:     logger.Sugar(),
	}
}

func (s *memberService) Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	result, err := s.memberRepo.Search(ctx, cond)
	if err != nil {
		s.logger.Errorw("search failed", "condition", cond, "error", err)
		return nil, err
	}
	s.logger.Debugw("search", "condition", cond, "found", len(result))
	return result, nil
}

func (s *memberService) SearchMembers(ctx context.Context, cond domain.MemberSearchCondition, withTeam bool) ([]*domain.Member, error) {
	members, err := s.memberRepo.SearchMember(ctx, cond, repository.SearchOptions{FetchTeam: withTeam})
	if err != nil {
		s.logger.Errorw("search members failed", "condition", cond, "error", err)
		return nil, err
	}
	return members, nil
}

// SearchPage подставляет размер по умолчанию, ограничивает его сверху
// и только затем переводит номер страницы в смещение
func (s *memberService) SearchPage(ctx context.Context, cond domain.MemberSearchCondition, params domain.PageParams, strategy pagination.Strategy) (domain.Page[domain.MemberTeamDto], error) {
	if !strategy.Valid() {
		return domain.Page[domain.MemberTeamDto]{}, domain.NewInvalidQueryError("unknown paging strategy %q", strategy)
	}
	if params.Page < 0 {
		return domain.Page[domain.MemberTeamDto]{}, domain.NewInvalidPageRequestError("page must not be negative, got %d", params.Page)
	}
	size := params.Size
	if size == 0 {
		size = s.paging.DefaultSize
	}
	if s.paging.MaxSize > 0 && size > s.paging.MaxSize {
		size = s.paging.MaxSize
	}

	req := domain.PageOf(params.Page, size, params.Sort...)
	if err := req.Validate(); err != nil {
		return domain.Page[domain.MemberTeamDto]{}, err
	}

	var (
		page domain.Page[domain.MemberTeamDto]
		err  error
	)
	switch strategy {
	case pagination.StrategyOptimized:
		page, err = s.memberRepo.SearchPageComplex(ctx, cond, req)
	default:
		page, err = s.memberRepo.SearchPageSimple(ctx, cond, req)
	}
	if err != nil {
		s.logger.Errorw("search page failed", "strategy", strategy, "offset", req.Offset, "size", req.Size, "error", err)
		return domain.Page[domain.MemberTeamDto]{}, err
	}
	return page, nil
}

// GetMember возвращает участника вместе с командой
func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.LoadTeam(ctx, member); err != nil {
		s.logger.Warnw("team of member not loaded", "member_id", id, "error", err)
		return nil, err
	}
	return member, nil
}
