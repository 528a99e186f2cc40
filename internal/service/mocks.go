package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
	"github.com/bagdasarian/member-search/internal/repository"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Search(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberTeamDto), args.Error(1)
}

func (m *MockMemberRepository) SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberTeamDto, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberTeamDto), args.Error(1)
}

func (m *MockMemberRepository) SearchUsernames(ctx context.Context, cond domain.MemberSearchCondition) ([]domain.MemberDto, error) {
	args := m.Called(ctx, cond)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberDto), args.Error(1)
}

func (m *MockMemberRepository) SearchMember(ctx context.Context, cond domain.MemberSearchCondition, opts repository.SearchOptions) ([]*domain.Member, error) {
	args := m.Called(ctx, cond, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SearchPageSimple(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (domain.Page[domain.MemberTeamDto], error) {
	args := m.Called(ctx, cond, req)
	return args.Get(0).(domain.Page[domain.MemberTeamDto]), args.Error(1)
}

func (m *MockMemberRepository) SearchPageComplex(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (domain.Page[domain.MemberTeamDto], error) {
	args := m.Called(ctx, cond, req)
	return args.Get(0).(domain.Page[domain.MemberTeamDto]), args.Error(1)
}

func (m *MockMemberRepository) FindAllByPredicate(ctx context.Context, pred query.Predicate, orders ...query.OrderSpec) ([]*domain.Member, error) {
	args := m.Called(ctx, pred, orders)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) LoadTeam(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) TeamAgeStats(ctx context.Context) ([]domain.TeamAgeStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamAgeStat), args.Error(1)
}

func (m *MockStatsRepository) AgeSummary(ctx context.Context, cond domain.MemberSearchCondition) (domain.AgeSummary, error) {
	args := m.Called(ctx, cond)
	return args.Get(0).(domain.AgeSummary), args.Error(1)
}
