package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/config"
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/pagination"
	"github.com/bagdasarian/member-search/internal/repository"
)

func setupMemberService() (MemberService, *MockMemberRepository) {
	repo := new(MockMemberRepository)
	paging := config.PagingConfig{DefaultSize: 20, MaxSize: 100}
	return NewMemberService(repo, paging, zap.NewNop()), repo
}

func strPtr(s string) *string {
	return &s
}

func TestMemberService_Search(t *testing.T) {
	ctx := context.Background()
	cond := domain.MemberSearchCondition{TeamName: "teamA"}

	t.Run("результат репозитория возвращается как есть", func(t *testing.T) {
		service, repo := setupMemberService()
		want := []domain.MemberTeamDto{{MemberID: 1, Username: strPtr("member1"), Age: 10}}

		repo.On("Search", mock.Anything, cond).Return(want, nil).Once()

		result, err := service.Search(ctx, cond)

		require.NoError(t, err)
		assert.Equal(t, want, result)
		repo.AssertExpectations(t)
	})

	t.Run("ошибка репозитория", func(t *testing.T) {
		service, repo := setupMemberService()

		repo.On("Search", mock.Anything, cond).Return(nil, domain.ErrStoreFailure).Once()

		result, err := service.Search(ctx, cond)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrStoreFailure))
	})
}

func TestMemberService_SearchMembers(t *testing.T) {
	service, repo := setupMemberService()
	cond := domain.MemberSearchCondition{}

	repo.On("SearchMember", mock.Anything, cond, repository.SearchOptions{FetchTeam: true}).
		Return([]*domain.Member{{ID: 1}}, nil).Once()

	members, err := service.SearchMembers(context.Background(), cond, true)

	require.NoError(t, err)
	assert.Len(t, members, 1)
	repo.AssertExpectations(t)
}

func TestMemberService_SearchPage(t *testing.T) {
	ctx := context.Background()
	cond := domain.MemberSearchCondition{}
	empty := domain.Page[domain.MemberTeamDto]{Content: []domain.MemberTeamDto{}}

	t.Run("simple идет в SearchPageSimple", func(t *testing.T) {
		service, repo := setupMemberService()

		repo.On("SearchPageSimple", mock.Anything, cond, domain.PageRequest{Offset: 0, Size: 3}).Return(empty, nil).Once()

		_, err := service.SearchPage(ctx, cond, domain.PageParams{Page: 0, Size: 3}, pagination.StrategySimple)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("optimized идет в SearchPageComplex", func(t *testing.T) {
		service, repo := setupMemberService()

		repo.On("SearchPageComplex", mock.Anything, cond, domain.PageRequest{Offset: 3, Size: 3}).Return(empty, nil).Once()

		_, err := service.SearchPage(ctx, cond, domain.PageParams{Page: 1, Size: 3}, pagination.StrategyOptimized)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		params domain.PageParams
		want   domain.PageRequest
	}{
		{
			name:   "размер по умолчанию на первой странице",
			params: domain.PageParams{},
			want:   domain.PageRequest{Offset: 0, Size: 20},
		},
		{
			name:   "смещение считается от размера по умолчанию",
			params: domain.PageParams{Page: 2},
			want:   domain.PageRequest{Offset: 40, Size: 20},
		},
		{
			name:   "смещение считается от ограниченного размера",
			params: domain.PageParams{Page: 1, Size: 500},
			want:   domain.PageRequest{Offset: 100, Size: 100},
		},
		{
			name:   "сортировка передается как есть",
			params: domain.PageParams{Page: 1, Size: 5, Sort: []domain.Order{domain.Desc("age")}},
			want:   domain.PageRequest{Offset: 5, Size: 5, Sort: []domain.Order{domain.Desc("age")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := setupMemberService()
			page := domain.NewPage[domain.MemberTeamDto](nil, tt.want, 0)

			repo.On("SearchPageSimple", mock.Anything, cond, tt.want).Return(page, nil).Once()

			result, err := service.SearchPage(ctx, cond, tt.params, pagination.StrategySimple)

			require.NoError(t, err)
			assert.Equal(t, tt.params.Page, result.Number)
			assert.Equal(t, tt.want.Size, result.Size)
			repo.AssertExpectations(t)
		})
	}

	t.Run("отрицательный номер страницы", func(t *testing.T) {
		service, repo := setupMemberService()

		_, err := service.SearchPage(ctx, cond, domain.PageParams{Page: -1, Size: 3}, pagination.StrategySimple)

		assert.True(t, errors.Is(err, domain.ErrInvalidPageRequest))
		repo.AssertNotCalled(t, "SearchPageSimple", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("отрицательный размер", func(t *testing.T) {
		service, repo := setupMemberService()

		_, err := service.SearchPage(ctx, cond, domain.PageParams{Size: -1}, pagination.StrategySimple)

		assert.True(t, errors.Is(err, domain.ErrInvalidPageRequest))
		repo.AssertNotCalled(t, "SearchPageSimple", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("неизвестная стратегия", func(t *testing.T) {
		service, _ := setupMemberService()

		_, err := service.SearchPage(ctx, cond, domain.PageParams{Size: 3}, pagination.Strategy("cached"))

		assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
	})
}

func TestMemberService_GetMember(t *testing.T) {
	ctx := context.Background()

	t.Run("участник с командой", func(t *testing.T) {
		service, repo := setupMemberService()
		member := &domain.Member{ID: 1, Username: strPtr("member1"), Age: 10}

		repo.On("FindByID", mock.Anything, int64(1)).Return(member, nil).Once()
		repo.On("LoadTeam", mock.Anything, member).Return(nil).Once()

		result, err := service.GetMember(ctx, 1)

		require.NoError(t, err)
		assert.Same(t, member, result)
		repo.AssertExpectations(t)
	})

	t.Run("участник не найден", func(t *testing.T) {
		service, repo := setupMemberService()

		repo.On("FindByID", mock.Anything, int64(7)).Return(nil, domain.NewNotFoundError("member")).Once()

		_, err := service.GetMember(ctx, 7)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		repo.AssertNotCalled(t, "LoadTeam", mock.Anything, mock.Anything)
	})
}
