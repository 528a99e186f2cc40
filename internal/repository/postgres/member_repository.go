package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/metrics"
	"github.com/bagdasarian/member-search/internal/pagination"
	"github.com/bagdasarian/member-search/internal/query"
	"github.com/bagdasarian/member-search/internal/repository"
)

type memberRepository struct {
	engine *Engine
	logger *zap.SugaredLogger
}

func NewMemberRepository(engine *Engine) *memberRepository {
	return &memberRepository{engine: engine, logger: engine.logger}
}

// searchQuery - проекция в DTO с left join на команду и фильтром по условию
func searchQuery(cond domain.MemberSearchCondition) *query.Query {
	m, t := query.Member, query.Team
	return query.Select(dtoColumns()...).
		From(m).
		LeftJoin(m.Team(t)).
		Where(query.MemberConditions(m, t, cond)...)
}

func (r *memberRepository) Search(ctx context.Context, cond domain.MemberSearchCondition) (result []domain.MemberTeamDto, err error) {
	defer func(start time.Time) { metrics.ObserveOp("search", start, err) }(time.Now())

	q := searchQuery(cond).OrderBy(query.Member.ID.Asc())
	return Fetch(ctx, r.engine, q, memberTeamDtoFromRow)
}

func (r *memberRepository) SearchByBuilder(ctx context.Context, cond domain.MemberSearchCondition) (result []domain.MemberTeamDto, err error) {
	defer func(start time.Time) { metrics.ObserveOp("search_by_builder", start, err) }(time.Now())

	m, t := query.Member, query.Team
	builder := query.NewPredicateBuilder()
	builder.
		And(query.UsernameEq(m, cond.Username)).
		And(query.TeamNameEq(t, cond.TeamName)).
		And(query.AgeGoe(m, cond.AgeGoe)).
		And(query.AgeLoe(m, cond.AgeLoe))

	q := query.Select(dtoColumns()...).
		From(m).
		LeftJoin(m.Team(t)).
		Where(builder.Build()).
		OrderBy(m.ID.Asc())
	return Fetch(ctx, r.engine, q, memberTeamDtoFromRow)
}

func (r *memberRepository) SearchMember(ctx context.Context, cond domain.MemberSearchCondition, opts repository.SearchOptions) (result []*domain.Member, err error) {
	defer func(start time.Time) { metrics.ObserveOp("search_member", start, err) }(time.Now())

	m, t := query.Member, query.Team
	q := query.SelectFrom(m).LeftJoin(m.Team(t))
	if opts.FetchTeam {
		q.FetchJoin()
	}
	q.Where(query.MemberConditions(m, t, cond)...).OrderBy(m.ID.Asc())

	return Fetch(ctx, r.engine, q, newMemberMapper(opts.FetchTeam).mapRow)
}

// SearchUsernames returns the narrow MemberDto projection for the same filter.
func (r *memberRepository) SearchUsernames(ctx context.Context, cond domain.MemberSearchCondition) (result []domain.MemberDto, err error) {
	defer func(start time.Time) { metrics.ObserveOp("search_usernames", start, err) }(time.Now())

	m, t := query.Member, query.Team
	q := query.Select(m.Username, m.Age).
		From(m).
		LeftJoin(m.Team(t)).
		Where(query.MemberConditions(m, t, cond)...).
		OrderBy(m.ID.Asc())
	return Fetch(ctx, r.engine, q, memberDtoFromRow)
}

func (r *memberRepository) SearchPageSimple(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (page domain.Page[domain.MemberTeamDto], err error) {
	defer func(start time.Time) { metrics.ObserveOp("search_page_simple", start, err) }(time.Now())
	return r.searchPage(ctx, cond, req, pagination.StrategySimple)
}

func (r *memberRepository) SearchPageComplex(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest) (page domain.Page[domain.MemberTeamDto], err error) {
	defer func(start time.Time) { metrics.ObserveOp("search_page_complex", start, err) }(time.Now())
	return r.searchPage(ctx, cond, req, pagination.StrategyOptimized)
}

func (r *memberRepository) searchPage(ctx context.Context, cond domain.MemberSearchCondition, req domain.PageRequest, strategy pagination.Strategy) (domain.Page[domain.MemberTeamDto], error) {
	if err := req.Validate(); err != nil {
		return domain.Page[domain.MemberTeamDto]{}, err
	}
	orders, err := pageOrders(req.Sort)
	if err != nil {
		return domain.Page[domain.MemberTeamDto]{}, err
	}

	q := searchQuery(cond).OrderBy(orders...).Offset(req.Offset).Limit(req.Size)
	content, err := Fetch(ctx, r.engine, q, memberTeamDtoFromRow)
	if err != nil {
		return domain.Page[domain.MemberTeamDto]{}, err
	}

	count := func(ctx context.Context) (int64, error) {
		return r.engine.FetchCount(ctx, searchQuery(cond))
	}
	page, err := pagination.Resolve(ctx, strategy, content, req, count)
	if err != nil {
		return domain.Page[domain.MemberTeamDto]{}, err
	}

	r.logger.Debugw("search page",
		"strategy", strategy,
		"offset", req.Offset,
		"size", req.Size,
		"returned", len(content),
		"total", page.TotalElements,
	)
	return page, nil
}

type sortable interface {
	Asc() query.OrderSpec
	Desc() query.OrderSpec
}

var sortProperties = map[string]sortable{
	"memberId": query.Member.ID,
	"id":       query.Member.ID,
	"username": query.Member.Username,
	"age":      query.Member.Age,
	"teamId":   query.Team.ID,
	"teamName": query.Team.Name,
}

// pageOrders переводит сортировку запроса страницы в выражения; id добавляется
// последним, чтобы порядок был однозначным.
func pageOrders(sort []domain.Order) ([]query.OrderSpec, error) {
	orders := make([]query.OrderSpec, 0, len(sort)+1)
	byID := false
	for _, o := range sort {
		expr, ok := sortProperties[o.Property]
		if !ok {
			return nil, domain.NewInvalidQueryError("unknown sort property %q", o.Property)
		}
		orderSpec := expr.Asc()
		if o.Direction == domain.DESC {
			orderSpec = expr.Desc()
		}
		switch o.Nulls {
		case domain.NullsFirst:
			orderSpec = orderSpec.NullsFirst()
		case domain.NullsLast:
			orderSpec = orderSpec.NullsLast()
		}
		orders = append(orders, orderSpec)
		if o.Property == "id" || o.Property == "memberId" {
			byID = true
		}
	}
	if !byID {
		orders = append(orders, query.Member.ID.Asc())
	}
	return orders, nil
}

func (r *memberRepository) FindAllByPredicate(ctx context.Context, pred query.Predicate, orders ...query.OrderSpec) (result []*domain.Member, err error) {
	defer func(start time.Time) { metrics.ObserveOp("find_all_by_predicate", start, err) }(time.Now())

	m, t := query.Member, query.Team
	if len(orders) == 0 {
		orders = []query.OrderSpec{m.ID.Asc()}
	}
	q := query.SelectFrom(m).LeftJoin(m.Team(t)).Where(pred).OrderBy(orders...)
	return Fetch(ctx, r.engine, q, newMemberMapper(false).mapRow)
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	m := query.Member
	q := query.SelectFrom(m).OrderBy(m.ID.Asc())
	return Fetch(ctx, r.engine, q, newMemberMapper(false).mapRow)
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	m := query.Member
	q := query.SelectFrom(m).Where(m.Username.Eq(username)).OrderBy(m.ID.Asc())
	return Fetch(ctx, r.engine, q, newMemberMapper(false).mapRow)
}

func (r *memberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	m := query.Member
	member, found, err := FetchOne(ctx, r.engine, query.SelectFrom(m).Where(m.ID.Eq(id)), newMemberMapper(false).mapRow)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NewNotFoundError("member")
	}
	return member, nil
}

func (r *memberRepository) Save(ctx context.Context, member *domain.Member) error {
	teamID := member.TeamID
	if member.Team != nil {
		if member.Team.ID == 0 {
			return domain.NewInvalidQueryError("team %q must be saved before its members", member.Team.Name)
		}
		id := member.Team.ID
		teamID = &id
	}

	if member.ID == 0 {
		query := `
			INSERT INTO members (username, age, team_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := r.engine.queryRow(ctx, query, member.Username, member.Age, teamID).Scan(&member.ID); err != nil {
			return domain.NewStoreFailure("insert member", err)
		}
		member.TeamID = teamID
		return nil
	}

	query := `
		UPDATE members
		SET username = $1, age = $2, team_id = $3
		WHERE id = $4
	`
	result, err := r.engine.exec(ctx, query, member.Username, member.Age, teamID, member.ID)
	if err != nil {
		return domain.NewStoreFailure("update member", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStoreFailure("update member", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("member")
	}
	member.TeamID = teamID
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, member *domain.Member) error {
	query := `DELETE FROM members WHERE id = $1`

	result, err := r.engine.exec(ctx, query, member.ID)
	if err != nil {
		return domain.NewStoreFailure("delete member", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStoreFailure("delete member", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("member")
	}
	return nil
}

// LoadTeam дозагружает команду участника, загруженного без fetch join
func (r *memberRepository) LoadTeam(ctx context.Context, member *domain.Member) error {
	if member.TeamLoaded() {
		return nil
	}
	t := query.Team
	team, found, err := FetchOne(ctx, r.engine, query.SelectFrom(t).Where(t.ID.Eq(*member.TeamID)), func(row query.Tuple) (*domain.Team, error) {
		return teamFromRow(row, 0), nil
	})
	if err != nil {
		return err
	}
	if !found {
		return domain.NewNotFoundError("team")
	}
	member.ChangeTeam(team)
	return nil
}
