package postgres

import (
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
)

// dtoColumns - проекция MemberTeamDto, порядок совпадает с memberTeamDtoFromRow
func dtoColumns() []query.Expression {
	m, t := query.Member, query.Team
	return []query.Expression{m.ID, m.Username, m.Age, t.ID, t.Name}
}

func memberTeamDtoFromRow(row query.Tuple) (domain.MemberTeamDto, error) {
	return domain.MemberTeamDto{
		MemberID: row.Int64(0),
		Username: row.StringPtr(1),
		Age:      int(row.Int64(2)),
		TeamID:   row.Int64Ptr(3),
		TeamName: row.StringPtr(4),
	}, nil
}

func memberDtoFromRow(row query.Tuple) (domain.MemberDto, error) {
	return domain.MemberDto{
		Username: row.StringPtr(0),
		Age:      int(row.Int64(1)),
	}, nil
}

func memberFromRow(row query.Tuple) *domain.Member {
	return &domain.Member{
		ID:       row.Int64(0),
		Username: row.StringPtr(1),
		Age:      int(row.Int64(2)),
		TeamID:   row.Int64Ptr(3),
	}
}

func teamFromRow(row query.Tuple, offset int) *domain.Team {
	return &domain.Team{
		ID:   row.Int64(offset),
		Name: row.String(offset + 1),
	}
}

// memberMapper keeps one *domain.Team per id within a single fetch, so members of
// the same team share it and Team.Members lists them in row order.
type memberMapper struct {
	fetchTeam bool
	teams     map[int64]*domain.Team
}

func newMemberMapper(fetchTeam bool) *memberMapper {
	return &memberMapper{fetchTeam: fetchTeam, teams: make(map[int64]*domain.Team)}
}

func (mm *memberMapper) mapRow(row query.Tuple) (*domain.Member, error) {
	member := memberFromRow(row)
	if !mm.fetchTeam || row.IsNull(query.MemberColumns) {
		return member, nil
	}

	id := row.Int64(query.MemberColumns)
	team, ok := mm.teams[id]
	if !ok {
		team = teamFromRow(row, query.MemberColumns)
		mm.teams[id] = team
	}
	member.ChangeTeam(team)
	return member, nil
}
