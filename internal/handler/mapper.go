package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/bagdasarian/member-search/internal/domain"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberResponse{
			MemberID: member.ID,
			Username: member.Username,
			Age:      member.Age,
		})
	}

	return TeamResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  members,
	}
}

func httpTeamToDomain(req TeamRequest) *domain.Team {
	team := domain.NewTeam(req.TeamName)
	for _, member := range req.Members {
		domain.NewMember(member.Username, member.Age, team)
	}
	return team
}

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	resp := MemberResponse{
		MemberID: member.ID,
		Username: member.Username,
		Age:      member.Age,
	}
	if member.Team != nil {
		resp.Team = &TeamRefResponse{TeamID: member.Team.ID, TeamName: member.Team.Name}
	}
	return resp
}

func dtosToHTTP(dtos []domain.MemberTeamDto) []MemberTeamResponse {
	out := make([]MemberTeamResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, MemberTeamResponse{
			MemberID: dto.MemberID,
			Username: dto.Username,
			Age:      dto.Age,
			TeamID:   dto.TeamID,
			TeamName: dto.TeamName,
		})
	}
	return out
}

func pageToHTTP(page domain.Page[domain.MemberTeamDto]) PageResponse {
	return PageResponse{
		Content:          dtosToHTTP(page.Content),
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages(),
		Size:             page.Size,
		Number:           page.Number,
		NumberOfElements: page.NumberOfElements(),
		HasNext:          page.HasNext(),
	}
}

// parseCondition читает username, teamName, ageGoe, ageLoe; отсутствующие параметры не фильтруют
func parseCondition(values url.Values) (domain.MemberSearchCondition, error) {
	cond := domain.MemberSearchCondition{
		Username: values.Get("username"),
		TeamName: values.Get("teamName"),
	}

	var err error
	if cond.AgeGoe, err = optionalInt(values, "ageGoe"); err != nil {
		return cond, err
	}
	if cond.AgeLoe, err = optionalInt(values, "ageLoe"); err != nil {
		return cond, err
	}
	return cond, nil
}

// parsePageParams: page с нуля, size (0 = по умолчанию), sort=prop[,asc|desc][,nullsfirst|nullslast]
func parsePageParams(values url.Values) (domain.PageParams, error) {
	page, err := intParam(values, "page", 0)
	if err != nil {
		return domain.PageParams{}, err
	}
	size, err := intParam(values, "size", 0)
	if err != nil {
		return domain.PageParams{}, err
	}

	orders := make([]domain.Order, 0, len(values["sort"]))
	for _, raw := range values["sort"] {
		order, err := parseOrder(raw)
		if err != nil {
			return domain.PageParams{}, err
		}
		orders = append(orders, order)
	}

	return domain.PageParams{Page: page, Size: size, Sort: orders}, nil
}

func parseOrder(raw string) (domain.Order, error) {
	parts := strings.Split(raw, ",")
	order := domain.Asc(strings.TrimSpace(parts[0]))
	if order.Property == "" {
		return order, badRequest("empty sort property")
	}
	for _, part := range parts[1:] {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "asc":
			order.Direction = domain.ASC
		case "desc":
			order.Direction = domain.DESC
		case "nullsfirst":
			order = order.NullsFirst()
		case "nullslast":
			order = order.NullsLast()
		default:
			return order, badRequest("unknown sort modifier %q", part)
		}
	}
	return order, nil
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, badRequest("%s must be an integer", key)
	}
	return &v, nil
}

func intParam(values url.Values, key string, defaultValue int) (int, error) {
	v, err := optionalInt(values, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return defaultValue, nil
	}
	return *v, nil
}
