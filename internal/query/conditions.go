package query

import (
	"strings"

	"github.com/bagdasarian/member-search/internal/domain"
)

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// UsernameEq is absent for a blank username.
func UsernameEq(m *MemberEntity, username string) Predicate {
	if !hasText(username) {
		return Predicate{}
	}
	return m.Username.Eq(username)
}

// TeamNameEq needs the team joined under t.
func TeamNameEq(t *TeamEntity, teamName string) Predicate {
	if !hasText(teamName) {
		return Predicate{}
	}
	return t.Name.Eq(teamName)
}

func AgeGoe(m *MemberEntity, age *int) Predicate {
	if age == nil {
		return Predicate{}
	}
	return m.Age.Goe(*age)
}

func AgeLoe(m *MemberEntity, age *int) Predicate {
	if age == nil {
		return Predicate{}
	}
	return m.Age.Loe(*age)
}

// AgeBetween is present only when both bounds are set.
func AgeBetween(m *MemberEntity, goe, loe *int) Predicate {
	return AgeGoe(m, goe).And(AgeLoe(m, loe))
}

// MemberConditions раскладывает условие поиска на независимые предикаты.
// Границы возраста идут по отдельности, поэтому одна граница дает открытый диапазон.
func MemberConditions(m *MemberEntity, t *TeamEntity, cond domain.MemberSearchCondition) []Predicate {
	return []Predicate{
		UsernameEq(m, cond.Username),
		TeamNameEq(t, cond.TeamName),
		AgeGoe(m, cond.AgeGoe),
		AgeLoe(m, cond.AgeLoe),
	}
}
