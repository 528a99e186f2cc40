package domain

import "fmt"

type Member struct {
	ID       int64
	Username *string
	Age      int
	Team     *Team
	// TeamID остается заполненным, даже если сама команда еще не загружена
	TeamID *int64
}

func NewMember(username string, age int, team *Team) *Member {
	m := &Member{Username: &username, Age: age}
	if team != nil {
		m.ChangeTeam(team)
	}
	return m
}

// ChangeTeam переводит участника в другую команду и поддерживает обратную коллекцию Team.Members.
// nil отвязывает участника от команды.
func (m *Member) ChangeTeam(team *Team) {
	if m.Team == team && team != nil && team.HasMember(m) {
		return
	}
	if m.Team != nil {
		m.Team.removeMember(m)
	}
	m.Team = team
	if team == nil {
		m.TeamID = nil
		return
	}
	team.Members = append(team.Members, m)
	// несохраненная команда еще без id
	if team.ID == 0 {
		m.TeamID = nil
		return
	}
	id := team.ID
	m.TeamID = &id
}

// TeamLoaded сообщает, доступна ли команда без дополнительного запроса.
func (m *Member) TeamLoaded() bool {
	return m.TeamID == nil || m.Team != nil
}

func (m *Member) UsernameOrEmpty() string {
	if m.Username == nil {
		return ""
	}
	return *m.Username
}

func (m *Member) String() string {
	return fmt.Sprintf("Member(id=%d, username=%s, age=%d)", m.ID, m.UsernameOrEmpty(), m.Age)
}
