package domain

type Team struct {
	ID      int64
	Name    string
	Members []*Member
}

func NewTeam(name string) *Team {
	return &Team{Name: name}
}

func (t *Team) removeMember(m *Member) {
	for i, member := range t.Members {
		if member == m {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return
		}
	}
}

func (t *Team) HasMember(m *Member) bool {
	for _, member := range t.Members {
		if member == m {
			return true
		}
	}
	return false
}
