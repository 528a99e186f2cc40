package domain

type MemberTeamDto struct {
	MemberID int64
	Username *string
	Age      int
	TeamID   *int64
	TeamName *string
}

type MemberDto struct {
	Username *string
	Age      int
}

type TeamAgeStat struct {
	TeamName string
	Count    int64
	Sum      int64
	Avg      float64
	Max      int
	Min      int
}

type AgeSummary struct {
	Count int64
	Sum   int64
	Avg   float64
	Max   int
	Min   int
}
