package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MemberTeamResponse struct {
	MemberID int64   `json:"member_id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
	TeamName *string `json:"team_name"`
}

type SearchResponse struct {
	Members []MemberTeamResponse `json:"members"`
}

type PageResponse struct {
	Content          []MemberTeamResponse `json:"content"`
	TotalElements    int64                `json:"total_elements"`
	TotalPages       int                  `json:"total_pages"`
	Size             int                  `json:"size"`
	Number           int                  `json:"number"`
	NumberOfElements int                  `json:"number_of_elements"`
	HasNext          bool                 `json:"has_next"`
}

type TeamRefResponse struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
}

type MemberResponse struct {
	MemberID int64            `json:"member_id"`
	Username *string          `json:"username"`
	Age      int              `json:"age"`
	Team     *TeamRefResponse `json:"team,omitempty"`
}

type TeamMemberRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

type TeamRequest struct {
	TeamName string              `json:"team_name"`
	Members  []TeamMemberRequest `json:"members"`
}

type TeamMemberResponse struct {
	MemberID int64   `json:"member_id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
}

type TeamResponse struct {
	TeamID   int64                `json:"team_id"`
	TeamName string               `json:"team_name"`
	Members  []TeamMemberResponse `json:"members"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type TeamAgeStatResponse struct {
	TeamName string  `json:"team_name"`
	Count    int64   `json:"count"`
	Sum      int64   `json:"sum"`
	Avg      float64 `json:"avg"`
	Max      int     `json:"max"`
	Min      int     `json:"min"`
}

type TeamStatsResponse struct {
	Teams []TeamAgeStatResponse `json:"teams"`
}

type AgeSummaryResponse struct {
	Count int64   `json:"count"`
	Sum   int64   `json:"sum"`
	Avg   float64 `json:"avg"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}
