package models

type UserLoginRequest struct {
	Name      string `json:"name" form:"name"`
	StudentID string `json:"idStudent" form:"idStudent"`
}

type RegisterRequest struct {
	Name      string `json:"name" form:"name"`
	StudentID string `json:"idStudent" form:"idStudent"`
}

type UpdateVoteRequest struct {
	TeamID int `json:"idTeam" form:"idTeam"`
}

// VoteResponse carries the current selection; idTeam is null until the
// student votes for the first time.
type VoteResponse struct {
	TeamID *int `json:"idTeam"`
}
