package storage

// Team is an exhibition entry. ImageURL is empty when the team has no
// header image; VoteCount is aggregated at query time, never stored.
type Team struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	VoteCount   int    `json:"voteCount"`
}

// Picture is an extra gallery image belonging to a team.
type Picture struct {
	ID       int    `json:"id"`
	TeamID   int    `json:"idTeam"`
	ImageURL string `json:"imageUrl"`
}

// Voter is a registered student. TeamID is nil until the first vote is
// cast; re-voting overwrites it (current selection, not a log).
type Voter struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"idStudent"`
	TeamID    *int   `json:"idTeam"`
}
