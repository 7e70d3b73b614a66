package models

import (
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/storage"
)

type TeamResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	VoteCount   int    `json:"voteCount"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Title:       t.Title,
		Name:        t.Name,
		Type:        t.Type,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		VoteCount:   t.VoteCount,
	}
}

func TransformTeamsFromStorage(teams []*storage.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, TransformTeamFromStorage(t))
	}
	return out
}
