package models

import (
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/storage"
)

type PictureResponse struct {
	ID       int    `json:"id"`
	TeamID   int    `json:"idTeam"`
	ImageURL string `json:"imageUrl"`
}

func TransformPictureFromStorage(p *storage.Picture) PictureResponse {
	return PictureResponse{
		ID:       p.ID,
		TeamID:   p.TeamID,
		ImageURL: p.ImageURL,
	}
}

func TransformPicturesFromStorage(pictures []*storage.Picture) []PictureResponse {
	out := make([]PictureResponse, 0, len(pictures))
	for _, p := range pictures {
		out = append(out, TransformPictureFromStorage(p))
	}
	return out
}
