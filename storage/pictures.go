package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
)

type PictureStorage interface {
	Get(ctx context.Context, id int) (*Picture, error)
	GetAllByTeam(ctx context.Context, teamID int) ([]*Picture, error)
	Create(ctx context.Context, picture *Picture) error
	Delete(ctx context.Context, id int) error
}

type SQLPictureStorage struct {
	DB *sql.DB
}

func (s *SQLPictureStorage) Get(ctx context.Context, id int) (*Picture, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, team_id, image_url FROM picture WHERE id = $1`, id)

	var picture Picture
	err := row.Scan(&picture.ID, &picture.TeamID, &picture.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		logging.Log.Warnf("PICTURE: no picture found with ID %d", id)
		return nil, ErrPictureNotFound
	}
	if err != nil {
		logging.Log.Errorf("PICTURE: query for ID %d failed: %v", id, err)
		return nil, err
	}
	return &picture, nil
}

func (s *SQLPictureStorage) GetAllByTeam(ctx context.Context, teamID int) ([]*Picture, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, team_id, image_url FROM picture WHERE team_id = $1 ORDER BY id`, teamID)
	if err != nil {
		logging.Log.Errorf("PICTURE: list for team %d failed: %v", teamID, err)
		return nil, err
	}
	defer rows.Close()

	var pictures []*Picture
	for rows.Next() {
		var picture Picture
		if err := rows.Scan(&picture.ID, &picture.TeamID, &picture.ImageURL); err != nil {
			logging.Log.Errorf("PICTURE: failed to scan picture row: %v", err)
			return nil, err
		}
		pictures = append(pictures, &picture)
	}
	if err := rows.Err(); err != nil {
		logging.Log.Errorf("PICTURE: row iteration failed: %v", err)
		return nil, err
	}
	return pictures, nil
}

func (s *SQLPictureStorage) Create(ctx context.Context, picture *Picture) error {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO picture (team_id, image_url) VALUES ($1, $2) RETURNING id`,
		picture.TeamID, picture.ImageURL).Scan(&picture.ID)
	if err != nil {
		logging.Log.Errorf("PICTURE: failed to create picture for team %d: %v", picture.TeamID, err)
		return err
	}
	return nil
}

func (s *SQLPictureStorage) Delete(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM picture WHERE id = $1`, id)
	if err != nil {
		logging.Log.Errorf("PICTURE: failed to delete picture with ID %d: %v", id, err)
		return err
	}
	logging.Log.Infof("PICTURE: deleted picture with ID %d", id)
	return nil
}
