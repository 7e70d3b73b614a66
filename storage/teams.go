package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
)

type TeamStorage interface {
	Get(ctx context.Context, id int) (*Team, error)
	GetAllByType(ctx context.Context, teamType string, orderByVotes bool) ([]*Team, error)
	Create(ctx context.Context, team *Team) error
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id int) error
}

type SQLTeamStorage struct {
	DB *sql.DB
}

func (s *SQLTeamStorage) Get(ctx context.Context, id int) (*Team, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT t.id, t.title, t.name, t.type, t.description, t.image_url,
		       (SELECT COUNT(*) FROM voter v WHERE v.team_id = t.id)
		FROM team t
		WHERE t.id = $1`, id)

	var team Team
	err := row.Scan(&team.ID, &team.Title, &team.Name, &team.Type, &team.Description, &team.ImageURL, &team.VoteCount)
	if errors.Is(err, sql.ErrNoRows) {
		logging.Log.Warnf("TEAM: no team found with ID %d", id)
		return nil, ErrTeamNotFound
	}
	if err != nil {
		logging.Log.Errorf("TEAM: query for ID %d failed: %v", id, err)
		return nil, err
	}
	return &team, nil
}

func (s *SQLTeamStorage) GetAllByType(ctx context.Context, teamType string, orderByVotes bool) ([]*Team, error) {
	query := `
		SELECT t.id, t.title, t.name, t.type, t.description, t.image_url,
		       (SELECT COUNT(*) FROM voter v WHERE v.team_id = t.id) AS vote_count
		FROM team t
		WHERE t.type = $1
		ORDER BY t.id`
	if orderByVotes {
		query = `
		SELECT t.id, t.title, t.name, t.type, t.description, t.image_url,
		       (SELECT COUNT(*) FROM voter v WHERE v.team_id = t.id) AS vote_count
		FROM team t
		WHERE t.type = $1
		ORDER BY vote_count DESC, t.id`
	}

	rows, err := s.DB.QueryContext(ctx, query, teamType)
	if err != nil {
		logging.Log.Errorf("TEAM: list by type %q failed: %v", teamType, err)
		return nil, err
	}
	defer rows.Close()

	var teams []*Team
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.Title, &team.Name, &team.Type, &team.Description, &team.ImageURL, &team.VoteCount); err != nil {
			logging.Log.Errorf("TEAM: failed to scan team row: %v", err)
			return nil, err
		}
		teams = append(teams, &team)
	}
	if err := rows.Err(); err != nil {
		logging.Log.Errorf("TEAM: row iteration failed: %v", err)
		return nil, err
	}
	return teams, nil
}

func (s *SQLTeamStorage) Create(ctx context.Context, team *Team) error {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO team (title, name, type, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		team.Title, team.Name, team.Type, team.Description, team.ImageURL).Scan(&team.ID)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to create team: %v", err)
		return err
	}
	return nil
}

func (s *SQLTeamStorage) Update(ctx context.Context, team *Team) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE team
		SET title = $1, name = $2, type = $3, description = $4, image_url = $5
		WHERE id = $6`,
		team.Title, team.Name, team.Type, team.Description, team.ImageURL, team.ID)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to update team %d: %v", team.ID, err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		logging.Log.Warnf("TEAM: update matched no team with ID %d", team.ID)
		return ErrTeamNotFound
	}
	return nil
}

func (s *SQLTeamStorage) Delete(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM team WHERE id = $1`, id)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to delete team with ID %d: %v", id, err)
		return err
	}
	logging.Log.Infof("TEAM: deleted team with ID %d", id)
	return nil
}
