package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
)

type VoterStorage interface {
	Find(ctx context.Context, name, studentID string) (*Voter, error)
	Create(ctx context.Context, voter *Voter) error
	GetVote(ctx context.Context, name, studentID string) (*int, error)
	SetVote(ctx context.Context, name, studentID string, teamID int) error
}

type SQLVoterStorage struct {
	DB *sql.DB
}

func (s *SQLVoterStorage) Find(ctx context.Context, name, studentID string) (*Voter, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, name, student_id, team_id FROM voter
		WHERE name = $1 AND student_id = $2`, name, studentID)

	var voter Voter
	err := row.Scan(&voter.ID, &voter.Name, &voter.StudentID, &voter.TeamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVoterNotFound
	}
	if err != nil {
		logging.Log.Errorf("VOTER: lookup for %q failed: %v", name, err)
		return nil, err
	}
	return &voter, nil
}

func (s *SQLVoterStorage) Create(ctx context.Context, voter *Voter) error {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO voter (name, student_id, team_id) VALUES ($1, $2, $3) RETURNING id`,
		voter.Name, voter.StudentID, voter.TeamID).Scan(&voter.ID)
	if err != nil {
		logging.Log.Errorf("VOTER: failed to register %q: %v", voter.Name, err)
		return err
	}
	logging.Log.Infof("VOTER: registered %q", voter.Name)
	return nil
}

func (s *SQLVoterStorage) GetVote(ctx context.Context, name, studentID string) (*int, error) {
	voter, err := s.Find(ctx, name, studentID)
	if err != nil {
		return nil, err
	}
	return voter.TeamID, nil
}

// SetVote overwrites the voter's current selection. Calling it again
// with a different team replaces the vote, it never appends.
func (s *SQLVoterStorage) SetVote(ctx context.Context, name, studentID string, teamID int) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE voter SET team_id = $1 WHERE name = $2 AND student_id = $3`,
		teamID, name, studentID)
	if err != nil {
		logging.Log.Errorf("VOTER: failed to set vote for %q: %v", name, err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		logging.Log.Warnf("VOTER: set vote matched no voter named %q", name)
		return ErrVoterNotFound
	}
	logging.Log.Infof("VOTER: %q now votes for team %d", name, teamID)
	return nil
}
