package storage

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Teams
CREATE TABLE IF NOT EXISTS team (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_team_type ON team(type);

-- Gallery pictures
CREATE TABLE IF NOT EXISTS picture (
    id SERIAL PRIMARY KEY,
    team_id INT NOT NULL REFERENCES team(id) ON DELETE CASCADE,
    image_url TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_picture_team_id ON picture(team_id);

-- Registered student voters; team_id holds the current vote
CREATE TABLE IF NOT EXISTS voter (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    student_id TEXT NOT NULL,
    team_id INT
);

CREATE INDEX IF NOT EXISTS idx_voter_identity ON voter(name, student_id);
CREATE INDEX IF NOT EXISTS idx_voter_team_id ON voter(team_id);
`
