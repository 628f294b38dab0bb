// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema sticks to the SQL dialect shared by SQLite and PostgreSQL so
// both drivers run the same DDL.
const schema = `
-- Polls
-- votes_total counts accepted votes. Incrementing it first in the vote
-- transaction row-locks the poll, so votes for one poll commit in a
-- strict order and each gets a unique sequence number.
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    votes_total INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

-- Options
CREATE TABLE IF NOT EXISTS option (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id),
    label TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    ord INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_option_poll_id ON option(poll_id);

-- Vote records
-- The composite primary key is the at-most-one-vote-per-identity-per-poll
-- enforcement point. Duplicate votes fail here, not in application logic.
CREATE TABLE IF NOT EXISTS vote_record (
    poll_id TEXT NOT NULL REFERENCES poll(id),
    identity TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (poll_id, identity)
);
`
