// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	// Second run must be a no-op, not an error
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema() second run error = %v", err)
	}

	for _, table := range []string{"poll", "option", "vote_record"} {
		var name string
		err := conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing after CreateSchema: %v", table, err)
		}
	}
}

func TestVoteRecordUniqueness(t *testing.T) {
	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}

	_, err = conn.Exec("INSERT INTO vote_record (poll_id, identity, created_at) VALUES ('p1', '1.2.3.4', CURRENT_TIMESTAMP)")
	if err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	// The composite primary key must reject the duplicate
	_, err = conn.Exec("INSERT INTO vote_record (poll_id, identity, created_at) VALUES ('p1', '1.2.3.4', CURRENT_TIMESTAMP)")
	if err == nil {
		t.Error("duplicate (poll_id, identity) insert succeeded, want constraint violation")
	}

	// Same identity on a different poll is fine
	_, err = conn.Exec("INSERT INTO vote_record (poll_id, identity, created_at) VALUES ('p2', '1.2.3.4', CURRENT_TIMESTAMP)")
	if err != nil {
		t.Errorf("insert for different poll failed: %v", err)
	}
}
