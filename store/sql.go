// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/pollroom/models"
	"github.com/danielhkuo/pollroom/token"
)

// SQLStore implements Store on database/sql. The SQL sticks to the dialect
// shared by SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq): $N
// placeholders, INSERT ... ON CONFLICT, UPDATE ... RETURNING.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreatePoll(ctx context.Context, question string, options []string) (*models.PollWithOptions, error) {
	question, labels, err := normalizePollInput(question, options)
	if err != nil {
		return nil, err
	}

	pollID := token.NewPollID()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, question, created_at)
		VALUES ($1, $2, $3)
	`, pollID, question, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	result := &models.PollWithOptions{
		Poll:    models.Poll{ID: pollID, Question: question, CreatedAt: now},
		Options: make([]models.Option, 0, len(labels)),
	}

	for i, label := range labels {
		optionID, err := token.NewID(12)
		if err != nil {
			return nil, err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO option (id, poll_id, label, votes, ord)
			VALUES ($1, $2, $3, 0, $4)
		`, optionID, pollID, label, i)
		if err != nil {
			return nil, fmt.Errorf("failed to insert option: %w", err)
		}

		result.Options = append(result.Options, models.Option{
			ID:       optionID,
			PollID:   pollID,
			Label:    label,
			Position: i,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit poll: %w", err)
	}

	return result, nil
}

func (s *SQLStore) GetPoll(ctx context.Context, pollID string) (*models.PollWithOptions, error) {
	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, created_at FROM poll WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	options, err := s.pollOptions(ctx, s.db, pollID)
	if err != nil {
		return nil, err
	}

	return &models.PollWithOptions{Poll: poll, Options: options}, nil
}

// CastVote runs the whole vote pipeline in one transaction:
//
//  1. bump poll.votes_total - row-locks the poll, serializing votes per poll
//     and assigning this vote its sequence number
//  2. register the voter identity in the ledger (insert-if-absent)
//  3. increment the option's count with a storage-level atomic add
//  4. read the tally snapshot while the poll is still locked
//
// Any failure rolls everything back, including the votes_total bump.
func (s *SQLStore) CastVote(ctx context.Context, pollID, optionID, identity string) (*models.Tally, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRowContext(ctx, `
		UPDATE poll SET votes_total = votes_total + 1
		WHERE id = $1
		RETURNING votes_total
	`, pollID).Scan(&seq)

	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sequence vote: %w", err)
	}

	accepted, err := s.tryRegister(ctx, tx, pollID, identity)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, ErrAlreadyVoted
	}

	if _, err := s.incrementOption(ctx, tx, pollID, optionID); err != nil {
		return nil, err
	}

	options, err := s.pollOptions(ctx, tx, pollID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}

	snapshot := &models.PollWithOptions{Options: options}
	return &models.Tally{PollID: pollID, Seq: seq, Results: snapshot.Results()}, nil
}

// tryRegister is the vote ledger: insert-if-absent against the composite
// primary key on vote_record. Returns false when the identity already holds
// a vote record for the poll. ON CONFLICT DO NOTHING makes the check and the
// insert a single indivisible statement, so concurrent duplicates resolve
// at the database and exactly one caller sees true.
func (s *SQLStore) tryRegister(ctx context.Context, tx *sql.Tx, pollID, identity string) (bool, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO vote_record (poll_id, identity, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (poll_id, identity) DO NOTHING
	`, pollID, identity, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to register vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to register vote: %w", err)
	}

	return n == 1, nil
}

// incrementOption is the tally engine: a storage-level atomic add, never a
// read-modify-write in application code. The poll_id condition rejects
// options that exist but belong to a different poll.
func (s *SQLStore) incrementOption(ctx context.Context, tx *sql.Tx, pollID, optionID string) (int, error) {
	var votes int
	err := tx.QueryRowContext(ctx, `
		UPDATE option SET votes = votes + 1
		WHERE id = $1 AND poll_id = $2
		RETURNING votes
	`, optionID, pollID).Scan(&votes)

	if err == sql.ErrNoRows {
		return 0, ErrNoSuchOption
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment option: %w", err)
	}

	return votes, nil
}

// querier lets pollOptions run against the pool or inside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *SQLStore) pollOptions(ctx context.Context, q querier, pollID string) ([]models.Option, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, poll_id, label, votes, ord
		FROM option
		WHERE poll_id = $1
		ORDER BY ord, id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Label, &opt.Votes, &opt.Position); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return options, nil
}
