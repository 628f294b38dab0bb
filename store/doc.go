// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls, options, and vote records.

# The Store Interface

Three narrow operations:

	CreatePoll(ctx, question, options) - validate and persist atomically
	GetPoll(ctx, pollID)               - poll, ordered options, live counts
	CastVote(ctx, pollID, optionID, identity) - the vote pipeline

Handlers depend on the interface, not an implementation, so vote semantics
are unit-testable without a database.

# Implementations

  - SQLStore: database/sql, runs on SQLite (modernc.org/sqlite) or
    PostgreSQL (lib/pq) with one shared SQL dialect
  - MemStore: mutex-guarded maps for tests and throwaway dev runs

# The Vote Pipeline

CastVote is a single transaction:

 1. UPDATE poll SET votes_total = votes_total + 1 ... RETURNING votes_total
 2. INSERT INTO vote_record ... ON CONFLICT (poll_id, identity) DO NOTHING
 3. UPDATE option SET votes = votes + 1 ... RETURNING votes
 4. SELECT the tally snapshot

Step 1 row-locks the poll, so concurrent votes for the same poll commit in
a strict order and the returned total is a unique, monotonic sequence number
for the broadcast. Step 2 is the dedup ledger: zero rows affected means this
identity already voted, and the transaction rolls back with ErrAlreadyVoted.
Step 3 is a storage-level atomic add - never read-modify-write in Go - and
doubles as the option-belongs-to-poll check. Step 4 reads the snapshot while
the poll is still locked, so the snapshot matches exactly the state this
vote committed.

Vote counts and dedup state live only in the database. Process memory holds
no counters, so a restart or a concurrent handler can never observe or
produce a wrong count.

# Errors

Sentinel errors for the caller to map to responses:

	ErrValidation   - bad question or fewer than 2 usable options
	ErrPollNotFound - unknown poll ID
	ErrNoSuchOption - option missing or owned by a different poll
	ErrAlreadyVoted - identity already holds a vote record for the poll

Anything else is a storage failure wrapped with %w.
*/
package store
