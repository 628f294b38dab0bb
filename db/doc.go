// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - poll: Question and creation time
  - option: Voting options with live counts
  - vote_record: One row per (poll, voter identity)

# Relationships

	poll 1──* option
	poll 1──* vote_record

# The Load-Bearing Constraint

vote_record's composite primary key (poll_id, identity) is what enforces
at-most-one-vote-per-identity-per-poll. Concurrent duplicate votes race at
the database, and the database picks exactly one winner. Application code
never checks "has this identity voted?" separately from inserting - that
would be a lost race waiting to happen.

# Dialect

The DDL is restricted to the dialect shared by SQLite (modernc.org/sqlite)
and PostgreSQL (lib/pq), so either backend runs unmodified.
*/
package db
