// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollroom server.

Pollroom is a live polling service: create a poll with a question and a set
of options, share the poll URL, and every viewer sees vote tallies update in
real time over a WebSocket.

# Starting the Server

	go run main.go

With no configuration this listens on :10000 and stores data in a
database.db SQLite file in the working directory. A .env file is loaded if
present.

# Configuration

	PORT (-p):          listen port (default: 10000)
	DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
	DATABASE_URL (-d):  sqlite file path or postgres connection string

# How a Vote Flows

	POST /vote → store.CastVote (one transaction: ledger + tally + snapshot)
	           → hub.Publish → update_results to every viewer in the room

Vote dedup is a best-effort network-origin heuristic: one vote per apparent
client IP per poll, enforced by a database uniqueness constraint. It is
spoofable and collapses voters behind shared NATs; it is not authentication.
*/
package main
