// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package token generates identifiers for database records.

# Poll IDs

Poll identifiers are UUIDv4 strings:

	pollID := token.NewPollID()

The poll ID is the shareable handle for a poll - it appears in the poll URL
and in realtime join messages. It carries no information and is never reused.

# Record IDs

Random hex IDs for other database records:

	id, err := token.NewID(12)  // 24 hex characters

Used for option IDs. Collision probability at these lengths is negligible
for this system's scale.
*/
package token
