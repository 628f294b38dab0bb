// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, response, and realtime message types.

# Domain Types

  - Poll: question and creation time, immutable after creation
  - Option: voting option with label and live vote count
  - PollWithOptions: a poll plus its ordered options
  - Tally: snapshot broadcast to a poll's room after an accepted vote

# Realtime Messages

Messages exchanged over the WebSocket channel:

  - JoinPollMsg: client joins a poll's room ("join_poll")
  - UpdateResultsMsg: server pushes label -> count mapping ("update_results")

# Tally Sequencing

Tally.Seq is the poll's total accepted vote count when the vote committed.
Each accepted vote bumps it by exactly one, so the fan-out layer can use it
to discard out-of-order snapshots without coordinating with the store.

# Response Types

	ErrorResponse: error, message
*/
package models
