// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollroom API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - PollHandler: poll creation and poll state reads
  - VoteHandler: vote submission and tally publishing

Handlers depend on store.Store (the interface, not a concrete
implementation) so they unit-test against store.MemStore:

	pollHandler := handlers.NewPollHandler(st)
	voteHandler := handlers.NewVoteHandler(st, hub)

# Poll Flow

	POST /create_poll → CreatePoll (form: question, repeated options)
	GET  /poll/{id}   → GetPoll (question, options, live counts)

CreatePoll redirects to /poll/{id}; that URL is the shareable link.

# Vote Flow

	POST /vote → Vote (form: poll_id, option_id)

The voter identity is the request's network origin
(middleware.VoterIdentity) - best-effort dedup, not authentication.
Outcomes:

  - accepted: vote committed, tally published to the poll's room,
    303 redirect back to /poll/{id}
  - already voted: 409, no side effects, safe to retry
  - unknown option or poll: 404, no side effects

The handler publishes to the hub only after the store transaction commits,
so a broadcast can never describe state that did not happen.
*/
package handlers
