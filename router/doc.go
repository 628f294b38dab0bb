// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pollroom API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, hub)

# Endpoints

Health:

	GET /health

Polls:

	POST /create_poll - Create a poll (form post, redirects to its page)
	GET  /poll/{id}   - Poll state: question, options, live counts

Voting:

	POST /vote - Cast a vote (form post, redirects back to the poll)

Realtime:

	GET /ws - WebSocket channel for join_poll / update_results

# Handler Initialization

The router creates handler instances with dependency injection:

	pollHandler := handlers.NewPollHandler(st)
	voteHandler := handlers.NewVoteHandler(st, hub)

Handlers receive the store interface; the vote handler also receives the
fan-out hub.
*/
package router
