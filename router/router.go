// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollroom/handlers"
	"github.com/danielhkuo/pollroom/middleware"
	"github.com/danielhkuo/pollroom/realtime"
	"github.com/danielhkuo/pollroom/store"
)

func NewRouter(st store.Store, hub *realtime.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st)
	voteHandler := handlers.NewVoteHandler(st, hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle
	mux.HandleFunc("POST /create_poll", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /poll/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /vote", middleware.WithLogging(voteHandler.Vote))

	// Realtime channel (logging would be per-message noise, so none here)
	mux.HandleFunc("GET /ws", realtime.Handler(hub))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollroom API v1"))
	})

	return mux
}
