// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollroom/middleware"
	"github.com/danielhkuo/pollroom/store"
)

type PollHandler struct {
	store store.Store
}

func NewPollHandler(st store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// CreatePoll handles POST /create_poll
// Form fields: question (string), options (repeated string)
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	question := r.FormValue("question")
	options := r.Form["options"]

	poll, err := h.store.CreatePoll(r.Context(), question, options)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.Poll.ID, "options", len(poll.Options))

	// Redirect to the new poll's page; its URL is the shareable link.
	http.Redirect(w, r, "/poll/"+poll.Poll.ID, http.StatusSeeOther)
}

// GetPoll handles GET /poll/{id}
// Returns the question, options, and live counts. Realtime clients fetch
// this before joining the poll's room so they start from a consistent
// snapshot instead of racing the next broadcast.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
