// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollroom/middleware"
	"github.com/danielhkuo/pollroom/realtime"
	"github.com/danielhkuo/pollroom/store"
)

type VoteHandler struct {
	store store.Store
	hub   *realtime.Hub
}

func NewVoteHandler(st store.Store, hub *realtime.Hub) *VoteHandler {
	return &VoteHandler{store: st, hub: hub}
}

// Vote handles POST /vote
// Form fields: poll_id, option_id. The voter identity comes from the
// request's network origin. On success the committed tally is published to
// the poll's room and the client is redirected back to the poll page.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	pollID := r.FormValue("poll_id")
	optionID := r.FormValue("option_id")
	if pollID == "" || optionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id and option_id are required")
		return
	}

	identity := middleware.VoterIdentity(r)

	tally, err := h.store.CastVote(r.Context(), pollID, optionID, identity)
	switch {
	case errors.Is(err, store.ErrAlreadyVoted):
		// Safe to retry from the client's side: the ledger makes the
		// duplicate a no-op, never a second count.
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")
		return
	case errors.Is(err, store.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	case errors.Is(err, store.ErrNoSuchOption):
		middleware.ErrorResponse(w, http.StatusNotFound, "No such option")
		return
	case err != nil:
		slog.Error("failed to record vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	// The vote is committed; delivery is the hub's problem from here.
	h.hub.Publish(*tally)

	slog.Info("vote accepted", "poll_id", pollID, "option_id", optionID, "seq", tally.Seq)

	http.Redirect(w, r, "/poll/"+pollID, http.StatusSeeOther)
}
