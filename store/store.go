// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/pollroom/models"
)

var (
	ErrValidation   = errors.New("invalid poll")
	ErrPollNotFound = errors.New("poll not found")
	ErrNoSuchOption = errors.New("no such option")
	ErrAlreadyVoted = errors.New("already voted")
)

// Store is the narrow repository interface the handlers and tests depend on.
// SQLStore is the durable implementation; MemStore is the in-memory one.
type Store interface {
	// CreatePoll validates the question and option texts, persists the poll
	// and its options as a single atomic unit, and returns the stored poll.
	// Fails with ErrValidation and persists nothing if the question is empty
	// or fewer than 2 options survive trimming.
	CreatePoll(ctx context.Context, question string, options []string) (*models.PollWithOptions, error)

	// GetPoll returns the poll, its ordered options, and live counts,
	// or ErrPollNotFound.
	GetPoll(ctx context.Context, pollID string) (*models.PollWithOptions, error)

	// CastVote atomically registers the voter identity against the poll and
	// increments the option's count - either both happen or neither does.
	// Returns the post-commit tally snapshot for broadcasting.
	// Fails with ErrPollNotFound, ErrAlreadyVoted, or ErrNoSuchOption, in
	// that order of precedence, with no side effects.
	CastVote(ctx context.Context, pollID, optionID, identity string) (*models.Tally, error)
}

// normalizePollInput trims the question and option texts, drops options that
// are empty after trimming, and enforces the creation invariants.
func normalizePollInput(question string, options []string) (string, []string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", nil, fmt.Errorf("%w: question is required", ErrValidation)
	}

	labels := make([]string, 0, len(options))
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	if len(labels) < 2 {
		return "", nil, fmt.Errorf("%w: need at least 2 options", ErrValidation)
	}

	return question, labels, nil
}
