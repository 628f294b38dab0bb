// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/pollroom/models"
	"github.com/danielhkuo/pollroom/token"
)

// MemStore implements Store with a mutex-guarded map. It exists so the
// handlers and the fan-out layer can be exercised without a database; the
// durable implementation is SQLStore. The mutex spans every operation, which
// gives MemStore the same atomicity the SQL transactions give SQLStore.
type MemStore struct {
	mu    sync.Mutex
	polls map[string]*memPoll
}

type memPoll struct {
	poll    models.Poll
	options []models.Option
	voted   map[string]bool // identity set, the in-memory vote ledger
	seq     int
}

func NewMemStore() *MemStore {
	return &MemStore{polls: make(map[string]*memPoll)}
}

func (s *MemStore) CreatePoll(ctx context.Context, question string, options []string) (*models.PollWithOptions, error) {
	question, labels, err := normalizePollInput(question, options)
	if err != nil {
		return nil, err
	}

	pollID := token.NewPollID()
	now := time.Now().UTC()

	p := &memPoll{
		poll:    models.Poll{ID: pollID, Question: question, CreatedAt: now},
		options: make([]models.Option, 0, len(labels)),
		voted:   make(map[string]bool),
	}
	for i, label := range labels {
		optionID, err := token.NewID(12)
		if err != nil {
			return nil, err
		}
		p.options = append(p.options, models.Option{
			ID:       optionID,
			PollID:   pollID,
			Label:    label,
			Position: i,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls[pollID] = p

	return p.snapshot(), nil
}

func (s *MemStore) GetPoll(ctx context.Context, pollID string) (*models.PollWithOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[pollID]
	if !ok {
		return nil, ErrPollNotFound
	}
	return p.snapshot(), nil
}

func (s *MemStore) CastVote(ctx context.Context, pollID, optionID, identity string) (*models.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[pollID]
	if !ok {
		return nil, ErrPollNotFound
	}
	if p.voted[identity] {
		return nil, ErrAlreadyVoted
	}

	for i := range p.options {
		if p.options[i].ID == optionID {
			p.voted[identity] = true
			p.options[i].Votes++
			p.seq++
			return &models.Tally{PollID: pollID, Seq: p.seq, Results: p.snapshot().Results()}, nil
		}
	}

	return nil, ErrNoSuchOption
}

// snapshot copies the poll state so callers never alias store-owned slices.
// Callers must hold the store mutex.
func (p *memPoll) snapshot() *models.PollWithOptions {
	out := &models.PollWithOptions{
		Poll:    p.poll,
		Options: make([]models.Option, len(p.options)),
	}
	copy(out.Options, p.options)
	return out
}
