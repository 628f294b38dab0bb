// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/danielhkuo/pollroom/models"
)

// subscriber buffer size. A full buffer means the connection's writer is not
// keeping up; further snapshots are dropped for that subscriber only.
const sendBuffer = 16

// Hub maintains per-poll rooms and pushes tally snapshots to their members.
// Vote handlers publish committed tallies into the hub's update channel; a
// single run loop drains it and fans out. Delivery is best-effort: a send to
// a slow subscriber is dropped rather than allowed to stall the room.
type Hub struct {
	mu      sync.Mutex
	rooms   map[string]*room
	updates chan models.Tally
}

type room struct {
	subs map[*Subscriber]struct{}
	// highest Seq broadcast so far. Publishers can race each other between
	// commit and Publish, so snapshots may arrive out of order; anything at
	// or below lastSeq is already superseded and gets dropped.
	lastSeq int
}

// Subscriber is a live connection's send side. The transport owns a writer
// goroutine that drains Out.
type Subscriber struct {
	out chan []byte
}

func NewSubscriber() *Subscriber {
	return &Subscriber{out: make(chan []byte, sendBuffer)}
}

// Out is drained by the connection's writer goroutine.
func (s *Subscriber) Out() <-chan []byte {
	return s.out
}

func NewHub() *Hub {
	return &Hub{
		rooms:   make(map[string]*room),
		updates: make(chan models.Tally, 256),
	}
}

// Subscribe adds the subscriber to the poll's room. Idempotent - joining a
// room twice has no additional effect.
func (h *Hub) Subscribe(sub *Subscriber, pollID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[pollID]
	if !ok {
		rm = &room{subs: make(map[*Subscriber]struct{})}
		h.rooms[pollID] = rm
	}
	rm.subs[sub] = struct{}{}
}

// Unsubscribe removes the subscriber from every room it joined. Called once
// when the connection goes away; the subscriber is not reusable afterward.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for pollID, rm := range h.rooms {
		delete(rm.subs, sub)
		if len(rm.subs) == 0 {
			delete(h.rooms, pollID)
		}
	}
}

// Publish enqueues a committed tally for broadcast. Callers only publish
// after their store transaction commits, so a storage failure can never
// surface here and a delivery failure can never unwind a vote.
func (h *Hub) Publish(t models.Tally) {
	h.updates <- t
}

// Run drains the update channel until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-h.updates:
			h.broadcast(t)
		}
	}
}

func (h *Hub) broadcast(t models.Tally) {
	msg, err := json.Marshal(models.UpdateResultsMsg{
		Type:    models.MsgUpdateResults,
		PollID:  t.PollID,
		Results: t.Results,
	})
	if err != nil {
		slog.Error("failed to encode tally broadcast", "error", err, "poll_id", t.PollID)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[t.PollID]
	if !ok {
		return
	}
	if t.Seq <= rm.lastSeq {
		return
	}
	rm.lastSeq = t.Seq

	for sub := range rm.subs {
		select {
		case sub.out <- msg:
		default:
			// Slow subscriber; it misses this snapshot and catches up on
			// the next one, or refetches via GET /poll/{id}.
			slog.Debug("dropped tally broadcast", "poll_id", t.PollID)
		}
	}
}
