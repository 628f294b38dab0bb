// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime fans tally snapshots out to live poll viewers.

# Hub and Rooms

The Hub maps poll IDs to rooms of subscribers:

	hub := realtime.NewHub()
	go hub.Run(ctx)

	hub.Subscribe(sub, pollID)  // idempotent
	hub.Publish(tally)          // after the vote transaction commits
	hub.Unsubscribe(sub)        // on disconnect, removes from all rooms

Publish enqueues; the Run loop broadcasts. Vote handlers never touch
delivery directly, so store failures and delivery failures stay separate
concerns.

# Delivery Guarantees

Best-effort, per-connection ordered:

  - Each subscriber has a small buffered channel drained by its own writer
    goroutine. A full buffer drops the snapshot for that subscriber only -
    one stalled connection cannot block the room.
  - Each room tracks the highest Tally.Seq it has broadcast and discards
    anything at or below it, so no connection ever receives a snapshot
    older than one it already has, even when publishers race between
    commit and Publish.
  - A disconnected client simply misses updates; on reconnect it refetches
    current state from GET /poll/{id} before rejoining.

# Wire Protocol

JSON text messages over a WebSocket at GET /ws:

	client -> server: {"type": "join_poll", "poll_id": "..."}
	server -> client: {"type": "update_results", "poll_id": "...", "results": {"Coffee": 3, "Tea": 1}}

Liveness uses standard ping/pong; writes carry a deadline so a dead peer
is detected within seconds.
*/
package realtime
