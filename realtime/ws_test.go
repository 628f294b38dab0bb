// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/pollroom/models"
)

func dialTestServer(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestWebSocketJoinAndReceive(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dialTestServer(t, srv)

	err := conn.WriteJSON(models.JoinPollMsg{Type: models.MsgJoinPoll, PollID: "poll-1"})
	if err != nil {
		t.Fatalf("Failed to send join_poll: %v", err)
	}

	// The join is processed asynchronously; publish until it lands or we
	// give up. Republishing with increasing Seq mimics further votes.
	received := make(chan models.UpdateResultsMsg, 1)
	go func() {
		var msg models.UpdateResultsMsg
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&msg); err == nil {
			received <- msg
		}
	}()

	deadline := time.After(2 * time.Second)
	seq := 1
	for {
		hub.Publish(models.Tally{PollID: "poll-1", Seq: seq, Results: map[string]int{"Coffee": seq}})
		seq++

		select {
		case msg := <-received:
			if msg.Type != models.MsgUpdateResults || msg.PollID != "poll-1" {
				t.Fatalf("received %+v, want update_results for poll-1", msg)
			}
			return
		case <-deadline:
			t.Fatal("Timed out waiting for update_results")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWebSocketMalformedJoinIgnored(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dialTestServer(t, srv)

	// Garbage and wrong-type messages must not kill the connection
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.WriteJSON(map[string]string{"type": "something_else"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// The connection is still usable for a real join
	if err := conn.WriteJSON(models.JoinPollMsg{Type: models.MsgJoinPoll, PollID: "poll-1"}); err != nil {
		t.Fatalf("join after garbage failed: %v", err)
	}
}

func TestWebSocketDisconnectLeavesRoom(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dialTestServer(t, srv)
	if err := conn.WriteJSON(models.JoinPollMsg{Type: models.MsgJoinPoll, PollID: "poll-1"}); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	conn.Close()

	// Give the server side a moment to notice and clean up, then confirm
	// broadcasting to the now-empty room doesn't explode.
	time.Sleep(50 * time.Millisecond)
	hub.Publish(models.Tally{PollID: "poll-1", Seq: 1, Results: map[string]int{"A": 1}})
	time.Sleep(50 * time.Millisecond)
}
