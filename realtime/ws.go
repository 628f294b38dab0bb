// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/pollroom/models"
)

const (
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true }, // poll links are shared cross-origin
}

// Handler upgrades the connection and wires it into the hub. The client
// sends join_poll messages; the server pushes update_results messages.
// A failed or stalled write only tears down this connection - fan-out to
// the rest of the room is untouched.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
			return
		}
		defer conn.Close()

		sub := NewSubscriber()
		defer hub.Unsubscribe(sub)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Writer goroutine. Owns all writes to the connection, including
		// keepalive pings.
		go func() {
			ticker := time.NewTicker(pingInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case msg := <-sub.Out():
					_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
					if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
						cancel()
						return
					}
				case <-ticker.C:
					if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop. Viewers are mostly passive, so liveness comes from
		// ping/pong rather than expecting client traffic.
		_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongTimeout))
		})

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var join models.JoinPollMsg
			if err := json.Unmarshal(msg, &join); err != nil {
				continue
			}
			if join.Type != models.MsgJoinPoll || join.PollID == "" {
				continue
			}

			hub.Subscribe(sub, join.PollID)
		}
	}
}
