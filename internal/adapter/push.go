// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/models"
)

const (
	pushHandshakeTimeout  = 10 * time.Second
	pushHeartbeatInterval = 30 * time.Second
)

// pushEnvelope is one websocket frame from the notification stream. The
// backend wraps every notification in {event, data}; frames with other event
// tags (heartbeat acks, presence) are skipped.
type pushEnvelope struct {
	Event string              `json:"event"`
	Data  models.Notification `json:"data"`
}

// PushClient reads live notifications from the portal's websocket endpoint.
// One Run call covers one connection lifetime: it dials, forwards incoming
// notifications to the out channel, keeps the connection alive with pings,
// and returns when the connection drops or ctx is cancelled. Redial policy
// belongs to the caller.
type PushClient struct {
	url    string
	tokens TokenSource
	out    chan<- models.Notification
	logger *logger.Logger
}

// NewPushClient builds a push reader for the given websocket address.
// Notifications are delivered on out; the channel is never closed by the
// client.
func NewPushClient(wsURL string, tokens TokenSource, out chan<- models.Notification, log *logger.Logger) (*PushClient, error) {
	wsURL = strings.TrimSpace(wsURL)
	if wsURL == "" {
		return nil, fmt.Errorf("empty push address")
	}

	// Accept http(s) addresses too and convert the scheme.
	if strings.HasPrefix(wsURL, "https") {
		wsURL = "wss" + wsURL[len("https"):]
	} else if strings.HasPrefix(wsURL, "http") {
		wsURL = "ws" + wsURL[len("http"):]
	}

	return &PushClient{url: wsURL, tokens: tokens, out: out, logger: log}, nil
}

// Run dials the push endpoint and pumps notifications until the connection
// fails or ctx is done. A nil return means ctx was cancelled; any other
// return is the connection error.
func (p *PushClient) Run(ctx context.Context) error {
	token, err := p.tokens.Token()
	if err != nil {
		return fmt.Errorf("resolve session token: %w", err)
	}

	dialer := websocket.Dialer{HandshakeTimeout: pushHandshakeTimeout}
	header := http.Header{"Authorization": []string{"Bearer " + token}}

	conn, _, err := dialer.DialContext(ctx, p.url, header)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.Close()

	p.logger.Debug().Str("url", p.url).Msg("push stream connected")

	done := make(chan struct{})
	defer close(done)
	go p.heartbeat(conn, done)

	// Unblock ReadMessage when ctx is cancelled.
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			)
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("websocket read: %w", err)
		}

		notification, ok := decodePushFrame(message)
		if !ok {
			continue
		}

		select {
		case p.out <- notification:
		case <-ctx.Done():
			return nil
		}
	}
}

func (p *PushClient) heartbeat(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pushHeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// decodePushFrame tolerates both the {event, data} envelope and a bare
// notification object; anything else is skipped.
func decodePushFrame(message []byte) (models.Notification, bool) {
	var env pushEnvelope
	if err := json.Unmarshal(message, &env); err == nil && env.Data.ID != "" {
		if env.Event != "" && env.Event != "notification" {
			return models.Notification{}, false
		}
		return env.Data, true
	}

	var n models.Notification
	if err := json.Unmarshal(message, &n); err == nil && n.ID != "" {
		return n, true
	}

	return models.Notification{}, false
}
