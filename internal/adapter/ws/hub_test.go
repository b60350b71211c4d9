package ws_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/alle-sub000/internal/adapter/ws"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

func dial(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) domain.Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event domain.Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestHub_SendsHeartbeat(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(20*time.Millisecond, []string{"*"})
	go hub.Run(ctx)

	conn := dial(t, hub)
	event := readEvent(t, conn)
	assert.Equal(t, domain.EventHeartbeat, event.Type)
}

func TestHub_BroadcastsPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(time.Hour, nil)
	go hub.Run(ctx)

	conn := dial(t, hub)
	hub.Publish(ctx, domain.Event{Type: domain.EventTaskCreated, EntityID: 7, Timestamp: time.Now()})

	event := readEvent(t, conn)
	assert.Equal(t, domain.EventTaskCreated, event.Type)
	assert.Equal(t, uint64(7), event.EntityID)
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(time.Hour, nil)
	go hub.Run(ctx)

	conn := dial(t, hub)
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_RejectsUnknownOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(time.Hour, []string{"http://localhost:5173"})
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	defer srv.Close()

	header := map[string][]string{"Origin": {"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 403, resp.StatusCode)
}
