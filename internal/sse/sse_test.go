package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/event"
)

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_FiltersByTypeAndGroup(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	all := h.Register(nil, "")
	onlyResolved := h.Register([]string{EventTypeAdventureResolved}, "")
	groupA := h.Register(nil, "a")
	waitForClients(t, h, 3)

	require.True(t, h.Broadcast(EventTypeAdventureStarted, "b", "started-b"))
	require.True(t, h.Broadcast(EventTypeAdventureResolved, "a", "resolved-a"))

	assert.Equal(t, "started-b", receive(t, all).Payload)
	assert.Equal(t, "resolved-a", receive(t, all).Payload)
	assert.Equal(t, "resolved-a", receive(t, onlyResolved).Payload)
	assert.Equal(t, "resolved-a", receive(t, groupA).Payload, "group filter skips other groups")
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register(nil, "")
	waitForClients(t, h, 1)

	h.Unregister(c.ID)
	waitForClients(t, h, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopTwiceAndRegisterAfterStop(t *testing.T) {
	h := NewHub()
	h.Start()
	h.Stop()
	h.Stop()

	assert.Nil(t, h.Register(nil, ""))
}

func TestHub_BroadcastAfterStop(t *testing.T) {
	h := NewHub()
	h.Start()
	h.Stop()

	assert.False(t, h.Broadcast(EventTypeKeepalive, "", nil))
}

func TestHub_SlowClientDropsEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register(nil, "")
	require.NotNil(t, c)

	for i := 0; i < ClientEventBuffer+5; i++ {
		require.True(t, h.Broadcast(EventTypeKeepalive, "", i))
	}

	require.Eventually(t, func() bool { return c.Dropped() == 5 }, time.Second, 5*time.Millisecond)
	assert.Len(t, c.EventChannel, ClientEventBuffer)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeKeepalive})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: keepalive\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestSubscriber_BridgesResolution(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe(context.Background())

	c := h.Register([]string{EventTypeAdventureResolved}, "grp")
	waitForClients(t, h, 1)

	require.NoError(t, bus.Publish(context.Background(), event.NewAdventureResolvedEvent(event.AdventureResolvedPayloadV1{
		SessionID: uuid.New(),
		GroupID:   "grp",
		Monster:   "Ogre",
		Success:   true,
		Slain:     true,
		Attack:    120.6,
		Participants: []event.ParticipantOutcomeV1{
			{UserID: "alice", Action: "fight", Currency: 40, PetBonus: 10},
		},
	})))

	e := receive(t, c)
	payload, ok := e.Payload.(AdventureResolvedPayload)
	require.True(t, ok)
	assert.Equal(t, "The Ogre was slain.", payload.Headline)
	assert.Equal(t, 121, payload.Attack)
	require.Len(t, payload.Participants, 1)
	assert.Equal(t, int64(50), payload.Participants[0].Currency)
}

func TestResolvedHeadline(t *testing.T) {
	tests := []struct {
		name string
		p    event.AdventureResolvedPayloadV1
		want string
	}{
		{"persuaded", event.AdventureResolvedPayloadV1{Monster: "Imp", Success: true, Persuaded: true}, "The Imp was persuaded to leave."},
		{"gate", event.AdventureResolvedPayloadV1{Monster: "Golem", GateFailed: true, Participants: make([]event.ParticipantOutcomeV1, 1)}, "The Golem shrugged off every blow."},
		{"nobody", event.AdventureResolvedPayloadV1{Monster: "Rat"}, "Nobody answered the call. The Rat wanders off."},
		{"defeat", event.AdventureResolvedPayloadV1{Monster: "Rat", Participants: make([]event.ParticipantOutcomeV1, 2)}, "The party was driven off by the Rat."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvedHeadline(tt.p))
		})
	}
}

func TestHandler_StreamsConnectedEvent(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	srv := httptest.NewServer(Handler(h))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?group=g1&types=adventure.started", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	_, err = reader.ReadString('\n') // id
	require.NoError(t, err)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)
}
