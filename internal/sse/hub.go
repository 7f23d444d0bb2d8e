package sse

import (
	"bytes"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	GroupID   string      `json:"group_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected stream. EventChannel is closed when the client is
// unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event
	GroupID      string

	types   map[string]struct{}
	dropped atomic.Int64
}

func (c *Client) wants(e Event) bool {
	if c.types != nil {
		if _, ok := c.types[e.Type]; !ok {
			return false
		}
	}
	return c.GroupID == "" || e.GroupID == "" || c.GroupID == e.GroupID
}

// Dropped counts events skipped because the client was not keeping up
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub fans bus events out to connected clients. Registration happens under
// the lock; delivery runs on a single goroutine so clients see events in
// broadcast order.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	queue    chan Event
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub. Call Start before broadcasting.
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		queue:    make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start launches the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.deliver()
}

// Stop ends delivery and closes every client channel. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.closed = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) deliver() {
	defer h.wg.Done()
	for {
		select {
		case <-h.shutdown:
			return
		case e := <-h.queue:
			h.fanOut(e)
		}
	}
}

func (h *Hub) fanOut(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(e) {
			continue
		}
		select {
		case c.EventChannel <- e:
		default:
			c.dropped.Add(1)
		}
	}
}

// Register adds a client filtered to eventTypes (all when empty) and groupID
// (all when empty). It returns nil once the hub is stopped.
func (h *Hub) Register(eventTypes []string, groupID string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		GroupID:      groupID,
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.clients[c.ID] = c
	return c
}

// Unregister removes a client and closes its channel. Unknown ids are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event. It reports false when the queue is full or the
// hub has stopped.
func (h *Hub) Broadcast(eventType, groupID string, payload interface{}) bool {
	e := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		GroupID:   groupID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case <-h.shutdown:
		return false
	default:
	}

	select {
	case h.queue <- e:
		return true
	default:
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing
func FormatSSEMessage(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(e.ID) + len(e.Type) + 24)
	buf.WriteString("id: ")
	buf.WriteString(e.ID)
	buf.WriteString("\nevent: ")
	buf.WriteString(e.Type)
	buf.WriteString("\ndata: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
