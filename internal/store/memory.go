package store

import (
    "context"
    "sync"
    "time"

    "github.com/google/uuid"

    "pikndelgw/internal/model"
)

// Memory is a simple in-memory store used when no DATABASE_URL is set.
type Memory struct {
    mu     sync.Mutex
    events []model.WebhookEvent // insertion order
    byID   map[string]int
}

func NewMemory() *Memory {
    return &Memory{byID: map[string]int{}}
}

func (m *Memory) InsertWebhookEvent(ctx context.Context, ev model.WebhookEvent) (string, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    ev.ID = uuid.New().String()
    now := time.Now().UTC()
    ev.CreatedAt = now
    ev.UpdatedAt = now
    m.byID[ev.ID] = len(m.events)
    m.events = append(m.events, ev)
    return ev.ID, nil
}

func (m *Memory) ListWebhookEvents(ctx context.Context, awbNo, cursor string, limit int) ([]model.WebhookEvent, string, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    if limit <= 0 || limit > 500 { limit = 100 }
    start := 0
    if cursor != "" {
        if i, ok := m.byID[cursor]; ok { start = i + 1 }
    }
    out := []model.WebhookEvent{}
    var next string
    for i := start; i < len(m.events) && len(out) < limit; i++ {
        ev := m.events[i]
        if awbNo != "" && ev.AWBNo != awbNo { continue }
        out = append(out, ev)
        next = ev.ID
    }
    if len(out) < limit { next = "" }
    return out, next, nil
}
