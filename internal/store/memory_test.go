package store

import (
    "context"
    "encoding/json"
    "testing"
)

func TestMemoryInsertAndList(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    raw := json.RawMessage(`{"AWBNo":"PKD1","short_code":"PCK"}`)
    id, err := m.InsertWebhookEvent(ctx, eventFor("PKD1", "PCK", raw))
    if err != nil { t.Fatalf("insert: %v", err) }
    if id == "" { t.Fatal("empty id") }

    items, next, err := m.ListWebhookEvents(ctx, "", "", 10)
    if err != nil { t.Fatalf("list: %v", err) }
    if len(items) != 1 { t.Fatalf("want 1 event, got %d", len(items)) }
    if next != "" { t.Fatalf("unexpected cursor %q", next) }
    if string(items[0].RawPayload) != string(raw) { t.Fatalf("raw payload not preserved: %s", items[0].RawPayload) }
    if items[0].CreatedAt.IsZero() { t.Fatal("createdAt not set") }
}

func TestMemoryInsertIsNotDeduplicated(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    ev := eventFor("PKD1", "PCK", json.RawMessage(`{}`))
    if _, err := m.InsertWebhookEvent(ctx, ev); err != nil { t.Fatal(err) }
    if _, err := m.InsertWebhookEvent(ctx, ev); err != nil { t.Fatal(err) }
    items, _, err := m.ListWebhookEvents(ctx, "PKD1", "", 10)
    if err != nil { t.Fatalf("list: %v", err) }
    if len(items) != 2 { t.Fatalf("identical pushes must create two rows, got %d", len(items)) }
}

func TestMemoryListFilterAndCursor(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    for i := 0; i < 3; i++ {
        if _, err := m.InsertWebhookEvent(ctx, eventFor("A", "NEW", nil)); err != nil { t.Fatal(err) }
    }
    if _, err := m.InsertWebhookEvent(ctx, eventFor("B", "DLD", nil)); err != nil { t.Fatal(err) }

    items, next, err := m.ListWebhookEvents(ctx, "A", "", 2)
    if err != nil { t.Fatalf("list: %v", err) }
    if len(items) != 2 || next == "" { t.Fatalf("page 1: got %d items, cursor %q", len(items), next) }
    items, _, err = m.ListWebhookEvents(ctx, "A", next, 2)
    if err != nil { t.Fatalf("list page 2: %v", err) }
    if len(items) != 1 { t.Fatalf("page 2: got %d items", len(items)) }
    for _, ev := range items {
        if ev.AWBNo != "A" { t.Fatalf("filter leaked AWB %q", ev.AWBNo) }
    }
}
