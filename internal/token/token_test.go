package token

import (
    "context"
    "sync"
    "testing"
)

func TestMemorySetGetClear(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    if got := m.Get(ctx); got != "" { t.Fatalf("empty store: got %q", got) }
    m.Set(ctx, "abc")
    if got := m.Get(ctx); got != "abc" { t.Fatalf("after set: got %q", got) }
    m.Clear(ctx)
    if got := m.Get(ctx); got != "" { t.Fatalf("after clear: got %q", got) }
}

func TestMemoryConcurrent(t *testing.T) {
    ctx := context.Background()
    m := NewMemory()
    var wg sync.WaitGroup
    for i := 0; i < 50; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            m.Set(ctx, "tok")
            _ = m.Get(ctx)
            m.Clear(ctx)
        }()
    }
    wg.Wait()
}
