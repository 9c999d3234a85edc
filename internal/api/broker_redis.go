package api

import (
    "context"
    "encoding/json"
    "sync"
    "time"

    redis "github.com/redis/go-redis/v9"
)

type EventBroker interface {
    Subscribe(awbNo string) chan StreamEvent
    Unsubscribe(awbNo string, ch chan StreamEvent)
    Publish(awbNo string, evt StreamEvent)
}

// RedisBroker implements EventBroker over Redis Pub/Sub so every replica
// sees webhook events regardless of which one received the push.
type RedisBroker struct {
    rdb *redis.Client

    mu   sync.Mutex
    subs map[chan StreamEvent]*redis.PubSub
}

func NewRedisBroker(url string) (*RedisBroker, error) {
    opt, err := redis.ParseURL(url)
    if err != nil { return nil, err }
    return &RedisBroker{rdb: redis.NewClient(opt), subs: map[chan StreamEvent]*redis.PubSub{}}, nil
}

func (b *RedisBroker) Subscribe(awbNo string) chan StreamEvent {
    ch := make(chan StreamEvent, 16)
    ctx := context.Background()
    ps := b.rdb.Subscribe(ctx, b.chanName(awbNo))
    // initial consume to ensure the subscription is live
    _, _ = ps.Receive(ctx)

    b.mu.Lock()
    b.subs[ch] = ps
    b.mu.Unlock()

    go func() {
        defer close(ch)
        for msg := range ps.Channel() {
            var evt StreamEvent
            if err := json.Unmarshal([]byte(msg.Payload), &evt); err == nil {
                select { case ch <- evt: default: }
            }
        }
    }()
    return ch
}

func (b *RedisBroker) Unsubscribe(awbNo string, ch chan StreamEvent) {
    b.mu.Lock()
    ps := b.subs[ch]
    delete(b.subs, ch)
    b.mu.Unlock()
    if ps != nil {
        // closing the PubSub ends ps.Channel(); the reader goroutine
        // then closes ch
        _ = ps.Close()
    }
}

func (b *RedisBroker) Publish(awbNo string, evt StreamEvent) {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    data, _ := json.Marshal(evt)
    _ = b.rdb.Publish(ctx, b.chanName(awbNo), data).Err()
    if awbNo != "" {
        _ = b.rdb.Publish(ctx, b.chanName(""), data).Err()
    }
}

func (b *RedisBroker) chanName(awbNo string) string {
    if awbNo == "" { return "pikndel:events" }
    return "pikndel:events:" + awbNo
}
