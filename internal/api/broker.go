package api

import (
    "sync"
)

// StreamEvent is one received webhook event fanned out to live subscribers.
type StreamEvent struct {
    Type string         `json:"type"`
    Data map[string]any `json:"data"`
}

// Broker is the in-memory fan-out for webhook events. Subscribing with an
// empty AWB receives every event.
type Broker struct {
    mu   sync.Mutex
    subs map[string]map[chan StreamEvent]struct{} // awbNo ("" = all) -> set of channels
}

func NewBroker() *Broker {
    return &Broker{subs: map[string]map[chan StreamEvent]struct{}{}}
}

func (b *Broker) Subscribe(awbNo string) chan StreamEvent {
    ch := make(chan StreamEvent, 8)
    b.mu.Lock()
    if b.subs[awbNo] == nil { b.subs[awbNo] = map[chan StreamEvent]struct{}{} }
    b.subs[awbNo][ch] = struct{}{}
    b.mu.Unlock()
    return ch
}

func (b *Broker) Unsubscribe(awbNo string, ch chan StreamEvent) {
    b.mu.Lock()
    if m := b.subs[awbNo]; m != nil {
        delete(m, ch)
        if len(m) == 0 { delete(b.subs, awbNo) }
    }
    b.mu.Unlock()
    close(ch)
}

func (b *Broker) Publish(awbNo string, evt StreamEvent) {
    b.mu.Lock()
    for ch := range b.subs[awbNo] {
        select { case ch <- evt: default: }
    }
    if awbNo != "" {
        for ch := range b.subs[""] {
            select { case ch <- evt: default: }
        }
    }
    b.mu.Unlock()
}
