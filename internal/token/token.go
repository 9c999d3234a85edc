// Package token holds the cached provider bearer token behind a small
// get/set/clear interface so the client can be tested without globals.
package token

import (
	"context"
	"sync"
)

type Store interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, token string)
	Clear(ctx context.Context)
}

// Memory is the default single-process token cache.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Memory) Set(ctx context.Context, token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *Memory) Clear(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}
