package store

import (
    "context"
    "errors"

    "pikndelgw/internal/model"
)

// Store is the persistence interface for received webhook events. The
// collection is insert-only: repeated pushes for the same AWBNo create
// additional rows, never upserts.
type Store interface {
    InsertWebhookEvent(ctx context.Context, ev model.WebhookEvent) (id string, err error)
    ListWebhookEvents(ctx context.Context, awbNo, cursor string, limit int) (items []model.WebhookEvent, nextCursor string, err error)
}

var ErrNotFound = errors.New("not found")
