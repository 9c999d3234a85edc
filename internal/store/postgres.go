package store

import (
    "context"
    "database/sql"
    "encoding/json"
    "time"

    "github.com/google/uuid"
    _ "github.com/jackc/pgx/v5/stdlib"

    "pikndelgw/internal/model"
)

type Postgres struct {
    db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
    db, err := sql.Open("pgx", dsn)
    if err != nil {
        return nil, err
    }
    if err := db.Ping(); err != nil {
        return nil, err
    }
    return &Postgres{db: db}, nil
}

// Migrate creates the webhook_events table if missing (dev helper; prod
// deployments run the same DDL out of band).
func (p *Postgres) Migrate(ctx context.Context) error {
    _, err := p.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS webhook_events (
    id           UUID PRIMARY KEY,
    awb_no       TEXT NOT NULL DEFAULT '',
    short_code   TEXT NOT NULL DEFAULT '',
    status_label TEXT NOT NULL DEFAULT '',
    activity     TEXT NOT NULL DEFAULT '',
    event_ts     BIGINT NOT NULL DEFAULT 0,
    raw_payload  JSONB,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS webhook_events_awb_no_idx ON webhook_events (awb_no);
`)
    return err
}

func (p *Postgres) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

func (p *Postgres) InsertWebhookEvent(ctx context.Context, ev model.WebhookEvent) (string, error) {
    id := uuid.New()
    raw := ev.RawPayload
    if len(raw) == 0 { raw = json.RawMessage("null") }
    _, err := p.db.ExecContext(ctx,
        `INSERT INTO webhook_events (id, awb_no, short_code, status_label, activity, event_ts, raw_payload) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
        id, ev.AWBNo, ev.ShortCode, ev.StatusLabel, ev.Activity, ev.EventTS, []byte(raw))
    if err != nil { return "", err }
    return id.String(), nil
}

func (p *Postgres) ListWebhookEvents(ctx context.Context, awbNo, cursor string, limit int) ([]model.WebhookEvent, string, error) {
    if limit <= 0 || limit > 500 { limit = 100 }
    // Keyset pagination on id; cursor is the last id text.
    var rows *sql.Rows
    var err error
    base := `SELECT id::text, awb_no, short_code, status_label, activity, event_ts, raw_payload, created_at, updated_at FROM webhook_events`
    switch {
    case awbNo != "" && cursor != "":
        rows, err = p.db.QueryContext(ctx, base+` WHERE awb_no=$1 AND id::text > $2 ORDER BY id LIMIT $3`, awbNo, cursor, limit)
    case awbNo != "":
        rows, err = p.db.QueryContext(ctx, base+` WHERE awb_no=$1 ORDER BY id LIMIT $2`, awbNo, limit)
    case cursor != "":
        rows, err = p.db.QueryContext(ctx, base+` WHERE id::text > $1 ORDER BY id LIMIT $2`, cursor, limit)
    default:
        rows, err = p.db.QueryContext(ctx, base+` ORDER BY id LIMIT $1`, limit)
    }
    if err != nil { return nil, "", err }
    defer rows.Close()

    out := []model.WebhookEvent{}
    var last string
    for rows.Next() {
        var ev model.WebhookEvent
        var raw []byte
        var created, updated time.Time
        if err := rows.Scan(&ev.ID, &ev.AWBNo, &ev.ShortCode, &ev.StatusLabel, &ev.Activity, &ev.EventTS, &raw, &created, &updated); err != nil {
            return nil, "", err
        }
        ev.RawPayload = json.RawMessage(raw)
        ev.CreatedAt = created
        ev.UpdatedAt = updated
        out = append(out, ev)
        last = ev.ID
    }
    if err := rows.Err(); err != nil { return nil, "", err }
    var next string
    if len(out) == limit { next = last }
    return out, next, nil
}
