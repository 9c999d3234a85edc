package store

import (
    "encoding/json"
    "time"

    "pikndelgw/internal/model"
)

func eventFor(awb, code string, raw json.RawMessage) model.WebhookEvent {
    return model.WebhookEvent{
        AWBNo:       awb,
        ShortCode:   code,
        StatusLabel: code,
        Activity:    "test",
        EventTS:     time.Now().Unix(),
        RawPayload:  raw,
    }
}
