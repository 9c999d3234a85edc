package api

import (
    "bytes"
    "crypto/hmac"
    "encoding/json"
    "io"
    "log"
    "net/http"

    "pikndelgw/internal/metrics"
    "pikndelgw/internal/model"
    "pikndelgw/internal/pikndel"
)

const secretHeader = "x-pikndel-secret"

// WebhookHandler handles POST /webhooks/pikndel/status, the provider's
// push endpoint for order status changes.
//
// Once past the secret check the endpoint acknowledges with 200 even when
// persistence fails: a non-2xx answer would make the provider retry
// delivery, and the ack contract wins over durability here.
func (s *Server) WebhookHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        w.WriteHeader(http.StatusMethodNotAllowed)
        return
    }
    if !s.limits.allow(remoteIP(r)) {
        writeJSON(w, http.StatusTooManyRequests, map[string]any{"success": false, "error": "Too many requests."})
        return
    }

    // No configured secret means verification is skipped (non-production
    // deployments only).
    if s.Cfg.WebhookSecret != "" {
        got := r.Header.Get(secretHeader)
        if got == "" || !hmac.Equal([]byte(got), []byte(s.Cfg.WebhookSecret)) {
            metrics.WebhookEvents.WithLabelValues("", "unauthorized").Inc()
            writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid webhook secret."})
            return
        }
    }

    raw, err := io.ReadAll(r.Body)
    if err != nil {
        writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to process webhook."})
        return
    }
    if len(bytes.TrimSpace(raw)) == 0 {
        raw = []byte("{}")
    }
    var body struct {
        AWBNo     string               `json:"AWBNo"`
        ShortCode string               `json:"short_code"`
        Activity  string               `json:"activity"`
        Timestamp model.NumberOrString `json:"timestamp"`
    }
    if err := json.Unmarshal(raw, &body); err != nil {
        writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "Failed to process webhook."})
        return
    }

    label := pikndel.StatusLabel(body.ShortCode)
    log.Printf("webhook: awb=%s code=%s (%s) activity=%q ts=%d", body.AWBNo, body.ShortCode, label, body.Activity, int64(body.Timestamp))

    ev := model.WebhookEvent{
        AWBNo:       body.AWBNo,
        ShortCode:   body.ShortCode,
        StatusLabel: label,
        Activity:    body.Activity,
        EventTS:     int64(body.Timestamp),
        RawPayload:  json.RawMessage(raw),
    }
    // Best-effort persist; see the handler comment.
    if _, err := s.Store.InsertWebhookEvent(r.Context(), ev); err != nil {
        log.Printf("webhook: persist failed for awb=%s: %v", body.AWBNo, err)
        metrics.WebhookEvents.WithLabelValues(body.ShortCode, "persist_failed").Inc()
    } else {
        metrics.WebhookEvents.WithLabelValues(body.ShortCode, "stored").Inc()
    }

    s.Broker.Publish(body.AWBNo, StreamEvent{Type: "webhook.received", Data: map[string]any{
        "awbNo":       body.AWBNo,
        "shortCode":   body.ShortCode,
        "statusLabel": label,
        "activity":    body.Activity,
        "timestamp":   int64(body.Timestamp),
    }})

    writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Webhook received."})
}
