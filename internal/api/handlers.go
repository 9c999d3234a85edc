// Package api implements the HTTP surface of the Pikndel gateway.
package api

import (
    "context"
    "encoding/json"
    "net/http"
    "strconv"
    "time"

    "pikndelgw/internal/model"
)

// LoginHandler handles POST /orders/auth/login
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        w.WriteHeader(http.StatusMethodNotAllowed)
        return
    }
    var req struct {
        Username string `json:"username"`
        Password string `json:"password"`
    }
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeBadRequest(w, "Invalid JSON: "+err.Error())
        return
    }
    res, err := s.Client.Login(r.Context(), req.Username, req.Password)
    if err != nil {
        writeError(w, err)
        return
    }
    writeOK(w, res)
}

// PlaceOrderHandler handles POST /orders/place
func (s *Server) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        w.WriteHeader(http.StatusMethodNotAllowed)
        return
    }
    var payload model.OrderPayload
    if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
        writeBadRequest(w, "Invalid JSON: "+err.Error())
        return
    }
    res, err := s.Client.PlaceOrder(r.Context(), &payload)
    if err != nil {
        writeError(w, err)
        return
    }
    writeOK(w, res)
}

// OrderStatusHandler handles POST /orders/status
func (s *Server) OrderStatusHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        w.WriteHeader(http.StatusMethodNotAllowed)
        return
    }
    var req struct {
        AWBNo string `json:"AWBNo"`
    }
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeBadRequest(w, "Invalid JSON: "+err.Error())
        return
    }
    res, err := s.Client.OrderStatus(r.Context(), req.AWBNo)
    if err != nil {
        writeError(w, err)
        return
    }
    writeOK(w, res)
}

// AdminWebhookEventsHandler handles GET /v1/admin/webhook-events
func (s *Server) AdminWebhookEventsHandler(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodGet {
        w.WriteHeader(http.StatusMethodNotAllowed)
        return
    }
    awb := r.URL.Query().Get("awb")
    cursor := r.URL.Query().Get("cursor")
    limit := 100
    if v := r.URL.Query().Get("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil { limit = n }
    }
    items, next, err := s.Store.ListWebhookEvents(r.Context(), awb, cursor, limit)
    if err != nil {
        writeError(w, err)
        return
    }
    writeOK(w, map[string]any{"items": items, "nextCursor": next})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, 200, map[string]string{"status": "ok", "service": "pikndel-gateway"})
}

func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
    // Check DB connectivity when using Postgres store
    type pinger interface{ Ping(ctx context.Context) error }
    if pg, ok := s.Store.(pinger); ok {
        ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
        defer cancel()
        if err := pg.Ping(ctx); err != nil {
            writeJSON(w, http.StatusServiceUnavailable, map[string]any{"success": false, "error": err.Error()})
            return
        }
    }
    writeJSON(w, 200, map[string]string{"status": "ready"})
}

// NotFoundHandler is the catch-all for unmatched routes.
func (s *Server) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "Route not found."})
}
