package api

import (
    "encoding/json"
    "net/http"
    "os"
    "time"

    "pikndelgw/internal/buildinfo"
)

func (s *Server) DebugJSON(w http.ResponseWriter, r *http.Request) {
    info := map[string]any{
        "build": buildinfo.Info(),
        "time":  time.Now().UTC().Format(time.RFC3339),
        "config": map[string]any{
            "PORT":               os.Getenv("PORT"),
            "PIKNDEL_BASE_URL":   s.Cfg.BaseURL,
            "PIKNDEL_SOURCE":     s.Cfg.Source,
            "RATE_RPS":           os.Getenv("RATE_RPS"),
            "RATE_BURST":         os.Getenv("RATE_BURST"),
            "HAS_CREDENTIALS":    s.Cfg.Username != "" && s.Cfg.Password != "",
            "HAS_WEBHOOK_SECRET": s.Cfg.WebhookSecret != "",
            "HAS_DATABASE_URL":   s.Cfg.DatabaseURL != "",
            "HAS_REDIS_URL":      s.Cfg.RedisURL != "",
        },
    }
    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(info)
}
