package metrics

import (
    "sync"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/collectors"
)

var (
    // Registry is the dedicated Prometheus registry for the gateway
    Registry = prometheus.NewRegistry()
    // HTTPRequests counts requests by method, path, and status
    HTTPRequests = prometheus.NewCounterVec(
        prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
        []string{"method", "path", "status"},
    )
    // HTTPDuration records request durations in seconds
    HTTPDuration = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
        []string{"method", "path", "status"},
    )

    // ProviderCalls counts outbound Pikndel calls by path and outcome
    // (HTTP status or "network_error")
    ProviderCalls = prometheus.NewCounterVec(
        prometheus.CounterOpts{Name: "pikndel_provider_calls_total", Help: "Outbound Pikndel API calls by path and outcome."},
        []string{"path", "outcome"},
    )
    // WebhookEvents counts received provider pushes by short code and result
    WebhookEvents = prometheus.NewCounterVec(
        prometheus.CounterOpts{Name: "webhook_events_received_total", Help: "Received Pikndel webhook pushes by short code and result."},
        []string{"short_code", "result"},
    )
)

// RegisterDefault registers collectors to the gateway registry.
func RegisterDefault() {
    regOnce.Do(func() {
        Registry.MustRegister(HTTPRequests)
        Registry.MustRegister(HTTPDuration)
        Registry.MustRegister(ProviderCalls)
        Registry.MustRegister(WebhookEvents)
        // Go/process collectors on our registry
        Registry.MustRegister(collectors.NewGoCollector())
        Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
    })
}

var regOnce sync.Once
