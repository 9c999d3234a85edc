// Package pikndel implements the outbound client for the Pikndel logistics
// provider: envelope construction, bearer auth, order translation, and
// normalization of provider HTTP statuses into a small error taxonomy.
package pikndel

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strconv"
    "time"

    "pikndelgw/internal/metrics"
    "pikndelgw/internal/token"
)

const (
    loginPath       = "/api/v1/login"
    placeOrderPath  = "/api/v1/order/place"
    orderStatusPath = "/api/v1/order/status"

    loginVersion       = "1.0"
    placeOrderVersion  = "3.2"
    orderStatusVersion = "1"

    requestTimeout = 15 * time.Second
)

type Client struct {
    BaseURL  string
    Source   int64
    Username string // default credentials, used when the caller omits them
    Password string
    Tokens   token.Store
    HTTP     *http.Client
}

func NewClient(baseURL string, source int64, username, password string, tokens token.Store) *Client {
    return &Client{
        BaseURL:  baseURL,
        Source:   source,
        Username: username,
        Password: password,
        Tokens:   tokens,
        HTTP:     &http.Client{Timeout: requestTimeout},
    }
}

// Call posts body to path with the per-call Control envelope attached, either
// wrapped as {Control, Data} or flat-merged into one object. The bearer
// header is resolved from the token store at send time. No retries: every
// failure is surfaced to the caller.
func (c *Client) Call(ctx context.Context, method, path string, body any, version string, requiresAuth, wrapInData bool) (map[string]any, error) {
    env := NewEnvelope(c.Source, version)
    var payload any
    if wrapInData {
        payload = map[string]any{"Control": env, "Data": body}
    } else {
        merged := map[string]any{
            "RequestId":   env.RequestID,
            "Source":      env.Source,
            "RequestTime": env.RequestTime,
            "Version":     env.Version,
        }
        for k, v := range asMap(body) {
            merged[k] = v
        }
        payload = merged
    }
    buf, err := json.Marshal(payload)
    if err != nil {
        return nil, &Error{Kind: KindValidation, Message: "encode request", Err: err}
    }

    req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(buf))
    if err != nil {
        return nil, &Error{Kind: KindNetwork, Message: "build request for " + path, Err: err}
    }
    req.Header.Set("Content-Type", "application/json")
    if requiresAuth {
        if tok := c.Tokens.Get(ctx); tok != "" {
            req.Header.Set("Authorization", "Bearer "+tok)
        }
    }

    resp, err := c.HTTP.Do(req)
    if err != nil {
        metrics.ProviderCalls.WithLabelValues(path, "network_error").Inc()
        return nil, &Error{Kind: KindNetwork, Message: "no response from provider for " + path, Err: err}
    }
    defer func() { _ = resp.Body.Close() }()
    raw, _ := io.ReadAll(resp.Body)
    metrics.ProviderCalls.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()

    switch resp.StatusCode {
    case http.StatusOK:
        var out map[string]any
        if len(raw) > 0 {
            if err := json.Unmarshal(raw, &out); err != nil {
                return nil, &Error{Kind: KindUnexpectedStatus, Message: "invalid provider response body", Status: resp.StatusCode, RawBody: raw, Err: err}
            }
        }
        return out, nil
    case http.StatusBadRequest:
        return nil, &Error{Kind: KindBadRequest, Message: providerMessage(raw, "provider rejected the request"), Status: resp.StatusCode, RawBody: raw}
    case http.StatusUnauthorized:
        // Stale or expired token; drop it so the next call forces a re-login.
        c.Tokens.Clear(ctx)
        return nil, &Error{Kind: KindUnauthorized, Message: "provider authorization failed", Status: resp.StatusCode, RawBody: raw}
    case http.StatusInternalServerError:
        return nil, &Error{Kind: KindProviderServer, Message: "provider server error", Status: resp.StatusCode, RawBody: raw}
    default:
        return nil, &Error{Kind: KindUnexpectedStatus, Message: fmt.Sprintf("unexpected provider status %d", resp.StatusCode), Status: resp.StatusCode, RawBody: raw}
    }
}

// asMap re-encodes body as a generic map for the flat-merge path.
func asMap(body any) map[string]any {
    if m, ok := body.(map[string]any); ok {
        return m
    }
    if body == nil {
        return nil
    }
    b, err := json.Marshal(body)
    if err != nil {
        return nil
    }
    var m map[string]any
    if err := json.Unmarshal(b, &m); err != nil {
        return nil
    }
    return m
}

// providerMessage pulls a human-readable message out of the provider body.
func providerMessage(raw []byte, fallback string) string {
    var m map[string]any
    if json.Unmarshal(raw, &m) == nil {
        for _, k := range []string{"Message", "message", "Error", "error"} {
            if v, ok := m[k].(string); ok && v != "" {
                return v
            }
        }
    }
    return fallback
}
