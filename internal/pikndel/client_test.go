package pikndel

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"

    "pikndelgw/internal/token"
)

func newTestClient(url string) *Client {
    return NewClient(url, 42, "defaultUser", "defaultPass", token.NewMemory())
}

func TestCallWrapInData(t *testing.T) {
    var got map[string]any
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        _ = json.NewDecoder(r.Body).Decode(&got)
        w.Write([]byte(`{"ok":true}`))
    }))
    defer srv.Close()

    c := newTestClient(srv.URL)
    out, err := c.Call(context.Background(), http.MethodPost, "/x", map[string]any{"A": "b"}, "3.2", false, true)
    if err != nil { t.Fatalf("call: %v", err) }
    if out["ok"] != true { t.Fatalf("bad response: %v", out) }

    ctl, _ := got["Control"].(map[string]any)
    if ctl == nil { t.Fatalf("missing Control: %v", got) }
    if ctl["RequestId"] == "" || ctl["RequestId"] == nil { t.Fatal("missing RequestId") }
    if ctl["Source"].(float64) != 42 { t.Fatalf("Source = %v", ctl["Source"]) }
    if ctl["Version"] != "3.2" { t.Fatalf("Version = %v", ctl["Version"]) }
    if ctl["RequestTime"].(float64) <= 0 { t.Fatal("missing RequestTime") }
    data, _ := got["Data"].(map[string]any)
    if data["A"] != "b" { t.Fatalf("Data = %v", data) }
}

func TestCallFlatMerge(t *testing.T) {
    var got map[string]any
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        _ = json.NewDecoder(r.Body).Decode(&got)
        w.Write([]byte(`{}`))
    }))
    defer srv.Close()

    c := newTestClient(srv.URL)
    if _, err := c.Call(context.Background(), http.MethodPost, "/x", map[string]any{"A": "b"}, "1", false, false); err != nil {
        t.Fatalf("call: %v", err)
    }
    if got["Control"] != nil { t.Fatal("flat merge must not nest under Control") }
    if got["A"] != "b" || got["RequestId"] == nil || got["Version"] != "1" {
        t.Fatalf("merged body = %v", got)
    }
}

func TestCallRequestIDUniquePerCall(t *testing.T) {
    ids := []string{}
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        var m map[string]any
        _ = json.NewDecoder(r.Body).Decode(&m)
        ctl := m["Control"].(map[string]any)
        ids = append(ids, ctl["RequestId"].(string))
        w.Write([]byte(`{}`))
    }))
    defer srv.Close()

    c := newTestClient(srv.URL)
    for i := 0; i < 3; i++ {
        if _, err := c.Call(context.Background(), http.MethodPost, "/x", nil, "1", false, true); err != nil {
            t.Fatalf("call %d: %v", i, err)
        }
    }
    seen := map[string]bool{}
    for _, id := range ids {
        if seen[id] { t.Fatalf("duplicate RequestId %s", id) }
        seen[id] = true
    }
}

func TestCallBearerHeader(t *testing.T) {
    var authz string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        authz = r.Header.Get("Authorization")
        w.Write([]byte(`{}`))
    }))
    defer srv.Close()

    c := newTestClient(srv.URL)
    c.Tokens.Set(context.Background(), "tok123")
    if _, err := c.Call(context.Background(), http.MethodPost, "/x", nil, "1", true, true); err != nil {
        t.Fatalf("call: %v", err)
    }
    if authz != "Bearer tok123" { t.Fatalf("Authorization = %q", authz) }

    // Header is omitted without a cached token and on unauthenticated calls.
    c.Tokens.Clear(context.Background())
    if _, err := c.Call(context.Background(), http.MethodPost, "/x", nil, "1", true, true); err != nil {
        t.Fatalf("call: %v", err)
    }
    if authz != "" { t.Fatalf("Authorization should be empty, got %q", authz) }
}

func TestCallStatusTaxonomy(t *testing.T) {
    cases := []struct {
        status int
        kind   Kind
    }{
        {400, KindBadRequest},
        {401, KindUnauthorized},
        {500, KindProviderServer},
        {418, KindUnexpectedStatus},
    }
    for _, tc := range cases {
        srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            w.WriteHeader(tc.status)
            w.Write([]byte(`{"Message":"nope"}`))
        }))
        c := newTestClient(srv.URL)
        _, err := c.Call(context.Background(), http.MethodPost, "/x", nil, "1", false, true)
        srv.Close()
        var pe *Error
        if !errors.As(err, &pe) { t.Fatalf("status %d: no *Error, got %v", tc.status, err) }
        if pe.Kind != tc.kind { t.Fatalf("status %d: kind %s, want %s", tc.status, pe.Kind, tc.kind) }
        if pe.Status != tc.status { t.Fatalf("status %d: carried %d", tc.status, pe.Status) }
        if len(pe.RawBody) == 0 { t.Fatalf("status %d: raw body not carried", tc.status) }
    }
}

func TestCallUnauthorizedClearsToken(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusUnauthorized)
    }))
    defer srv.Close()

    c := newTestClient(srv.URL)
    c.Tokens.Set(context.Background(), "stale")
    _, err := c.Call(context.Background(), http.MethodPost, "/x", nil, "1", true, true)
    var pe *Error
    if !errors.As(err, &pe) || pe.Kind != KindUnauthorized { t.Fatalf("want unauthorized, got %v", err) }
    if got := c.Tokens.Get(context.Background()); got != "" {
        t.Fatalf("token not cleared after 401: %q", got)
    }
}

func TestCallNetworkError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
    srv.Close() // connection refused from here on

    c := newTestClient(srv.URL)
    _, err := c.Call(context.Background(), http.MethodPost, "/x", nil, "1", false, true)
    var pe *Error
    if !errors.As(err, &pe) || pe.Kind != KindNetwork { t.Fatalf("want network error, got %v", err) }
    if pe.Err == nil { t.Fatal("network error must wrap the transport cause") }
}
