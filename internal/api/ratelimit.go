package api

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ipLimiters throttles inbound webhook pushes per source IP. Disabled when
// rps <= 0 (RATE_RPS unset).
type ipLimiters struct {
	mu    sync.Mutex
	rps   rate.Limit
	burst int
	m     map[string]*rate.Limiter
}

func newIPLimiters(rps float64, burst int) *ipLimiters {
	if burst <= 0 {
		burst = 10
	}
	return &ipLimiters{rps: rate.Limit(rps), burst: burst, m: map[string]*rate.Limiter{}}
}

func (l *ipLimiters) allow(ip string) bool {
	if l == nil || l.rps <= 0 {
		return true
	}
	l.mu.Lock()
	lim := l.m[ip]
	if lim == nil {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.m[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
