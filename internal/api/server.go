package api

import (
    "context"
    "os"
    "strconv"
    "strings"

    "pikndelgw/internal/pikndel"
    "pikndelgw/internal/store"
    "pikndelgw/internal/token"
)

// Config is the flat environment namespace, read once at startup. There is
// no live reload.
type Config struct {
    BaseURL       string
    Source        int64
    Username      string
    Password      string
    WebhookSecret string
    DatabaseURL   string
    RedisURL      string
    RateRPS       float64
    RateBurst     int
}

func ConfigFromEnv() Config {
    src, _ := strconv.ParseInt(os.Getenv("PIKNDEL_SOURCE"), 10, 64)
    rps, _ := strconv.ParseFloat(os.Getenv("RATE_RPS"), 64)
    burst, _ := strconv.Atoi(os.Getenv("RATE_BURST"))
    return Config{
        BaseURL:       envOr("PIKNDEL_BASE_URL", "https://api.pikndel.com"),
        Source:        src,
        Username:      os.Getenv("PIKNDEL_USERNAME"),
        Password:      os.Getenv("PIKNDEL_PASSWORD"),
        WebhookSecret: os.Getenv("PIKNDEL_WEBHOOK_SECRET"),
        DatabaseURL:   os.Getenv("DATABASE_URL"),
        RedisURL:      os.Getenv("REDIS_URL"),
        RateRPS:       rps,
        RateBurst:     burst,
    }
}

type Server struct {
    Cfg    Config
    Store  store.Store
    Client *pikndel.Client
    Broker EventBroker

    limits *ipLimiters
}

// NewServer creates a Server. If DATABASE_URL is unset, uses in-memory
// store; if REDIS_URL is set, the token cache and event broker go through
// Redis so replicas share them.
func NewServer() (*Server, error) {
    cfg := ConfigFromEnv()

    var s store.Store
    if strings.TrimSpace(cfg.DatabaseURL) == "" {
        s = store.NewMemory()
    } else {
        sp, err := store.NewPostgres(cfg.DatabaseURL)
        if err != nil {
            return nil, err
        }
        // Run migrations (dev helper)
        if os.Getenv("DB_MIGRATE") != "false" {
            _ = sp.Migrate(context.Background())
        }
        s = sp
    }

    var tokens token.Store
    var broker EventBroker
    if cfg.RedisURL != "" {
        if rt, err := token.NewRedis(cfg.RedisURL); err == nil { tokens = rt } else { tokens = token.NewMemory() }
        if rb, err := NewRedisBroker(cfg.RedisURL); err == nil { broker = rb } else { broker = NewBroker() }
    } else {
        tokens = token.NewMemory()
        broker = NewBroker()
    }

    client := pikndel.NewClient(cfg.BaseURL, cfg.Source, cfg.Username, cfg.Password, tokens)
    return &Server{
        Cfg:    cfg,
        Store:  s,
        Client: client,
        Broker: broker,
        limits: newIPLimiters(cfg.RateRPS, cfg.RateBurst),
    }, nil
}

func envOr(k, d string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return d
}
