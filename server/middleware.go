package server

import (
	"net/http"
	"sync"
	"time"

	"starwars-server/confs"
	"starwars-server/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing one sent by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request.
func AccessLog(log zerolog.Logger) gin.HandlerFunc {
	log = logger.Component(log, "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		} else if status >= http.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("request")
	}
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	cfg     confs.RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.Mutex
	log     zerolog.Logger
}

func NewRateLimiter(cfg confs.RateLimitConfig, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*rate.Limiter),
		log:     log.With().Str("middleware", "rate_limit").Logger(),
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.clients[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.BurstSize)
		rl.clients[ip] = l
	}
	return l
}

// Cleanup drops buckets that are full again, i.e. idle clients.
func (rl *RateLimiter) Cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, l := range rl.clients {
		if l.TokensAt(now) >= float64(rl.cfg.BurstSize) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !rl.limiter(ip).Allow() {
			rl.log.Warn().
				Str("client_ip", ip).
				Str("path", c.Request.URL.Path).
				Float64("requests_per_second", rl.cfg.RequestsPerSecond).
				Int("burst_size", rl.cfg.BurstSize).
				Msg("Rate limit exceeded")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
