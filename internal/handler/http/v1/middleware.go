package v1

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/models"
	"golang.org/x/time/rate"
)

const (
	sessionCookie     = "session"
	sessionContextKey = "session"
	// maxTrackedClients bounds the per-client limiter table
	maxTrackedClients = 10_000
)

var errNoSession = errors.New("session token missing")

// sessionToken reads the token from "Authorization: Bearer" or the session cookie
func sessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}

func (h *Handler) resolveSession(c *gin.Context) (models.Session, error) {
	token := sessionToken(c)
	if token == "" {
		return models.Session{}, errNoSession
	}
	return h.sessions.Verify(token)
}

// RequireSession rejects requests without a valid session and stores the
// session in the gin context for the handlers.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := h.resolveSession(c)
		if err != nil {
			h.logger.WithField("path", c.FullPath()).WithError(err).Warn("Rejected request without valid session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequireAdmin is RequireSession plus the admin role check
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := h.resolveSession(c)
		if err != nil {
			h.logger.WithField("path", c.FullPath()).WithError(err).Warn("Rejected request without valid session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if !session.IsAdmin() {
			h.logger.WithField("path", c.FullPath()).WithField("user_id", session.UserID).Warn("Rejected non-admin request")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func currentSession(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{}
}

// clientRateLimiter keeps one token bucket per client IP
type clientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

func newClientRateLimiter(perMinute int) *clientRateLimiter {
	return &clientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (l *clientRateLimiter) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[client]
	if !ok {
		if len(l.limiters) >= maxTrackedClients {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.every, l.burst)
		l.limiters[client] = limiter
	}
	return limiter.Allow()
}

// RateLimitMiddleware throttles credential endpoints per client IP
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute < 1 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newClientRateLimiter(perMinute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
