package security

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS 只放行配置白名单里的前端 Origin，支持携带 Cookie
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok && origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, Cache-Control, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Max-Age", "43200")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Secure 常规安全响应头
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

// ipLimiter 每个客户端 IP 一个令牌桶，stale 条目由后台定期回收
type ipLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitorState
	limit    rate.Limit
	burst    int
}

type visitorState struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(maxRequests int, window time.Duration) *ipLimiter {
	l := &ipLimiter{
		visitors: make(map[string]*visitorState),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
	go l.evictLoop(window)
	return l
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	state, ok := l.visitors[ip]
	if !ok {
		state = &visitorState{bucket: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = state
	}
	state.lastSeen = time.Now()
	l.mu.Unlock()

	return state.bucket.Allow()
}

func (l *ipLimiter) evictLoop(window time.Duration) {
	ttl := window * 3
	if ttl < time.Minute {
		ttl = time.Minute
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		for ip, state := range l.visitors {
			if time.Since(state.lastSeen) > ttl {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimiter 按 IP 限流，窗口内超过 maxRequests 次返回 429
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	limiter := newIPLimiter(maxRequests, window)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			return
		}
		c.Next()
	}
}
