package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Her IP'nin kendi limiter'ı + temizlik için lastSeen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	reqPerMin int
	burst     int
	ttl       time.Duration
}

func NewIPRateLimiter(reqPerMin, burst int, ttl time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitors:  make(map[string]*visitor),
		reqPerMin: reqPerMin,
		burst:     burst,
		ttl:       ttl,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	rps := float64(rl.reqPerMin) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), rl.burst)
	rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > rl.ttl {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func RateLimitByIP(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Çok fazla istek",
				"hint":    "Lütfen birkaç dakika sonra tekrar deneyin.",
			})
			return
		}
		c.Next()
	}
}

// Form gönderimi: çift gönderim istemci tarafında bayrakla engellenir, burası
// yalnızca kötüye kullanımı yavaşlatır. 20 istek/dk/IP, burst 5.
var submitLimiter = NewIPRateLimiter(20, 5, 5*time.Minute)

func RateLimitSubmit() gin.HandlerFunc {
	return RateLimitByIP(submitLimiter)
}

// Login denemeleri: 10 istek/dk/IP.
var loginLimiter = NewIPRateLimiter(10, 5, 5*time.Minute)

func RateLimitLogin() gin.HandlerFunc {
	return RateLimitByIP(loginLimiter)
}
