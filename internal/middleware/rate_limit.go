package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

var (
	loginLimiters      = make(map[string]*rate.Limiter)
	loginLimitersMutex sync.Mutex
)

func getLoginLimiter(ip string) *rate.Limiter {
	loginLimitersMutex.Lock()
	defer loginLimitersMutex.Unlock()

	if limiter, exists := loginLimiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(1, 5) // 1 attempt/sec, burst up to 5
	loginLimiters[ip] = limiter
	return limiter
}

// LoginRateLimit slows password guessing on the login endpoint.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)

		limiter := getLoginLimiter(ip)
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
