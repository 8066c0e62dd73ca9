// Package utils provides shared helpers for the todosweep application:
// basic auth parsing, request identification and rate limiting.
package utils

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ParseAllowedUsers parses a comma-separated list of allowed users in the format "username:password"
func ParseAllowedUsers(users string) (map[string]string, string) {
	parsedUsers := make(map[string]string)
	parsedUserStrings := ""
	for _, user := range strings.Split(users, ",") {
		parts := strings.Split(user, ":")
		if len(parts) != 2 {
			log.Fatalf("Invalid user format: %s. Expected 'username:password'", user)
		}
		parsedUsers[parts[0]] = parts[1]
		parsedUserStrings += fmt.Sprintf("%s:%s, ", parts[0], "<hidden>")
	}
	parsedUserStrings = strings.TrimSuffix(parsedUserStrings, ", ")
	return parsedUsers, parsedUserStrings
}

// RequestIDMiddleware assigns each request a uuid, exposes it on the gin
// context and the response headers, and logs the request with it.
func RequestIDMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(KeyRequestID, id)
		c.Header(HeaderRequestID, id)

		logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Info("Request received")

		c.Next()
	}
}

// RateLimitMiddleware is a middleware that limits the number of requests per minute
func RateLimitMiddleware(requestsPerMinute int) gin.HandlerFunc {
	// Declare variables inside the closure
	var mu sync.Mutex
	requestsCount := 0
	resetTime := time.Now().Add(1 * time.Minute)

	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()

		// Check if the time window has expired
		if time.Now().After(resetTime) {
			// Reset the counter and the time window
			requestsCount = 0
			resetTime = time.Now().Add(1 * time.Minute)
		}

		// Check the request count
		if requestsCount >= requestsPerMinute {
			// Block the request if the limit is reached
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Too many requests. Please wait for the next minute.",
			})
			c.Abort()
			return
		}

		// Allow the request and increment the counter
		requestsCount++

		// Process the request
		c.Next()
	}
}
