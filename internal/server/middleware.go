package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Emynado01/portfolio/internal/logger"
	"github.com/Emynado01/portfolio/internal/view"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"

	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

func generateSalt() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// hashIP returns a salted, truncated digest so client addresses never reach the logs.
func hashIP(salt, ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func skipRequestLog(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz" ||
		path == "/contact/status"
}

// requestLogger logs each page interaction with a hashed client address.
// Requests sending DNT: 1 are not logged.
func requestLogger(log *logger.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipRequestLog(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		started := time.Now()
		c.Next()

		log.WithFields(map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(started).Milliseconds(),
			"visitor":    hashIP(salt, c.ClientIP()),
		}).Info("request")
	}
}

// clientHints asks browsers for the colour-scheme preference used to seed the theme.
func clientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", colorSchemeHint)
		c.Header("Critical-CH", colorSchemeHint)
		c.Header("Vary", colorSchemeHint)
		c.Next()
	}
}

// sessionMiddleware resolves the visitor session from its cookie, creating one when needed.
func sessionMiddleware(registry *Registry, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		session, ok := registry.Get(id)
		if !ok {
			session = registry.Create(view.PrefersDark(c.GetHeader(colorSchemeHint)))
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, session.ID, 0, "/", "", secure, true)
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func currentSession(c *gin.Context) *Session {
	return c.MustGet(sessionKey).(*Session)
}
