package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/internal/monitoring"
)

const contextKeyAgentID = "agent_id"

// Claims is the token payload. agent_id is the tenant: every query below
// the middleware is scoped by it.
type Claims struct {
	AgentID string `json:"agent_id"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// JWTAuth validates the bearer token and stores the agent id in the gin
// context. Requests without a valid token never reach a handler.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "credenciales inválidas"})
			return
		}
		claims, err := validateToken(token, secret)
		if err != nil {
			msg := "credenciales inválidas"
			if errors.Is(err, ErrTokenExpired) {
				msg = "sesión expirada"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		agentID, err := uuid.Parse(claims.AgentID)
		if err != nil || agentID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "credenciales inválidas"})
			return
		}
		c.Set(contextKeyAgentID, agentID)
		c.Next()
	}
}

func validateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func extractBearerToken(authHeader string) (string, error) {
	const bearerPrefix = "Bearer "
	if len(authHeader) <= len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", ErrInvalidToken
	}
	return authHeader[len(bearerPrefix):], nil
}

// agentID reads the tenant id the auth middleware stored. Handlers behind
// JWTAuth can rely on it being present.
func agentID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(contextKeyAgentID)
	id, _ := v.(uuid.UUID)
	return id
}

// RequestID propagates or mints an X-Request-ID per request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// HTTPMetrics records request counts and latency per route.
func HTTPMetrics() gin.HandlerFunc {
	m := monitoring.Get()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
