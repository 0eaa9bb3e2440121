package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"seoAuditGO/internal/config"
)

// KeycloakAuth verifies bearer tokens against a Keycloak userinfo endpoint.
type KeycloakAuth struct {
	keycloakConfig *config.KeycloakConfig
	client         *http.Client
	logger         *slog.Logger
}

// UserInfo contains the user information from the verified token
type UserInfo struct {
	Sub               string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// NewKeycloakAuth creates a new Keycloak authentication middleware
func NewKeycloakAuth(keycloakConfig *config.KeycloakConfig, logger *slog.Logger) *KeycloakAuth {
	return &KeycloakAuth{
		keycloakConfig: keycloakConfig,
		client:         &http.Client{Timeout: 5 * time.Second},
		logger:         logger,
	}
}

// Authenticate is a middleware to authenticate users with Keycloak
func (k *KeycloakAuth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status_code": http.StatusUnauthorized,
				"message":     "Unauthorized",
				"error":       "Invalid or missing token",
			})
			c.Abort()
			return
		}

		userInfo, err := k.verifyToken(c.Request.Context(), token)
		if err != nil {
			k.logger.Error("Failed to verify token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"status_code": http.StatusUnauthorized,
				"message":     "Unauthorized",
				"error":       "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set("userInfo", userInfo)
		c.Next()
	}
}

// RequireRoles is a middleware to check if the user has the required roles
func (k *KeycloakAuth) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userInfo, exists := c.Get("userInfo")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status_code": http.StatusUnauthorized,
				"message":     "Unauthorized",
				"error":       "User not authenticated",
			})
			c.Abort()
			return
		}

		user := userInfo.(*UserInfo)
		if !hasRequiredRole(user, roles) {
			c.JSON(http.StatusForbidden, gin.H{
				"status_code": http.StatusForbidden,
				"message":     "Forbidden",
				"error":       "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// verifyToken verifies the token against the userinfo endpoint, trying the
// fallback URL when the primary is unreachable or rejects the request.
func (k *KeycloakAuth) verifyToken(ctx context.Context, token string) (*UserInfo, error) {
	userInfo, err := k.fetchUserInfo(ctx, k.keycloakConfig.URL, token)
	if err == nil {
		return userInfo, nil
	}

	if fallback := k.keycloakConfig.FallbackURL; fallback != "" && fallback != k.keycloakConfig.URL {
		k.logger.Info("Using fallback URL for token verification",
			"main", k.keycloakConfig.URL,
			"fallback", fallback)
		return k.fetchUserInfo(ctx, fallback, token)
	}

	return nil, err
}

func (k *KeycloakAuth) fetchUserInfo(ctx context.Context, baseURL, token string) (*UserInfo, error) {
	userinfoURL := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/userinfo",
		baseURL,
		k.keycloakConfig.Realm)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid token or userinfo request failed: %d", resp.StatusCode)
	}

	var userInfo UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to parse userinfo response: %w", err)
	}

	return &userInfo, nil
}

// hasRequiredRole checks if the user has any of the required roles
func hasRequiredRole(user *UserInfo, requiredRoles []string) bool {
	if len(requiredRoles) == 0 {
		return true
	}

	for _, required := range requiredRoles {
		for _, role := range user.RealmAccess.Roles {
			if role == required {
				return true
			}
		}
	}

	return false
}
