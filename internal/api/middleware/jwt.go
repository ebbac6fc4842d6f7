package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/pkg/types"
	"github.com/linskybing/oasis/pkg/utils"
)

const TokenCookie = "token"

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token carrying the user's role.
var GenerateToken = func(u user.User, expireDuration time.Duration) (string, error) {
	u.Normalize()
	claims := &types.Claims{
		UserID:      u.UID,
		Username:    u.Username,
		Role:        string(u.Role),
		IsSuperuser: u.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// tokenFrom reads a bearer header first, then the session cookie.
func tokenFrom(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// Authenticate attaches claims when a valid token is present and lets
// anonymous requests through untouched. Role checks happen in RequireRoles.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := tokenFrom(c); ok {
			if claims, err := ParseToken(tokenStr); err == nil {
				c.Set(utils.ClaimsKey, claims)
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}

// JWTAuthMiddleware rejects requests without a valid token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := tokenFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required (header or cookie)"})
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
