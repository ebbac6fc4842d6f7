package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "middleware-test"
	config.Issuer = "oasis-test"
	Init()
}

func newRouter(n notify.Notifier, roles ...user.Role) *gin.Engine {
	r := gin.New()
	r.Use(Authenticate())
	r.GET("/area", NewAuth(n).RequireRoles(roles...), func(c *gin.Context) {
		id := utils.IdentityFromContext(c)
		c.String(http.StatusOK, string(id.Role))
	})
	return r
}

func get(r http.Handler, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(user.User{UID: 4, Username: "ana", Role: user.RoleInstructor}, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(4), claims.UserID)
	assert.Equal(t, "INSTRUCTOR", claims.Role)
	assert.Equal(t, "oasis-test", claims.Issuer)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tok, err := GenerateToken(user.User{UID: 4, Role: user.RoleInstructor}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok)
	assert.Error(t, err)
}

func TestRequireRoles(t *testing.T) {
	n := notify.NewMemoryNotifier()
	r := newRouter(n, user.RoleCompany)

	company, _ := GenerateToken(user.User{UID: 2, Role: user.RoleCompany}, time.Minute)
	apprentice, _ := GenerateToken(user.User{UID: 3, Role: user.RoleApprentice}, time.Minute)
	super, _ := GenerateToken(user.User{UID: 1, Role: user.RoleAdmin, IsSuperuser: true}, time.Minute)

	t.Run("allowed role", func(t *testing.T) {
		w := get(r, "/area", company)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "COMPANY", w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		w := get(r, "/area?tab=1", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect":"/login?next=%2Farea%3Ftab%3D1"`)
	})

	t.Run("garbage token is anonymous", func(t *testing.T) {
		w := get(r, "/area", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		w := get(r, "/area", apprentice)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), authz.DeniedText)

		queued, err := n.Drain(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, queued, 1)
		assert.Equal(t, notify.LevelError, queued[0].Level)
	})

	t.Run("superuser bypasses role", func(t *testing.T) {
		w := get(r, "/area", super)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTokenFromCookie(t *testing.T) {
	r := newRouter(nil, user.RoleApprentice)
	tok, _ := GenerateToken(user.User{UID: 3, Role: user.RoleApprentice}, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/area", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", "bad").Code)

	tok, _ := GenerateToken(user.User{UID: 3, Role: user.RoleApprentice}, time.Minute)
	assert.Equal(t, http.StatusNoContent, get(r, "/private", tok).Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(NewMemoryLimiter(), "login", 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	post := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestRateLimitDisabled(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(NewMemoryLimiter(), "login", 0, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestMemoryLimiterWindowResets(t *testing.T) {
	l := NewMemoryLimiter()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("k", 1, time.Minute))
	assert.False(t, l.Allow("k", 1, time.Minute))
	assert.True(t, l.Allow("other", 1, time.Minute))

	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("k", 1, time.Minute))
}
