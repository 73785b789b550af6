package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionRouter builds a router with the same cookie-session middleware the
// real app uses, plus a grant route that plants a session value directly.
func sessionRouter(t *testing.T, grantToken interface{}) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("mysession", store))

	r.GET("/grant", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("access_token", grantToken)
		require.NoError(t, session.Save())
		c.Status(http.StatusNoContent)
	})

	auth := r.Group("/", AuthRequired)
	auth.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	auth.GET("/editor", func(c *gin.Context) {
		c.String(http.StatusOK, "editor")
	})
	return r
}

func grantCookies(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/grant", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	return w.Result().Cookies()
}

func TestAuthRequiredBlocksAnonymousAPI(t *testing.T) {
	r := sessionRouter(t, "gh-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthRequiredRedirectsAnonymousPages(t *testing.T) {
	r := sessionRouter(t, "gh-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/editor", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthRequiredAllowsSession(t *testing.T) {
	r := sessionRouter(t, "gh-token")
	cookies := grantCookies(t, r)

	req := httptest.NewRequest("GET", "/api/ping", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequiredRejectsNonStringToken(t *testing.T) {
	r := sessionRouter(t, 42)
	cookies := grantCookies(t, r)

	req := httptest.NewRequest("GET", "/api/ping", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("mysession", cookie.NewStore([]byte("test-secret"))))
	r.GET("/logout", Logout)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/logout", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSyncAndShipWithoutSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("mysession", cookie.NewStore([]byte("test-secret"))))
	r.POST("/api/sync", HandleSync)
	r.POST("/api/ship", HandleShip)

	// Without a string token in the session the handlers refuse instead
	// of panicking on the assertion.
	for _, path := range []string{"/api/sync", "/api/ship"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
