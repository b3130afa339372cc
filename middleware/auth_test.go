package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/storefront-api/auth"
)

const testSecret = "test-secret"

func sellerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/seller/is-auth", AuthSeller(testSecret, "seller@example.com"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAuthSellerUnauthorizedIsAlways401(t *testing.T) {
	r := sellerRouter(t)

	wrongEmail, err := auth.IssueSellerToken(testSecret, "intruder@example.com")
	require.NoError(t, err)
	userToken, err := auth.IssueUserToken(testSecret, "user-1")
	require.NoError(t, err)

	for name, cookie := range map[string]*http.Cookie{
		"missing cookie": nil,
		"garbage token":  {Name: auth.SellerCookie, Value: "not-a-jwt"},
		"wrong email":    {Name: auth.SellerCookie, Value: wrongEmail},
		"buyer token":    {Name: auth.SellerCookie, Value: userToken},
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/seller/is-auth", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestAuthSellerAcceptsConfiguredSeller(t *testing.T) {
	r := sellerRouter(t)

	token, err := auth.IssueSellerToken(testSecret, "seller@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/seller/is-auth", nil)
	req.AddCookie(&http.Cookie{Name: auth.SellerCookie, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthUserSetsUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/user/is-auth", AuthUser(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("user_id")})
	})

	token, err := auth.IssueUserToken(testSecret, "user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/is-auth", nil)
	req.AddCookie(&http.Cookie{Name: auth.UserCookie, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/is-auth", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
