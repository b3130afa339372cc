package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	UserCookie   = "token"
	SellerCookie = "sellerToken"

	RoleUser   = "user"
	RoleSeller = "seller"

	TokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// IssueUserToken signs a buyer session token carrying the user id.
func IssueUserToken(secret, userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": RoleUser,
		"exp":  time.Now().Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// IssueSellerToken signs a seller session token carrying the seller email.
func IssueSellerToken(secret, email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  RoleSeller,
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetAuthCookie writes an HTTP-only session cookie. In production the cookie
// is Secure with SameSite=None so the hosted client can send it cross-site.
func SetAuthCookie(c *gin.Context, name, token string, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, token, int(TokenTTL.Seconds()), "/", "", production, true)
}

// ClearAuthCookie expires a session cookie.
func ClearAuthCookie(c *gin.Context, name string, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, "", -1, "/", "", production, true)
}
