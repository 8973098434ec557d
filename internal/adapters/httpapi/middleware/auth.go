package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	userapp "yatube/internal/core/user/service"
)

// CookieName is the session cookie carrying the signed JWT.
const CookieName = "auth_token"

// SessionUser resolves the session cookie when present and stores the user id
// and username on the request context. Anonymous requests pass through.
func SessionUser(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err == nil && token != "" {
			if claims, err := userapp.ParseToken(jwtKey, token); err == nil {
				c.Set("userID", claims.Subject)
				c.Set("username", claims.Username)
			}
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page, keeping the
// original destination in the next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("userID"); !ok {
			// RequestURI keeps the query string so ?page=2 survives the
			// round trip through the login form.
			next := url.Values{"next": {c.Request.URL.RequestURI()}}
			c.Redirect(http.StatusFound, "/auth/login/?"+next.Encode())
			c.Abort()
			return
		}
		c.Next()
	}
}
