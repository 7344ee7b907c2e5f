package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tabibi-api/internal/utils"
)

const claimsKey = "claims"

const (
	msgAuthRequired = "يجب عليك تسجيل الدخول أولاً"
	msgInvalidToken = "رمز الدخول غير صالح"
)

// AuthMiddleware accepts "Authorization: JWT <token>" (what the web client
// sends) as well as "Bearer <token>".
func AuthMiddleware(jwt *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := tokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		claims, err := jwt.ValidateJWT(tokenString)
		if err != nil {
			abort(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		// Set user info in the context for handlers to use
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

func tokenFromHeader(h string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(h), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "JWT") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"errors": []gin.H{{"message": msg}}})
}
