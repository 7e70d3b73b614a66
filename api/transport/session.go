package transport

import (
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/auth"
	"github.com/gin-gonic/gin"
)

// The two session slots are independent cookies. A browser session can
// hold at most one of each; admin login clears the user slot.
const (
	AdminTokenCookie = "admin_token"
	UserTokenCookie  = "user_token"

	sessionKey = "session"
)

func SetAdminSlot(c *gin.Context, token string, maxAge int) {
	c.SetCookie(AdminTokenCookie, token, maxAge, "/", "", false, true)
}

func SetUserSlot(c *gin.Context, token string, maxAge int) {
	c.SetCookie(UserTokenCookie, token, maxAge, "/", "", false, true)
}

func ClearAdminSlot(c *gin.Context) {
	c.SetCookie(AdminTokenCookie, "", -1, "/", "", false, true)
}

func ClearUserSlot(c *gin.Context) {
	c.SetCookie(UserTokenCookie, "", -1, "/", "", false, true)
}

func adminToken(c *gin.Context) string {
	token, err := c.Cookie(AdminTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func userToken(c *gin.Context) string {
	token, err := c.Cookie(UserTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// Session returns the claims stored by the auth middleware, or nil
// when the route is unprotected.
func Session(c *gin.Context) *auth.SessionClaims {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
