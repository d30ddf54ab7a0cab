package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	themeCookie = "theme"
	themeDark   = "dark"
	themeLight  = "light"

	cookieMaxAge = 60 * 60 * 24 * 365
)

// theme reads the theme cookie. Anything but "dark" is light mode.
func theme(c *gin.Context) string {
	value, err := c.Cookie(themeCookie)
	if err != nil || value != themeDark {
		return themeLight
	}
	return themeDark
}

// ToggleTheme flips the theme cookie and sends the visitor back where they
// came from.
func ToggleTheme(c *gin.Context) {
	next := themeDark
	if theme(c) == themeDark {
		next = themeLight
	}
	c.SetCookie(themeCookie, next, cookieMaxAge, "/", "", false, false)

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}
