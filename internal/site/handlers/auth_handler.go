package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "session"

// AuthHandler implements the lightweight login used to gate the payment
// page: an email form that opens a session, then an email verification
// step checking a one-time code.
type AuthHandler struct {
	VerificationCode string
}

func NewAuthHandler(verificationCode string) *AuthHandler {
	return &AuthHandler{VerificationCode: verificationCode}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "connexion.tmpl", gin.H{
		"Theme": theme(c),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		c.HTML(http.StatusBadRequest, "connexion.tmpl", gin.H{
			"Theme": theme(c),
			"Error": "Veuillez renseigner votre adresse email.",
		})
		return
	}

	sessionID := uuid.New().String()
	c.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
	logrus.Infof("Session opened for %s", email)

	c.Redirect(http.StatusSeeOther, "/verification-email")
}

func (h *AuthHandler) ShowVerification(c *gin.Context) {
	if _, err := c.Cookie(sessionCookie); err != nil {
		c.Redirect(http.StatusSeeOther, "/connexion")
		return
	}
	c.HTML(http.StatusOK, "verification.tmpl", gin.H{
		"Theme": theme(c),
	})
}

// Verify accepts the submission only when the entered code matches.
func (h *AuthHandler) Verify(c *gin.Context) {
	if _, err := c.Cookie(sessionCookie); err != nil {
		c.Redirect(http.StatusSeeOther, "/connexion")
		return
	}

	if c.PostForm("code") != h.VerificationCode {
		c.HTML(http.StatusBadRequest, "verification.tmpl", gin.H{
			"Theme": theme(c),
			"Error": "Code de vérification invalide.",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
