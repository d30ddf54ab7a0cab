package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/RoGasore/CALMNESS2/internal/site/handlers"
	"github.com/RoGasore/CALMNESS2/internal/site/templates"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testCode = "876578"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates.FS, "*.tmpl")))

	auth := handlers.NewAuthHandler(testCode)
	router.GET("/connexion", auth.ShowLogin)
	router.POST("/connexion", auth.Login)
	router.GET("/verification-email", auth.ShowVerification)
	router.POST("/verification-email", auth.Verify)
	return router
}

func postAuth(router *gin.Engine, path string, form url.Values, withSession bool) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if withSession {
		request.AddCookie(&http.Cookie{Name: "session", Value: "sess-1"})
	}
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestAuthHandler_Login_OpensSessionAndRedirects(t *testing.T) {
	recorder := postAuth(newAuthRouter(), "/connexion", url.Values{
		"email": {"trader@example.com"},
	}, false)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/verification-email", recorder.Header().Get("Location"))

	var sessionValue string
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "session" {
			sessionValue = cookie.Value
		}
	}
	assert.NotEmpty(t, sessionValue)
}

func TestAuthHandler_Login_RequiresEmail(t *testing.T) {
	recorder := postAuth(newAuthRouter(), "/connexion", url.Values{}, false)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Veuillez renseigner votre adresse email.")
}

func TestAuthHandler_ShowVerification_RequiresSession(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/verification-email", nil)
	newAuthRouter().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/connexion", recorder.Header().Get("Location"))
}

func TestAuthHandler_Verify_AcceptsMatchingCode(t *testing.T) {
	recorder := postAuth(newAuthRouter(), "/verification-email", url.Values{
		"code": {testCode},
	}, true)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
}

func TestAuthHandler_Verify_RejectsWrongCode(t *testing.T) {
	recorder := postAuth(newAuthRouter(), "/verification-email", url.Values{
		"code": {"000000"},
	}, true)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Code de vérification invalide.")
}
