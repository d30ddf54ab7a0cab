package content_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoGasore/CALMNESS2/internal/site/content"
	"github.com/stretchr/testify/assert"
)

func TestPageContact_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/page-contact", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":1,"attributes":{"titre":"Contactez-nous","adresse":"Kinshasa","telephone":"+243 000 000","email":"contact@calmnesstrading.com","horaires":"9h-18h"}},"meta":{}}`))
	}))
	defer server.Close()

	client := content.NewClient(server.URL)
	page := client.PageContact(context.Background())

	assert.NotNil(t, page)
	assert.Equal(t, "Kinshasa", page.Attributes.Adresse)
	assert.Equal(t, "contact@calmnesstrading.com", page.Attributes.Email)
}

func TestPageContact_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := content.NewClient(server.URL)
	page := client.PageContact(context.Background())

	assert.Nil(t, page)
}

func TestPageAccueil_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := content.NewClient(server.URL)
	page := client.PageAccueil(context.Background())

	assert.Nil(t, page)
}

func TestPageAccueil_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": not json`))
	}))
	defer server.Close()

	client := content.NewClient(server.URL)
	page := client.PageAccueil(context.Background())

	assert.Nil(t, page)
}

func TestServices_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services", r.URL.Path)
		assert.Equal(t, "ordre:asc", r.URL.Query().Get("sort"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":1,"attributes":{"titre":"Formations au Trading","description":"","ordre":1}},{"id":2,"attributes":{"titre":"Signaux de Trading","description":"","ordre":2}}],"meta":{"pagination":{"page":1,"pageSize":2,"pageCount":1,"total":2}}}`))
	}))
	defer server.Close()

	client := content.NewClient(server.URL)
	services := client.Services(context.Background())

	assert.Len(t, services, 2)
	assert.Equal(t, "Formations au Trading", services[0].Attributes.Titre)
}

func TestServices_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := content.NewClient(server.URL)
	services := client.Services(context.Background())

	assert.Empty(t, services)
}
