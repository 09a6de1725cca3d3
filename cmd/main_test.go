package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/kmosk/space-reservation-service/internal/domain"
	"github.com/kmosk/space-reservation-service/internal/service/auth"
)

type fakeTokenParser struct {
	claims *auth.Claims
}

func (f *fakeTokenParser) ParseToken(string) (*auth.Claims, error) {
	if f.claims == nil {
		return nil, auth.ErrInvalidToken
	}
	return f.claims, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(claims *auth.Claims) (*mux.Router, map[string]int) {
	hits := make(map[string]int)
	mark := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			hits[name]++
			w.WriteHeader(http.StatusOK)
		}
	}

	r := newRouter(apiHandlers{
		register:          mark("register"),
		login:             mark("login"),
		getCurrentUser:    mark("get_current_user"),
		createReservation: mark("create_reservation"),
		listReservations:  mark("list_reservations"),
		getReservation:    mark("get_reservation"),
		updateReservation: mark("update_reservation"),
		deleteReservation: mark("delete_reservation"),
		listSpaces:        mark("list_spaces"),
		getSpace:          mark("get_space"),
		createSpace:       mark("create_space"),
		updateSpace:       mark("update_space"),
		deleteSpace:       mark("delete_space"),
		availableSlots:    mark("available_slots"),
	}, &fakeTokenParser{claims: claims}, nopLogger{}, nil, "")

	return r, hits
}

func doRequest(r *mux.Router, method, path string, withToken bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if withToken {
		req.Header.Set("Authorization", "Bearer token")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func clientClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, RoleID: domain.RoleClient}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 2, RoleID: domain.RoleAdmin}
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, hits := newTestRouter(nil)

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/register", false).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/login", false).Code)
	assert.Equal(t, 1, hits["register"])
	assert.Equal(t, 1, hits["login"])
}

func TestRouter_SpaceCatalogRequiresAuth(t *testing.T) {
	// каталог помещений и свободные слоты закрыты токеном,
	// как и бронирования
	r, hits := newTestRouter(nil)

	paths := []string{
		"/api/spaces",
		"/api/spaces/5",
		"/api/spaces/5/available-slots",
		"/api/reservations",
		"/api/user",
	}
	for _, path := range paths {
		resp := doRequest(r, http.MethodGet, path, false)
		assert.Equal(t, http.StatusUnauthorized, resp.Code, "path %s", path)
	}
	assert.Empty(t, hits)
}

func TestRouter_AuthenticatedClientRoutes(t *testing.T) {
	r, hits := newTestRouter(clientClaims())

	requests := []struct {
		method  string
		path    string
		handler string
	}{
		{http.MethodGet, "/api/user", "get_current_user"},
		{http.MethodGet, "/api/spaces", "list_spaces"},
		{http.MethodGet, "/api/spaces/5", "get_space"},
		{http.MethodGet, "/api/spaces/5/available-slots", "available_slots"},
		{http.MethodPost, "/api/reservations", "create_reservation"},
		{http.MethodGet, "/api/reservations", "list_reservations"},
		{http.MethodGet, "/api/reservations/7", "get_reservation"},
		{http.MethodPut, "/api/reservations/7", "update_reservation"},
		{http.MethodPatch, "/api/reservations/7", "update_reservation"},
		{http.MethodDelete, "/api/reservations/7", "delete_reservation"},
	}
	for _, req := range requests {
		resp := doRequest(r, req.method, req.path, true)
		assert.Equal(t, http.StatusOK, resp.Code, "%s %s", req.method, req.path)
	}
	assert.Equal(t, 2, hits["update_reservation"])
}

func TestRouter_SpaceManagementRequiresAdmin(t *testing.T) {
	r, hits := newTestRouter(clientClaims())

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/spaces"},
		{http.MethodPut, "/api/spaces/5"},
		{http.MethodPatch, "/api/spaces/5"},
		{http.MethodDelete, "/api/spaces/5"},
	}
	for _, req := range requests {
		resp := doRequest(r, req.method, req.path, true)
		assert.Equal(t, http.StatusForbidden, resp.Code, "%s %s", req.method, req.path)
	}
	assert.Empty(t, hits)
}

func TestRouter_AdminSpaceRoutes(t *testing.T) {
	r, hits := newTestRouter(adminClaims())

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/spaces", true).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPut, "/api/spaces/5", true).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPatch, "/api/spaces/5", true).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodDelete, "/api/spaces/5", true).Code)

	assert.Equal(t, 1, hits["create_space"])
	assert.Equal(t, 2, hits["update_space"])
	assert.Equal(t, 1, hits["delete_space"])
}
