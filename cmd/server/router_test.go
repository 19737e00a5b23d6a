package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the real application over an in-memory SQLite database.
// Every origin is allowed unless origins are given.
func newTestApp(t *testing.T, origins ...string) *application {
	t.Helper()

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:               4000,
			LogLevel:           "debug",
			CORSAllowedOrigins: origins,
		},
		Database: config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"},
		Auth:     testutils.TestAuthConfig(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	stores, err := setupAppDatabase(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close(context.Background()) })

	app, err := newApplication(cfg, logger, stores)
	require.NoError(t, err)
	return app
}

func (app *application) token(t *testing.T, role domain.Role) string {
	t.Helper()
	return testutils.GenerateAuthHeader(t, app.jwtService, "user-1", role)
}

func send(t *testing.T, h http.Handler, method, path, authHeader, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestRestaurantLifecycle(t *testing.T) {
	app := newTestApp(t)
	router := app.setupRouter()
	owner := app.token(t, domain.RoleRestaurantOwner)

	rr := send(t, router, http.MethodPost, "/restaurants", owner,
		`{"name":"Test Restaurant","address":"123 Test St","hours":"9am - 9pm"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[domain.Restaurant](t, rr)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Restaurant", created.Name)

	rr = send(t, router, http.MethodGet, "/restaurants", owner, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]domain.Restaurant](t, rr)
	assert.Contains(t, list, created)

	rr = send(t, router, http.MethodGet, "/restaurants/"+created.ID, owner, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created, decode[domain.Restaurant](t, rr))

	rr = send(t, router, http.MethodPut, "/restaurants/"+created.ID, owner, `{"name":"Updated Restaurant"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[domain.Restaurant](t, rr)
	assert.Equal(t, "Updated Restaurant", updated.Name)
	assert.Equal(t, "123 Test St", updated.Address)

	rr = send(t, router, http.MethodDelete, "/restaurants/"+created.ID, owner, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Restaurant deleted successfully"}`, rr.Body.String())

	rr = send(t, router, http.MethodGet, "/restaurants/"+created.ID, owner, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Restaurant not found", decode[map[string]string](t, rr)["message"])
}

func TestMenuLifecycleAndCascade(t *testing.T) {
	app := newTestApp(t)
	router := app.setupRouter()
	admin := app.token(t, domain.RoleAdmin)
	customer := app.token(t, "customer")

	rr := send(t, router, http.MethodPost, "/restaurants", admin,
		`{"name":"Trattoria","address":"1 Via Roma","hours":"noon - 11pm"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	restaurant := decode[domain.Restaurant](t, rr)
	menuPath := "/restaurants/" + restaurant.ID + "/menu"

	rr = send(t, router, http.MethodGet, menuPath, customer, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"No menu items found for this restaurant"}`, stripTrace(t, rr))

	rr = send(t, router, http.MethodPost, menuPath, admin,
		`{"name":"Margherita","description":"Tomato and basil","price":9.5}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	item := decode[domain.MenuItem](t, rr)
	assert.Equal(t, restaurant.ID, item.RestaurantID)
	assert.True(t, item.Availability)

	rr = send(t, router, http.MethodGet, menuPath, customer, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []domain.MenuItem{item}, decode[[]domain.MenuItem](t, rr))

	rr = send(t, router, http.MethodPut, menuPath+"/"+item.ID, admin, `{"price":11,"availability":false}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[domain.MenuItem](t, rr)
	assert.Equal(t, 11.0, updated.Price)
	assert.False(t, updated.Availability)
	assert.Equal(t, "Margherita", updated.Name)

	rr = send(t, router, http.MethodDelete, "/restaurants/"+restaurant.ID, admin, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = send(t, router, http.MethodGet, menuPath, customer, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = send(t, router, http.MethodDelete, menuPath+"/"+item.ID, admin, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Menu item not found"}`, stripTrace(t, rr))
}

func TestAccessControl(t *testing.T) {
	app := newTestApp(t)
	router := app.setupRouter()
	customer := app.token(t, "customer")

	gated := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/restaurants", `{"name":"a","address":"b","hours":"c"}`},
		{http.MethodGet, "/restaurants/r1", ""},
		{http.MethodPut, "/restaurants/r1", `{"name":"a"}`},
		{http.MethodDelete, "/restaurants/r1", ""},
		{http.MethodPost, "/restaurants/r1/menu", `{"name":"a","description":"b","price":1}`},
		{http.MethodPut, "/restaurants/r1/menu/m1", `{"name":"a"}`},
		{http.MethodDelete, "/restaurants/r1/menu/m1", ""},
	}

	for _, route := range gated {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := send(t, router, route.method, route.path, "", route.body)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Empty(t, rr.Body.String())

			rr = send(t, router, route.method, route.path, customer, route.body)
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.JSONEq(t, `{"message":"Access denied"}`, stripTrace(t, rr))
		})
	}

	t.Run("listing needs only a token", func(t *testing.T) {
		rr := send(t, router, http.MethodGet, "/restaurants", customer, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())

		rr = send(t, router, http.MethodGet, "/restaurants", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bad token is forbidden", func(t *testing.T) {
		rr := send(t, router, http.MethodGet, "/restaurants", "Bearer not-a-jwt", "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"message":"Forbidden"}`, stripTrace(t, rr))
	})

	t.Run("unusable credential is forbidden", func(t *testing.T) {
		for _, header := range []string{"Token abc", "Bearer a b", "Basic dXNlcjpwYXNz"} {
			rr := send(t, router, http.MethodGet, "/restaurants", header, "")
			assert.Equal(t, http.StatusForbidden, rr.Code, header)
			assert.JSONEq(t, `{"message":"Forbidden"}`, stripTrace(t, rr))
		}

		rr := send(t, router, http.MethodGet, "/restaurants", "Bearer", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("numeric user id is accepted", func(t *testing.T) {
		header := signedHeader(t, jwt.MapClaims{"userId": 42, "role": "customer"})

		rr := send(t, router, http.MethodGet, "/restaurants", header, "")
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("non-string role fails only the owner gate", func(t *testing.T) {
		header := signedHeader(t, jwt.MapClaims{"userId": "u1", "role": 7})

		rr := send(t, router, http.MethodGet, "/restaurants", header, "")
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = send(t, router, http.MethodPost, "/restaurants", header, `{"name":"a","address":"b","hours":"c"}`)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"message":"Access denied"}`, stripTrace(t, rr))
	})
}

// signedHeader signs arbitrary claims with the test secret, the way an
// external client would mint them.
func signedHeader(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testutils.TestJWTSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t)
	router := app.setupRouter()
	owner := app.token(t, domain.RoleRestaurantOwner)

	rr := send(t, router, http.MethodPost, "/restaurants", owner, `{"address":"123 Test St","hours":"9-5"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid name: required field"}`, stripTrace(t, rr))

	rr = send(t, router, http.MethodPut, "/restaurants/missing", owner, `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = send(t, router, http.MethodPut, "/restaurants/missing", owner, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Restaurant not found"}`, stripTrace(t, rr))

	rr = send(t, router, http.MethodPut, "/restaurants/r1/menu/missing", owner, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Menu item not found"}`, stripTrace(t, rr))

	rr = send(t, router, http.MethodPost, "/restaurants", owner, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthAndCORS(t *testing.T) {
	app := newTestApp(t)
	router := app.setupRouter()

	rr := send(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	preflight := sendOptions(router, "/restaurants", "https://example.com", http.MethodPost)
	assert.Equal(t, http.StatusOK, preflight.Code)
	assert.Equal(t, "*", preflight.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodPost, preflight.Header().Get("Access-Control-Allow-Methods"))

	rr = send(t, router, http.MethodGet, "/health", "", "")
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowedOrigins(t *testing.T) {
	app := newTestApp(t, "https://app.example.com")
	router := app.setupRouter()

	t.Run("allowed origin preflight", func(t *testing.T) {
		rr := sendOptions(router, "/restaurants", "https://app.example.com", http.MethodPut)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.MethodPut, rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "300", rr.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("unknown origin preflight", func(t *testing.T) {
		rr := sendOptions(router, "/restaurants", "https://evil.example.com", http.MethodPost)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("method outside the allow list", func(t *testing.T) {
		rr := sendOptions(router, "/restaurants", "https://app.example.com", http.MethodPatch)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("bare OPTIONS is not a preflight", func(t *testing.T) {
		rr := sendOptions(router, "/restaurants", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("actual request from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Authorization", app.token(t, "customer"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

// sendOptions issues an OPTIONS request. Empty origin or method leaves the
// matching header unset.
func sendOptions(h http.Handler, path, origin, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if method != "" {
		req.Header.Set("Access-Control-Request-Method", method)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// stripTrace returns the JSON body without its trace_id so it can be compared.
func stripTrace(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[map[string]any](t, rr)
	assert.NotEmpty(t, body["trace_id"])
	delete(body, "trace_id")
	out, err := json.Marshal(body)
	require.NoError(t, err)
	return string(out)
}
