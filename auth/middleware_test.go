package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, seen *int64) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Use(Middleware(testAuthConfig()))
	r.Get("/protected", func(w http.ResponseWriter, req *http.Request) {
		userID, ok := GetUserIDFromContext(req.Context())
		require.True(t, ok)
		*seen = userID
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestMiddlewareMissingHeader(t *testing.T) {
	var seen int64
	router := newProtectedRouter(t, &seen)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "error")
	require.Zero(t, seen)
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	var seen int64
	router := newProtectedRouter(t, &seen)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	var seen int64
	router := newProtectedRouter(t, &seen)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareValidToken(t *testing.T) {
	var seen int64
	router := newProtectedRouter(t, &seen)

	token, err := GenerateToken(42, testAuthConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(42), seen)
}
