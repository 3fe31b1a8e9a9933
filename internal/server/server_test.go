package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorfy/internal/config"
)

func newTestServer(t *testing.T, tokenHash string) *Server {
	t.Helper()
	return NewServer(&config.Config{
		DefaultTheme:  "basic",
		SwatchWidth:   8,
		Listen:        "127.0.0.1:0",
		MetricsListen: "127.0.0.1:0",
		APITokenHash:  tokenHash,
	})
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestThemesIndex(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/api/themes")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Themes []struct {
			Name   string `json:"name"`
			Colors int    `json:"colors"`
		} `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Themes, 10)
}

func TestThemeLookup(t *testing.T) {
	srv := newTestServer(t, "")

	rec := get(t, srv, "/api/themes/dracula")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Name   string            `json:"name"`
		Colors map[string]string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "#bd93f9", body.Colors["purple"])

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/themes/nord").Code)
}

func TestCSSSheet(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/api/css/basic")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "--basic-red: #FF0000;")
	assert.Contains(t, rec.Body.String(), "--basic-red-rgba: rgba(255, 0, 0, 1.00);")
}

func TestConvert(t *testing.T) {
	srv := newTestServer(t, "")

	rec := get(t, srv, "/api/convert?color=%23FF0000")
	require.Equal(t, http.StatusOK, rec.Code)
	var body conversion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "#FF0000", body.Hex)
	assert.Equal(t, 255, body.R)
	assert.InDelta(t, 0, body.H, 0.01)
	assert.InDelta(t, 100, body.S, 0.01)
	assert.Equal(t, "#00FFFF", body.Complement)
	assert.Equal(t, "#4C4C4C", body.Gray)

	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/convert?color=%23ZZZZZZ").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/convert").Code)
}

func TestBlend(t *testing.T) {
	srv := newTestServer(t, "")

	rec := get(t, srv, "/api/blend?from=0,0,0,255&to=255,255,255,255&ratio=0.5")
	require.Equal(t, http.StatusOK, rec.Code)
	var body conversion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "#7F7F7F", body.Hex)

	assert.Equal(t, http.StatusBadRequest,
		get(t, srv, "/api/blend?from=%23000000&to=%23FFFFFF&ratio=1.5").Code,
		"ratio outside [0, 1]")
	assert.Equal(t, http.StatusBadRequest,
		get(t, srv, "/api/blend?from=1,2,3&to=%23FFFFFF").Code,
		"three-channel list is rejected")
}

func TestTokenAuth(t *testing.T) {
	hash, err := HashToken("hunter2")
	require.NoError(t, err)
	srv := newTestServer(t, hash)

	rec := get(t, srv, "/api/themes")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	req.Header.Set("Authorization", "Bearer hunter2")
	ok := httptest.NewRecorder()
	srv.Handler().ServeHTTP(ok, req)
	assert.Equal(t, http.StatusOK, ok.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	bad := httptest.NewRecorder()
	srv.Handler().ServeHTTP(bad, req)
	assert.Equal(t, http.StatusUnauthorized, bad.Code)

	// Health stays open for probes.
	assert.Equal(t, http.StatusOK, get(t, srv, "/healthz").Code)
}

