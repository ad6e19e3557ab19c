package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/spline-proxy/*path", AssetProxy)
	return r
}

func TestAssetProxyPassthrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lib@1.2.3/scene.wasm", r.URL.Path)
		assert.Equal(t, "v=1", r.URL.RawQuery)
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")

		w.Header().Set("Content-Type", "application/wasm")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("wasm-bytes"))
	}))
	defer upstream.Close()

	SetAssetProxyUpstream(upstream.URL)
	t.Cleanup(func() { SetAssetProxyUpstream("https://unpkg.com") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spline-proxy/lib@1.2.3/scene.wasm?v=1", nil)

	newProxyRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wasm-bytes", w.Body.String())
	assert.Equal(t, "application/wasm", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAssetProxyForwardsUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	SetAssetProxyUpstream(upstream.URL)
	t.Cleanup(func() { SetAssetProxyUpstream("https://unpkg.com") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spline-proxy/missing.js", nil)

	newProxyRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAssetProxyUpstreamFailure(t *testing.T) {
	// Point at a closed server to force a transport error.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	SetAssetProxyUpstream(upstream.URL)
	t.Cleanup(func() { SetAssetProxyUpstream("https://unpkg.com") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spline-proxy/scene.js", nil)

	newProxyRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Body.String(), "Failed to proxy request")
}
