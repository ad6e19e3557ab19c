package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	assetProxyUpstream = "https://unpkg.com"

	proxyClient = &http.Client{Timeout: 30 * time.Second}
)

func SetAssetProxyUpstream(upstream string) {
	if upstream != "" {
		assetProxyUpstream = strings.TrimRight(upstream, "/")
	}
}

// AssetProxy forwards requests to the CDN hosting the 3D-scene assets and
// re-emits the upstream response with permissive CORS, so the browser-side
// scene loader is not blocked by mixed-content or CORS policies.
func AssetProxy(ctx *gin.Context) {
	upstreamURL := assetProxyUpstream + ctx.Param("path")

	if rawQuery := ctx.Request.URL.RawQuery; rawQuery != "" {
		upstreamURL += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx.Request.Context(), http.MethodGet, upstreamURL, nil)

	if err != nil {
		proxyError(ctx)
		return
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := proxyClient.Do(req)

	if err != nil {
		log.Printf("Asset proxy request failed: %v", err)
		proxyError(ctx)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			ctx.Writer.Header().Add(key, value)
		}
	}
	ctx.Writer.Header().Set("Access-Control-Allow-Origin", "*")

	ctx.Status(resp.StatusCode)

	if _, err := io.Copy(ctx.Writer, resp.Body); err != nil {
		log.Printf("Asset proxy copy failed: %v", err)
	}
}

func proxyError(ctx *gin.Context) {
	ctx.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to proxy request"})
}
