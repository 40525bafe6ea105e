package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandlerPing(t *testing.T) {
	h := NewSystemHandler("1.0.0")
	r := gin.New()
	r.GET("/api/v1/system/ping", h.Ping)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/system/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Data    PingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pong", resp.Data.Message)

	_, err := time.Parse(time.RFC3339, resp.Data.Timestamp)
	assert.NoError(t, err)
}

func TestSystemHandlerGetSystemInfo(t *testing.T) {
	h := NewSystemHandler("1.2.3")
	r := gin.New()
	r.GET("/api/v1/system/info", h.GetSystemInfo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/system/info", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data SystemInfoResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Noor Boutique API", resp.Data.Name)
	assert.Equal(t, "1.2.3", resp.Data.Version)
	assert.Contains(t, resp.Data.GoVersion, "go")
	assert.NotEmpty(t, resp.Data.Uptime)
}
