package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(maxBody int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(nil, maxBody))
}

func post(t *testing.T, r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(0)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestCompressDecompress(t *testing.T) {
	r := newTestRouter(0)
	input := []byte("she sells sea shells by the sea shore")

	rec := post(t, r, "/api/v1/compress", input)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, octetStream, rec.Header().Get("Content-Type"))

	rec = post(t, r, "/api/v1/decompress", rec.Body.Bytes())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, input, rec.Body.Bytes())
}

func TestDecompress_Malformed(t *testing.T) {
	r := newTestRouter(0)
	rec := post(t, r, "/api/v1/decompress", []byte{0x00})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp["error"], "malformed codebook")
}

func TestCodebook(t *testing.T) {
	r := newTestRouter(0)
	rec := post(t, r, "/api/v1/codebook", []byte("AAAAB"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp codebookResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Symbols)
	require.Equal(t, map[string]string{"A": "1", "B": "0"}, resp.Codebook)
	require.InDelta(t, 0.7219, resp.Entropy, 1e-4)
}

func TestBodyLimit(t *testing.T) {
	r := newTestRouter(8)
	rec := post(t, r, "/api/v1/compress", bytes.Repeat([]byte("x"), 64))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
