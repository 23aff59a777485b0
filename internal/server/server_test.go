package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func assetTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Kepler-22 b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Kepler-22 b", "skymap_n.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planets.json"), []byte(`{}`), 0644))
	return dir
}

func TestRouter_Healthz(t *testing.T) {
	h := NewRouter(t.TempDir(), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_ServesAssets(t *testing.T) {
	h := NewRouter(assetTree(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/Kepler-22%20b/skymap_n.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MissingAsset(t *testing.T) {
	h := NewRouter(assetTree(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/nope/skymap_s.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_LogsRequests(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewRouter(assetTree(t), zap.New(core))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/planets.json", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/assets/planets.json", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestServer_ServeUntilCanceled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	srv := New(Config{Dir: assetTree(t)}, nil)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{}
	resp, err := client.Get("http://" + ln.Addr().String() + "/assets/planets.json")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "{}", string(body))

	cancel()
	require.NoError(t, <-done)
	client.CloseIdleConnections()
}

func TestServer_MissingDir(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(Config{Dir: filepath.Join(t.TempDir(), "absent")}, nil)
	err = srv.Serve(context.Background(), ln)
	assert.ErrorContains(t, err, "asset directory")
}
