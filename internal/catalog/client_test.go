package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []FetchEvent
}

func (o *recordingObserver) OnFetchComplete(e FetchEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(t *testing.T) FetchEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestSource(t *testing.T, url string, timeout time.Duration, obs Observer) *HTTPSource {
	t.Helper()
	src := NewHTTPSource(Config{URL: url, Timeout: timeout}, obs)
	t.Cleanup(src.CloseIdleConnections)
	return src
}

func TestFetch_DecodesObject(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := serveBody(t, http.StatusOK, `{"Earth": {"ra": 0}, "Mars": {}, "Ananke": 3}`)
	obs := &recordingObserver{}
	src := newTestSource(t, srv.URL, time.Second, obs)

	cat, err := src.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []string{"Ananke", "Earth", "Mars"}, cat.SortedNames())
	assert.JSONEq(t, `{"ra": 0}`, string(cat["Earth"]))

	ev := obs.last(t)
	assert.True(t, ev.Success)
	assert.Equal(t, 3, ev.Planets)
	assert.Equal(t, srv.URL, ev.URL)

	srv.Close()
	src.CloseIdleConnections()
}

func TestFetch_EmptyObjectIsEmptyCatalog(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{}`)
	src := newTestSource(t, srv.URL, time.Second, nil)

	cat, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cat)
	assert.Equal(t, 0, cat.Len())
}

func TestFetch_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"array":     `["Earth", "Mars"]`,
		"null":      `null`,
		"truncated": `{"Earth": `,
		"string":    `"Earth"`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := serveBody(t, http.StatusOK, body)
			obs := &recordingObserver{}
			src := newTestSource(t, srv.URL, time.Second, obs)

			_, err := src.Fetch(context.Background())
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Equal(t, "MALFORMED", obs.last(t).ErrorCode)
		})
	}
}

func TestFetch_BadStatus(t *testing.T) {
	srv := serveBody(t, http.StatusNotFound, `not found`)
	src := newTestSource(t, srv.URL, time.Second, nil)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_TooLarge(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{"Earth": {}, "Mars": {}, "Venus": {}}`)
	obs := &recordingObserver{}
	src := NewHTTPSource(Config{URL: srv.URL, Timeout: time.Second, MaxBytes: 16}, obs)
	t.Cleanup(src.CloseIdleConnections)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, "TOO_LARGE", obs.last(t).ErrorCode)
}

func TestFetch_AtSizeCap(t *testing.T) {
	body := `{"Earth": {}}`
	srv := serveBody(t, http.StatusOK, body)
	src := NewHTTPSource(Config{URL: srv.URL, Timeout: time.Second, MaxBytes: int64(len(body))}, nil)
	t.Cleanup(src.CloseIdleConnections)

	cat, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, cat.Has("Earth"))
}

func TestFetch_Timeout(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	obs := &recordingObserver{}
	src := NewHTTPSource(Config{URL: srv.URL, Timeout: 50 * time.Millisecond}, obs)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "TIMEOUT", obs.last(t).ErrorCode)

	close(release)
	src.CloseIdleConnections()
	srv.Close()
}

func TestFetch_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := newTestSource(t, url, time.Second, nil)
	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_CanceledByCaller(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{}`)
	src := newTestSource(t, srv.URL, time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode(t *testing.T) {
	cat, err := Decode([]byte(`{"Kepler-42b": {"dist": 40.2}}`))
	require.NoError(t, err)
	assert.True(t, cat.Has("Kepler-42b"))

	_, err = Decode([]byte(`42`))
	assert.ErrorIs(t, err, ErrMalformed)
}
