package inspect

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/driver/refdriver"
	"github.com/conduit-lang/cldispatch/internal/layers/apistats"
)

func setupServer(t *testing.T, withStats bool, names ...string) (*Server, *dispatch.Loader) {
	t.Helper()

	var stats *apistats.Collector
	var opts []dispatch.Option
	if withStats {
		stats = apistats.NewCollector()
		opts = append(opts, dispatch.WithLayers(stats))
	}
	l, err := dispatch.New(nil, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	for _, name := range names {
		cfg := refdriver.DefaultConfig()
		cfg.Name = name
		cfg.Vendor = name + " inc"
		drv, err := refdriver.New(cfg)
		require.NoError(t, err)
		_, err = l.Attach(context.Background(), drv)
		require.NoError(t, err)
	}

	cfg := DefaultConfig()
	cfg.StreamInterval = 20 * time.Millisecond
	s, err := New(l, stats, cfg, nil)
	require.NoError(t, err)
	return s, l
}

func get(t *testing.T, h http.Handler, path string, into any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if into != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
	}
	return rec.Code
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, nil, DefaultConfig(), nil)
	assert.Error(t, err)

	l, err := dispatch.New(nil)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.StreamInterval = 0
	_, err = New(l, nil, cfg, nil)
	assert.Error(t, err)
}

func TestListEntryPoints(t *testing.T) {
	s, l := setupServer(t, false)
	h := s.Handler()

	var all []EntryPointView
	require.Equal(t, http.StatusOK, get(t, h, "/api/entrypoints", &all))
	assert.Len(t, all, l.Registry().Len())

	var enumeration []EntryPointView
	require.Equal(t, http.StatusOK, get(t, h, "/api/entrypoints?category=enumeration", &enumeration))
	require.Len(t, enumeration, 2)
	for _, v := range enumeration {
		assert.Nil(t, v.Governor)
	}

	var ep EntryPointView
	require.Equal(t, http.StatusOK, get(t, h, "/api/entrypoints/clCreateContextFromType", &ep))
	require.NotNil(t, ep.Governor)
	assert.Equal(t, "properties", ep.Governor.Param)
	assert.Equal(t, "property", ep.Governor.Mode)
	assert.Equal(t, "cl_platform_id", ep.Governor.Kind)
	assert.Equal(t, "trampoline", ep.Category)

	// a device list outranks the property list
	require.Equal(t, http.StatusOK, get(t, h, "/api/entrypoints/clCreateContext", &ep))
	require.NotNil(t, ep.Governor)
	assert.Equal(t, "devices", ep.Governor.Param)
	assert.Equal(t, "list", ep.Governor.Mode)

	var errResp ErrorResponse
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/entrypoints/clNope", &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error.Code)
}

func TestListImplementations(t *testing.T) {
	s, _ := setupServer(t, false, "alpha", "beta")

	var views []ImplementationView
	require.Equal(t, http.StatusOK, get(t, s.Handler(), "/api/implementations", &views))
	require.Len(t, views, 2)
	assert.Equal(t, "alpha", views[0].Name)
	assert.Equal(t, "3.0", views[0].Version)
	assert.True(t, views[0].Usable)
	assert.Positive(t, views[0].Populated)
	assert.Positive(t, views[0].Handles)
	assert.NotEmpty(t, views[0].ID)
}

func TestListPlatforms(t *testing.T) {
	s, _ := setupServer(t, false, "alpha", "beta")

	var views []PlatformView
	require.Equal(t, http.StatusOK, get(t, s.Handler(), "/api/platforms", &views))
	require.Len(t, views, 2)
	assert.Equal(t, "alpha", views[0].Name)
	assert.Equal(t, "alpha inc", views[0].Vendor)
	assert.True(t, strings.HasPrefix(views[0].Version, "OpenCL 3.0"), views[0].Version)
	assert.Equal(t, "beta", views[1].Name)
}

func TestListPlatformsEmpty(t *testing.T) {
	s, _ := setupServer(t, false)

	var views []PlatformView
	require.Equal(t, http.StatusOK, get(t, s.Handler(), "/api/platforms", &views))
	assert.Empty(t, views)
}

func TestStats(t *testing.T) {
	s, _ := setupServer(t, true, "alpha")
	h := s.Handler()

	// querying platforms goes through the instrumented slots
	get(t, h, "/api/platforms", nil)

	var stats []apistats.Stat
	require.Equal(t, http.StatusOK, get(t, h, "/api/stats", &stats))
	require.NotEmpty(t, stats)

	found := false
	for _, st := range stats {
		if st.EntryPoint == "clGetPlatformInfo" {
			found = true
			assert.Equal(t, "alpha", st.Implementation)
			assert.Equal(t, uint64(6), st.Calls)
		}
	}
	assert.True(t, found)
}

func TestStatsDisabled(t *testing.T) {
	s, _ := setupServer(t, false)

	var errResp ErrorResponse
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/api/stats", &errResp))
	assert.Equal(t, "STATS_DISABLED", errResp.Error.Code)
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/api/stats/stream", nil))
}

func TestStatsStream(t *testing.T) {
	s, l := setupServer(t, true, "alpha")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/stats/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first StatsMessage
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "stats", first.Type)

	l.Platforms()

	// later frames pick up new calls
	var msg StatsMessage
	for i := 0; i < 100 && len(msg.Stats) == 0; i++ {
		require.NoError(t, conn.ReadJSON(&msg))
	}
	assert.NotEmpty(t, msg.Stats)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := setupServer(t, false, "alpha")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/implementations")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, ln.Addr().String(), s.Addr())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestProfilingRoutes(t *testing.T) {
	l, err := dispatch.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	off, err := New(l, nil, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, get(t, off.Handler(), "/debug/pprof/", nil))

	cfg := DefaultConfig()
	cfg.Profiling = true
	on, err := New(l, nil, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(t, on.Handler(), "/debug/pprof/", nil))

	cfg.AuthSecret = "s3cret"
	guarded, err := New(l, nil, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(t, guarded.Handler(), "/debug/pprof/", nil))
}
