// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/internal/mock"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testValues() config.Values {
	return config.Values{
		config.KeyAppID:          "app-id-123",
		config.KeyMasterKey:      "master-key-123",
		config.KeyClientKey:      "client-key",
		config.KeyJavascriptKey:  "js-key",
		config.KeyRestAPIKey:     "rest-key",
		config.KeyWebhookKey:     "webhook-key",
		config.KeyServerURL:      "http://localhost:1337/parse",
		config.KeyDatabaseURI:    "mongodb://localhost:27017/parse",
		config.KeyAWSRegion:      "us-east-1",
		config.KeyParseMount:     "/parse",
		config.KeyDashboardMount: "/dashboard",
		config.KeyIncomingMount:  "/incoming",
	}
}

func newTestRouter(t *testing.T, deps Dependencies) http.Handler {
	t.Helper()
	if deps.BuildInfo == (models.AppBuildInfo{}) {
		deps.BuildInfo = models.NewAppBuildInfo("1.0.0", "", "", "7.4.0")
	}
	return NewHandler(deps, logger.Nop()).Init()
}

func serve(router http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func echoPath(prefix string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(prefix + ":" + r.URL.Path))
	})
}

// ── GET / ─────────────────────────────────────────────────────────────────────

func TestInit_VersionHealthCheck(t *testing.T) {
	router := newTestRouter(t, Dependencies{Values: testValues()})

	rr := serve(router, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "7.4.0", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ── API / dashboard mounts ────────────────────────────────────────────────────

func TestInit_MountsAPIAndDashboard(t *testing.T) {
	router := newTestRouter(t, Dependencies{
		Values:    testValues(),
		API:       echoPath("api"),
		Dashboard: echoPath("dashboard"),
	})

	rr := serve(router, http.MethodGet, "/parse/classes/GameScore", nil, "")
	assert.Equal(t, "api:/classes/GameScore", rr.Body.String())

	rr = serve(router, http.MethodGet, "/dashboard/apps", nil, "")
	assert.Equal(t, "dashboard:/apps", rr.Body.String())
}

func TestInit_DisabledMounts(t *testing.T) {
	values := testValues()
	delete(values, config.KeyParseMount)
	delete(values, config.KeyDashboardMount)
	delete(values, config.KeyIncomingMount)

	router := newTestRouter(t, Dependencies{
		Values:    values,
		API:       echoPath("api"),
		Dashboard: echoPath("dashboard"),
	})

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/parse/health", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/dashboard/", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/incoming/hook", nil, "").Code)
}

// ── static files ──────────────────────────────────────────────────────────────

func TestInit_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "public"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public", "hello.txt"), []byte("hi there"), 0o600))
	t.Chdir(dir)

	values := testValues()
	values[config.KeyStaticFilesPath] = "/public"
	router := newTestRouter(t, Dependencies{Values: values})

	rr := serve(router, http.MethodGet, "/public/hello.txt", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hi there", rr.Body.String())
}

// ── incoming webhooks ─────────────────────────────────────────────────────────

func TestIncoming_JSONBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCloudFunctionRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), "stripeHook", gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, params map[string]any) (json.RawMessage, error) {
			assert.Equal(t, "stripeHook", params["method"])
			assert.Equal(t, map[string]string{"method": "stripeHook"}, params["parameters"])
			assert.Equal(t, map[string]any{"source": "stripe"}, params["query"])
			assert.Equal(t, map[string]any{"id": "evt_1", "amount": float64(42)}, params["body"])
			return json.RawMessage(`{"ok":true}`), nil
		})

	router := newTestRouter(t, Dependencies{Values: testValues(), Runner: runner})

	rr := serve(router, http.MethodPost, "/incoming/stripeHook?source=stripe",
		strings.NewReader(`{"id":"evt_1","amount":42}`), "application/json")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
}

func TestIncoming_FormBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCloudFunctionRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), "twilio", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params map[string]any) (json.RawMessage, error) {
			assert.Equal(t, map[string]any{"From": "+100", "Tag": []string{"a", "b"}}, params["body"])
			return json.RawMessage(`"received"`), nil
		})

	router := newTestRouter(t, Dependencies{Values: testValues(), Runner: runner})

	form := url.Values{"From": {"+100"}, "Tag": {"a", "b"}}
	rr := serve(router, http.MethodPost, "/incoming/twilio",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `"received"`, rr.Body.String())
}

func TestIncoming_CloudErrorIsRelayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCloudFunctionRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), "missing", gomock.Any()).
		Return(nil, &adapter.CloudError{Code: 141, Message: "Invalid function"})

	router := newTestRouter(t, Dependencies{Values: testValues(), Runner: runner})

	rr := serve(router, http.MethodPost, "/incoming/missing", strings.NewReader(`{}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"code":141,"error":"Invalid function"}`, rr.Body.String())
}

func TestIncoming_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCloudFunctionRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), "offline", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	router := newTestRouter(t, Dependencies{Values: testValues(), Runner: runner})

	rr := serve(router, http.MethodPost, "/incoming/offline", nil, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"code":1,"error":"connection refused"}`, rr.Body.String())
}

func TestIncoming_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCloudFunctionRunner(ctrl)

	router := newTestRouter(t, Dependencies{Values: testValues(), Runner: runner})

	rr := serve(router, http.MethodPost, "/incoming/hook", strings.NewReader(`{broken`), "application/json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body adapter.CloudError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, codeInvalidJSON, body.Code)
}

func TestIncoming_OnlyPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, Dependencies{Values: testValues(), Runner: mock.NewMockCloudFunctionRunner(ctrl)})

	rr := serve(router, http.MethodGet, "/incoming/hook", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// ── configuration endpoint ────────────────────────────────────────────────────

func TestServerConfig_MountedAtMasterKey(t *testing.T) {
	router := newTestRouter(t, Dependencies{Values: testValues()})

	rr := serve(router, http.MethodGet, "/master-key-123", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

	assert.Equal(t, map[string]string{
		"PARSE_APPLICATION_ID":        "app-id-123",
		"PARSE_SERVER_APPLICATION_ID": "app-id-123",
		"PARSE_CLIENT_KEY":            "client-key",
		"PARSE_SERVER_CLIENT_KEY":     "client-key",
		"PARSE_SERVER_JAVASCRIPT_KEY": "js-key",
		"PARSE_SERVER_MASTER_KEY":     "master-key-123",
		"PARSE_SERVER_REST_API_KEY":   "rest-key",
		"PARSE_SERVER_URL":            "http://localhost:1337/parse",
		"PARSE_SERVER_VERSION":        "7.4.0",
		"PARSE_DATABASE_URI":          "mongodb://localhost:27017/parse",
		"DATABASE_URI":                "mongodb://localhost:27017/parse",
		"PARSE_SERVER_WEBHOOK_KEY":    "webhook-key",
		"AWS_REGION":                  "us-east-1",
	}, got)
}

func TestServerConfig_PublishEnvKeys(t *testing.T) {
	values := testValues()
	values[config.KeyConfigKey] = "cfg-route"
	values[config.KeyPublishEnvKeys] = []string{"STRIPE_KEY", "UNSET_KEY"}

	router := newTestRouter(t, Dependencies{
		Values: values,
		Env:    config.Env{"STRIPE_KEY": "pk_test", "OTHER": "hidden"},
	})

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/master-key-123", nil, "").Code)

	rr := serve(router, http.MethodGet, "/cfg-route", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "pk_test", got["STRIPE_KEY"])
	assert.NotContains(t, got, "UNSET_KEY")
	assert.NotContains(t, got, "OTHER")
}

func TestConfigRoute(t *testing.T) {
	tests := []struct {
		name   string
		values config.Values
		want   string
	}{
		{name: "master key", values: config.Values{config.KeyMasterKey: "mk12345"}, want: "/mk12345"},
		{name: "explicit key", values: config.Values{config.KeyMasterKey: "mk12345", config.KeyConfigKey: "cfg"}, want: "/cfg"},
		{name: "disabled", values: config.Values{config.KeyMasterKey: "mk12345", config.KeyConfigKey: "-"}, want: ""},
		{name: "no keys", values: config.Values{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigRoute(tt.values))
		})
	}
}

// ── metrics ───────────────────────────────────────────────────────────────────

func TestInit_MetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCloudFunctionRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), "ping", gomock.Any()).Return(json.RawMessage(`1`), nil)

	values := testValues()
	values[config.KeyMetricsMount] = "/metrics"

	router := newTestRouter(t, Dependencies{
		Values:   values,
		Runner:   runner,
		Registry: prometheus.NewRegistry(),
	})

	require.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/incoming/ping", nil, "").Code)

	rr := serve(router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `hyperdrive_incoming_webhooks_total{function="ping",outcome="succeeded"} 1`)
}

// ── dashboard options ─────────────────────────────────────────────────────────

func TestNewDashboardOptions_Development(t *testing.T) {
	values := testValues()
	values[config.KeyDashboardUser] = "admin"
	values[config.KeyDashboardPassword] = "pw"

	opts := NewDashboardOptions(values, config.Runtime{Mode: config.ModeDevelopment})

	require.Len(t, opts.Apps, 1)
	assert.Equal(t, models.DashboardApp{
		ServerURL:     "http://localhost:1337/parse",
		AppID:         "app-id-123",
		MasterKey:     "master-key-123",
		JavascriptKey: "js-key",
		AppName:       models.DefaultDashboardAppName,
	}, opts.Apps[0])
	assert.Empty(t, opts.Users)
	assert.True(t, opts.Settings.AllowInsecureHTTP)
}

func TestNewDashboardOptions_ProductionRequiresLogin(t *testing.T) {
	values := testValues()
	values[config.KeyAppName] = "My App"
	values[config.KeyDashboardUser] = "admin"
	values[config.KeyDashboardPassword] = "pw"

	opts := NewDashboardOptions(values, config.Runtime{Mode: "production"})

	assert.Equal(t, "My App", opts.Apps[0].AppName)
	assert.Equal(t, []models.DashboardUser{{User: "admin", Pass: "pw"}}, opts.Users)
}
