package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	tokens *mock.MockTokenService
	auth   *mock.MockAuthService
	vault  *mock.MockVaultService
	info   *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		tokens: mock.NewMockTokenService(ctrl),
		auth:   mock.NewMockAuthService(ctrl),
		vault:  mock.NewMockVaultService(ctrl),
		info:   mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		TokenService:   deps.tokens,
		AuthService:    deps.auth,
		VaultService:   deps.vault,
		AppInfoService: deps.info,
	}
	h := NewHandler(svcs, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	return h.Init(), deps
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Message
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
}

func TestInit_Version(t *testing.T) {
	router, deps := newTestRouter(t)
	info := models.NewAppBuildInfo("1.0.0", "2026-02-03", "deadbeef")
	deps.info.EXPECT().GetBuildInfo(gomock.Any()).Return(info)

	rr := doRequest(t, router, http.MethodGet, "/api/version/", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}

func TestInit_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/nothing", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", errorMessage(t, rr))
}

func TestInit_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		allow  string
	}{
		{name: "vault collection", method: http.MethodDelete, target: "/api/vault/", allow: "GET, POST"},
		{name: "vault item", method: http.MethodGet, target: "/api/vault/0190a6a4-6e5c-7b3e-8f00-0000000000e1", allow: "PUT, DELETE"},
		{name: "signup", method: http.MethodGet, target: "/api/auth/signup", allow: "POST"},
		{name: "version", method: http.MethodPost, target: "/api/version/", allow: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.tokens.EXPECT().Verify(gomock.Any(), "good").
				Return(models.Token{UserID: "user-1"}, nil).AnyTimes()

			rr := doRequest(t, router, tt.method, tt.target, "", map[string]string{"Authorization": "Bearer good"})

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.allow, rr.Header().Get("Allow"))
			assert.Equal(t, "method not allowed", errorMessage(t, rr))
		})
	}
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/nothing", "", map[string]string{traceIDHeader: "trace-123"})
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))

	rr = doRequest(t, router, http.MethodGet, "/api/nothing", "", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
