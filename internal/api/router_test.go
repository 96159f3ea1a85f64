package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carebridge/symptomdesk/internal/ai"
	"github.com/carebridge/symptomdesk/internal/ai/mock"
	"github.com/carebridge/symptomdesk/internal/api"
	"github.com/carebridge/symptomdesk/internal/api/handler"
	mw "github.com/carebridge/symptomdesk/internal/api/middleware"
	"github.com/carebridge/symptomdesk/internal/directory"
	"github.com/carebridge/symptomdesk/pkg/models"
)

const testRawKey = "sdk_router_test_key_1234567890"

// newTestServer wires the full stack behind the router: mock completion
// provider, builtin directory, optional auth.
func newTestServer(t *testing.T, provider models.CompletionProvider, keyHash string) *httptest.Server {
	t.Helper()

	svc := ai.NewService(provider, 5*time.Second, 0.2, 1024)
	dir := directory.NewProvider(directory.BuiltinSource{})

	var auth *mw.Auth
	if keyHash != "" {
		auth = mw.NewAuth(keyHash)
	}

	router := api.NewRouter(api.Dependencies{
		Auth: auth,
		HealthHandler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
		AnalyzeHandler:      handler.NewAnalyzeHandler(svc, dir),
		ListPhysicians:      handler.NewListPhysiciansHandler(dir),
		ListSpecializations: handler.NewSpecializationsHandler(dir),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_AnalyzeEndToEnd(t *testing.T) {
	srv := newTestServer(t, mock.NewProvider(), "")

	resp, err := http.Post(srv.URL+"/api/v1/analyze", "application/json",
		strings.NewReader(`{"symptoms":"Persistent cough and wheezing for a week"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var env struct {
		Data models.AnalysisResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Data.Failed())
	assert.NotEmpty(t, env.Data.PossibleConditions)
	assert.NotEmpty(t, env.Data.Disclaimer)
}

func TestRouter_AnalyzeBackendFailureStillOK(t *testing.T) {
	srv := newTestServer(t, mock.NewFailingProvider(errors.New("connection refused")), "")

	resp, err := http.Post(srv.URL+"/api/v1/analyze", "application/json",
		strings.NewReader(`{"symptoms":"Headache"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data models.AnalysisResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Data.Failed())
	assert.Equal(t, ai.FallbackAdvice, env.Data.GeneralAdvice)
	assert.Equal(t, ai.FallbackDisclaimer, env.Data.Disclaimer)
}

func TestRouter_PhysiciansListedFromBuiltinDirectory(t *testing.T) {
	srv := newTestServer(t, mock.NewProvider(), "")

	resp, err := http.Get(srv.URL + "/api/v1/physicians")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data []models.PhysicianRecord `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Len(t, env.Data, len(directory.Fallback()))
}

func TestRouter_SpecializationsEndpoint(t *testing.T) {
	srv := newTestServer(t, mock.NewProvider(), "")

	resp, err := http.Get(srv.URL + "/api/v1/physicians/specializations")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data struct {
			Specializations []string `json:"specializations"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Contains(t, env.Data.Specializations, "Cardiology")
	assert.Contains(t, env.Data.Specializations, "General Practice")
}

func TestRouter_HealthIsPublic(t *testing.T) {
	h, err := bcrypt.GenerateFromPassword([]byte(testRawKey), bcrypt.MinCost)
	require.NoError(t, err)
	srv := newTestServer(t, mock.NewProvider(), string(h))

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ServiceRoutesRequireAuthWhenEnabled(t *testing.T) {
	h, err := bcrypt.GenerateFromPassword([]byte(testRawKey), bcrypt.MinCost)
	require.NoError(t, err)
	srv := newTestServer(t, mock.NewProvider(), string(h))

	resp, err := http.Get(srv.URL + "/api/v1/physicians")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/physicians", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testRawKey)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_MissingHandlerReturnsNotImplemented(t *testing.T) {
	router := api.NewRouter(api.Dependencies{})
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestServer(t, mock.NewProvider(), "")

	resp, err := http.Get(srv.URL + "/api/v1/unknown")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
