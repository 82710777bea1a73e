package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/healthjournal/internal/app"
	"github.com/templui/healthjournal/internal/config"
)

type envelope struct {
	StatusCode int               `json:"statusCode"`
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Errors     map[string]string `json:"errors"`
}

type client struct {
	t      *testing.T
	server *httptest.Server
	app    *app.App
}

func newClient(t *testing.T) *client {
	t.Helper()
	cfg := &config.Config{
		AppEnv:         "development",
		DBDriver:       "sqlite",
		DBConnection:   filepath.Join(t.TempDir(), "journal.db") + "?_pragma=busy_timeout(5000)",
		StoreTimeout:   time.Second,
		JWTSecret:      "routes-test-secret",
		JWTExpiry:      time.Hour,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		MetricsEnabled: true,
		UploadMaxBytes: 1 << 20,
	}

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	handler, stop := SetupRoutes(a)

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		stop()
		_ = a.Close()
	})

	return &client{t: t, server: server, app: a}
}

func (c *client) token(userID string) string {
	c.t.Helper()
	token, _, err := c.app.AuthService.IssueToken(userID)
	require.NoError(c.t, err)
	return token
}

func (c *client) do(method, path, token string, body any) (int, envelope) {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(c.t, resp.StatusCode, env.StatusCode)
	return resp.StatusCode, env
}

func TestHealthIsPublic(t *testing.T) {
	c := newClient(t)

	status, env := c.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestMetricsIsPublic(t *testing.T) {
	c := newClient(t)

	resp, err := http.Get(c.server.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/api/v1/goals", "/api/v1/medications?date=2024-01-10", "/api/v1/moods", "/api/goals/getgoals"} {
		status, env := c.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
		assert.False(t, env.Success)
	}

	status, _ := c.do(http.MethodGet, "/api/v1/goals", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestGoalFlow(t *testing.T) {
	c := newClient(t)
	alice := c.token("alice")
	bob := c.token("bob")

	status, env := c.do(http.MethodGet, "/api/v1/goals", alice, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No goals found.", env.Message)
	assert.JSONEq(t, `[]`, string(env.Data))

	status, env = c.do(http.MethodPost, "/api/v1/goals", alice, map[string]any{
		"name": "Walk", "frequency": "daily", "howOften": 1, "startDate": "2024-01-10",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Goal added successfully.", env.Message)

	status, env = c.do(http.MethodGet, "/api/goals/getgoals", alice, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Goals fetched successfully", env.Message)

	var goals []struct {
		ID        string `json:"id"`
		HowOften  string `json:"howOften"`
		StartDate string `json:"startDate"`
		Progress  int    `json:"progress"`
		Completed bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &goals))
	require.Len(t, goals, 1)
	assert.Equal(t, "1", goals[0].HowOften)
	assert.Equal(t, "2024-01-10", goals[0].StartDate)

	id := goals[0].ID
	status, env = c.do(http.MethodPatch, "/api/v1/goals/"+id+"/progress", alice, map[string]any{"progress": 4})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Goal progress updated successfully.", env.Message)
	assert.Contains(t, string(env.Data), `"completed":true`)

	status, env = c.do(http.MethodPatch, "/api/goals/update-progress/"+id, bob, map[string]any{"progress": 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Goal not found.", env.Message)

	status, _ = c.do(http.MethodGet, "/api/v1/goals?completed=TRUE", alice, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = c.do(http.MethodGet, "/api/v1/goals?completed=maybe", alice, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGoalValidationEnvelope(t *testing.T) {
	c := newClient(t)
	alice := c.token("alice")

	status, env := c.do(http.MethodPost, "/api/v1/goals", alice, map[string]any{"name": "Walk"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "All fields (name, frequency, howOften, startDate) are required.", env.Message)
	assert.Contains(t, env.Errors, "frequency")

	req, err := http.NewRequest(http.MethodPost, c.server.URL+"/api/v1/goals", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+alice)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMedicationFlow(t *testing.T) {
	c := newClient(t)
	alice := c.token("alice")

	status, env := c.do(http.MethodPost, "/api/medications/addmedication", alice, map[string]any{
		"medicationName": "Ibuprofen", "dosage": "200mg", "timeOfTheDay": "morning",
		"date": "2024-01-10", "effects": []string{"drowsiness"},
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Medication added successfully.", env.Message)

	status, env = c.do(http.MethodGet, "/api/v1/medications?date=2024-01-10", alice, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Medications fetched successfully.", env.Message)
	assert.Contains(t, string(env.Data), `"medicationName":"Ibuprofen"`)

	status, env = c.do(http.MethodGet, "/api/v1/medications?date=2024-01-11", alice, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No medications found for the specified user and date.", env.Message)

	status, env = c.do(http.MethodGet, "/api/v1/medications", alice, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Date is required.", env.Message)
}

func TestMoodFlow(t *testing.T) {
	c := newClient(t)
	alice := c.token("alice")

	status, env := c.do(http.MethodPost, "/api/v1/moods", alice, map[string]any{"mood": 2, "date": "2024-01-10"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Mood added successfully", env.Message)

	status, env = c.do(http.MethodPost, "/api/v1/moods", alice, map[string]any{"mood": 3, "date": "2024-01-10"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Mood updated successfully", env.Message)

	status, env = c.do(http.MethodPost, "/api/v1/moods", alice, map[string]any{"mood": 5, "date": "2024-01-10"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Mood must be between 1 and 3.", env.Message)

	status, env = c.do(http.MethodGet, "/api/v1/moods?startDate=2024-01-01&endDate=2024-01-31", alice, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Moods fetched successfully", env.Message)
	assert.Contains(t, string(env.Data), `"mood":3`)

	status, env = c.do(http.MethodGet, "/api/v1/moods?startDate=2024-01-01", alice, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid date format", env.Message)
}

func TestSymptomFlow(t *testing.T) {
	c := newClient(t)
	alice := c.token("alice")

	status, env := c.do(http.MethodPost, "/api/v1/symptoms", alice, map[string]any{
		"symptoms": []string{"headache"}, "date": "2024-01-10", "severity": 3, "timeOfDay": "evening",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Symptoms stored successfully.", env.Message)

	status, env = c.do(http.MethodPost, "/api/v1/symptoms", alice, map[string]any{"symptoms": []string{}, "date": "2024-01-10"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Symptoms array cannot be empty.", env.Message)

	status, env = c.do(http.MethodGet, "/api/v1/symptoms?startDate=2024-01-01&endDate=2024-01-31", alice, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Symptoms fetched successfully.", env.Message)
	assert.Contains(t, string(env.Data), `"severity":"3"`)

	status, env = c.do(http.MethodGet, "/api/v1/symptoms?startDate=2024-01-01", alice, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Start date and end date are required.", env.Message)

	status, env = c.do(http.MethodGet, "/api/v1/symptoms?startDate=2023-01-01&endDate=2023-01-31", alice, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No symptoms found in the specified range", env.Message)
}

func TestUnknownRouteIsEnvelope(t *testing.T) {
	c := newClient(t)

	status, env := c.do(http.MethodGet, "/api/v1/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found.", env.Message)
}

func TestAssetRoutesDisabledWithoutBucket(t *testing.T) {
	c := newClient(t)

	status, _ := c.do(http.MethodPost, "/api/v1/assets", c.token("alice"), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
