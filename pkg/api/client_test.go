package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readysetcloud/fitness-cli/pkg/models"
)

type graphqlRequest struct {
	Query     string                     `json:"query"`
	Variables map[string]json.RawMessage `json:"variables"`
}

type capturedRequest struct {
	body   graphqlRequest
	header http.Header
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("server failed to decode request: %v", err)
		}
		captured = append(captured, capturedRequest{body: body, header: r.Header.Clone()})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(Options{
		Endpoint: url,
		Session:  StaticSession{Token: "jwt-token", APIKey: "da2-key"},
	})
	require.NoError(t, err)
	return c
}

func TestGetMySettings(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{"data":{"getMySettings":{
		"targetTime": 60,
		"frequency": ["M","W","F"],
		"muscleGroups": ["chest"],
		"equipment": [{"type":"dumbbells","threshold":0.7}],
		"workoutTypes": [{"type":"tabata","modifier":""}],
		"specialWorkouts": {"days":["Sa"],"percentChance":20,"equipment":["jump rope"],"objective":"cardio"}
	}}}`)

	s, err := newTestClient(t, srv.URL).GetMySettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 60, s.TargetTime)
	assert.Equal(t, []string{"M", "W", "F"}, s.Frequency)
	assert.Equal(t, []models.EquipmentPreference{{Type: "dumbbells", Threshold: 0.7}}, s.Equipment)
	assert.Equal(t, "cardio", s.SpecialWorkouts.Objective)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Contains(t, req.body.Query, "getMySettings")
	assert.Equal(t, "jwt-token", req.header.Get("Authorization"))
	assert.Equal(t, "da2-key", req.header.Get("x-api-key"))
	assert.NotEmpty(t, req.header.Get(RequestIDHeader))
}

func TestGetMySettingsMissingFrequency(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"data":{"getMySettings":{"targetTime":45}}}`)

	s, err := newTestClient(t, srv.URL).GetMySettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s.Frequency)
}

func TestGetMySettingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		contains string
	}{
		{
			name:     "graphql error",
			status:   http.StatusOK,
			response: `{"data":null,"errors":[{"message":"Unauthorized"}]}`,
			contains: "Unauthorized",
		},
		{
			name:     "null settings",
			status:   http.StatusOK,
			response: `{"data":{"getMySettings":null}}`,
			contains: "no settings",
		},
		{
			name:     "server failure",
			status:   http.StatusBadGateway,
			response: `<html>bad gateway</html>`,
			contains: "decoding response",
		},
		{
			name:     "unauthorized with graphql errors",
			status:   http.StatusUnauthorized,
			response: `{"errors":[{"message":"Token has expired"}]}`,
			contains: "Token has expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.response)
			_, err := newTestClient(t, srv.URL).GetMySettings(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantOK   bool
	}{
		{name: "boolean true", response: `{"data":{"updateSettings":true}}`, wantOK: true},
		{name: "object result", response: `{"data":{"updateSettings":{"id":"abc"}}}`, wantOK: true},
		{name: "false", response: `{"data":{"updateSettings":false}}`, wantOK: false},
		{name: "null", response: `{"data":{"updateSettings":null}}`, wantOK: false},
		{name: "field missing", response: `{"data":{}}`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newTestServer(t, http.StatusOK, tt.response)

			s := &models.Settings{TargetTime: 45, Frequency: []string{"M", "W", "F"}}
			ok, err := newTestClient(t, srv.URL).UpdateSettings(context.Background(), s)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			require.Len(t, *captured, 1)
			body := (*captured)[0].body
			assert.True(t, strings.HasPrefix(body.Query, "mutation updateSettings"))

			var input map[string]any
			require.NoError(t, json.Unmarshal(body.Variables["input"], &input))
			assert.Equal(t, float64(45), input["targetTime"])
			assert.Equal(t, []any{"M", "W", "F"}, input["frequency"])
			assert.Equal(t, []any{}, input["muscleGroups"], "nil collections are sent as empty lists")
		})
	}
}

func TestUpdateSettingsError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"errors":[{"message":"validation failed"}]}`)

	ok, err := newTestClient(t, srv.URL).UpdateSettings(context.Background(), models.DefaultSettings())
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Options{Session: StaticSession{Token: "t"}})
	assert.Error(t, err)

	_, err = NewClient(Options{Endpoint: "http://localhost"})
	assert.Error(t, err)
}

func TestStaticSession(t *testing.T) {
	_, err := StaticSession{}.Credentials(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)

	creds, err := StaticSession{Token: "abc"}.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", creds.Token)
}

func TestRequestWithoutCredentialsIsNotSent(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{"data":{"getMySettings":{"targetTime":45}}}`)
	c, err := NewClient(Options{Endpoint: srv.URL, Session: StaticSession{}})
	require.NoError(t, err)

	_, err = c.GetMySettings(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Empty(t, *captured)
}

func TestTruthy(t *testing.T) {
	tests := map[string]bool{
		``:        false,
		`null`:    false,
		`false`:   false,
		`0`:       false,
		`""`:      false,
		`true`:    true,
		` true `:  true,
		`"saved"`: true,
		`{}`:      true,
	}
	for raw, want := range tests {
		assert.Equal(t, want, truthy(json.RawMessage(raw)), "truthy(%q)", raw)
	}
}
