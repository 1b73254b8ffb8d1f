package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"

	"github.com/readysetcloud/fitness-cli/pkg/models"
)

// ErrNoSettings is returned when the service has no settings for the caller
var ErrNoSettings = errors.New("no settings returned for this account")

// RequestIDHeader carries a per-request correlation id
const RequestIDHeader = "X-Request-Id"

// Client talks to the settings GraphQL endpoint. It implements form.Querier and
// form.Mutator.
type Client struct {
	gql     *graphql.Client
	session SessionProvider
	log     *slog.Logger
}

// Options configures a Client
type Options struct {
	Endpoint   string
	Session    SessionProvider
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
}

// NewClient builds a client for the given endpoint
func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("settings API endpoint is not configured")
	}
	if opts.Session == nil {
		return nil, fmt.Errorf("settings API session is not configured")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	gql := graphql.NewClient(opts.Endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		log.Debug("graphql", slog.String("detail", s))
	}

	return &Client{
		gql:     gql,
		session: opts.Session,
		log:     log,
	}, nil
}

// GetMySettings fetches the caller's workout settings
func (c *Client) GetMySettings(ctx context.Context) (*models.Settings, error) {
	req := graphql.NewRequest(GetWorkoutSettingsQuery)

	var resp struct {
		GetMySettings *models.Settings `json:"getMySettings"`
	}
	if err := c.run(ctx, "getWorkoutSettings", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	if resp.GetMySettings == nil {
		return nil, ErrNoSettings
	}
	return resp.GetMySettings, nil
}

// UpdateSettings sends the full settings object. ok reports whether the
// service returned a truthy updateSettings result.
func (c *Client) UpdateSettings(ctx context.Context, s *models.Settings) (bool, error) {
	input := s.Clone()
	input.Normalize()

	req := graphql.NewRequest(UpdateSettingsMutation)
	req.Var("input", input)

	var resp struct {
		UpdateSettings json.RawMessage `json:"updateSettings"`
	}
	if err := c.run(ctx, "updateSettings", req, &resp); err != nil {
		return false, fmt.Errorf("failed to update settings: %w", err)
	}
	return truthy(resp.UpdateSettings), nil
}

func (c *Client) run(ctx context.Context, op string, req *graphql.Request, resp interface{}) error {
	creds, err := c.session.Credentials(ctx)
	if err != nil {
		return err
	}
	if creds.Token != "" {
		req.Header.Set("Authorization", creds.Token)
	}
	if creds.APIKey != "" {
		req.Header.Set("x-api-key", creds.APIKey)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	err = c.gql.Run(ctx, req, resp)
	c.log.Debug("graphql_request",
		slog.String("op", op),
		slog.String("request_id", requestID),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("ok", err == nil))
	return err
}

// truthy treats any result other than absent, null, false, zero or an empty
// string as success.
func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", "0", `""`:
		return false
	}
	return true
}
