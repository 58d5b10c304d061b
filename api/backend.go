// File: api/backend.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EnvToken is the environment variable consulted for the access token when
// Config.Token is empty.
const EnvToken = "QRYD_API_TOKEN"

// DefaultTimeout bounds one HTTP round trip when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Request header names of the web API.
const (
	headerToken     = "X-API-KEY"
	headerRequestID = "X-Request-Id"
)

// Sentinel errors surfaced by the client.
var (
	// ErrConfig indicates an invalid configuration field.
	ErrConfig = errors.New("api: invalid configuration")

	// ErrMissingToken indicates no access token was found, neither in the
	// configuration nor in the environment.
	ErrMissingToken = errors.New("api: access token is missing")

	// ErrStatus indicates the server answered with an unexpected HTTP
	// status. The wrap carries the status line and the response body.
	ErrStatus = errors.New("api: unexpected response status")

	// ErrNoLocation indicates a job was accepted but the response carries
	// no Location header to address it by.
	ErrNoLocation = errors.New("api: response carries no job location")

	// ErrCounts indicates a measurement outcome key that is not a hex
	// bitstring.
	ErrCounts = errors.New("api: malformed measurement counts")
)

// Config collects the connection parameters of the web API client.
type Config struct {
	// BaseURL is the endpoint root including the API version, e.g.
	// "https://api.qryddemo.itp3.uni-stuttgart.de/v5_2". Jobs are posted
	// to BaseURL + "/jobs".
	BaseURL string

	// Token authenticates every request. When empty, New falls back to
	// the QRYD_API_TOKEN environment variable.
	Token string

	// DeviceName is the default cloud backend for postings whose RunData
	// carries no backend of its own.
	DeviceName string

	// Timeout bounds one HTTP round trip. Zero means DefaultTimeout.
	Timeout time.Duration

	// Logger receives request and response logs at debug level. Nil
	// disables logging.
	Logger *zap.Logger
}

// Validate reports the first invalid configuration field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%w: base URL is empty", ErrConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrConfig, c.Timeout)
	}

	return nil
}

// Backend is the web API client. It posts jobs and addresses them by the
// location URL the server assigns; it never retries.
type Backend struct {
	cfg    Config
	token  string
	client *http.Client
	log    *zap.Logger
}

// New builds a client from cfg. The access token resolves from cfg.Token
// first and the QRYD_API_TOKEN environment variable second; with neither set
// New fails with ErrMissingToken.
func New(cfg Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	token := cfg.Token
	if token == "" {
		token = os.Getenv(EnvToken)
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Backend{
		cfg:    cfg,
		token:  token,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}, nil
}

// PostJob submits run for execution and returns the job's location URL. A
// run without a backend inherits the configured device name. The server
// answers 201 Created with the location in the Location header; anything
// else fails with ErrStatus.
func (b *Backend) PostJob(ctx context.Context, run RunData) (string, error) {
	if run.Backend == "" {
		run.Backend = b.cfg.DeviceName
	}
	body, err := json.Marshal(run)
	if err != nil {
		return "", fmt.Errorf("api: encode job: %w", err)
	}

	resp, err := b.do(ctx, http.MethodPost, strings.TrimRight(b.cfg.BaseURL, "/")+"/jobs", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", statusError(resp)
	}
	location := resp.Header.Get("Location")
	if location == "" {
		return "", ErrNoLocation
	}

	return location, nil
}

// GetJobStatus fetches the status of the job at jobURL.
func (b *Backend) GetJobStatus(ctx context.Context, jobURL string) (JobStatus, error) {
	var status JobStatus
	if err := b.getJSON(ctx, jobURL+"/status", &status); err != nil {
		return JobStatus{}, err
	}

	return status, nil
}

// GetJobResult fetches the result of the finished job at jobURL.
func (b *Backend) GetJobResult(ctx context.Context, jobURL string) (JobResult, error) {
	var result JobResult
	if err := b.getJSON(ctx, jobURL+"/result", &result); err != nil {
		return JobResult{}, err
	}

	return result, nil
}

// DeleteJob removes the job at jobURL from the server.
func (b *Backend) DeleteJob(ctx context.Context, jobURL string) error {
	resp, err := b.do(ctx, http.MethodDelete, jobURL, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	return nil
}

// getJSON performs a GET expecting 200 with a JSON body decoded into v.
func (b *Backend) getJSON(ctx context.Context, url string, v any) error {
	resp, err := b.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("api: decode response from %s: %w", url, err)
	}

	return nil
}

// do sends one request with the token and a fresh request id attached.
func (b *Backend) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set(headerToken, b.token)
	req.Header.Set(headerRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	b.log.Debug("request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("request_id", req.Header.Get(headerRequestID)),
		zap.Int("body_bytes", len(body)))

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, url, err)
	}

	b.log.Debug("response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode))

	return resp, nil
}

// statusError turns a non-2xx response into an ErrStatus wrap carrying the
// status line and a bounded body excerpt.
func statusError(resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	detail = bytes.TrimSpace(detail)
	if len(detail) == 0 {
		return fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	return fmt.Errorf("%w: %s: %s", ErrStatus, resp.Status, detail)
}
