package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// PermitConfig holds the connection settings for Permit.io.
type PermitConfig struct {
	PDPURL      string
	APIURL      string
	APIKey      string
	Project     string
	Environment string
	Tenant      string
	Timeout     time.Duration
	Retries     int
}

// Ensure PermitClient implements Engine.
var _ Engine = (*PermitClient)(nil)

// PermitClient checks permissions against a Permit.io PDP and writes
// relationships through the Permit.io REST API.
type PermitClient struct {
	cfg    PermitConfig
	client *retryablehttp.Client
}

// Option configures the Permit client.
type Option func(*PermitClient)

// WithLogger routes retry logs to log.
func WithLogger(log *slog.Logger) Option {
	return func(c *PermitClient) {
		c.client.Logger = log
	}
}

// WithRetryWait sets the backoff bounds (tests use tiny values).
func WithRetryWait(min, max time.Duration) Option {
	return func(c *PermitClient) {
		c.client.RetryWaitMin = min
		c.client.RetryWaitMax = max
	}
}

func NewPermitClient(cfg PermitConfig, opts ...Option) *PermitClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.Retries
	rc.Logger = nil
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}
	if cfg.Tenant == "" {
		cfg.Tenant = "default"
	}

	c := &PermitClient{
		cfg:    cfg,
		client: rc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type allowedRequest struct {
	User     permitUser     `json:"user"`
	Action   string         `json:"action"`
	Resource permitResource `json:"resource"`
}

type permitUser struct {
	Key string `json:"key"`
}

type permitResource struct {
	Type   string `json:"type"`
	Key    string `json:"key,omitempty"`
	Tenant string `json:"tenant"`
}

type allowedResponse struct {
	Allow bool `json:"allow"`
}

// Check asks the PDP whether subject ("user:<email>") may perform action on
// object ("<kind>:<id>").
func (c *PermitClient) Check(ctx context.Context, subject, action, object string) (bool, error) {
	kind, key := splitRef(object)

	body := allowedRequest{
		User:   permitUser{Key: strings.TrimPrefix(subject, "user:")},
		Action: action,
		Resource: permitResource{
			Type:   kind,
			Key:    key,
			Tenant: c.cfg.Tenant,
		},
	}

	var resp allowedResponse
	if err := c.do(ctx, http.MethodPost, strings.TrimRight(c.cfg.PDPURL, "/")+"/allowed", body, &resp); err != nil {
		return false, fmt.Errorf("permit check %s %s %s: %w", subject, action, object, err)
	}

	return resp.Allow, nil
}

type tupleRequest struct {
	Tuple
	Tenant string `json:"tenant,omitempty"`
}

func (c *PermitClient) CreateTuple(ctx context.Context, t Tuple) error {
	if err := c.do(ctx, http.MethodPost, c.factsURL("relationship_tuples"), tupleRequest{t, c.cfg.Tenant}, nil); err != nil {
		return fmt.Errorf("permit create tuple: %w", err)
	}
	return nil
}

func (c *PermitClient) DeleteTuple(ctx context.Context, t Tuple) error {
	if err := c.do(ctx, http.MethodDelete, c.factsURL("relationship_tuples"), tupleRequest{Tuple: t}, nil); err != nil {
		return fmt.Errorf("permit delete tuple: %w", err)
	}
	return nil
}

type resourceInstanceRequest struct {
	Key        string         `json:"key"`
	Tenant     string         `json:"tenant"`
	Resource   string         `json:"resource"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

func (c *PermitClient) CreateResourceInstance(ctx context.Context, ri ResourceInstance) error {
	body := resourceInstanceRequest{
		Key:        ri.Key,
		Tenant:     c.cfg.Tenant,
		Resource:   ri.Resource,
		Attributes: ri.Attributes,
	}
	if err := c.do(ctx, http.MethodPost, c.factsURL("resource_instances"), body, nil); err != nil {
		return fmt.Errorf("permit create resource instance: %w", err)
	}
	return nil
}

// Ping lists the configured resource types and returns how many there are.
func (c *PermitClient) Ping(ctx context.Context) (int, error) {
	url := fmt.Sprintf("%s/v2/schema/%s/%s/resources", strings.TrimRight(c.cfg.APIURL, "/"), c.cfg.Project, c.cfg.Environment)

	var resources []json.RawMessage
	if err := c.do(ctx, http.MethodGet, url, nil, &resources); err != nil {
		return 0, fmt.Errorf("permit list resources: %w", err)
	}
	return len(resources), nil
}

func (c *PermitClient) factsURL(collection string) string {
	return fmt.Sprintf("%s/v2/facts/%s/%s/%s",
		strings.TrimRight(c.cfg.APIURL, "/"), c.cfg.Project, c.cfg.Environment, collection)
}

func (c *PermitClient) do(ctx context.Context, method, url string, in, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		payload = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func splitRef(ref string) (kind, key string) {
	kind, key, _ = strings.Cut(ref, ":")
	return kind, key
}
