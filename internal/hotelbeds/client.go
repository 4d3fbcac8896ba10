package hotelbeds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rawal21/stayfinder/internal/metrics"
	"github.com/rawal21/stayfinder/pkg/httpclient"
	"github.com/rawal21/stayfinder/pkg/ratelimit"
)

const (
	destinationsPath = "/hotel-content-api/1.0/locations/destinations"
	availabilityPath = "/hotel-api/1.0/hotels"

	// One directory page of 200 entries covers the destinations the
	// resolver matches against.
	directoryFrom     = 1
	directoryTo       = 200
	directoryLanguage = "ENG"
)

// ErrNoCredentials is returned when a vendor call is attempted without
// usable credentials. The orchestrator checks Configured first, so this
// only surfaces on misuse.
var ErrNoCredentials = errors.New("hotelbeds: no credentials configured")

// Config defines the setup for the vendor Client.
type Config struct {
	BaseURL     string
	Credentials Credentials
	// Timeout bounds each individual vendor call.
	Timeout time.Duration
	// Limiter, when set, paces calls to protect the partner quota.
	Limiter *ratelimit.Limiter
	// Provide a custom Transport, e.g. for tests
	Transport http.RoundTripper
}

// Client talks to the vendor inventory API. Every call is signed with a
// fresh time-bound signature and carries its own deadline so a hung
// connection degrades into an error instead of blocking the caller.
type Client struct {
	baseURL string
	creds   Credentials
	http    *httpclient.Client
	limiter *ratelimit.Limiter
	timeout time.Duration
	now     func() time.Time
}

// NewClient creates a vendor Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	hc, err := httpclient.New(httpclient.Config{
		Timeout:      cfg.Timeout,
		MaxRedirects: 3,
		Transport:    cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("create vendor http client: %w", err)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		creds:   cfg.Credentials,
		http:    hc,
		limiter: cfg.Limiter,
		timeout: cfg.Timeout,
		now:     time.Now,
	}, nil
}

// Configured reports whether the client holds usable credentials.
func (c *Client) Configured() bool {
	return c.creds.Configured()
}

// Destinations fetches one bounded page of the vendor's destination
// directory.
func (c *Client) Destinations(ctx context.Context) ([]Destination, error) {
	u := fmt.Sprintf("%s%s?language=%s&from=%d&to=%d",
		c.baseURL, destinationsPath, directoryLanguage, directoryFrom, directoryTo)

	var out destinationsResponse
	if err := c.call(ctx, http.MethodGet, u, nil, "destinations", &out); err != nil {
		return nil, err
	}
	return out.Destinations, nil
}

// Availability executes one availability search and returns the decoded
// envelope. A vendor-level error inside the envelope is not an error
// here; the normalizer decides what to do with it.
func (c *Client) Availability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode availability request: %w", err)
	}

	var out AvailabilityResponse
	if err := c.call(ctx, http.MethodPost, c.baseURL+availabilityPath, body, "availability", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, method, rawURL string, body []byte, endpoint string, out any) error {
	headers := c.creds.Headers(c.now())
	if headers == nil {
		return ErrNoCredentials
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, rdr)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header = headers

	start := time.Now()
	resp, err := c.http.Do(ctx, req)
	metrics.VendorRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.VendorErrors.WithLabelValues(endpoint, "transport").Inc()
		return fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.VendorErrors.WithLabelValues(endpoint, "transport").Inc()
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	// Error envelopes arrive with non-2xx status codes but still decode
	// into the response type, so the status itself is not checked here.
	if err := json.Unmarshal(data, out); err != nil {
		metrics.VendorErrors.WithLabelValues(endpoint, "decode").Inc()
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
