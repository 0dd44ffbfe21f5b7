package acquire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pingdash/internal/state"
	pkgerrors "pingdash/pkg/errors"
)

// Endpoint names used in errors and log lines
const (
	EndpointSystemInfo  = "system-info"
	EndpointNetworkInfo = "network-info"
	EndpointPing        = "ping"
)

// maxBodySize caps a single response body
const maxBodySize = 8 << 20

// ClientConfig represents client configuration
type ClientConfig struct {
	BaseURL         string
	SystemInfoPath  string
	NetworkInfoPath string
	PingPath        string
	UserAgent       string
	// Timeout bounds each request; zero means no timeout.
	Timeout time.Duration
}

// DefaultClientConfig returns default client configuration
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:         "http://localhost:5000",
		SystemInfoPath:  "/api/system-info",
		NetworkInfoPath: "/api/network-info",
		PingPath:        "/api/ping",
		UserAgent:       "pingdash/1.0",
	}
}

// Client acquires the dashboard data from the local service
type Client struct {
	client    *http.Client
	userAgent string
	endpoints map[string]string
	logger    *zap.Logger
}

// NewClient creates a new client. Endpoint URLs are resolved against the
// base URL once, here.
func NewClient(config ClientConfig, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	endpoints := make(map[string]string, 3)
	for name, p := range map[string]string{
		EndpointSystemInfo:  config.SystemInfoPath,
		EndpointNetworkInfo: config.NetworkInfoPath,
		EndpointPing:        config.PingPath,
	} {
		ref, err := url.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s path: %w", name, err)
		}
		endpoints[name] = base.ResolveReference(ref).String()
	}

	return &Client{
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: config.UserAgent,
		endpoints: endpoints,
		logger:    logger,
	}, nil
}

// URL returns the resolved URL of the named endpoint
func (c *Client) URL(endpoint string) string {
	return c.endpoints[endpoint]
}

// Fetch performs one acquisition: the three requests run concurrently and
// are joined before anything is decoded. Any failure discards the whole
// acquisition; there is no partial snapshot and no retry.
func (c *Client) Fetch(ctx context.Context) (*state.Snapshot, error) {
	c.logger.Info("acquisition_started",
		zap.String("system_info_url", c.endpoints[EndpointSystemInfo]),
		zap.String("network_info_url", c.endpoints[EndpointNetworkInfo]),
		zap.String("ping_url", c.endpoints[EndpointPing]),
	)
	start := time.Now()

	var sysBody, netBody, pingBody []byte

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sysBody, err = c.get(gctx, EndpointSystemInfo)
		return err
	})
	g.Go(func() (err error) {
		netBody, err = c.get(gctx, EndpointNetworkInfo)
		return err
	})
	g.Go(func() (err error) {
		pingBody, err = c.get(gctx, EndpointPing)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sys, err := decodeSystemInfo(sysBody)
	if err != nil {
		return nil, &pkgerrors.AcquisitionError{Endpoint: EndpointSystemInfo, Err: err}
	}
	netw, err := decodeNetworkInfo(netBody)
	if err != nil {
		return nil, &pkgerrors.AcquisitionError{Endpoint: EndpointNetworkInfo, Err: err}
	}
	pings, err := decodePingResults(pingBody)
	if err != nil {
		return nil, &pkgerrors.AcquisitionError{Endpoint: EndpointPing, Err: err}
	}

	snap := state.NewSnapshot(sys, netw, pings)
	c.logger.Debug("acquisition_completed",
		zap.String("snapshot_id", snap.ID.String()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return snap, nil
}

// get performs a single request
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	u := c.endpoints[endpoint]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &pkgerrors.AcquisitionError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("failed to create request: %w", err),
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &pkgerrors.AcquisitionError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("request failed: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &pkgerrors.AcquisitionError{
			Endpoint: endpoint,
			Err: &HTTPError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				URL:        u,
			},
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &pkgerrors.AcquisitionError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("failed to read response: %w", err),
		}
	}
	return body, nil
}

// HTTPError represents a non-2xx response
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPError) Error() string {
	status := strings.TrimSpace(strings.TrimPrefix(e.Status, fmt.Sprint(e.StatusCode)))
	return fmt.Sprintf("HTTP %d %s for %s", e.StatusCode, status, e.URL)
}

func (e *HTTPError) Is(target error) bool {
	return target == pkgerrors.ErrUnexpectedStatus
}
