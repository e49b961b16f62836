package inventory

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"replenishment-service/core/reconcile"
)

// ItemsPath is the gateway route of the inventory listing.
const ItemsPath = "/inventory/items"

// maxErrorBody caps how much of an error response is quoted in errors.
const maxErrorBody = 512

// Client defines the interface for reading inventory snapshots.
type Client interface {
	// FetchSnapshot returns all inventory items in upstream order.
	FetchSnapshot(ctx context.Context) ([]reconcile.InventoryItem, error)
}

// GatewayClient reads the inventory through the gateway over mutual TLS.
type GatewayClient struct {
	httpClient *http.Client
	itemsURL   string
	token      string
}

// wireItem is the upstream item shape. Quantity is a pointer so a missing field is detectable.
type wireItem struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Quantity *int   `json:"quantity"`
	Name     string `json:"name"`
}

// NewClient creates a gateway client. It fails when the credential material cannot be
// loaded; it never falls back to an unauthenticated or unverified transport.
func NewClient(cfg Config) (*GatewayClient, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base URL: %w", err)
	}
	if base.Scheme != "https" {
		return nil, fmt.Errorf("gateway base URL must use https, got %q", base.Scheme)
	}

	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:       tlsConfig,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &GatewayClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
			// Redirects are never followed; a 3xx is reported as an upstream error.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		itemsURL: strings.TrimRight(base.String(), "/") + ItemsPath,
		token:    cfg.Token,
	}, nil
}

func buildTLSConfig(cfg Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: cfg.ServerName,
	}

	switch {
	case cfg.CertFile != "" && cfg.KeyFile != "":
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	case cfg.CertFile != "" || cfg.KeyFile != "":
		return nil, fmt.Errorf("client certificate and key must be configured together")
	case cfg.Token == "":
		return nil, fmt.Errorf("no gateway credential configured: set a client certificate or a token")
	}

	if cfg.CAFile != "" {
		pem, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read gateway CA: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("gateway CA file %s contains no certificates", cfg.CAFile)
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

// FetchSnapshot performs GET <base>/inventory/items and decodes the item list.
func (c *GatewayClient) FetchSnapshot(ctx context.Context) ([]reconcile.InventoryItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.itemsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating inventory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Internal-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isCredentialFailure(err) {
			return nil, reconcile.Wrap(reconcile.ErrAuthenticationFailed, "gateway handshake: %w", err)
		}
		return nil, reconcile.Wrap(reconcile.ErrUpstreamUnavailable, "fetch inventory: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, reconcile.Wrap(reconcile.ErrAuthenticationFailed, "gateway returned %d: %s", resp.StatusCode, readSnippet(resp.Body))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, reconcile.Wrap(reconcile.ErrUpstreamError, "inventory returned %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}

	return decodeItems(resp.Body)
}

func decodeItems(body io.Reader) ([]reconcile.InventoryItem, error) {
	dec := json.NewDecoder(body)
	var wire []wireItem
	if err := dec.Decode(&wire); err != nil {
		if isBodyReadFailure(err) {
			return nil, reconcile.Wrap(reconcile.ErrUpstreamUnavailable, "read inventory body: %w", err)
		}
		return nil, reconcile.Wrap(reconcile.ErrDecode, "decode inventory items: %w", err)
	}
	if wire == nil {
		return nil, reconcile.Wrap(reconcile.ErrDecode, "decode inventory items: body is null")
	}
	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); err != io.EOF {
		if err != nil && isBodyReadFailure(err) {
			return nil, reconcile.Wrap(reconcile.ErrUpstreamUnavailable, "read inventory body: %w", err)
		}
		return nil, reconcile.Wrap(reconcile.ErrDecode, "decode inventory items: trailing data after item list")
	}

	items := make([]reconcile.InventoryItem, 0, len(wire))
	for i, w := range wire {
		switch {
		case w.ID == "":
			return nil, reconcile.Wrap(reconcile.ErrDecode, "item %d: missing id", i)
		case w.Quantity == nil:
			return nil, reconcile.Wrap(reconcile.ErrDecode, "item %s: missing quantity", w.ID)
		case *w.Quantity < 0:
			return nil, reconcile.Wrap(reconcile.ErrDecode, "item %s: negative quantity %d", w.ID, *w.Quantity)
		}
		items = append(items, reconcile.InventoryItem{
			ID:       w.ID,
			SKU:      w.SKU,
			Quantity: *w.Quantity,
		})
	}
	return items, nil
}

// isCredentialFailure reports whether the TLS layer rejected either side's identity.
func isCredentialFailure(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &invalidErr) {
		return true
	}
	// Alerts sent by the peer (e.g. bad certificate) surface as "remote error" OpErrors.
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "remote error" {
		return true
	}
	return false
}

func isBodyReadFailure(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}
