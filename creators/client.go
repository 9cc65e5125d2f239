package creators

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/affiliatekit/amazonapi/amazon"
)

// defaultEndpoint is the Creators API base URL.
const defaultEndpoint = "https://creatorsapi.amazon"

// Client talks to the Creators API with OAuth2 bearer tokens. A client
// is bound to one marketplace and one partner tag.
type Client struct {
	version        string
	endpoint       string
	marketplaceURL string

	tokens    *TokenManager
	assembler amazon.Assembler
	gate      *amazon.Gate
	transport *amazon.Transport
	logger    zerolog.Logger
}

// compile-time interface check
var _ amazon.API = (*Client)(nil)

type clientOptions struct {
	country        string
	marketplaceURL string
	endpoint       string
	tokenEndpoint  string
	throttle       time.Duration
	transport      *amazon.Transport
}

// Option configures a Client.
type Option func(*clientOptions)

// WithCountry selects the marketplace by country code. Defaults to US.
func WithCountry(code string) Option {
	return func(o *clientOptions) {
		o.country = code
	}
}

// WithMarketplaceURL overrides the storefront URL derived from the
// country code. The explicit URL always wins.
func WithMarketplaceURL(u string) Option {
	return func(o *clientOptions) {
		o.marketplaceURL = u
	}
}

// WithEndpoint overrides the API base URL. Intended for tests.
func WithEndpoint(u string) Option {
	return func(o *clientOptions) {
		o.endpoint = u
	}
}

// WithTokenEndpoint overrides the Cognito token endpoint derived from
// the API version.
func WithTokenEndpoint(u string) Option {
	return func(o *clientOptions) {
		o.tokenEndpoint = u
	}
}

// WithThrottle sets the minimum spacing between requests. Zero disables
// throttling.
func WithThrottle(spacing time.Duration) Option {
	return func(o *clientOptions) {
		o.throttle = spacing
	}
}

// WithTransport replaces the default pooled transport.
func WithTransport(t *amazon.Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// NewClient creates a modern backend client.
func NewClient(credentialID, credentialSecret, version, partnerTag string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if credentialID == "" || credentialSecret == "" {
		return nil, fmt.Errorf("%w: credential id and secret are required", amazon.ErrInvalidArgument)
	}
	if partnerTag == "" {
		return nil, fmt.Errorf("%w: partner tag is required", amazon.ErrInvalidArgument)
	}

	options := clientOptions{
		country:  "US",
		throttle: amazon.DefaultThrottle,
	}
	for _, opt := range opts {
		opt(&options)
	}

	marketplaceURL := options.marketplaceURL
	if marketplaceURL == "" {
		m, err := amazon.ResolveMarketplace(options.country)
		if err != nil {
			return nil, err
		}
		marketplaceURL = m.URL()
	}

	tokens, err := NewTokenManager(credentialID, credentialSecret, version, options.tokenEndpoint, logger)
	if err != nil {
		return nil, err
	}

	endpoint := defaultEndpoint
	if options.endpoint != "" {
		endpoint = options.endpoint
	}
	transport := options.transport
	if transport == nil {
		transport = amazon.NewTransport(logger)
	}

	return &Client{
		version:        version,
		endpoint:       endpoint,
		marketplaceURL: marketplaceURL,
		tokens:         tokens,
		assembler: amazon.Assembler{
			PartnerTag:  partnerTag,
			Marketplace: marketplaceURL,
		},
		gate:      amazon.NewGate(options.throttle),
		transport: transport,
		logger:    logger,
	}, nil
}

// Tokens exposes the token manager, mainly so callers can Clear it.
func (c *Client) Tokens() *TokenManager {
	return c.tokens
}

// GetItems fetches item detail for 1-10 identifiers.
func (c *Client) GetItems(ctx context.Context, req *amazon.GetItemsRequest) (*amazon.GetItemsResponse, error) {
	ids, err := amazon.NormalizeItemIDs(req.ItemIDs)
	if err != nil {
		return nil, err
	}
	payload, err := c.assembler.GetItems(req, ids)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, amazon.OperationGetItems, payload)
	if err != nil {
		return nil, err
	}
	return amazon.DecodeGetItems(resp.Body)
}

// SearchItems searches the catalog.
func (c *Client) SearchItems(ctx context.Context, req *amazon.SearchItemsRequest) (*amazon.SearchItemsResponse, error) {
	payload, err := c.assembler.SearchItems(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, amazon.OperationSearchItems, payload)
	if err != nil {
		return nil, err
	}
	return amazon.DecodeSearchItems(resp.Body)
}

// GetVariations fetches the variation family of an ASIN.
func (c *Client) GetVariations(ctx context.Context, req *amazon.GetVariationsRequest) (*amazon.GetVariationsResponse, error) {
	payload, err := c.assembler.GetVariations(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, amazon.OperationGetVariations, payload)
	if err != nil {
		return nil, err
	}
	return amazon.DecodeGetVariations(resp.Body)
}

// GetBrowseNodes fetches browse node metadata.
func (c *Client) GetBrowseNodes(ctx context.Context, req *amazon.GetBrowseNodesRequest) (*amazon.GetBrowseNodesResponse, error) {
	payload, err := c.assembler.GetBrowseNodes(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, amazon.OperationGetBrowseNodes, payload)
	if err != nil {
		return nil, err
	}
	return amazon.DecodeGetBrowseNodes(resp.Body)
}

// do runs the shared pipeline: marshal, throttle, authorize, transmit,
// classify.
func (c *Client) do(ctx context.Context, op amazon.Operation, payload map[string]any) (*amazon.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", amazon.ErrMalformedRequest, err)
	}

	if err := c.gate.Wait(ctx); err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", fmt.Sprintf("Bearer %s, Version %s", token, c.version))
	header.Set("x-marketplace", c.marketplaceURL)
	header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.transport.PostJSON(ctx, c.endpoint+op.ModernPath(), header, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, amazon.ClassifyResponse(resp.StatusCode, resp.Body)
	}
	return resp, nil
}
