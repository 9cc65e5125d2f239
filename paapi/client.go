package paapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/affiliatekit/amazonapi/amazon"
)

// Client talks to the Product Advertising API v5 with SigV4-signed
// requests. A client is bound to one marketplace and one partner tag.
type Client struct {
	accessKey string
	secretKey string
	region    string

	endpoint       string
	marketplaceURL string

	assembler amazon.Assembler
	gate      *amazon.Gate
	transport *amazon.Transport
	logger    zerolog.Logger
	now       func() time.Time
}

// compile-time interface check
var _ amazon.API = (*Client)(nil)

type clientOptions struct {
	country        string
	marketplaceURL string
	endpoint       string
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
// country code. The country still determines host and signing region.
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

// NewClient creates a legacy backend client.
func NewClient(accessKey, secretKey, partnerTag string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("%w: access key and secret key are required", amazon.ErrInvalidArgument)
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

	m, err := amazon.ResolveMarketplace(options.country)
	if err != nil {
		return nil, err
	}
	if !m.SupportsLegacy() {
		return nil, fmt.Errorf("%w: marketplace %s is not served by the legacy backend", amazon.ErrInvalidArgument, m.Country)
	}

	marketplaceURL := m.URL()
	if options.marketplaceURL != "" {
		marketplaceURL = options.marketplaceURL
	}
	endpoint := "https://" + m.Host()
	if options.endpoint != "" {
		endpoint = options.endpoint
	}
	transport := options.transport
	if transport == nil {
		transport = amazon.NewTransport(logger)
	}

	return &Client{
		accessKey:      accessKey,
		secretKey:      secretKey,
		region:         m.Region,
		endpoint:       endpoint,
		marketplaceURL: marketplaceURL,
		assembler: amazon.Assembler{
			PartnerTag:  partnerTag,
			Marketplace: marketplaceURL,
		},
		gate:      amazon.NewGate(options.throttle),
		transport: transport,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// GetItems fetches item detail. Inputs beyond ten are chunked into one
// call per group of ten; results are concatenated in chunk order.
func (c *Client) GetItems(ctx context.Context, req *amazon.GetItemsRequest) (*amazon.GetItemsResponse, error) {
	ids, err := amazon.NormalizeItemIDs(req.ItemIDs)
	if err != nil {
		return nil, err
	}

	merged := &amazon.GetItemsResponse{ItemsResult: &amazon.ItemsResult{}}
	for _, chunk := range amazon.ChunkItemIDs(ids, 10) {
		payload, err := c.assembler.GetItems(req, chunk)
		if err != nil {
			return nil, err
		}
		resp, err := c.do(ctx, amazon.OperationGetItems, payload)
		if err != nil {
			return nil, err
		}
		decoded, err := amazon.DecodeGetItems(resp.Body)
		if err != nil {
			return nil, err
		}
		merged.ItemsResult.Items = append(merged.ItemsResult.Items, decoded.ItemsResult.Items...)
		merged.Errors = append(merged.Errors, decoded.Errors...)
	}

	c.logger.Debug().
		Int("requested", len(ids)).
		Int("returned", len(merged.ItemsResult.Items)).
		Msg("Fetched items")
	return merged, nil
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

// do runs the shared pipeline: marshal, throttle, sign, transmit,
// classify. The signed bytes are exactly the transmitted bytes.
func (c *Client) do(ctx context.Context, op amazon.Operation, payload map[string]any) (*amazon.Response, error) {
	body, err := json.Marshal(amazon.PascalKeys(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", amazon.ErrMalformedRequest, err)
	}

	if err := c.gate.Wait(ctx); err != nil {
		return nil, err
	}

	host, err := endpointHost(c.endpoint)
	if err != nil {
		return nil, err
	}

	now := c.now().UTC()
	signed := map[string]string{
		"content-type": "application/json; charset=utf-8",
		"host":         host,
		"x-amz-date":   now.Format(amzDateFormat),
		"x-amz-target": op.Target(),
	}
	authorization := SignRequest(c.accessKey, c.secretKey, c.region, op.LegacyPath(), signed, body, now)

	header := http.Header{}
	header.Set("Content-Type", signed["content-type"])
	header.Set("X-Amz-Date", signed["x-amz-date"])
	header.Set("X-Amz-Target", signed["x-amz-target"])
	header.Set("Authorization", authorization)

	resp, err := c.transport.PostJSON(ctx, c.endpoint+op.LegacyPath(), header, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, amazon.ClassifyResponse(resp.StatusCode, resp.Body)
	}
	return resp, nil
}

func endpointHost(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: invalid endpoint %q", amazon.ErrMalformedRequest, endpoint)
	}
	return u.Host, nil
}
