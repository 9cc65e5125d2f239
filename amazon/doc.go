// Package amazon contains the shared core of the affiliate catalog client:
// typed requests and responses, the marketplace registry, the error
// taxonomy, the throttle gate, the HTTP transport, the request assembler,
// and the response decoder.
//
// Two backend packages build on this core and implement the same
// operation interface:
//
//   - paapi: the legacy Product Advertising API v5 backend (AWS SigV4)
//   - creators: the Creators API backend (OAuth2 client credentials)
//
// # Operations
//
// Both backends expose four operations through the API interface:
//
//	client.GetItems(ctx, &amazon.GetItemsRequest{ItemIDs: []string{"B0DLFMFBJW"}})
//	client.SearchItems(ctx, &amazon.SearchItemsRequest{Keywords: "laptop"})
//	client.GetVariations(ctx, &amazon.GetVariationsRequest{ASIN: "B0DLFMFBJW"})
//	client.GetBrowseNodes(ctx, &amazon.GetBrowseNodesRequest{BrowseNodeIDs: []string{"283155"}})
//
// # Error Handling
//
// Failures unwrap to the package sentinels so callers can classify with
// errors.Is:
//
//	if errors.Is(err, amazon.ErrItemsNotFound) {
//		// empty result, not a failure of the pipeline
//	}
//
// Any other non-200 response is surfaced as an *APIError carrying the
// status code and a truncated body excerpt.
//
// # Throttling
//
// Every client carries a per-instance throttle gate: the configured
// value is the minimum spacing between outgoing requests, one second by
// default. A spacing of zero disables the gate. The first request is
// never delayed.
package amazon
