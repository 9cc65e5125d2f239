package amazon

import (
	"encoding/json"
	"fmt"
)

// The decoders parse a 200 body and check the operation's result
// envelope. An absent or empty envelope is an items-not-found error;
// server-reported errors[] are folded into the message when present.

// DecodeGetItems decodes a getItems response body.
func DecodeGetItems(body []byte) (*GetItemsResponse, error) {
	var resp GetItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode getItems response: %w", err)
	}
	if resp.ItemsResult == nil || len(resp.ItemsResult.Items) == 0 {
		return nil, emptyResult("getItems", resp.Errors)
	}
	return &resp, nil
}

// DecodeSearchItems decodes a searchItems response body.
func DecodeSearchItems(body []byte) (*SearchItemsResponse, error) {
	var resp SearchItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode searchItems response: %w", err)
	}
	if resp.SearchResult == nil || len(resp.SearchResult.Items) == 0 {
		return nil, emptyResult("searchItems", resp.Errors)
	}
	return &resp, nil
}

// DecodeGetVariations decodes a getVariations response body.
func DecodeGetVariations(body []byte) (*GetVariationsResponse, error) {
	var resp GetVariationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode getVariations response: %w", err)
	}
	if resp.VariationsResult == nil || len(resp.VariationsResult.Items) == 0 {
		return nil, emptyResult("getVariations", resp.Errors)
	}
	return &resp, nil
}

// DecodeGetBrowseNodes decodes a getBrowseNodes response body.
func DecodeGetBrowseNodes(body []byte) (*GetBrowseNodesResponse, error) {
	var resp GetBrowseNodesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode getBrowseNodes response: %w", err)
	}
	if resp.BrowseNodesResult == nil || len(resp.BrowseNodesResult.BrowseNodes) == 0 {
		return nil, emptyResult("getBrowseNodes", resp.Errors)
	}
	return &resp, nil
}

func emptyResult(operation string, serverErrors []ErrorMessage) error {
	if len(serverErrors) > 0 {
		first := serverErrors[0]
		return fmt.Errorf("%w: %s returned no results (%s: %s)", ErrItemsNotFound, operation, first.Code, first.Message)
	}
	return fmt.Errorf("%w: %s returned no results", ErrItemsNotFound, operation)
}
