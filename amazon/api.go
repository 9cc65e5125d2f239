package amazon

import "context"

// API is the operation surface shared by both backends. The legacy
// (paapi) and modern (creators) clients implement it with identical
// semantics; callers choose an implementation at construction time
// based on which credential set they hold.
type API interface {
	// GetItems fetches item detail for 1-10 ASINs. The legacy backend
	// accepts more and fans out in chunks of ten.
	GetItems(ctx context.Context, req *GetItemsRequest) (*GetItemsResponse, error)

	// SearchItems searches the catalog. At least one discriminator
	// (keywords, actor, artist, author, brand, title, browse node id or
	// search index) is required.
	SearchItems(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error)

	// GetVariations fetches the variation family of a single ASIN.
	GetVariations(ctx context.Context, req *GetVariationsRequest) (*GetVariationsResponse, error)

	// GetBrowseNodes fetches browse node metadata for one or more node ids.
	GetBrowseNodes(ctx context.Context, req *GetBrowseNodesRequest) (*GetBrowseNodesResponse, error)
}

// Operation identifies one of the four catalog operations.
type Operation string

const (
	OperationGetItems       Operation = "GetItems"
	OperationSearchItems    Operation = "SearchItems"
	OperationGetVariations  Operation = "GetVariations"
	OperationGetBrowseNodes Operation = "GetBrowseNodes"
)

// LegacyPath returns the PA-API v5 request path for the operation.
func (op Operation) LegacyPath() string {
	switch op {
	case OperationGetItems:
		return "/paapi5/getitems"
	case OperationSearchItems:
		return "/paapi5/searchitems"
	case OperationGetVariations:
		return "/paapi5/getvariations"
	case OperationGetBrowseNodes:
		return "/paapi5/getbrowsenodes"
	}
	return ""
}

// Target returns the X-Amz-Target header value the legacy backend
// requires for the operation.
func (op Operation) Target() string {
	return "com.amazon.paapi5.v1.ProductAdvertisingAPIv1." + string(op)
}

// ModernPath returns the Creators API request path for the operation.
func (op Operation) ModernPath() string {
	switch op {
	case OperationGetItems:
		return "/catalog/v1/getItems"
	case OperationSearchItems:
		return "/catalog/v1/searchItems"
	case OperationGetVariations:
		return "/catalog/v1/getVariations"
	case OperationGetBrowseNodes:
		return "/catalog/v1/getBrowseNodes"
	}
	return ""
}
