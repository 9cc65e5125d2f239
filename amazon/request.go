package amazon

// Condition filters offers by item condition.
type Condition string

const (
	ConditionAny         Condition = "Any"
	ConditionNew         Condition = "New"
	ConditionUsed        Condition = "Used"
	ConditionCollectible Condition = "Collectible"
	ConditionRefurbished Condition = "Refurbished"
)

// GetItemsRequest fetches item detail for a list of product identifiers.
// ItemIDs accepts bare ASINs or product URLs; they are normalized and
// deduplicated before assembly.
type GetItemsRequest struct {
	ItemIDs               []string
	Condition             Condition
	Merchant              string
	CurrencyOfPreference  string
	LanguagesOfPreference []string
	Resources             []string
}

// SearchItemsRequest searches the catalog. At least one of Keywords,
// Actor, Artist, Author, Brand, Title, BrowseNodeID or SearchIndex must
// be set.
type SearchItemsRequest struct {
	Keywords     string
	Actor        string
	Artist       string
	Author       string
	Brand        string
	Title        string
	BrowseNodeID string
	SearchIndex  string

	// ItemCount and ItemPage paginate results; both must be in [1, 10]
	// when set.
	ItemCount int
	ItemPage  int

	SortBy                string
	Condition             Condition
	Merchant              string
	CurrencyOfPreference  string
	LanguagesOfPreference []string
	Resources             []string
}

// GetVariationsRequest fetches the variation family of a single ASIN.
type GetVariationsRequest struct {
	ASIN string

	// VariationCount and VariationPage paginate results; both must be in
	// [1, 10] when set.
	VariationCount int
	VariationPage  int

	Condition             Condition
	CurrencyOfPreference  string
	LanguagesOfPreference []string
	Resources             []string
}

// GetBrowseNodesRequest fetches browse node metadata.
type GetBrowseNodesRequest struct {
	BrowseNodeIDs         []string
	LanguagesOfPreference []string
	Resources             []string
}

// hasDiscriminator reports whether the search request narrows the result
// set by at least one supported criterion.
func (r *SearchItemsRequest) hasDiscriminator() bool {
	return r.Keywords != "" || r.Actor != "" || r.Artist != "" || r.Author != "" ||
		r.Brand != "" || r.Title != "" || r.BrowseNodeID != "" || r.SearchIndex != ""
}
