package amazon

// Resource selectors name the nested response fields the caller wants
// populated. The wire format is the dotted string itself. When a request
// carries no selectors the assembler substitutes the full enum for the
// operation.

var getItemsResources = []string{
	"BrowseNodeInfo.BrowseNodes",
	"BrowseNodeInfo.BrowseNodes.Ancestor",
	"BrowseNodeInfo.BrowseNodes.SalesRank",
	"BrowseNodeInfo.WebsiteSalesRank",
	"Images.Primary.Small",
	"Images.Primary.Medium",
	"Images.Primary.Large",
	"Images.Variants.Small",
	"Images.Variants.Medium",
	"Images.Variants.Large",
	"ItemInfo.ByLineInfo",
	"ItemInfo.Classifications",
	"ItemInfo.ContentInfo",
	"ItemInfo.ContentRating",
	"ItemInfo.ExternalIds",
	"ItemInfo.Features",
	"ItemInfo.ManufactureInfo",
	"ItemInfo.ProductInfo",
	"ItemInfo.TechnicalInfo",
	"ItemInfo.Title",
	"ItemInfo.TradeInInfo",
	"Offers.Listings.Availability.MaxOrderQuantity",
	"Offers.Listings.Availability.Message",
	"Offers.Listings.Availability.MinOrderQuantity",
	"Offers.Listings.Availability.Type",
	"Offers.Listings.Condition",
	"Offers.Listings.Condition.SubCondition",
	"Offers.Listings.DeliveryInfo.IsAmazonFulfilled",
	"Offers.Listings.DeliveryInfo.IsFreeShippingEligible",
	"Offers.Listings.DeliveryInfo.IsPrimeEligible",
	"Offers.Listings.IsBuyBoxWinner",
	"Offers.Listings.MerchantInfo",
	"Offers.Listings.Price",
	"Offers.Listings.ProgramEligibility.IsPrimeExclusive",
	"Offers.Listings.Promotions",
	"Offers.Listings.SavingBasis",
	"Offers.Summaries.HighestPrice",
	"Offers.Summaries.LowestPrice",
	"Offers.Summaries.OfferCount",
	"ParentASIN",
}

var searchItemsResources = append(append([]string{}, getItemsResources...),
	"SearchRefinements",
)

var getVariationsResources = append(append([]string{}, getItemsResources...),
	"VariationSummary.Price.HighestPrice",
	"VariationSummary.Price.LowestPrice",
	"VariationSummary.VariationDimension",
)

var getBrowseNodesResources = []string{
	"BrowseNodes.Ancestor",
	"BrowseNodes.Children",
}

// DefaultResources returns the complete resource enum for an operation.
func DefaultResources(op Operation) []string {
	switch op {
	case OperationGetItems:
		return getItemsResources
	case OperationSearchItems:
		return searchItemsResources
	case OperationGetVariations:
		return getVariationsResources
	case OperationGetBrowseNodes:
		return getBrowseNodesResources
	}
	return nil
}

// normalizeResources defaults an empty selector list to the operation's
// full enum and suppresses duplicates while preserving order.
func normalizeResources(op Operation, resources []string) []string {
	if len(resources) == 0 {
		resources = DefaultResources(op)
	}
	seen := make(map[string]struct{}, len(resources))
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
