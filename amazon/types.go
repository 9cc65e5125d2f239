package amazon

import (
	"encoding/json"
	"strings"
)

// Response DTOs. Optional scalars are pointers so consumers can tell a
// field the server omitted apart from an explicit zero value. Go's
// case-insensitive JSON field matching lets one set of structs decode
// both the modern camelCase and the legacy PascalCase wire forms.

// ErrorMessage is a server-reported error carried in the errors[] array
// of any response.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// Item is a single catalog item.
type Item struct {
	ASIN            string               `json:"asin"`
	DetailPageURL   *string              `json:"detailPageUrl,omitempty"`
	ParentASIN      *string              `json:"parentAsin,omitempty"`
	ItemInfo        *ItemInfo            `json:"itemInfo,omitempty"`
	Offers          *Offers              `json:"offers,omitempty"`
	Images          *Images              `json:"images,omitempty"`
	BrowseNodeInfo  *BrowseNodeInfo      `json:"browseNodeInfo,omitempty"`
	VariationAttrs  []VariationAttribute `json:"variationAttributes,omitempty"`
	Score           *float64             `json:"score,omitempty"`
	CustomerReviews json.RawMessage      `json:"customerReviews,omitempty"`

	// Extra retains server fields this client has no typed mapping for.
	Extra map[string]json.RawMessage `json:"-"`
}

// itemFields lists the wire names Item maps to typed fields; anything
// else lands in Extra.
var itemFields = []string{
	"asin", "detailPageUrl", "parentAsin", "itemInfo", "offers", "images",
	"browseNodeInfo", "variationAttributes", "score", "customerReviews",
}

// UnmarshalJSON decodes the typed fields and captures unknown server
// fields into Extra instead of dropping them.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, value := range raw {
		if knownItemField(name) {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[name] = value
	}

	*it = Item(p)
	return nil
}

func knownItemField(name string) bool {
	for _, f := range itemFields {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// VariationAttribute is one dimension/value pair of a variation family
// member.
type VariationAttribute struct {
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

// SingleValued is a display value with its label and locale.
type SingleValued struct {
	DisplayValue *string `json:"displayValue,omitempty"`
	Label        *string `json:"label,omitempty"`
	Locale       *string `json:"locale,omitempty"`
}

// MultiValued is a list-valued display attribute.
type MultiValued struct {
	DisplayValues []string `json:"displayValues,omitempty"`
	Label         *string  `json:"label,omitempty"`
	Locale        *string  `json:"locale,omitempty"`
}

// ItemInfo groups the descriptive attributes of an item.
type ItemInfo struct {
	Title           *SingleValued    `json:"title,omitempty"`
	ByLineInfo      *ByLineInfo      `json:"byLineInfo,omitempty"`
	Features        *MultiValued     `json:"features,omitempty"`
	Classifications *Classifications `json:"classifications,omitempty"`
	ContentInfo     json.RawMessage  `json:"contentInfo,omitempty"`
	ContentRating   json.RawMessage  `json:"contentRating,omitempty"`
	ExternalIDs     *ExternalIDs     `json:"externalIds,omitempty"`
	ManufactureInfo json.RawMessage  `json:"manufactureInfo,omitempty"`
	ProductInfo     *ProductInfo     `json:"productInfo,omitempty"`
	TechnicalInfo   json.RawMessage  `json:"technicalInfo,omitempty"`
	TradeInInfo     json.RawMessage  `json:"tradeInInfo,omitempty"`
}

// ByLineInfo names the brand, manufacturer and contributors of an item.
type ByLineInfo struct {
	Brand        *SingleValued `json:"brand,omitempty"`
	Manufacturer *SingleValued `json:"manufacturer,omitempty"`
	Contributors []Contributor `json:"contributors,omitempty"`
}

// Contributor is an author, actor, artist or similar credit.
type Contributor struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Locale *string `json:"locale,omitempty"`
}

// Classifications carries the binding and product group of an item.
type Classifications struct {
	Binding      *SingleValued `json:"binding,omitempty"`
	ProductGroup *SingleValued `json:"productGroup,omitempty"`
}

// ExternalIDs carries alternative product identifiers.
type ExternalIDs struct {
	EANs  *MultiValued `json:"eans,omitempty"`
	ISBNs *MultiValued `json:"isbns,omitempty"`
	UPCs  *MultiValued `json:"upcs,omitempty"`
}

// ProductInfo carries physical product attributes.
type ProductInfo struct {
	Color          *SingleValued   `json:"color,omitempty"`
	IsAdultProduct *BoolValued     `json:"isAdultProduct,omitempty"`
	ItemDimensions json.RawMessage `json:"itemDimensions,omitempty"`
	ReleaseDate    *SingleValued   `json:"releaseDate,omitempty"`
	Size           *SingleValued   `json:"size,omitempty"`
	UnitCount      json.RawMessage `json:"unitCount,omitempty"`
}

// BoolValued is a boolean display attribute.
type BoolValued struct {
	DisplayValue *bool   `json:"displayValue,omitempty"`
	Label        *string `json:"label,omitempty"`
	Locale       *string `json:"locale,omitempty"`
}

// Price is a monetary amount with its currency and display form.
type Price struct {
	Amount        *float64 `json:"amount,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	DisplayAmount *string  `json:"displayAmount,omitempty"`
	PricePerUnit  *float64 `json:"pricePerUnit,omitempty"`
	Savings       *Savings `json:"savings,omitempty"`
}

// Savings is the discount relative to the saving basis.
type Savings struct {
	Amount        *float64 `json:"amount,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	DisplayAmount *string  `json:"displayAmount,omitempty"`
	Percentage    *int     `json:"percentage,omitempty"`
}

// Offers groups the listings and summaries of an item.
type Offers struct {
	Listings  []OfferListing `json:"listings,omitempty"`
	Summaries []OfferSummary `json:"summaries,omitempty"`
}

// OfferListing is a single buyable offer.
type OfferListing struct {
	ID                 *string            `json:"id,omitempty"`
	Price              *Price             `json:"price,omitempty"`
	SavingBasis        *Price             `json:"savingBasis,omitempty"`
	Condition          *OfferCondition    `json:"condition,omitempty"`
	Availability       *OfferAvailability `json:"availability,omitempty"`
	MerchantInfo       *MerchantInfo      `json:"merchantInfo,omitempty"`
	DeliveryInfo       *DeliveryInfo      `json:"deliveryInfo,omitempty"`
	ProgramEligibility json.RawMessage    `json:"programEligibility,omitempty"`
	Promotions         json.RawMessage    `json:"promotions,omitempty"`
	IsBuyBoxWinner     *bool              `json:"isBuyBoxWinner,omitempty"`
	ViolatesMAP        *bool              `json:"violatesMap,omitempty"`
}

// OfferSummary aggregates offers per condition.
type OfferSummary struct {
	Condition    *OfferCondition `json:"condition,omitempty"`
	HighestPrice *Price          `json:"highestPrice,omitempty"`
	LowestPrice  *Price          `json:"lowestPrice,omitempty"`
	OfferCount   *int            `json:"offerCount,omitempty"`
}

// OfferCondition describes an offer's condition.
type OfferCondition struct {
	Value        *string       `json:"value,omitempty"`
	SubCondition *SingleValued `json:"subCondition,omitempty"`
}

// OfferAvailability describes whether and how an offer can be ordered.
type OfferAvailability struct {
	Type             *string `json:"type,omitempty"`
	Message          *string `json:"message,omitempty"`
	MaxOrderQuantity *int    `json:"maxOrderQuantity,omitempty"`
	MinOrderQuantity *int    `json:"minOrderQuantity,omitempty"`
}

// MerchantInfo identifies the seller behind an offer.
type MerchantInfo struct {
	ID            *string `json:"id,omitempty"`
	Name          *string `json:"name,omitempty"`
	DefaultShipID *string `json:"defaultShippingCountry,omitempty"`
}

// DeliveryInfo carries fulfillment and shipping eligibility flags.
type DeliveryInfo struct {
	IsAmazonFulfilled      *bool `json:"isAmazonFulfilled,omitempty"`
	IsFreeShippingEligible *bool `json:"isFreeShippingEligible,omitempty"`
	IsPrimeEligible        *bool `json:"isPrimeEligible,omitempty"`
}

// Image is a single hosted image.
type Image struct {
	URL    *string `json:"url,omitempty"`
	Height *int    `json:"height,omitempty"`
	Width  *int    `json:"width,omitempty"`
}

// ImageSet carries an image in its three hosted sizes.
type ImageSet struct {
	Small  *Image `json:"small,omitempty"`
	Medium *Image `json:"medium,omitempty"`
	Large  *Image `json:"large,omitempty"`
}

// Images groups the primary image and its variants.
type Images struct {
	Primary  *ImageSet  `json:"primary,omitempty"`
	Variants []ImageSet `json:"variants,omitempty"`
}

// BrowseNodeInfo places an item in the browse node taxonomy.
type BrowseNodeInfo struct {
	BrowseNodes      []BrowseNode    `json:"browseNodes,omitempty"`
	WebsiteSalesRank json.RawMessage `json:"websiteSalesRank,omitempty"`
}

// BrowseNode is a category node in the taxonomy tree.
type BrowseNode struct {
	ID              *string             `json:"id,omitempty"`
	DisplayName     *string             `json:"displayName,omitempty"`
	ContextFreeName *string             `json:"contextFreeName,omitempty"`
	IsRoot          *bool               `json:"isRoot,omitempty"`
	SalesRank       *int                `json:"salesRank,omitempty"`
	Ancestor        *BrowseNodeAncestor `json:"ancestor,omitempty"`
	Children        []BrowseNodeChild   `json:"children,omitempty"`
}

// BrowseNodeAncestor is a parent link in the taxonomy; ancestors chain
// up to the root.
type BrowseNodeAncestor struct {
	ID              *string             `json:"id,omitempty"`
	DisplayName     *string             `json:"displayName,omitempty"`
	ContextFreeName *string             `json:"contextFreeName,omitempty"`
	Ancestor        *BrowseNodeAncestor `json:"ancestor,omitempty"`
}

// BrowseNodeChild is a child link in the taxonomy.
type BrowseNodeChild struct {
	ID              *string `json:"id,omitempty"`
	DisplayName     *string `json:"displayName,omitempty"`
	ContextFreeName *string `json:"contextFreeName,omitempty"`
}

// GetItemsResponse is the getItems envelope.
type GetItemsResponse struct {
	ItemsResult *ItemsResult   `json:"itemsResult,omitempty"`
	Errors      []ErrorMessage `json:"errors,omitempty"`
}

// ItemsResult holds the items of a getItems response.
type ItemsResult struct {
	Items []Item `json:"items,omitempty"`
}

// SearchItemsResponse is the searchItems envelope.
type SearchItemsResponse struct {
	SearchResult *SearchResult  `json:"searchResult,omitempty"`
	Errors       []ErrorMessage `json:"errors,omitempty"`
}

// SearchResult holds the items of a search along with result metadata.
type SearchResult struct {
	TotalResultCount  *int            `json:"totalResultCount,omitempty"`
	SearchURL         *string         `json:"searchUrl,omitempty"`
	Items             []Item          `json:"items,omitempty"`
	SearchRefinements json.RawMessage `json:"searchRefinements,omitempty"`
}

// GetVariationsResponse is the getVariations envelope.
type GetVariationsResponse struct {
	VariationsResult *VariationsResult `json:"variationsResult,omitempty"`
	Errors           []ErrorMessage    `json:"errors,omitempty"`
}

// VariationsResult holds the variation family members and their summary.
type VariationsResult struct {
	Items            []Item            `json:"items,omitempty"`
	VariationSummary *VariationSummary `json:"variationSummary,omitempty"`
}

// VariationSummary aggregates a variation family.
type VariationSummary struct {
	PageCount           *int                 `json:"pageCount,omitempty"`
	VariationCount      *int                 `json:"variationCount,omitempty"`
	Price               *VariationPriceRange `json:"price,omitempty"`
	VariationDimensions []VariationDimension `json:"variationDimensions,omitempty"`
}

// VariationPriceRange is the price spread across a variation family.
type VariationPriceRange struct {
	HighestPrice *Price `json:"highestPrice,omitempty"`
	LowestPrice  *Price `json:"lowestPrice,omitempty"`
}

// VariationDimension names one axis of variation and its values.
type VariationDimension struct {
	Name        *string  `json:"name,omitempty"`
	DisplayName *string  `json:"displayName,omitempty"`
	Locale      *string  `json:"locale,omitempty"`
	Values      []string `json:"values,omitempty"`
}

// GetBrowseNodesResponse is the getBrowseNodes envelope.
type GetBrowseNodesResponse struct {
	BrowseNodesResult *BrowseNodesResult `json:"browseNodesResult,omitempty"`
	Errors            []ErrorMessage     `json:"errors,omitempty"`
}

// BrowseNodesResult holds the browse nodes of a getBrowseNodes response.
type BrowseNodesResult struct {
	BrowseNodes []BrowseNode `json:"browseNodes,omitempty"`
}
