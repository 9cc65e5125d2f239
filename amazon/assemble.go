package amazon

import (
	"fmt"
	"strings"
)

// partnerType is the only partner type the affiliate program issues.
const partnerType = "Associates"

// maxItemIDs bounds a single GetItems call. The legacy backend chunks
// larger inputs into groups of this size.
const maxItemIDs = 10

// Assembler builds wire-format request bodies from typed inputs. Field
// names are the canonical lowerCamel schema of the modern backend; the
// legacy backend re-keys the top level with PascalKeys before marshaling.
type Assembler struct {
	PartnerTag  string
	Marketplace string
}

func (a Assembler) base() (map[string]any, error) {
	if a.PartnerTag == "" {
		return nil, fmt.Errorf("%w: partner tag is empty", ErrMalformedRequest)
	}
	if a.Marketplace == "" {
		return nil, fmt.Errorf("%w: marketplace is empty", ErrMalformedRequest)
	}
	return map[string]any{
		"partnerTag":  a.PartnerTag,
		"partnerType": partnerType,
		"marketplace": a.Marketplace,
	}, nil
}

// GetItems assembles a getItems body for one chunk of normalized ASINs.
func (a Assembler) GetItems(req *GetItemsRequest, ids []string) (map[string]any, error) {
	payload, err := a.base()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 || len(ids) > maxItemIDs {
		return nil, fmt.Errorf("%w: between 1 and %d item ids per request, got %d", ErrInvalidArgument, maxItemIDs, len(ids))
	}

	payload["itemIds"] = ids
	a.setPreferences(payload, req.Condition, req.CurrencyOfPreference, req.LanguagesOfPreference)
	setString(payload, "merchant", req.Merchant)
	payload["resources"] = normalizeResources(OperationGetItems, req.Resources)
	return payload, nil
}

// SearchItems assembles a searchItems body.
func (a Assembler) SearchItems(req *SearchItemsRequest) (map[string]any, error) {
	payload, err := a.base()
	if err != nil {
		return nil, err
	}
	if !req.hasDiscriminator() {
		return nil, fmt.Errorf("%w: search requires at least one of keywords, actor, artist, author, brand, title, browse node id or search index", ErrInvalidArgument)
	}
	if err := checkPage("itemCount", req.ItemCount); err != nil {
		return nil, err
	}
	if err := checkPage("itemPage", req.ItemPage); err != nil {
		return nil, err
	}

	setString(payload, "keywords", req.Keywords)
	setString(payload, "actor", req.Actor)
	setString(payload, "artist", req.Artist)
	setString(payload, "author", req.Author)
	setString(payload, "brand", req.Brand)
	setString(payload, "title", req.Title)
	setString(payload, "browseNodeId", req.BrowseNodeID)
	setString(payload, "searchIndex", req.SearchIndex)
	setString(payload, "sortBy", req.SortBy)
	setString(payload, "merchant", req.Merchant)
	setInt(payload, "itemCount", req.ItemCount)
	setInt(payload, "itemPage", req.ItemPage)
	a.setPreferences(payload, req.Condition, req.CurrencyOfPreference, req.LanguagesOfPreference)
	payload["resources"] = normalizeResources(OperationSearchItems, req.Resources)
	return payload, nil
}

// GetVariations assembles a getVariations body. The ASIN is normalized
// through the same extraction used for item ids.
func (a Assembler) GetVariations(req *GetVariationsRequest) (map[string]any, error) {
	payload, err := a.base()
	if err != nil {
		return nil, err
	}
	asin, err := ExtractASIN(req.ASIN)
	if err != nil {
		return nil, err
	}
	if err := checkPage("variationCount", req.VariationCount); err != nil {
		return nil, err
	}
	if err := checkPage("variationPage", req.VariationPage); err != nil {
		return nil, err
	}

	payload["asin"] = asin
	setInt(payload, "variationCount", req.VariationCount)
	setInt(payload, "variationPage", req.VariationPage)
	a.setPreferences(payload, req.Condition, req.CurrencyOfPreference, req.LanguagesOfPreference)
	payload["resources"] = normalizeResources(OperationGetVariations, req.Resources)
	return payload, nil
}

// GetBrowseNodes assembles a getBrowseNodes body.
func (a Assembler) GetBrowseNodes(req *GetBrowseNodesRequest) (map[string]any, error) {
	payload, err := a.base()
	if err != nil {
		return nil, err
	}
	if len(req.BrowseNodeIDs) == 0 {
		return nil, fmt.Errorf("%w: browse node id list is empty", ErrInvalidArgument)
	}

	payload["browseNodeIds"] = req.BrowseNodeIDs
	if len(req.LanguagesOfPreference) > 0 {
		payload["languagesOfPreference"] = req.LanguagesOfPreference
	}
	payload["resources"] = normalizeResources(OperationGetBrowseNodes, req.Resources)
	return payload, nil
}

// setPreferences attaches the optional condition, currency and language
// hints shared by the item operations. Unset values are omitted rather
// than serialized as null.
func (a Assembler) setPreferences(payload map[string]any, cond Condition, currency string, languages []string) {
	if cond != "" {
		payload["condition"] = string(cond)
	}
	setString(payload, "currencyOfPreference", currency)
	if len(languages) > 0 {
		payload["languagesOfPreference"] = languages
	}
}

func setString(payload map[string]any, key, value string) {
	if value != "" {
		payload[key] = value
	}
}

func setInt(payload map[string]any, key string, value int) {
	if value != 0 {
		payload[key] = value
	}
}

// checkPage validates a pagination parameter. Zero means unset.
func checkPage(name string, value int) error {
	if value != 0 && (value < 1 || value > maxItemIDs) {
		return fmt.Errorf("%w: %s must be between 1 and 10, got %d", ErrInvalidArgument, name, value)
	}
	return nil
}

// PascalKeys re-keys a canonical lowerCamel payload into the legacy
// backend's PascalCase schema. Only the top level is re-keyed; values
// are scalars and lists on every operation.
func PascalKeys(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for key, value := range payload {
		if key == "asin" {
			out["ASIN"] = value
			continue
		}
		out[strings.ToUpper(key[:1])+key[1:]] = value
	}
	return out
}
