package amazon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssembler() Assembler {
	return Assembler{PartnerTag: "t-20", Marketplace: "www.amazon.com"}
}

func TestAssemblerGetItems(t *testing.T) {
	a := testAssembler()

	t.Run("defaults the full resource enum", func(t *testing.T) {
		payload, err := a.GetItems(&GetItemsRequest{}, []string{"B0DLFMFBJW"})
		require.NoError(t, err)

		resources, ok := payload["resources"].([]string)
		require.True(t, ok)
		assert.ElementsMatch(t, DefaultResources(OperationGetItems), resources)

		seen := make(map[string]int)
		for _, r := range resources {
			seen[r]++
		}
		for r, n := range seen {
			assert.Equal(t, 1, n, "duplicate resource %s", r)
		}
	})

	t.Run("caller resources pass through deduplicated", func(t *testing.T) {
		payload, err := a.GetItems(&GetItemsRequest{
			Resources: []string{"ItemInfo.Title", "Offers.Listings.Price", "ItemInfo.Title"},
		}, []string{"B0DLFMFBJW"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ItemInfo.Title", "Offers.Listings.Price"}, payload["resources"])
	})

	t.Run("optional fields are omitted, not null", func(t *testing.T) {
		payload, err := a.GetItems(&GetItemsRequest{}, []string{"B0DLFMFBJW"})
		require.NoError(t, err)
		for _, key := range []string{"condition", "currencyOfPreference", "languagesOfPreference", "merchant"} {
			_, present := payload[key]
			assert.False(t, present, key)
		}
		assert.Equal(t, "t-20", payload["partnerTag"])
		assert.Equal(t, "Associates", payload["partnerType"])
		assert.Equal(t, "www.amazon.com", payload["marketplace"])
	})

	t.Run("preferences are serialized when set", func(t *testing.T) {
		payload, err := a.GetItems(&GetItemsRequest{
			Condition:             ConditionNew,
			CurrencyOfPreference:  "EUR",
			LanguagesOfPreference: []string{"es_ES"},
		}, []string{"B0DLFMFBJW"})
		require.NoError(t, err)
		assert.Equal(t, "New", payload["condition"])
		assert.Equal(t, "EUR", payload["currencyOfPreference"])
		assert.Equal(t, []string{"es_ES"}, payload["languagesOfPreference"])
	})

	t.Run("more than ten ids per chunk", func(t *testing.T) {
		ids := make([]string, 11)
		for i := range ids {
			ids[i] = "B000000000"
		}
		_, err := a.GetItems(&GetItemsRequest{}, ids)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing partner tag", func(t *testing.T) {
		bad := Assembler{Marketplace: "www.amazon.com"}
		_, err := bad.GetItems(&GetItemsRequest{}, []string{"B0DLFMFBJW"})
		assert.ErrorIs(t, err, ErrMalformedRequest)
	})
}

func TestAssemblerSearchItems(t *testing.T) {
	a := testAssembler()

	t.Run("requires a discriminator", func(t *testing.T) {
		_, err := a.SearchItems(&SearchItemsRequest{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("keywords alone suffice", func(t *testing.T) {
		payload, err := a.SearchItems(&SearchItemsRequest{Keywords: "laptop"})
		require.NoError(t, err)
		assert.Equal(t, "laptop", payload["keywords"])
	})

	t.Run("search index alone suffices", func(t *testing.T) {
		_, err := a.SearchItems(&SearchItemsRequest{SearchIndex: "Electronics"})
		assert.NoError(t, err)
	})

	t.Run("pagination bounds", func(t *testing.T) {
		_, err := a.SearchItems(&SearchItemsRequest{Keywords: "laptop", ItemCount: 11})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = a.SearchItems(&SearchItemsRequest{Keywords: "laptop", ItemPage: -1})
		assert.ErrorIs(t, err, ErrInvalidArgument)

		payload, err := a.SearchItems(&SearchItemsRequest{Keywords: "laptop", ItemCount: 10, ItemPage: 1})
		require.NoError(t, err)
		assert.Equal(t, 10, payload["itemCount"])
		assert.Equal(t, 1, payload["itemPage"])
	})
}

func TestAssemblerGetVariations(t *testing.T) {
	a := testAssembler()

	t.Run("normalizes the ASIN", func(t *testing.T) {
		payload, err := a.GetVariations(&GetVariationsRequest{ASIN: "https://www.amazon.com/dp/b0dlfmfbjw"})
		require.NoError(t, err)
		assert.Equal(t, "B0DLFMFBJW", payload["asin"])
	})

	t.Run("bad ASIN", func(t *testing.T) {
		_, err := a.GetVariations(&GetVariationsRequest{ASIN: "nope"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("pagination bounds", func(t *testing.T) {
		_, err := a.GetVariations(&GetVariationsRequest{ASIN: "B0DLFMFBJW", VariationPage: 12})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAssemblerGetBrowseNodes(t *testing.T) {
	a := testAssembler()

	t.Run("requires node ids", func(t *testing.T) {
		_, err := a.GetBrowseNodes(&GetBrowseNodesRequest{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("defaults browse node resources", func(t *testing.T) {
		payload, err := a.GetBrowseNodes(&GetBrowseNodesRequest{BrowseNodeIDs: []string{"283155"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"283155"}, payload["browseNodeIds"])
		assert.Equal(t, []string{"BrowseNodes.Ancestor", "BrowseNodes.Children"}, payload["resources"])
	})
}

func TestPascalKeys(t *testing.T) {
	payload := map[string]any{
		"partnerTag":    "t-20",
		"partnerType":   "Associates",
		"marketplace":   "www.amazon.com",
		"itemIds":       []string{"B0DLFMFBJW"},
		"asin":          "B0DLFMFBJW",
		"browseNodeIds": []string{"283155"},
	}

	out := PascalKeys(payload)
	assert.Equal(t, "t-20", out["PartnerTag"])
	assert.Equal(t, "Associates", out["PartnerType"])
	assert.Equal(t, "www.amazon.com", out["Marketplace"])
	assert.Equal(t, []string{"B0DLFMFBJW"}, out["ItemIds"])
	assert.Equal(t, "B0DLFMFBJW", out["ASIN"])
	assert.Equal(t, []string{"283155"}, out["BrowseNodeIds"])
	assert.NotContains(t, out, "partnerTag")
	assert.NotContains(t, out, "asin")
}
