package amazon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGetItems(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		resp, err := DecodeGetItems([]byte(`{"itemsResult":{"items":[{"asin":"B0DLFMFBJW"}]}}`))
		require.NoError(t, err)
		require.Len(t, resp.ItemsResult.Items, 1)
		assert.Equal(t, "B0DLFMFBJW", resp.ItemsResult.Items[0].ASIN)
	})

	t.Run("legacy PascalCase body decodes too", func(t *testing.T) {
		resp, err := DecodeGetItems([]byte(`{"ItemsResult":{"Items":[{"ASIN":"B0DLFMFBJW","DetailPageURL":"https://www.amazon.com/dp/B0DLFMFBJW?tag=t-20"}]}}`))
		require.NoError(t, err)
		require.Len(t, resp.ItemsResult.Items, 1)
		item := resp.ItemsResult.Items[0]
		assert.Equal(t, "B0DLFMFBJW", item.ASIN)
		require.NotNil(t, item.DetailPageURL)
		assert.Contains(t, *item.DetailPageURL, "tag=t-20")
	})

	t.Run("empty object is items not found", func(t *testing.T) {
		_, err := DecodeGetItems([]byte(`{}`))
		assert.ErrorIs(t, err, ErrItemsNotFound)
	})

	t.Run("empty item list is items not found", func(t *testing.T) {
		_, err := DecodeGetItems([]byte(`{"itemsResult":{"items":[]}}`))
		assert.ErrorIs(t, err, ErrItemsNotFound)
	})

	t.Run("server errors are folded into the message", func(t *testing.T) {
		_, err := DecodeGetItems([]byte(`{"errors":[{"code":"NoResults","message":"nothing here"}]}`))
		require.ErrorIs(t, err, ErrItemsNotFound)
		assert.Contains(t, err.Error(), "NoResults")
	})
}

func TestDecodeSearchItems(t *testing.T) {
	t.Run("items and metadata", func(t *testing.T) {
		resp, err := DecodeSearchItems([]byte(`{"searchResult":{"totalResultCount":42,"items":[{"asin":"B0DLFMFBJW"}]}}`))
		require.NoError(t, err)
		require.NotNil(t, resp.SearchResult.TotalResultCount)
		assert.Equal(t, 42, *resp.SearchResult.TotalResultCount)
	})

	t.Run("missing envelope", func(t *testing.T) {
		_, err := DecodeSearchItems([]byte(`{}`))
		assert.ErrorIs(t, err, ErrItemsNotFound)
	})
}

func TestDecodeGetVariations(t *testing.T) {
	resp, err := DecodeGetVariations([]byte(`{
		"variationsResult":{
			"items":[{"asin":"B0DLFMFBJW","variationAttributes":[{"name":"color_name","value":"Black"}]}],
			"variationSummary":{"variationCount":3,"variationDimensions":[{"name":"color_name","values":["Black","White"]}]}
		}}`))
	require.NoError(t, err)
	require.Len(t, resp.VariationsResult.Items, 1)
	require.NotNil(t, resp.VariationsResult.VariationSummary.VariationCount)
	assert.Equal(t, 3, *resp.VariationsResult.VariationSummary.VariationCount)
	require.Len(t, resp.VariationsResult.VariationSummary.VariationDimensions, 1)
	assert.Equal(t, []string{"Black", "White"}, resp.VariationsResult.VariationSummary.VariationDimensions[0].Values)
}

func TestDecodeGetBrowseNodes(t *testing.T) {
	t.Run("nodes with ancestry", func(t *testing.T) {
		resp, err := DecodeGetBrowseNodes([]byte(`{
			"browseNodesResult":{"browseNodes":[
				{"id":"283155","displayName":"Books","ancestor":{"id":"1000","displayName":"Subjects"},
				 "children":[{"id":"1","displayName":"Arts"}]}
			]}}`))
		require.NoError(t, err)
		require.Len(t, resp.BrowseNodesResult.BrowseNodes, 1)
		node := resp.BrowseNodesResult.BrowseNodes[0]
		assert.Equal(t, "Books", *node.DisplayName)
		require.NotNil(t, node.Ancestor)
		assert.Equal(t, "Subjects", *node.Ancestor.DisplayName)
		require.Len(t, node.Children, 1)
	})

	t.Run("empty node list", func(t *testing.T) {
		_, err := DecodeGetBrowseNodes([]byte(`{"browseNodesResult":{"browseNodes":[]}}`))
		assert.ErrorIs(t, err, ErrItemsNotFound)
	})
}

func TestItemExtraFields(t *testing.T) {
	resp, err := DecodeGetItems([]byte(`{"itemsResult":{"items":[
		{"asin":"B0DLFMFBJW","somethingNew":{"a":1},"score":0.5}
	]}}`))
	require.NoError(t, err)

	item := resp.ItemsResult.Items[0]
	require.NotNil(t, item.Score)
	assert.Equal(t, 0.5, *item.Score)
	require.Contains(t, item.Extra, "somethingNew")
	assert.JSONEq(t, `{"a":1}`, string(item.Extra["somethingNew"]))

	// Known fields never leak into Extra, regardless of casing.
	assert.NotContains(t, item.Extra, "asin")
	assert.NotContains(t, item.Extra, "score")
}

func TestItemOptionalFieldsStayAbsent(t *testing.T) {
	resp, err := DecodeGetItems([]byte(`{"itemsResult":{"items":[{"asin":"B0DLFMFBJW"}]}}`))
	require.NoError(t, err)

	item := resp.ItemsResult.Items[0]
	assert.Nil(t, item.DetailPageURL)
	assert.Nil(t, item.ItemInfo)
	assert.Nil(t, item.Offers)
	assert.Nil(t, item.Score)
}
