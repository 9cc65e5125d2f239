package amazon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractASIN(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare ASIN",
			input: "B0DLFMFBJW",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "lowercase bare ASIN is uppercased",
			input: "b0dlfmfbjw",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "dp URL",
			input: "https://www.amazon.com/dp/B0DLFMFBJW",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "dp URL with trailing path",
			input: "https://www.amazon.com/dp/B0DLFMFBJW/ref=sr_1_1",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "gp/product URL",
			input: "https://www.amazon.es/gp/product/B0DLFMFBJW?th=1",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "gp/aw/d mobile URL",
			input: "https://www.amazon.co.uk/gp/aw/d/B0DLFMFBJW",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "dp/product URL",
			input: "https://www.amazon.de/dp/product/B0DLFMFBJW/",
			want:  "B0DLFMFBJW",
		},
		{
			name:  "lowercase ASIN inside URL",
			input: "https://www.amazon.com/dp/b0dlfmfbjw",
			want:  "B0DLFMFBJW",
		},
		{
			name:    "too short",
			input:   "B0DLFMF",
			wantErr: true,
		},
		{
			name:    "unrelated URL",
			input:   "https://www.amazon.com/gp/help/customer",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractASIN(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeItemIDs(t *testing.T) {
	t.Run("dedupes preserving order", func(t *testing.T) {
		ids, err := NormalizeItemIDs([]string{
			"b0dlfmfbjw",
			"B08N5WRWNW",
			"https://www.amazon.com/dp/B0DLFMFBJW",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"B0DLFMFBJW", "B08N5WRWNW"}, ids)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NormalizeItemIDs(nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("one bad id fails the batch", func(t *testing.T) {
		_, err := NormalizeItemIDs([]string{"B0DLFMFBJW", "nope"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestChunkItemIDs(t *testing.T) {
	ids := make([]string, 23)
	for i := range ids {
		ids[i] = "B000000000"
	}

	chunks := ChunkItemIDs(ids, 10)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 10)
	assert.Len(t, chunks[1], 10)
	assert.Len(t, chunks[2], 3)

	assert.Nil(t, ChunkItemIDs(nil, 10))
	assert.Len(t, ChunkItemIDs(ids[:5], 10), 1)
}
