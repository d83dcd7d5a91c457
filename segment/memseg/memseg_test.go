package memseg

import (
	"sort"
	"testing"

	"github.com/hupe1980/fielddata/column"
	"github.com/hupe1980/fielddata/internal/bitset"
	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Fields(t *testing.T) {
	r, err := NewBuilder(7, 3).
		Add("_id", 0, []byte("alpha")).
		Add("_id", 2, []byte("gamma")).
		Dense("tag").
		Add("tag", 1, []byte("x")).
		Build()
	require.NoError(t, err)

	assert.EqualValues(t, 7, r.ID())
	assert.Equal(t, 3, r.NumDocs())

	fields := r.Fields()
	sort.Strings(fields)
	assert.Equal(t, []string{"_id", "tag"}, fields)

	t.Run("sparse field has bitmap", func(t *testing.T) {
		col, ok, err := r.OpenColumn("_id")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "gamma", string(col.AppendValue(nil, 2)))

		bits, ok, err := r.OpenPresence("_id")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, bits.Test(0))
		assert.False(t, bits.Test(1))
		assert.True(t, bits.Test(2))
	})

	t.Run("dense field has no bitmap", func(t *testing.T) {
		_, ok, err := r.OpenColumn("tag")
		require.NoError(t, err)
		assert.True(t, ok)

		_, ok, err = r.OpenPresence("tag")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing field", func(t *testing.T) {
		_, ok, err := r.OpenColumn("nope")
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = r.OpenPresence("nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBuilder_ReplaceValue(t *testing.T) {
	r, err := NewBuilder(1, 2).
		Add("f", 1, []byte("old")).
		Add("f", 1, []byte("new")).
		Build()
	require.NoError(t, err)

	col, _, _ := r.OpenColumn("f")
	assert.Equal(t, "new", string(col.AppendValue(nil, 1)))

	bits, _, _ := r.OpenPresence("f")
	assert.EqualValues(t, 1, bits.(*presence.RoaringBits).Cardinality())
}

func TestBuilder_EmptyValueIsPresent(t *testing.T) {
	r, err := NewBuilder(1, 2).
		Add("f", 0, []byte{}).
		Build()
	require.NoError(t, err)

	bits, ok, _ := r.OpenPresence("f")
	require.True(t, ok)
	assert.True(t, bits.Test(0))
	assert.False(t, bits.Test(1))
}

func TestBuilder_PresenceEncoding(t *testing.T) {
	rng := testutil.NewRNG(42)

	t.Run("sparse uses roaring", func(t *testing.T) {
		c := rng.Corpus(1000, 0.01, 1, 4, 0)
		b := NewBuilder(1, c.NumDocs())
		for _, d := range c.PresentDocs() {
			b.Add("f", d, c.Values[d])
		}
		r, err := b.Build()
		require.NoError(t, err)

		bits, _, _ := r.OpenPresence("f")
		assert.IsType(t, &presence.RoaringBits{}, bits)
	})

	t.Run("dense uses bitset", func(t *testing.T) {
		c := rng.Corpus(1000, 0.9, 1, 4, 0)
		b := NewBuilder(1, c.NumDocs())
		for _, d := range c.PresentDocs() {
			b.Add("f", d, c.Values[d])
		}
		r, err := b.Build()
		require.NoError(t, err)

		bits, _, _ := r.OpenPresence("f")
		require.IsType(t, &bitset.Dense{}, bits)
		for d := range c.Present {
			assert.Equal(t, c.Present[d], bits.Test(uint32(d)), "doc %d", d)
		}
	})
}

func TestBuilder_Compress(t *testing.T) {
	rng := testutil.NewRNG(7)
	c := rng.Corpus(500, 0.6, 0, 12, 20)

	b := NewBuilder(1, c.NumDocs()).Compress("f", column.CompressionZSTD, 32)
	for _, d := range c.PresentDocs() {
		b.Add("f", d, c.Values[d])
	}
	r, err := b.Build()
	require.NoError(t, err)

	col, ok, err := r.OpenColumn("f")
	require.NoError(t, err)
	require.True(t, ok)
	require.IsType(t, &column.Compressed{}, col)
	assert.NoError(t, col.(*column.Compressed).Validate())

	for _, d := range c.PresentDocs() {
		assert.Equal(t, string(c.Values[d]), string(col.AppendValue(nil, d)))
	}
}

func TestBuilder_CompressUnsupported(t *testing.T) {
	_, err := NewBuilder(1, 1).
		Add("f", 0, []byte("v")).
		Compress("f", column.Compression(99), 0).
		Build()
	assert.Error(t, err)
}

func TestBuilder_EmptySegment(t *testing.T) {
	r, err := NewBuilder(1, 0).Build()
	require.NoError(t, err)
	assert.Equal(t, 0, r.NumDocs())
	assert.Empty(t, r.Fields())
}
