package fielddata

import (
	"slices"
	"testing"

	"github.com/hupe1980/fielddata/column"
	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment/memseg"
	"github.com/hupe1980/fielddata/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(v *BytesValues, doc uint32) []string {
	var out []string
	for b := range v.Values(doc) {
		out = append(out, string(b))
	}
	return out
}

func TestBinaryDocValues_ExplicitPresence(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 3).
		Add("_id", 0, []byte("alpha")).
		Add("_id", 2, []byte("gamma")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "_id")
	require.NoError(t, err)
	assert.Equal(t, presence.PolicyExplicit, dv.Source().Presence().Policy())

	values := dv.BytesValues()
	assert.True(t, values.HasValue(0))
	assert.False(t, values.HasValue(1))
	assert.True(t, values.HasValue(2))

	assert.Equal(t, []string{"alpha"}, collect(values, 0))
	assert.Empty(t, collect(values, 1))
	assert.Equal(t, []string{"gamma"}, collect(values, 2))
	assert.Equal(t, "gamma", string(values.ValueInto(2, nil)))

	assert.EqualValues(t, 3, dv.NumberOfUniqueValues())
	assert.Equal(t, 3, dv.NumDocs())
}

func TestBinaryDocValues_MissingField(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 4).
		Add("other", 0, []byte("x")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "_id")
	require.NoError(t, err)
	assert.Equal(t, presence.PolicyAllAbsent, dv.Source().Presence().Policy())
	assert.Equal(t, 4, dv.NumDocs())

	values := dv.BytesValues()
	for doc := uint32(0); doc < 4; doc++ {
		assert.False(t, values.HasValue(doc))
		assert.Empty(t, collect(values, doc))
	}
}

func TestBinaryDocValues_DenseField(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 2).
		Dense("f").
		Add("f", 1, []byte("x")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "f")
	require.NoError(t, err)
	assert.Equal(t, presence.PolicyAllPresent, dv.Source().Presence().Policy())

	values := dv.BytesValues()
	assert.True(t, values.HasValue(0))
	assert.True(t, values.HasValue(1))
	assert.Equal(t, []string{""}, collect(values, 0))
	assert.Equal(t, []string{"x"}, collect(values, 1))
}

func TestBinaryDocValues_Constants(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 1).Build()
	require.NoError(t, err)

	dv, err := Load(seg, "f")
	require.NoError(t, err)

	assert.Equal(t, KindBinaryDocValues, dv.Kind())
	assert.Equal(t, "binary_doc_values", dv.Kind().String())
	assert.Equal(t, "unknown(9)", Kind(9).String())
	assert.False(t, dv.IsMultiValued())
	assert.True(t, dv.IsValuesOrdered())
	assert.False(t, dv.BytesValues().IsMultiValued())
	assert.Equal(t, UnknownMemorySize, dv.MemorySizeInBytes())
	assert.NoError(t, dv.Close())
	assert.NoError(t, dv.Close())
}

func TestBinaryDocValues_ValueIntoReusesBuffer(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 2).
		Add("f", 0, []byte("long value")).
		Add("f", 1, []byte("v")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "f")
	require.NoError(t, err)
	values := dv.BytesValues()

	buf := make([]byte, 0, 64)
	buf = values.ValueInto(0, buf)
	assert.Equal(t, "long value", string(buf))

	first := &buf[:1][0]
	buf = values.ValueInto(1, buf)
	assert.Equal(t, "v", string(buf))
	assert.Same(t, first, &buf[:1][0])
}

func TestBinaryDocValues_ValuesEarlyBreak(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 1).
		Add("f", 0, []byte("a")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "f")
	require.NoError(t, err)

	n := 0
	for range dv.BytesValues().Values(0) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestBinaryDocValues_HashedValues(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 2).
		Add("f", 0, []byte("alpha")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "f")
	require.NoError(t, err)

	hashed := dv.HashedBytesValues()
	var got []uint64
	for v, h := range hashed.HashedValues(0) {
		assert.Equal(t, "alpha", string(v))
		got = append(got, h)
	}
	assert.Equal(t, []uint64{HashValue([]byte("alpha"))}, got)

	for range hashed.HashedValues(1) {
		t.Fatal("doc 1 has no value")
	}
}

// Every layout of the same corpus must agree with the corpus.
func TestBinaryDocValues_Corpus(t *testing.T) {
	rng := testutil.NewRNG(1)

	layouts := []struct {
		name  string
		apply func(b *memseg.Builder)
	}{
		{"raw", func(*memseg.Builder) {}},
		{"lz4", func(b *memseg.Builder) { b.Compress("f", column.CompressionLZ4, 64) }},
		{"zstd", func(b *memseg.Builder) { b.Compress("f", column.CompressionZSTD, 0) }},
		{"snappy", func(b *memseg.Builder) { b.Compress("f", column.CompressionSnappy, 17) }},
	}

	densities := []float64{0.02, 0.5, 1}

	for _, density := range densities {
		c := rng.Corpus(700, density, 0, 24, 0)

		for _, layout := range layouts {
			b := memseg.NewBuilder(3, c.NumDocs())
			for _, d := range c.PresentDocs() {
				b.Add("f", d, c.Values[d])
			}
			layout.apply(b)
			seg, err := b.Build()
			require.NoError(t, err)

			dv, err := Load(seg, "f")
			require.NoError(t, err, layout.name)

			assert.GreaterOrEqual(t, dv.NumberOfUniqueValues(), int64(c.Distinct()))

			values := dv.BytesValues()
			var buf []byte
			for d := range c.NumDocs() {
				doc := uint32(d)
				require.Equal(t, c.Present[d], values.HasValue(doc), "%s density=%v doc=%d", layout.name, density, d)

				got := slices.Collect(values.Values(doc))
				if !c.Present[d] {
					assert.Empty(t, got)
					continue
				}
				require.Len(t, got, 1)
				assert.Equal(t, string(c.Values[d]), string(got[0]))

				buf = values.ValueInto(doc, buf)
				assert.Equal(t, string(got[0]), string(buf))
			}
		}
	}
}

func TestScriptStrings(t *testing.T) {
	seg, err := memseg.NewBuilder(1, 3).
		Add("f", 0, []byte("alpha")).
		Add("f", 2, []byte("")).
		Build()
	require.NoError(t, err)

	dv, err := Load(seg, "f")
	require.NoError(t, err)
	s := dv.ScriptValues()

	s.SetNextDocID(0)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "alpha", s.Value())
	assert.Equal(t, []string{"alpha"}, s.Values())

	s.SetNextDocID(1)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.Value())
	assert.Empty(t, s.Values())

	s.SetNextDocID(2)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "", s.Value())
	assert.Equal(t, []string{""}, s.Values())

	// Cursor can move backwards.
	s.SetNextDocID(0)
	assert.Equal(t, "alpha", s.Value())
}

func BenchmarkBytesValues_ValueInto(b *testing.B) {
	rng := testutil.NewRNG(1)
	c := rng.Corpus(10000, 0.8, 16, 32, 0)

	sb := memseg.NewBuilder(1, c.NumDocs())
	for _, d := range c.PresentDocs() {
		sb.Add("f", d, c.Values[d])
	}
	seg, err := sb.Build()
	require.NoError(b, err)

	dv, err := Load(seg, "f")
	require.NoError(b, err)
	values := dv.BytesValues()

	var buf []byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc := uint32(i % c.NumDocs())
		if values.HasValue(doc) {
			buf = values.ValueInto(doc, buf)
		}
	}
}
