package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDense(t *testing.T) {
	b := NewBuilder(100)
	b.Set(10)
	b.Set(20)
	b.Set(30)
	d := b.Build()

	assert.Equal(t, uint32(100), d.Len())
	assert.Equal(t, uint64(3), d.Cardinality())
	assert.True(t, d.Test(10))
	assert.True(t, d.Test(30))
	assert.False(t, d.Test(11))
}

func TestDense_OutOfRange(t *testing.T) {
	b := NewBuilder(10)
	b.Set(10) // ignored
	b.Set(64) // ignored
	d := b.Build()

	assert.Equal(t, uint64(0), d.Cardinality())
	assert.False(t, d.Test(10))
	assert.False(t, d.Test(1_000_000))
}

func TestDense_NextSetBit(t *testing.T) {
	b := NewBuilder(200)
	b.Set(3)
	b.Set(64)
	b.Set(199)
	d := b.Build()

	assert.Equal(t, int64(3), d.NextSetBit(0))
	assert.Equal(t, int64(3), d.NextSetBit(3))
	assert.Equal(t, int64(64), d.NextSetBit(4))
	assert.Equal(t, int64(199), d.NextSetBit(65))
	assert.Equal(t, int64(-1), d.NextSetBit(200))

	empty := NewBuilder(128).Build()
	assert.Equal(t, int64(-1), empty.NextSetBit(0))
}

func TestDense_ForEach(t *testing.T) {
	b := NewBuilder(300)
	want := []uint32{0, 63, 64, 128, 299}
	for _, i := range want {
		b.Set(i)
	}
	d := b.Build()

	var got []uint32
	d.ForEach(func(i uint32) bool {
		got = append(got, i)
		return true
	})
	assert.Equal(t, want, got)

	got = got[:0]
	d.ForEach(func(i uint32) bool {
		got = append(got, i)
		return len(got) < 2
	})
	assert.Equal(t, []uint32{0, 63}, got)
}

func BenchmarkDense_Test(b *testing.B) {
	bb := NewBuilder(1 << 20)
	for i := uint32(0); i < 1<<20; i += 3 {
		bb.Set(i)
	}
	d := bb.Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Test(uint32(i) & (1<<20 - 1))
	}
}
