package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaw(t *testing.T) {
	values := [][]byte{[]byte("alpha"), nil, []byte("gamma"), {}}
	r := NewRaw(values)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []byte("alpha"), r.At(0))
	assert.Empty(t, r.At(1))
	assert.Equal(t, []byte("gamma"), r.At(2))
	assert.Empty(t, r.At(3))

	buf := make([]byte, 0, 2)
	buf = r.AppendValue(buf[:0], 2)
	assert.Equal(t, "gamma", string(buf))
	buf = r.AppendValue(buf[:0], 1)
	assert.Empty(t, buf)
}

func TestRaw_AtIsCapped(t *testing.T) {
	r := NewRaw([][]byte{[]byte("ab"), []byte("cd")})

	v := r.At(0)
	_ = append(v, 'X') // must not clobber the next value
	assert.Equal(t, []byte("cd"), r.At(1))
}

func TestRawBuilder(t *testing.T) {
	b := NewRawBuilder(0)
	b.Append([]byte("x"))
	b.AppendEmpty()
	b.Append([]byte("yz"))
	assert.Equal(t, 3, b.Len())

	r := b.Build()
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "x", string(r.At(0)))
	assert.Equal(t, "", string(r.At(1)))
	assert.Equal(t, "yz", string(r.At(2)))
	assert.Positive(t, r.Size())
}
