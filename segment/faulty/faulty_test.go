package faulty

import (
	"errors"
	"testing"

	"github.com/hupe1980/fielddata/segment/memseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	base, err := memseg.NewBuilder(1, 2).
		Add("a", 0, []byte("x")).
		Add("b", 1, []byte("y")).
		Build()
	require.NoError(t, err)

	custom := errors.New("disk on fire")
	r := New(base)
	r.AddRule("a", Fault{FailOpenColumn: true})
	r.AddRule("b", Fault{FailOpenPresence: true, Err: custom})
	r.AddRule("c", Fault{OrphanPresence: true})

	_, _, err = r.OpenColumn("a")
	assert.ErrorIs(t, err, ErrInjected)

	_, ok, err := r.OpenColumn("b")
	require.NoError(t, err)
	assert.True(t, ok)
	_, _, err = r.OpenPresence("b")
	assert.ErrorIs(t, err, custom)

	_, ok, err = r.OpenColumn("c")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = r.OpenPresence("c")
	require.NoError(t, err)
	assert.True(t, ok)

	// Passthrough
	assert.Equal(t, 2, r.NumDocs())
	assert.Equal(t, base.ID(), r.ID())
	assert.Equal(t, 1, r.ColumnOpens("a"))
	assert.Equal(t, 0, r.ColumnOpens("z"))
}
