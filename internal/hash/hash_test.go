package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Known vector for CRC32-Castagnoli.
	assert.Equal(t, uint32(0xe3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestValue64(t *testing.T) {
	assert.Equal(t, Value64([]byte("alpha")), Value64([]byte("alpha")))
	assert.NotEqual(t, Value64([]byte("alpha")), Value64([]byte("gamma")))
	assert.Equal(t, uint64(0xef46db3751d8e999), Value64(nil))
}
