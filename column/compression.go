package column

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/golang/snappy"
	"github.com/hupe1980/fielddata/internal/hash"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrCorruptBlock is returned when a compressed block fails validation.
var ErrCorruptBlock = errors.New("corrupt column block")

// Compression defines the block compression algorithm of a column.
type Compression uint8

const (
	// CompressionNone stores blocks as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio, good for cold data).
	CompressionZSTD Compression = 2
	// CompressionSnappy uses Snappy block compression.
	CompressionSnappy Compression = 3
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	case CompressionSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block layout:
//
//	[UncompressedSize uint32][CompressedSize uint32][CRC32C uint32][Data...]
//
// CompressedSize == 0 means Data is stored uncompressed. The checksum
// covers Data as stored.
const blockHeaderSize = 12

// compressBlock compresses a block with the given algorithm.
// Blocks that do not shrink below 90% are stored uncompressed.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	var (
		compressed []byte
		err        error
	)

	switch c {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed = compressBlockZSTD(data)
	case CompressionSnappy:
		compressed = snappy.Encode(nil, data)
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
	if err != nil {
		return nil, err
	}

	payload := compressed
	compressedSize := uint32(len(compressed))
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		payload = data
		compressedSize = 0
	}

	result := make([]byte, blockHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], compressedSize)
	binary.LittleEndian.PutUint32(result[8:], hash.CRC32C(payload))
	copy(result[blockHeaderSize:], payload)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// isCompressed reports whether a block's payload is stored compressed.
// Uncompressed payloads alias the block and must never be written to.
func isCompressed(block []byte) bool {
	return len(block) >= blockHeaderSize && binary.LittleEndian.Uint32(block[4:]) != 0
}

// decompressBlock decodes a block into dst (reusing its capacity).
// Uncompressed blocks are returned without copying.
func decompressBlock(block []byte, c Compression, dst []byte) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorruptBlock)
	}

	uncompressedSize := binary.LittleEndian.Uint32(block[0:])
	compressedSize := binary.LittleEndian.Uint32(block[4:])
	checksum := binary.LittleEndian.Uint32(block[8:])

	stored := uncompressedSize
	if compressedSize != 0 {
		stored = compressedSize
	}
	if uint64(len(block)) < blockHeaderSize+uint64(stored) {
		return nil, fmt.Errorf("%w: block data too small", ErrCorruptBlock)
	}
	payload := block[blockHeaderSize : blockHeaderSize+stored]
	if hash.CRC32C(payload) != checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptBlock)
	}

	if compressedSize == 0 {
		return payload, nil
	}

	if uint32(cap(dst)) < uncompressedSize {
		dst = make([]byte, uncompressedSize)
	}
	dst = dst[:uncompressedSize]

	var (
		decoded []byte
		err     error
	)
	switch c {
	case CompressionLZ4:
		var n int
		n, err = lz4.UncompressBlock(payload, dst)
		decoded = dst[:max(n, 0)]
	case CompressionZSTD:
		dec := getZstdDecoder()
		decoded, err = dec.DecodeAll(payload, dst[:0])
		putZstdDecoder(dec)
	case CompressionSnappy:
		decoded, err = snappy.Decode(dst, payload)
	default:
		return nil, fmt.Errorf("%w: compressed block in %s column", ErrCorruptBlock, c)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
	}
	if uint32(len(decoded)) != uncompressedSize {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
	}
	return decoded, nil
}
