package column

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// DefaultBlockDocs is the number of documents per compressed block.
const DefaultBlockDocs = 128

// Compressed is an immutable byte-string column stored as compressed blocks
// of consecutive documents. Each block decodes to:
//
//	[n+1 offsets uint32][values...]
//
// where value i of the block is values[offsets[i]:offsets[i+1]].
//
// Blocks are decoded on every AppendValue call and never cached, so a
// Compressed column is safe for concurrent readers.
type Compressed struct {
	blocks      [][]byte
	blockDocs   int
	numDocs     int
	compression Compression
}

type compressedOptions struct {
	blockDocs int
}

// CompressedOption configures NewCompressed.
type CompressedOption func(*compressedOptions)

// WithBlockDocs sets the number of documents per block.
// Values <= 0 select DefaultBlockDocs.
func WithBlockDocs(n int) CompressedOption {
	return func(o *compressedOptions) {
		o.blockDocs = n
	}
}

// NewCompressed builds a compressed column holding values, one per document.
func NewCompressed(values [][]byte, c Compression, optFns ...CompressedOption) (*Compressed, error) {
	opts := compressedOptions{blockDocs: DefaultBlockDocs}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.blockDocs <= 0 {
		opts.blockDocs = DefaultBlockDocs
	}

	col := &Compressed{
		blockDocs:   opts.blockDocs,
		numDocs:     len(values),
		compression: c,
	}

	var raw []byte
	for start := 0; start < len(values); start += opts.blockDocs {
		end := min(start+opts.blockDocs, len(values))
		raw = encodeBlock(raw[:0], values[start:end])

		block, err := compressBlock(raw, c)
		if err != nil {
			return nil, fmt.Errorf("compress block %d: %w", len(col.blocks), err)
		}
		col.blocks = append(col.blocks, block)
	}
	return col, nil
}

func encodeBlock(dst []byte, values [][]byte) []byte {
	var off uint32
	dst = binary.LittleEndian.AppendUint32(dst, 0)
	for _, v := range values {
		off += uint32(len(v))
		dst = binary.LittleEndian.AppendUint32(dst, off)
	}
	for _, v := range values {
		dst = append(dst, v...)
	}
	return dst
}

var blockBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 4096)
		return &b
	},
}

// AppendValue implements segment.Column.
//
// It panics with an error wrapping ErrCorruptBlock if the block of doc
// does not decode; blocks are produced by NewCompressed and validated with
// Validate, so this only happens on memory corruption.
func (c *Compressed) AppendValue(dst []byte, doc uint32) []byte {
	blk := int(doc) / c.blockDocs
	idx := int(doc) % c.blockDocs

	bufp := blockBufPool.Get().(*[]byte)
	payload, err := decompressBlock(c.blocks[blk], c.compression, (*bufp)[:0])
	if err != nil {
		blockBufPool.Put(bufp)
		panic(fmt.Errorf("column: block %d: %w", blk, err))
	}

	n := c.docsInBlock(blk)
	base := uint32(4 * (n + 1))
	start := binary.LittleEndian.Uint32(payload[4*idx:])
	end := binary.LittleEndian.Uint32(payload[4*(idx+1):])
	dst = append(dst, payload[base+start:base+end]...)

	if isCompressed(c.blocks[blk]) && cap(payload) > cap(*bufp) {
		*bufp = payload[:0]
	}
	blockBufPool.Put(bufp)
	return dst
}

// Validate decodes every block and checks its layout.
func (c *Compressed) Validate() error {
	var buf []byte
	for blk, block := range c.blocks {
		payload, err := decompressBlock(block, c.compression, buf[:0])
		if err != nil {
			return fmt.Errorf("block %d: %w", blk, err)
		}
		n := c.docsInBlock(blk)
		base := 4 * (n + 1)
		if len(payload) < base {
			return fmt.Errorf("block %d: %w: offsets truncated", blk, ErrCorruptBlock)
		}
		prev := uint32(0)
		for i := 0; i <= n; i++ {
			off := binary.LittleEndian.Uint32(payload[4*i:])
			if off < prev || base+int(off) > len(payload) {
				return fmt.Errorf("block %d: %w: bad offset %d", blk, ErrCorruptBlock, i)
			}
			prev = off
		}
		if isCompressed(block) {
			buf = payload
		}
	}
	return nil
}

func (c *Compressed) docsInBlock(blk int) int {
	if blk == len(c.blocks)-1 {
		return c.numDocs - blk*c.blockDocs
	}
	return c.blockDocs
}

// Len returns the number of documents in the column.
func (c *Compressed) Len() int {
	return c.numDocs
}

// Compression returns the block compression algorithm.
func (c *Compressed) Compression() Compression {
	return c.compression
}

// Size returns the number of bytes held by the encoded blocks.
func (c *Compressed) Size() int {
	size := 0
	for _, b := range c.blocks {
		size += len(b)
	}
	return size
}
