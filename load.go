package fielddata

import (
	"time"

	"github.com/hupe1980/fielddata/presence"
	"github.com/hupe1980/fielddata/segment"
)

// Load opens the doc values of field in r without caching.
//
// Example:
//
//	dv, err := fielddata.Load(reader, "_id")
//	if err != nil {
//	    return err
//	}
//	values := dv.BytesValues()
//	var buf []byte
//	if values.HasValue(doc) {
//	    buf = values.ValueInto(doc, buf)
//	}
func Load(r segment.Reader, field string, optFns ...Option) (*BinaryDocValues, error) {
	opts := applyOptions(optFns)
	return load(r, field, &opts)
}

func load(r segment.Reader, field string, opts *options) (*BinaryDocValues, error) {
	start := time.Now()
	src, err := OpenSource(r, field)
	took := time.Since(start)

	var policy presence.Policy
	if src != nil {
		policy = src.presence.Policy()
	}
	opts.logger.LogOpen(r.ID(), field, policy, took, err)
	opts.metricsCollector.RecordOpen(policy, took, err)

	if err != nil {
		return nil, err
	}
	return NewBinaryDocValues(src), nil
}
