// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// DefaultBatchSize is the number of records per work unit when Config.BatchSize <= 0.
const DefaultBatchSize = 1024

// DefaultBatchBytes caps the payload of one work unit when Config.BatchBytes <= 0.
const DefaultBatchBytes = 4 << 20

// Config controls the reduction.
type Config struct {
	Threads    int // number of worker goroutines (0 = all CPUs)
	BatchSize  int // records handed to a worker at a time
	BatchBytes int // a batch is also handed off once its records' Size reaches this
}

// Totals is the running result of a reduction.
type Totals struct {
	Records int64
	Bases   int64
}

// Add combines two partial totals.
func (t Totals) Add(o Totals) Totals {
	return Totals{Records: t.Records + o.Records, Bases: t.Bases + o.Bases}
}

// SumLengths drains src and returns the total of Len() over all records.
//
// A batch is handed off when it holds BatchSize records or, for records that
// implement Sizer, BatchBytes of payload, so at most a few batches per worker
// are held in memory at once.
//
// If src fails, its error is returned together with the totals of the records
// read before the failure. If ctx is cancelled the producer stops feeding and
// ctx.Err() is returned.
func SumLengths[R Measurer](ctx context.Context, cfg Config, src Source[R]) (Totals, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchBytes := cfg.BatchBytes
	if batchBytes <= 0 {
		batchBytes = DefaultBatchBytes
	}

	jobs := make(chan []R, threads*2)
	partials := make([]Totals, threads)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func(w int) {
			defer wg.Done()
			var t Totals
			for batch := range jobs {
				for _, r := range batch {
					t.Records++
					t.Bases += int64(r.Len())
				}
			}
			partials[w] = t
		}(w)
	}

	send := func(batch []R) bool {
		select {
		case <-ctx.Done():
			return false
		case jobs <- batch:
			return true
		}
	}

	// Feed work
	batch := make([]R, 0, batchSize)
	size := 0
	for src.Scan() {
		r := src.Record()
		batch = append(batch, r)
		if sz, ok := any(r).(Sizer); ok {
			size += sz.Size()
		}
		if len(batch) < batchSize && size < batchBytes {
			continue
		}
		if !send(batch) {
			break
		}
		batch = make([]R, 0, batchSize)
		size = 0
	}
	if len(batch) > 0 && ctx.Err() == nil {
		send(batch)
	}

	close(jobs)
	wg.Wait()

	var total Totals
	for _, p := range partials {
		total = total.Add(p)
	}
	if err := ctx.Err(); err != nil {
		return total, err
	}
	return total, src.Err()
}
