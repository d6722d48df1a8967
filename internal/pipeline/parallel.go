package pipeline

import (
	"runtime"
	"sync"

	"github.com/clinseq/varank/internal/vcf"
)

// workItem holds a parsed variant ready for processing.
type workItem struct {
	Seq     int
	Variant *vcf.Variant
}

// workResult holds the processed output for a single variant.
type workResult struct {
	Seq    int
	Scored ScoredVariant
}

// parallelProcess annotates, classifies and scores work items using a pool
// of workers. Per-variant processing is pure, so items can run in any order;
// results carry sequence numbers for ordered collection. If workers is 0,
// runtime.NumCPU() is used.
func (p *Pipeline) parallelProcess(items <-chan workItem, workers int) <-chan workResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan workResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- workResult{
					Seq:    item.Seq,
					Scored: p.process(item.Variant),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// orderedCollect calls fn for each result in sequence-number order. It
// buffers out-of-order results in a pending map and emits them as soon as
// the next expected sequence number is available. Blocks until the results
// channel is closed.
func orderedCollect(results <-chan workResult, fn func(workResult) error) error {
	pending := make(map[int]workResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
