package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/classify"
)

func TestParallelProcess_OrderPreserved(t *testing.T) {
	const n = 200
	p := New(testStore(0), classify.DefaultConfig())

	items := make(chan workItem, n)
	for i := 0; i < n; i++ {
		items <- workItem{Seq: i, Variant: testVariant(fmt.Sprintf("id%d", i), "", "", int64(i+1))}
	}
	close(items)

	results := p.parallelProcess(items, 8)

	var seen []string
	err := orderedCollect(results, func(r workResult) error {
		seen = append(seen, r.Scored.VariantID)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, seen, n)
	for i, id := range seen {
		assert.Equal(t, fmt.Sprintf("id%d", i), id)
	}
}

func TestOrderedCollect_ErrorDrains(t *testing.T) {
	p := New(annotation.NewStore(), classify.DefaultConfig())

	items := make(chan workItem, 50)
	for i := 0; i < 50; i++ {
		items <- workItem{Seq: i, Variant: testVariant(fmt.Sprintf("id%d", i), "", "", int64(i+1))}
	}
	close(items)

	results := p.parallelProcess(items, 4)

	count := 0
	err := orderedCollect(results, func(r workResult) error {
		count++
		if count == 5 {
			return fmt.Errorf("stop at %d", r.Seq)
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 5, count)

	// Channel fully drained; workers are not blocked.
	_, open := <-results
	assert.False(t, open)
}
