package osm2pt

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestParallelFor(t *testing.T) {
	results := make([]int, 100)
	var calls int64
	err := parallelFor(len(results), 4, func(index int) error {
		atomic.AddInt64(&calls, 1)
		results[index] = index * index
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 100 {
		t.Errorf("Job should be called 100 times, but got %d", calls)
	}
	for i, value := range results {
		if value != i*i {
			t.Errorf("Job %d has not been done", i)
		}
	}

	err = parallelFor(10, 0, func(index int) error {
		if index == 7 {
			return fmt.Errorf("Job %d failed", index)
		}
		return nil
	})
	if err == nil || err.Error() != "Job 7 failed" {
		t.Errorf("Error of job should be returned, but got %v", err)
	}

	if err := parallelFor(0, 4, nil); err != nil {
		t.Errorf("No jobs should give no error, but got %v", err)
	}
}
