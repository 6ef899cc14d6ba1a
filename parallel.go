package osm2pt

import (
	"runtime"
	"sync"
)

// parallelFor calls job for every index in [0, total) using pool of workers.
// If workers <= 0 then runtime.NumCPU() workers are used. Returns one of errors produced by jobs
func parallelFor(total, workers int, job func(index int) error) error {
	if total == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Don't create more workers than jobs
	if workers > total {
		workers = total
	}

	jobs := make(chan int, total)
	errs := make(chan error, total)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				if err := job(index); err != nil {
					errs <- err
				}
			}
		}()
	}

	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errs)

	if err, ok := <-errs; ok {
		return err
	}
	return nil
}
