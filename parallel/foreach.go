//Package parallel has a small helper to run loop bodies on a bounded
//number of goroutines. The classifier uses it to evaluate per-sample
//losses in a batch.
package parallel

import "sync"

// ForEach runs body(i) for i in [0, length) on at most limit concurrent
// goroutines. Each index is handled exactly once; the caller is responsible
// for keeping bodies independent (e.g. each writing only its own slot of a
// result slice). All bodies run even if some fail; the first error observed
// is returned.
func ForEach(length, limit int, body func(i int) error) error {
	if length <= 0 {
		return nil
	}
	if limit <= 0 {
		limit = 1
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	wg.Add(length)
	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := body(i); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return firstErr
}
