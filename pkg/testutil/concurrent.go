package testutil

import (
	"sync"
	"sync/atomic"

	dErrors "attestry/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes     int32
	Errors        int32
	InvalidStates int32
	NotFounds     int32
	Unauthorized  int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.InvalidStates + r.NotFounds + r.Unauthorized
}

// RunConcurrent executes fn in parallel goroutines and collects results,
// categorizing errors by registry domain code. This helper replaces the
// common pattern of WaitGroup + atomic counters in ledger serialization tests.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, errs, invalid, notFounds, unauthorized atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			switch {
			case err == nil:
				successes.Add(1)
			case dErrors.HasCode(err, dErrors.CodeInvalidState):
				invalid.Add(1)
			case dErrors.HasCode(err, dErrors.CodeNotFound):
				notFounds.Add(1)
			case dErrors.HasCode(err, dErrors.CodeUnauthorized):
				unauthorized.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes:     successes.Load(),
		Errors:        errs.Load(),
		InvalidStates: invalid.Load(),
		NotFounds:     notFounds.Load(),
		Unauthorized:  unauthorized.Load(),
	}
}
