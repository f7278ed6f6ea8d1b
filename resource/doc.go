// Package resource bounds the memory, concurrency and IO used by bulk vector
// work.
//
// One Controller can be shared by several executors and stores:
//
//   - Memory: accumulator and scratch vectors are reserved up front. The
//     reservation is non-blocking and fails with ErrMemoryLimitExceeded.
//   - Workers: limits how many slice tasks run at once across every executor
//     sharing the controller.
//   - IO: token bucket for blob reads and writes (RateLimitedReader,
//     RateLimitedWriter).
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   1 << 30,
//	    MaxWorkers:         8,
//	    IOLimitBytesPerSec: 100 << 20,
//	})
//
//	if err := rc.AcquireMemory(1 << 20); err != nil {
//	    return err // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1 << 20)
//
// All methods treat a nil *Controller as "no limits", so callers can keep
// the controller optional without nil checks.
package resource
