// Package resource implements memory accounting for table allocations.
//
// A Controller tracks how many bytes the allocators have handed out and can
// enforce a hard limit. Hosts that keep their own memory budget install an
// accounting allocator backed by a Controller so that every slot block and key
// buffer is charged against that budget.
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 20, // 1MB limit
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides what to do
//	}
//	defer rc.ReleaseMemory(4096)
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
