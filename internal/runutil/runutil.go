// internal/runutil/runutil.go
package runutil

import "runtime"

// ChunksPerWorker is how many work units an interval is cut into per worker
// when no explicit chunk size is configured.
const ChunksPerWorker = 4

// EffectiveThreads resolves the worker count. threads <= 0 means all CPUs.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// ChunkSize chooses how many consecutive seeds one work unit covers.
// Rules:
//   - chunkSize > 0 is used as-is.
//   - otherwise length is split into threads*ChunksPerWorker pieces (rounded up).
//   - the result is never below 1.
func ChunkSize(length int64, threads int, chunkSize int64) int64 {
	if chunkSize > 0 {
		return chunkSize
	}
	if threads < 1 {
		threads = 1
	}
	parts := int64(threads) * ChunksPerWorker
	size := length / parts
	if length%parts != 0 {
		size++
	}
	if size < 1 {
		size = 1
	}
	return size
}

// ChunkCount is the number of work units ChunkSize yields for length seeds.
func ChunkCount(length, size int64) int64 {
	if length <= 0 {
		return 0
	}
	if size < 1 {
		size = 1
	}
	if size >= length {
		return 1
	}
	n := length / size
	if length%size != 0 {
		n++
	}
	return n
}

// ValidateSearch checks user-supplied pool settings and returns warnings for
// values that are legal but unlikely to be intended.
func ValidateSearch(threads int, chunkSize int64) []string {
	var warns []string
	if n := runtime.NumCPU(); threads > 4*n {
		warns = append(warns, "warning: --threads is far above the CPU count; extra workers only add scheduling overhead")
	}
	if chunkSize > 0 && chunkSize < 64 {
		warns = append(warns, "warning: --chunk-size below 64 makes per-chunk overhead dominate")
	}
	return warns
}
