// Package resource bounds the cost of feature extraction.
//
// Extraction is linear in vertex count and may run over meshes with millions
// of vertices. The Controller provides three independent limits:
//
//   - Memory: position bytes held by in-flight extractions (weighted semaphore)
//   - Concurrency: number of extractions running at once (semaphore)
//   - Throughput: vertices processed per second (token bucket)
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentExtractions: 4,
//	    MemoryLimitBytes:         512 << 20,
//	})
//
//	release, err := rc.Reserve(ctx, m.SizeBytes(), m.VertexCount())
//	if err != nil {
//	    return err
//	}
//	defer release()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
