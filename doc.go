// Package shapesim provides content-based retrieval of 3D shapes for Go.
//
// Given a triangle mesh, shapesim computes a compact geometric feature
// vector (vertex and face counts, bounding box, approximate volume, exact
// surface area, compactness, aspect ratio, vertex centroid). Given a
// collection of such vectors, it answers "which K shapes are most similar
// to this one" with a deterministic, weighted multi-attribute score.
//
// The packages, leaf first:
//
//   - mesh: RawMesh triangle soups and geometry helpers
//   - feature: Extract, the pure mesh → feature.Vector function
//   - similarity: Score, the symmetric 0..100 similarity of two vectors
//   - library: name → vector store with memoized, de-duplicated extraction
//   - search: TopK ranking with insertion-order tie-break
//   - codec: JSON export of vectors and ranked results
//   - resource: limits on extraction memory, concurrency and throughput
//
// The Engine in this package ties them together with logging and metrics.
//
// # Quick Start
//
//	eng := shapesim.New()
//
//	// Meshes come from a decoder as flat x,y,z triangle soups.
//	if _, err := eng.Add(ctx, mesh.RawMesh{Name: "chair", Positions: chair}); err != nil {
//	    if errors.Is(err, shapesim.ErrNoGeometry) {
//	        // reject the model
//	    }
//	    return err
//	}
//
//	results, err := eng.FindSimilar(ctx, "chair", 5)
//	for _, r := range results {
//	    fmt.Println(r.Name, r.Similarity)
//	}
//
// Query with a mesh that should not be stored:
//
//	query, results, err := eng.FindSimilarToMesh(ctx, uploaded, 20)
//
// Index many meshes concurrently:
//
//	eng := shapesim.New(shapesim.WithBatchConcurrency(runtime.GOMAXPROCS(0)))
//	res := eng.AddBatch(ctx, meshes)
//	if res.Failed() > 0 { ... }
//
// # Scoring
//
// Six attributes are compared, each as 1 - |a-b| / max(a,b), with weights
// vertexCount 0.15, faceCount 0.15, volume 0.20, surfaceArea 0.15,
// compactness 0.15 and aspectRatio 0.20. Identical vectors score 100. Flat
// and line-like meshes have an infinite aspect ratio: two infinite values
// count as identical, infinite against finite counts as fully dissimilar.
//
// # Concurrency
//
// Extraction is pure and may run on any goroutine. The library holds one
// lock for its map and collapses concurrent adds of the same name into a
// single extraction. Nothing is visible in the library until its features
// are complete.
package shapesim
