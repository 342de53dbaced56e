// Package library stores feature vectors by shape name.
//
// A Library memoizes extraction: the first Upsert for a name computes the
// feature vector, later calls return the cached value without touching the
// mesh. Concurrent Upserts for the same name share one in-flight
// extraction. An entry becomes visible only once its vector is complete, so
// readers never observe a name without its features.
//
// Entries keeps insertion order, which search.TopK uses to break ties.
//
// A Library never invalidates on its own. If the mesh behind a name changes,
// Remove the name and Upsert it again.
//
// # Example
//
//	lib := library.New()
//	v, err := lib.Upsert(ctx, "chair", chairMesh)
//	if errors.Is(err, feature.ErrNoGeometry) {
//	    // reject the model
//	}
package library
