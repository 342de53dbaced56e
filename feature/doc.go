// Package feature extracts geometric shape descriptors from triangle meshes.
//
// Extract turns a mesh.RawMesh into a Vector in a single linear pass. The
// descriptors are cheap approximations chosen for robustness on open,
// non-manifold meshes:
//
//   - Volume is the bounding-box product, not the enclosed polyhedral volume.
//   - SurfaceArea is the exact sum of triangle areas.
//   - Compactness is Volume^(2/3) / SurfaceArea, 0 when either is 0.
//   - AspectRatio is the longest over the shortest bounding-box dimension,
//     +Inf for flat or line-like meshes and 1 for a single point.
//   - CenterOfMass is the unweighted vertex centroid.
//
// Extract is pure: it reads the position buffer, touches no shared state and
// returns bit-identical results for identical input, so it is safe to call
// from any goroutine.
//
// Degenerate geometry (planar, line-like, point-like) is not an error. Only
// empty or malformed buffers fail, with an error matching ErrNoGeometry.
package feature
