// Package roots manages the single trusted root value that an xmt commitment
// scheme publishes.
//
// The integrity of the whole scheme reduces to the integrity of this one
// value: anyone who can overwrite the trusted root can rewrite history, so
// SetRoot must be gated by the embedding system's authorization before any of
// this is production usable. What this package does guarantee is atomicity: a
// reader observes either the old root or the new root, never a torn value.
// MemStore does that with a lock, BlobStore with the blob store's ETag
// optimistic concurrency.
//
// The root has no incremental update path. When the committed dataset
// changes, the owner rebuilds the tree in full and republishes.
package roots
