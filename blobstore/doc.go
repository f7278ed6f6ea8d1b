// Package blobstore provides the storage abstraction behind bitstore.
//
// A BlobStore holds immutable, named blobs. Vectors are written once and
// replaced as a whole, so no implementation supports partial updates.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and caches
//   - LocalStore: local filesystem, atomic rename on write, mmap on read
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible servers
//
// Blobs returned by LocalStore implement Mappable, which lets readers decode
// straight from the page cache without copying.
package blobstore
