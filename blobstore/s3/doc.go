// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket", s3.WithPrefix("vectors/"))
//	if err != nil { ... }
//	vs := bitstore.New(store)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads for large vectors
//   - CRC32C integrity checks on Put
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
