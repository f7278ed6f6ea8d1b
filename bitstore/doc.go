// Package bitstore persists immutable bit vectors as named blobs.
//
// Each vector is stored as one codec frame in a blobstore.BlobStore, so the
// same Store works on local disk, in memory, on S3 and on MinIO:
//
//	s := bitstore.New(blobstore.NewLocalStore("/var/lib/bitvec"),
//	    bitstore.WithCompression(codec.CompressionZSTD),
//	    bitstore.WithCache(256<<20),
//	)
//	if err := s.Save(ctx, "users/active", v); err != nil {
//	    return err
//	}
//	vs, err := s.LoadAll(ctx, names)
//	...
//	res, err := e.Perform(ctx, vs, finalSize, ops.Or{})
//
// Loaded vectors are plain *bitvec.Immutable values and never alias blob
// storage, so they stay valid after the store is closed.
package bitstore
