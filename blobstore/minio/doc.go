// Package minio stores blobs in MinIO or any other S3-compatible server
// (Ceph, SeaweedFS, Garage) through minio-go, without the AWS SDK.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "vectors/")
//	vs := bitstore.New(store)
//
// Blobs written through Create are buffered and uploaded as one object on
// Close, so readers never observe a partial frame.
package minio
