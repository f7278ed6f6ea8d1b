package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/bitvec/blobstore"
)

// errFinished is returned by writes after Close or Abort.
var errFinished = errors.New("minio: upload already finished")

// Store implements blobstore.BlobStore for MinIO and S3-compatible servers.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore returns a Store that keeps its blobs in bucket under rootPrefix
// (e.g. "vectors/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: rootPrefix}
}

func (s *Store) objectKey(name string) string {
	return path.Join(s.prefix, name)
}

// translate maps missing objects to blobstore.ErrNotFound.
func translate(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return blobstore.ErrNotFound
	}
	return err
}

// Open stats the object and returns a handle that reads it by range.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.objectKey(name)
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, translate(err)
	}
	return &object{store: s, key: key, size: info.Size}, nil
}

// Put uploads data as a single object.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectKey(name),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType:    "application/octet-stream",
			SendContentMd5: true,
		})
	return err
}

// Create returns a writer whose content is uploaded by Close. Nothing is
// visible in the bucket before that, and Abort discards the content.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	return &upload{ctx: ctx, store: s, name: name}, nil
}

// Delete removes the object. Removing a missing object is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.objectKey(name), minio.RemoveObjectOptions{})
	if err != nil && !errors.Is(translate(err), blobstore.ErrNotFound) {
		return err
	}
	return nil
}

// List returns the sorted names below prefix, relative to the root prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	listPrefix := s.objectKey(prefix)
	if strings.HasSuffix(prefix, "/") || (prefix == "" && s.prefix != "") {
		listPrefix += "/"
	}

	var names []string
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, info.Err
		}
		name := strings.TrimPrefix(strings.TrimPrefix(info.Key, s.prefix), "/")
		if name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// object is an opened blob. Reads are ranged GETs.
type object struct {
	store *Store
	key   string
	size  int64
}

func (o *object) Size() int64 { return o.size }

func (o *object) Close() error { return nil }

func (o *object) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	rc, err := o.ReadRange(ctx, off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer func() { _ = rc.Close() }()

	n, err := io.ReadFull(rc, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	return n, err
}

func (o *object) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 || off >= o.size || length <= 0 {
		return nil, io.EOF
	}
	last := min(off+length, o.size) - 1

	var opts minio.GetObjectOptions
	if err := opts.SetRange(off, last); err != nil {
		return nil, err
	}
	return o.store.client.GetObject(ctx, o.store.bucket, o.key, opts)
}

// upload buffers a blob until Close.
type upload struct {
	ctx      context.Context
	store    *Store
	name     string
	buf      bytes.Buffer
	finished bool
}

func (u *upload) Write(p []byte) (int, error) {
	if u.finished {
		return 0, errFinished
	}
	return u.buf.Write(p)
}

// Sync is a no-op; the object only exists once Close succeeds.
func (u *upload) Sync() error { return nil }

func (u *upload) Close() error {
	if u.finished {
		return errFinished
	}
	u.finished = true
	return u.store.Put(u.ctx, u.name, u.buf.Bytes())
}

func (u *upload) Abort() error {
	u.finished = true
	u.buf.Reset()
	return nil
}
