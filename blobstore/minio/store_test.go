package minio

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitstore"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/codec"
)

const testBucket = "test-bitvec"

var lastModified = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// fakeServer is a minimal path-style S3 endpoint holding objects in memory.
type fakeServer struct {
	mu      sync.Mutex
	objects map[string][]byte
	denied  map[string]bool
	puts    int
}

func newFakeServer() *fakeServer {
	return &fakeServer{objects: map[string][]byte{}, denied: map[string]bool{}}
}

func (f *fakeServer) object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	return data, ok
}

func (f *fakeServer) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func (f *fakeServer) store(key string, data []byte, denied bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if denied {
		f.denied[key] = true
		return
	}
	f.objects[key] = data
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rest, ok := strings.CutPrefix(r.URL.Path, "/"+testBucket)
	if !ok {
		writeError(w, r, http.StatusNotFound, "NoSuchBucket")
		return
	}
	key := strings.TrimPrefix(rest, "/")

	if key == "" {
		switch {
		case r.URL.Query().Has("location"):
			w.Header().Set("Content-Type", "application/xml")
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-east-1</LocationConstraint>`)
		case r.Method == http.MethodGet:
			f.list(w, r.URL.Query().Get("prefix"))
		default:
			writeError(w, r, http.StatusNotImplemented, "NotImplemented")
		}
		return
	}
	if f.denied[key] {
		writeError(w, r, http.StatusForbidden, "AccessDenied")
		return
	}

	switch r.Method {
	case http.MethodHead, http.MethodGet:
		data, ok := f.objects[key]
		if !ok {
			writeError(w, r, http.StatusNotFound, "NoSuchKey")
			return
		}
		f.serveObject(w, r, data)
	case http.MethodPut:
		data, err := readPayload(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "IncompleteBody")
			return
		}
		f.objects[key] = data
		f.puts++
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, r, http.StatusNotImplemented, "NotImplemented")
	}
}

func (f *fakeServer) serveObject(w http.ResponseWriter, r *http.Request, data []byte) {
	h := w.Header()
	h.Set("Last-Modified", lastModified.Format(http.TimeFormat))
	h.Set("ETag", `"etag"`)
	h.Set("Content-Type", "application/octet-stream")
	h.Set("Accept-Ranges", "bytes")

	if r.Method == http.MethodHead {
		h.Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		return
	}

	status := http.StatusOK
	body := data
	if spec, ok := strings.CutPrefix(r.Header.Get("Range"), "bytes="); ok {
		from, to, _ := strings.Cut(spec, "-")
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 != nil || err2 != nil || start >= len(data) {
			writeError(w, r, http.StatusRequestedRangeNotSatisfiable, "InvalidRange")
			return
		}
		end = min(end, len(data)-1)
		body = data[start : end+1]
		status = http.StatusPartialContent
		h.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, len(data)))
	}
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

type listContents struct {
	Key          string `xml:"Key"`
	LastModified string `xml:"LastModified"`
	ETag         string `xml:"ETag"`
	Size         int    `xml:"Size"`
	StorageClass string `xml:"StorageClass"`
}

type listResult struct {
	XMLName     xml.Name       `xml:"http://s3.amazonaws.com/doc/2006-03-01/ ListBucketResult"`
	Name        string         `xml:"Name"`
	Prefix      string         `xml:"Prefix"`
	KeyCount    int            `xml:"KeyCount"`
	MaxKeys     int            `xml:"MaxKeys"`
	IsTruncated bool           `xml:"IsTruncated"`
	Contents    []listContents `xml:"Contents"`
}

func (f *fakeServer) list(w http.ResponseWriter, prefix string) {
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	res := listResult{Name: testBucket, Prefix: prefix, KeyCount: len(keys), MaxKeys: 1000}
	for _, k := range keys {
		res.Contents = append(res.Contents, listContents{
			Key:          k,
			LastModified: lastModified.Format("2006-01-02T15:04:05.000Z"),
			ETag:         `"etag"`,
			Size:         len(f.objects[k]),
			StorageClass: "STANDARD",
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = io.WriteString(w, xml.Header)
	_ = xml.NewEncoder(w).Encode(res)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string) {
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource><RequestId>1</RequestId></Error>`,
		code, code, r.URL.Path)
}

// readPayload returns the object bytes of a PUT, decoding aws-chunked
// streaming bodies.
func readPayload(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING-") &&
		!strings.Contains(r.Header.Get("Content-Encoding"), "aws-chunked") {
		return body, nil
	}

	var out []byte
	for {
		line, rest, ok := bytes.Cut(body, []byte("\r\n"))
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		sizeHex, _, _ := bytes.Cut(line, []byte(";"))
		n, err := strconv.ParseInt(string(sizeHex), 16, 64)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
		if int64(len(rest)) < n {
			return nil, io.ErrUnexpectedEOF
		}
		out = append(out, rest[:n]...)
		body = bytes.TrimPrefix(rest[n:], []byte("\r\n"))
	}
}

func newTestStore(t *testing.T, prefix string) (*Store, *fakeServer) {
	t.Helper()
	fake := newFakeServer()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return NewStore(client, testBucket, prefix), fake
}

func TestStore_PutOpenRead(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t, "root/")

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "greeting.bvec", data))
	stored, ok := fake.object("root/greeting.bvec")
	require.True(t, ok)
	assert.Equal(t, data, stored)

	blob, err := store.Open(ctx, "greeting.bvec")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(len(data)), blob.Size())

	all, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, data, all)

	rc, err := blob.ReadRange(ctx, 6, 5)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "minio", string(part))

	buf := make([]byte, 10)
	n, err := blob.ReadAt(ctx, buf, 12)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "world", string(buf[:n]))

	_, err = blob.ReadRange(ctx, int64(len(data)), 1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestStore_OpenErrors(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t, "")

	_, err := store.Open(ctx, "missing")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	fake.store("secret", nil, true)
	_, err = store.Open(ctx, "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_CreateCloseAbort(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t, "")

	wb, err := store.Create(ctx, "aborted")
	require.NoError(t, err)
	_, err = wb.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, wb.Abort())
	_, err = wb.Write([]byte("more"))
	assert.ErrorIs(t, err, errFinished)
	_, ok := fake.object("aborted")
	assert.False(t, ok)
	assert.Zero(t, fake.putCount())

	wb, err = store.Create(ctx, "streamed")
	require.NoError(t, err)
	_, err = io.Copy(wb, strings.NewReader("streamed data"))
	require.NoError(t, err)
	require.NoError(t, wb.Sync())
	_, ok = fake.object("streamed")
	assert.False(t, ok)

	require.NoError(t, wb.Close())
	stored, ok := fake.object("streamed")
	require.True(t, ok)
	assert.Equal(t, []byte("streamed data"), stored)
	assert.ErrorIs(t, wb.Close(), errFinished)
}

func TestStore_ListDelete(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t, "root")
	fake.store("rootless", []byte("x"), false)

	for _, name := range []string{"b/2", "a/1", "b/1"} {
		require.NoError(t, store.Put(ctx, name, []byte(name)))
	}

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1", "b/1", "b/2"}, names)

	names, err = store.List(ctx, "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b/1", "b/2"}, names)

	require.NoError(t, store.Delete(ctx, "b/1"))
	require.NoError(t, store.Delete(ctx, "b/1"))
	names, err = store.List(ctx, "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b/2"}, names)
}

func TestStore_Bitstore(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, "vectors/")
	s := bitstore.New(store, bitstore.WithCompression(codec.CompressionZSTD))

	m, err := bitvec.NewMutable(4096)
	require.NoError(t, err)
	require.NoError(t, m.SetRange(100, 900))
	require.NoError(t, m.Set(4000))

	require.NoError(t, s.Save(ctx, "users/active", m))
	got, err := s.Load(ctx, "users/active")
	require.NoError(t, err)
	assert.True(t, m.Equal(got))

	_, err = s.Load(ctx, "users/none")
	assert.ErrorIs(t, err, bitstore.ErrNotFound)
}

// TestStore_Integration runs against a real server when MINIO_ENDPOINT is set.
func TestStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
	})
	require.NoError(t, err)

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, testBucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, testBucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, testBucket, "integration/")
	require.NoError(t, store.Put(ctx, "x.bvec", []byte("payload")))

	blob, err := store.Open(ctx, "x.bvec")
	require.NoError(t, err)
	all, err := blobstore.ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(all))
	require.NoError(t, blob.Close())

	require.NoError(t, store.Delete(ctx, "x.bvec"))
	_, err = store.Open(ctx, "x.bvec")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
