package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/diskpack/blobstore"
	minioblob "github.com/hupe1980/diskpack/blobstore/minio"
	s3blob "github.com/hupe1980/diskpack/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	schemeFile  = "file"
	schemeS3    = "s3"
	schemeMinio = "minio"
)

// location names a blob: a local path, s3://bucket/key or minio://bucket/key.
type location struct {
	scheme string
	bucket string // directory for local files
	key    string
}

func (l location) String() string {
	if l.scheme == schemeFile {
		return filepath.Join(l.bucket, l.key)
	}
	return l.scheme + "://" + l.bucket + "/" + l.key
}

func parseLocation(s string) (location, error) {
	if s == "" {
		return location{}, errors.New("empty location")
	}

	for _, scheme := range []string{schemeS3, schemeMinio} {
		rest, ok := strings.CutPrefix(s, scheme+"://")
		if !ok {
			continue
		}
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return location{}, fmt.Errorf("location %q: want %s://bucket/key", s, scheme)
		}
		return location{scheme: scheme, bucket: bucket, key: key}, nil
	}

	if strings.Contains(s, "://") {
		return location{}, fmt.Errorf("location %q: unsupported scheme", s)
	}
	s = strings.TrimPrefix(s, "file:")
	return location{scheme: schemeFile, bucket: filepath.Dir(s), key: filepath.Base(s)}, nil
}

// stores opens one BlobStore per bucket and reuses it.
type stores struct {
	cfg *Config

	mu    sync.Mutex
	cache map[string]blobstore.BlobStore
}

func newStores(cfg *Config) *stores {
	return &stores{cfg: cfg, cache: make(map[string]blobstore.BlobStore)}
}

func (s *stores) open(ctx context.Context, loc location) (blobstore.BlobStore, error) {
	id := loc.scheme + "://" + loc.bucket

	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.cache[id]; ok {
		return st, nil
	}

	var (
		st  blobstore.BlobStore
		err error
	)
	switch loc.scheme {
	case schemeFile:
		st = blobstore.NewLocalStore(loc.bucket)
	case schemeS3:
		var opts []s3blob.Option
		if s.cfg.S3.Region != "" {
			opts = append(opts, s3blob.WithRegion(s.cfg.S3.Region))
		}
		st, err = s3blob.New(ctx, loc.bucket, opts...)
	case schemeMinio:
		st, err = s.openMinio(loc.bucket)
	default:
		err = fmt.Errorf("unsupported scheme %q", loc.scheme)
	}
	if err != nil {
		return nil, err
	}

	s.cache[id] = st
	return st, nil
}

func (s *stores) openMinio(bucket string) (blobstore.BlobStore, error) {
	mc := s.cfg.Minio
	if mc.Endpoint == "" {
		return nil, errors.New("minio: endpoint not configured (minio.endpoint or MINIO_ENDPOINT)")
	}
	client, err := minio.New(mc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(mc.AccessKey, mc.SecretKey, ""),
		Secure: mc.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	return minioblob.NewStore(client, bucket, ""), nil
}

// read fetches the whole blob at loc.
func (s *stores) read(ctx context.Context, loc location) ([]byte, error) {
	st, err := s.open(ctx, loc)
	if err != nil {
		return nil, err
	}
	return blobstore.Get(ctx, st, loc.key)
}

// write stores data at loc.
func (s *stores) write(ctx context.Context, loc location, data []byte) error {
	st, err := s.open(ctx, loc)
	if err != nil {
		return err
	}
	return st.Put(ctx, loc.key, data)
}
