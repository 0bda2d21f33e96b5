package instance

import (
	"context"
	"fmt"

	"github.com/hupe1980/diskpack/blobstore"
)

// Load reads and decodes the named instance from store.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*Instance, error) {
	data, err := blobstore.Get(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", name, err)
	}
	in, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", name, err)
	}
	return in, nil
}

// Save encodes in with the compression implied by name and writes it.
func Save(ctx context.Context, store blobstore.BlobStore, name string, in *Instance) error {
	data, err := Encode(in, CompressionFromName(name))
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("instance: save %s: %w", name, err)
	}
	return nil
}
