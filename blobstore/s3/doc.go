// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("instances/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	inst, err := instance.Load(ctx, store, "random-1000.json.zst")
//
// Reads are ranged GetObject calls. Writes go through the transfer manager,
// which switches to multipart uploads above the part size. Listing follows
// ListObjectsV2 continuation tokens.
package s3
