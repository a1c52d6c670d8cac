// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client and is used to publish generated comparison
// reports to an S3-compatible bucket. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil { ... }
//	key, err := storage.UploadFile(ctx, client, cfg.Storage.Bucket, cfg.Storage.Prefix, path, "text/html")
package storage
